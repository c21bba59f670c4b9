package tagging

import (
	"strings"
	"unicode"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/valyala/fastjson"
)

const (
	maxRawTokens = 32
	maxTagLength = 64
	maxTagWords  = 5
)

var parserPool fastjson.ParserPool

// ParseTags extracts a tag list from raw collaborator text. Two shapes are
// accepted: a JSON array of strings, or a comma/newline delimited list
// (optionally fenced, bulleted or numbered). Anything else is domain.ErrParse.
func ParseTags(raw string) ([]string, error) {
	text := cleanCodeBlock(raw)
	if text == "" {
		return nil, domain.NewParseError("empty response")
	}

	var (
		tokens []string
		err    error
	)
	if strings.HasPrefix(text, "[") {
		tokens, err = parseJSONArray(text)
	} else {
		tokens = splitDelimited(text)
	}
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, domain.NewParseError("no tags found")
	}
	if len(tokens) > maxRawTokens {
		return nil, domain.NewParseError("too many tokens: %d", len(tokens))
	}

	for _, t := range tokens {
		if len(t) > maxTagLength {
			return nil, domain.NewParseError("tag exceeds %d characters", maxTagLength)
		}
		if len(strings.Fields(t)) > maxTagWords || strings.ContainsRune(t, ':') || strings.ContainsAny(t[len(t)-1:], ".!?") {
			return nil, domain.NewParseError("tag looks like a sentence: %q", t)
		}
	}
	return tokens, nil
}

func cleanCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language hint on the opening fence
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func parseJSONArray(text string) ([]string, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(text)
	if err != nil {
		return nil, domain.NewParseError("invalid JSON array: %v", err)
	}
	items, err := v.Array()
	if err != nil {
		return nil, domain.NewParseError("expected JSON array: %v", err)
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, domain.NewParseError("non-string tag in array")
		}
		if t := strings.TrimSpace(string(b)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func splitDelimited(text string) []string {
	text = stripPreamble(text)

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := stripBullet(strings.TrimSpace(f)); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// stripPreamble drops a leading "Tags:" or "Here are the tags:" label from
// the first line.
func stripPreamble(text string) string {
	line, rest, _ := strings.Cut(text, "\n")
	idx := strings.LastIndexByte(line, ':')
	if idx < 0 {
		return text
	}
	return line[idx+1:] + "\n" + rest
}

func stripBullet(s string) string {
	s = strings.TrimLeft(s, "-*•# ")
	// numbered items: "1." or "2)"
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = s[i+1:]
	}
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
