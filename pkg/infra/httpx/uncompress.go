package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

var ErrBodyTooLarge = errors.New("decoded body exceeds limit")

type decoder func(r io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoder{
	"br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
	"gzip": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	"zstd": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	},
}

// DecodeBody reverses a Content-Encoding chain such as "gzip, br", last
// encoding first. The decoded size is capped at limit bytes (0 means no cap).
// It reports whether the body changed.
func DecodeBody(contentEncoding string, body []byte, limit int64) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}

	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		enc := strings.ToLower(strings.TrimSpace(encodings[i]))
		var (
			out []byte
			err error
		)
		switch enc {
		case "", "identity", "compress":
			continue
		case "deflate":
			out, err = inflate(body, limit)
		default:
			dec, ok := decoders[enc]
			if !ok {
				return nil, false, fmt.Errorf("unsupported content-encoding: %q", enc)
			}
			out, err = readAll(dec, body, limit)
		}
		if err != nil {
			return nil, false, fmt.Errorf("decode %s: %w", enc, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

// inflate accepts zlib-wrapped deflate (RFC 9110) and raw deflate streams.
func inflate(body []byte, limit int64) ([]byte, error) {
	out, err := readAll(func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }, body, limit)
	if err == nil || errors.Is(err, ErrBodyTooLarge) {
		return out, err
	}
	return readAll(func(r io.Reader) (io.ReadCloser, error) { return flate.NewReader(r), nil }, body, limit)
}

func readAll(dec decoder, body []byte, limit int64) ([]byte, error) {
	rc, err := dec(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int64(len(out)) > limit {
		return nil, ErrBodyTooLarge
	}
	return out, nil
}
