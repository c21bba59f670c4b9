package tagging

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

type FallbackReason string

const (
	ReasonUnavailable FallbackReason = "collaborator_unavailable"
	ReasonTimeout     FallbackReason = "timeout"
	ReasonParse       FallbackReason = "parse_error"
)

// FallbackPolicy maps a file type to the tag set served when generation fails.
// Types without an entry use Default.
type FallbackPolicy struct {
	ByType  map[asset.FileType][]string
	Default []string
}

func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{
		ByType: map[asset.FileType][]string{
			asset.FileTypeImage: {"image", "design", "visual", "creative"},
		},
		Default: []string{"document", "file", "content"},
	}
}

// TagsFor returns a copy so callers may keep the slice.
func (p FallbackPolicy) TagsFor(fileType asset.FileType) []string {
	tags, ok := p.ByType[fileType]
	if !ok {
		tags = p.Default
	}
	return append([]string(nil), tags...)
}

func ClassifyFailure(err error) FallbackReason {
	switch {
	case errors.Is(err, domain.ErrParse):
		return ReasonParse
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	default:
		return ReasonUnavailable
	}
}
