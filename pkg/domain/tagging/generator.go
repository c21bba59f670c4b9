package tagging

import (
	"context"

	"github.com/NeuralTrust/TrustTag/pkg/domain/asset"
)

// MaxTags is the size cap applied to every generated tag list.
const MaxTags = 8

type GenerationRequest struct {
	URL         string
	Title       string
	Description string
	FileType    asset.FileType
}

// Generator asks an external generative model for tag suggestions. The raw
// model text is returned unparsed; implementations wrap transport failures
// with domain.NewCollaboratorError.
//
//go:generate mockery --name=Generator --dir=. --output=./mocks --filename=generator_mock.go --case=underscore
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
