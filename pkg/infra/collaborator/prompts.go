package collaborator

import (
	"fmt"

	"github.com/NeuralTrust/TrustTag/pkg/domain/tagging"
)

const noDescription = "No description provided"

const imageTagPrompt = `Analyze this image and generate relevant tags for a design asset management system.
Title: %s
Description: %s

Generate 5-8 relevant tags that would help designers find this asset.
Focus on: design style, color palette, subject matter, use case, mood, technique.
Return only the tags as a comma-separated list.`

const textTagPrompt = `Analyze this asset and generate relevant tags for a design asset management system.
Title: %s
Description: %s

Generate 5-8 relevant tags that would help designers find this asset.
Focus on: content type, subject matter, use case, style, category.
Return only the tags as a comma-separated list.`

const designPrompt = `Analyze this design image titled %q and provide feedback on:
1. Color harmony and palette
2. Composition and layout
3. Typography (if present)
4. Visual hierarchy
5. Overall aesthetic appeal

Provide specific, constructive feedback that would help improve the design.
End with a line of the form "Score: X/10".`

func tagPrompt(template string, req tagging.GenerationRequest) string {
	description := req.Description
	if description == "" {
		description = noDescription
	}
	return fmt.Sprintf(template, req.Title, description)
}
