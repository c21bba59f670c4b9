package tagging

type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type Result struct {
	AssetID    string   `json:"asset_id"`
	Tags       []string `json:"tags"`
	Confidence float64  `json:"confidence"`
	Source     Source   `json:"-"`
	Reason     string   `json:"-"`
}
