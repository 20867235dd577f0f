package domain

// Video is a catalog entry: a shoppable video with its detected product
// hotspots. The catalog fixture is immutable at runtime.
type Video struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	CreatorName  string    `json:"creatorName"`
	Views        string    `json:"views"`
	Duration     int       `json:"duration,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	Products     []Product `json:"products"`

	// Brand analysis summary, computed by the catalog service rather than
	// stored in the fixture.
	BrandAnalysisComplete bool    `json:"brandAnalysisComplete,omitempty"`
	DetectedBrands        int     `json:"detectedBrands,omitempty"`
	AvgBrandConfidence    float64 `json:"avgBrandConfidence,omitempty"`
}
