package domain

// Product is a catalog product snapshot as detected in a video. Copies of it
// are embedded into cart lines and saved items, so later catalog edits never
// rewrite what a user already put in their cart.
type Product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Retailer        string  `json:"retailer"`
	ImageURL        string  `json:"imageUrl"`
	InStock         bool    `json:"inStock"`
	Brand           string  `json:"brand,omitempty"`
	BrandConfidence float64 `json:"brandConfidence,omitempty"`
	VideoID         int     `json:"videoId,omitempty"`
	VideoTitle      string  `json:"videoTitle,omitempty"`
}
