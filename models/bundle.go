package models

// Bundle is a pre-composed set of services sold as one priced offering.
// Persisted under the "packages" collection key.
type Bundle struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	OccasionType     EventType `json:"occasion_type"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	IncludedServices []string  `json:"included_services"`
	Images           []string  `json:"images"`
	City             string    `json:"city"`
	Region           Region    `json:"region"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	WazeURL          string    `json:"waze_url"`
	RatingAverage    float64   `json:"rating_average"`
	RatingCount      int       `json:"rating_count"`
	Reviews          []Review  `json:"reviews"`
	HeroImageURL     string    `json:"hero_image_url"`
}
