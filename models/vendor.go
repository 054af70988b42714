package models

type VendorCategory string

const (
	CategoryVenue         VendorCategory = "venue"
	CategoryFood          VendorCategory = "food"
	CategoryBeauty        VendorCategory = "beauty"
	CategoryPhotography   VendorCategory = "photography"
	CategoryEntertainment VendorCategory = "entertainment"
	CategoryDecoration    VendorCategory = "decoration"
	CategoryRental        VendorCategory = "rental"
	CategoryDresses       VendorCategory = "dresses"
)

type Region string

const (
	RegionNorth  Region = "north"
	RegionCenter Region = "center"
	RegionSouth  Region = "south"
)

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"` // 1-5
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type Vendor struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      VendorCategory `json:"category"`
	SubCategory   string         `json:"sub_category,omitempty"`
	Region        Region         `json:"region"`
	City          string         `json:"city"`
	AddressText   string         `json:"address_text"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	WazeURL       string         `json:"waze_url"`
	Description   string         `json:"description"`
	MinPrice      float64        `json:"min_price"`
	MaxPrice      float64        `json:"max_price"`
	Phone         string         `json:"phone"`
	Whatsapp      string         `json:"whatsapp"`
	RatingAverage float64        `json:"rating_average"`
	RatingCount   int            `json:"rating_count"`
	HeroImageURL  string         `json:"hero_image_url"`
	GalleryImages []string       `json:"gallery_images"`
	Reviews       []Review       `json:"reviews"`
}
