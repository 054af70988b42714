package models

type Dress struct {
	ID           string   `json:"id"`
	VendorID     string   `json:"vendor_id"` // weak reference, may dangle
	Title        string   `json:"title"`
	Type         string   `json:"type"` // wedding, engagement, evening, kids
	ForSale      bool     `json:"for_sale"`
	ForRent      bool     `json:"for_rent"`
	PriceSale    float64  `json:"price_sale,omitempty"`
	PriceRent    float64  `json:"price_rent,omitempty"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	Region       Region   `json:"region"`
	City         string   `json:"city"`
	MainImageURL string   `json:"main_image_url"`
	Description  string   `json:"description"`
	Reviews      []Review `json:"reviews"`
}
