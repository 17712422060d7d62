package product

// Product is a catalog record as served by the products endpoint. The catalog
// never mutates a Product after it is fetched.
type Product struct {
	ID          string  `json:"id" mapstructure:"id"`
	Name        string  `json:"name" mapstructure:"name"`
	Price       float64 `json:"price" mapstructure:"price"`
	Image       string  `json:"image" mapstructure:"image"`
	Description string  `json:"description" mapstructure:"description"`
	Category    string  `json:"category" mapstructure:"category"`
	Brand       string  `json:"brand" mapstructure:"brand"`
	Model       string  `json:"model" mapstructure:"model"`
}
