package cart

import "storefront/model/entity/product"

// Line is one product in the cart. Product fields are captured when the line
// is created and serialize flat next to quantity.
type Line struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
