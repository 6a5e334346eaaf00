package entities

// ProductDetail is the catalog payload for a recommended product,
// resolved live from the external catalog at read time.
type ProductDetail struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Image       string        `json:"image"`
	Rating      ProductRating `json:"rating"`
}

// ProductRating is the catalog's own rating summary for a product.
type ProductRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}
