package model

// Icon keys the catalog service uses for presentation. The client never
// interprets them beyond passing them through to the display layer.
const (
	IconLaptop     = "Laptop"
	IconSmartphone = "Smartphone"
	IconHeadphones = "Headphones"
	IconTablet     = "Tablet"
	IconWatch      = "Watch"
)

// Product is a read-only mirror of a catalog entry. The local copy is
// replaced wholesale on every successful fetch.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Icon        string  `json:"imageUrl"`
}

// StockLevels maps product id to units available for new reservation,
// exclusive of whatever the current user already holds in their cart.
// A missing key means "unknown", not zero.
type StockLevels map[int64]int

// Lookup returns the stock for a product and whether it is known.
func (s StockLevels) Lookup(productID int64) (int, bool) {
	n, ok := s[productID]
	return n, ok
}
