package model

// CartItem mirrors one server-side cart line. Price is captured at add time
// and is authoritative for the line even if the catalog price moves later.
type CartItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Cart mirrors the server-side cart. Total is computed server-side and is
// displayed verbatim; the client never recomputes it.
type Cart struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  float64    `json:"total"`
}

// ItemByID finds a cart line by its server-assigned id.
func (c Cart) ItemByID(itemID int64) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return CartItem{}, false
}
