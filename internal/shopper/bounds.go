package shopper

// UnknownStockCeiling is the permissive quantity ceiling used while a
// product's stock has not been reported yet. Unknown is not zero: the user
// may type a quantity and the server remains the authority.
const UnknownStockCeiling = 999

// QuantityBounds is an inclusive legal quantity range.
type QuantityBounds struct {
	Min int
	Max int
}

// Contains reports whether q falls inside the bounds.
func (b QuantityBounds) Contains(q int) bool {
	return q >= b.Min && q <= b.Max
}

// AddBounds returns the legal quantity range for adding a product that is
// not yet in the cart. known is false when stock has not been reported.
// For known stock s the range is [1, max(s,1)]; a known-zero stock still
// yields [1,1] but CanAdd gates the action off entirely.
func AddBounds(stock int, known bool) QuantityBounds {
	if !known {
		return QuantityBounds{Min: 1, Max: UnknownStockCeiling}
	}
	if stock < 1 {
		return QuantityBounds{Min: 1, Max: 1}
	}
	return QuantityBounds{Min: 1, Max: stock}
}

// CanAdd reports whether an add may be submitted at all. Only a known zero
// stock blocks the action; unknown stock is permissive.
func CanAdd(stock int, known bool) bool {
	return !known || stock > 0
}

// EditBounds returns the legal quantity range when editing an existing cart
// line. The ceiling is stock plus the quantity already held by the line:
// the reported "available" figure excludes this user's reservation, and the
// server releases or draws stock transparently as the quantity moves.
func EditBounds(stock int, known bool, held int) QuantityBounds {
	if !known {
		return QuantityBounds{Min: 1, Max: UnknownStockCeiling}
	}
	return QuantityBounds{Min: 1, Max: stock + held}
}
