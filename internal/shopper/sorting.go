package shopper

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shopapp/shopping-client/internal/model"
)

type SortKey string

const (
	SortByPrice SortKey = "price"
	SortByName  SortKey = "name"
	SortByStock SortKey = "stock"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortState tracks the current key and direction. Selecting the active key
// again flips the direction; selecting a new key resets to ascending.
type SortState struct {
	Key SortKey
	Dir Direction
}

// NewSortState returns the default ordering: price ascending.
func NewSortState() SortState {
	return SortState{Key: SortByPrice, Dir: Ascending}
}

// Select applies a key choice to the state.
func (s *SortState) Select(key SortKey) {
	if s.Key == key {
		if s.Dir == Ascending {
			s.Dir = Descending
		} else {
			s.Dir = Ascending
		}
		return
	}
	s.Key = key
	s.Dir = Ascending
}

// SortProducts orders a copy of products by the given key and direction.
// Price and stock compare numerically, with unknown stock counting as 0.
// Names compare with locale-aware collation. The input slice is untouched.
func SortProducts(products []model.Product, stocks model.StockLevels, key SortKey, dir Direction) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	var cmp func(a, b model.Product) int
	switch key {
	case SortByName:
		// A collator is not safe for concurrent use, so build one per sort.
		coll := collate.New(language.English)
		cmp = func(a, b model.Product) int {
			return coll.CompareString(a.Name, b.Name)
		}
	case SortByStock:
		cmp = func(a, b model.Product) int {
			return compareInt(stocks[a.ID], stocks[b.ID])
		}
	default:
		cmp = func(a, b model.Product) int {
			return compareFloat(a.Price, b.Price)
		}
	}

	factor := 1
	if dir == Descending {
		factor = -1
	}
	sort.Slice(out, func(i, j int) bool {
		return cmp(out[i], out[j])*factor < 0
	})
	return out
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
