package shopper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddBounds_KnownStock(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		wantMax int
	}{
		{name: "zero stock still yields a floor range", stock: 0, wantMax: 1},
		{name: "single unit", stock: 1, wantMax: 1},
		{name: "plenty", stock: 50, wantMax: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := AddBounds(tt.stock, true)
			assert.Equal(t, 1, b.Min)
			assert.Equal(t, tt.wantMax, b.Max)
		})
	}
}

func TestAddBounds_UnknownStockIsPermissive(t *testing.T) {
	b := AddBounds(0, false)
	assert.Equal(t, 1, b.Min)
	assert.Equal(t, UnknownStockCeiling, b.Max)
}

func TestCanAdd(t *testing.T) {
	assert.False(t, CanAdd(0, true), "known zero stock blocks the add action")
	assert.True(t, CanAdd(3, true))
	assert.True(t, CanAdd(0, false), "unknown stock is not treated as zero")
}

func TestEditBounds_AddsHeldQuantityBack(t *testing.T) {
	tests := []struct {
		name    string
		stock   int
		held    int
		wantMax int
	}{
		{name: "held raises ceiling above available", stock: 2, held: 3, wantMax: 5},
		{name: "zero stock with held units", stock: 0, held: 4, wantMax: 4},
		{name: "one each", stock: 1, held: 1, wantMax: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := EditBounds(tt.stock, true, tt.held)
			assert.Equal(t, 1, b.Min)
			assert.Equal(t, tt.wantMax, b.Max)
		})
	}
}

func TestEditBounds_CeilingExceedsAddCeilingWhenHolding(t *testing.T) {
	for stock := 0; stock <= 10; stock++ {
		for held := 1; held <= 5; held++ {
			edit := EditBounds(stock, true, held)
			add := AddBounds(stock, true)
			assert.Equal(t, stock+held, edit.Max)
			assert.Greater(t, edit.Max, stock,
				"holding units must raise the ceiling above bare stock (stock=%d held=%d)", stock, held)
			assert.GreaterOrEqual(t, edit.Max, add.Max)
		}
	}
}

func TestEditBounds_UnknownStock(t *testing.T) {
	b := EditBounds(0, false, 3)
	assert.Equal(t, UnknownStockCeiling, b.Max)
}

func TestQuantityBoundsContains(t *testing.T) {
	b := QuantityBounds{Min: 1, Max: 5}
	assert.False(t, b.Contains(0))
	assert.True(t, b.Contains(1))
	assert.True(t, b.Contains(5))
	assert.False(t, b.Contains(6))
}
