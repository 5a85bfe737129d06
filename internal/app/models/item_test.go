package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestItemStockResolution(t *testing.T) {
	tests := []struct {
		name     string
		quantity *int64
		weight   *float64
		want     Stock
	}{
		{"quantity tracked", int64Ptr(10), nil, Stock{Kind: StockQuantity, Quantity: 10}},
		{"weight tracked", nil, float64Ptr(2.5), Stock{Kind: StockWeight, Weight: 2.5}},
		{"both null", nil, nil, Stock{Kind: StockNone}},
		{"both zero", int64Ptr(0), float64Ptr(0), Stock{Kind: StockNone}},
		{"zero quantity positive weight", int64Ptr(0), float64Ptr(1), Stock{Kind: StockWeight, Weight: 1}},
		{"weight wins when positive", int64Ptr(3), float64Ptr(1), Stock{Kind: StockWeight, Weight: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{OrderQuantity: tt.quantity, WeightAmount: tt.weight}
			assert.Equal(t, tt.want, item.Stock())
		})
	}
}

func TestStockAmount(t *testing.T) {
	assert.Equal(t, 7.0, Stock{Kind: StockQuantity, Quantity: 7}.Amount())
	assert.Equal(t, 2.5, Stock{Kind: StockWeight, Weight: 2.5}.Amount())
	assert.Equal(t, 0.0, Stock{Kind: StockNone}.Amount())
}

func TestSignoutLimit(t *testing.T) {
	item := &Item{MaxSignoutQuantity: int64Ptr(4)}

	limit, ok := item.SignoutLimit(StockQuantity)
	assert.True(t, ok)
	assert.Equal(t, 4.0, limit)

	_, ok = item.SignoutLimit(StockWeight)
	assert.False(t, ok)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "undergraduate", NormalizeStatus(" Undergraduate "))
	assert.Equal(t, "graduate", NormalizeStatus("GRADUATE"))
	assert.Equal(t, "", NormalizeStatus("   "))
}
