package models

// StockKind identifies how an item's stock is measured.
type StockKind string

const (
	// StockNone means the item currently has no positive stock in either
	// representation.
	StockNone StockKind = ""
	// StockQuantity means the item is counted in whole units.
	StockQuantity StockKind = "quantity"
	// StockWeight means the item is measured by fractional mass.
	StockWeight StockKind = "weight"
)

// Stock is an explicit tagged variant of an item's stock level. Exactly one
// of Quantity/Weight is meaningful, selected by Kind.
type Stock struct {
	Kind     StockKind `json:"kind"`
	Quantity int64     `json:"quantity,omitempty"`
	Weight   float64   `json:"weight,omitempty"`
}

// Amount returns the stock level as a float regardless of kind.
func (s Stock) Amount() float64 {
	if s.Kind == StockWeight {
		return s.Weight
	}
	return float64(s.Quantity)
}

// Item defines the item model based on the 'items' table. An item is either
// quantity-tracked or weight-tracked; the inactive column stays NULL.
type Item struct {
	ProductID          string   `json:"product_id" db:"product_id"`
	ProductName        string   `json:"product_name" db:"product_name"`
	Description        string   `json:"description" db:"description"`
	Type               string   `json:"type" db:"type"`
	VendorID           int64    `json:"vendor_id" db:"vendor_id"`
	PricePerUnit       float64  `json:"price_per_unit" db:"price_per_unit"`
	OrderQuantity      *int64   `json:"order_quantity" db:"order_quantity"`
	WeightAmount       *float64 `json:"weight_amount" db:"weight_amount"`
	MaxSignoutQuantity *int64   `json:"max_signout_quantity" db:"max_signout_quantity"`
	MaxSignoutWeight   *float64 `json:"max_signout_weight" db:"max_signout_weight"`
}

// Stock resolves the item's nullable stock columns into the tagged variant.
// Resolution happens once here; ledger arithmetic dispatches on Kind only.
func (i *Item) Stock() Stock {
	if i.WeightAmount != nil && *i.WeightAmount > 0 {
		return Stock{Kind: StockWeight, Weight: *i.WeightAmount}
	}
	if i.OrderQuantity != nil && *i.OrderQuantity > 0 {
		return Stock{Kind: StockQuantity, Quantity: *i.OrderQuantity}
	}
	return Stock{Kind: StockNone}
}

// SignoutLimit returns the per-transaction cap for the given stock kind, or
// false when no cap is configured.
func (i *Item) SignoutLimit(kind StockKind) (float64, bool) {
	switch kind {
	case StockQuantity:
		if i.MaxSignoutQuantity != nil {
			return float64(*i.MaxSignoutQuantity), true
		}
	case StockWeight:
		if i.MaxSignoutWeight != nil {
			return *i.MaxSignoutWeight, true
		}
	}
	return 0, false
}

// ItemTransactionCount holds a per-item transaction count used by the
// most-taken report.
type ItemTransactionCount struct {
	ProductID         string `json:"product_id" db:"product_id"`
	ProductName       string `json:"product_name" db:"product_name"`
	Type              string `json:"type" db:"type"`
	TotalTransactions int64  `json:"total_transactions" db:"total_transactions"`
	Ranking           int64  `json:"ranking"`
}
