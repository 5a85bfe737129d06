// Package services holds the pantry business rules: the stock ledger,
// the transaction recorder, aggregate reporting and entity CRUD. Services
// depend on narrow store interfaces satisfied by the repositories package
// so the rules are testable without a database.
package services

import (
	"fmt"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

// StockRequest is a caller-supplied amount in exactly one measurement.
type StockRequest struct {
	Quantity *int64
	Weight   *float64
}

// resolveStockRequest validates that exactly one positive amount was given
// and returns the requested kind and amount.
func resolveStockRequest(quantity *int64, weight *float64) (models.StockKind, float64, error) {
	switch {
	case quantity == nil && weight == nil:
		return models.StockNone, 0, fmt.Errorf("%w: either quantity or weight must be provided", apperrors.ErrValidationFailed)
	case quantity != nil && weight != nil:
		return models.StockNone, 0, fmt.Errorf("%w: only one of quantity or weight may be provided", apperrors.ErrValidationFailed)
	case quantity != nil:
		if *quantity <= 0 {
			return models.StockNone, 0, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidationFailed)
		}
		return models.StockQuantity, float64(*quantity), nil
	default:
		if *weight <= 0 {
			return models.StockNone, 0, fmt.Errorf("%w: weight must be positive", apperrors.ErrValidationFailed)
		}
		return models.StockWeight, *weight, nil
	}
}

// currentStock reads the item's stock level for the given kind, treating
// NULL as zero.
func currentStock(item *models.Item, kind models.StockKind) float64 {
	switch kind {
	case models.StockQuantity:
		if item.OrderQuantity != nil {
			return float64(*item.OrderQuantity)
		}
	case models.StockWeight:
		if item.WeightAmount != nil {
			return *item.WeightAmount
		}
	}
	return 0
}

// stockSnapshot builds the tagged stock value for the given kind and level.
func stockSnapshot(kind models.StockKind, level float64) models.Stock {
	if kind == models.StockWeight {
		return models.Stock{Kind: kind, Weight: level}
	}
	return models.Stock{Kind: kind, Quantity: int64(level)}
}

// validateWithdrawal applies the ledger rules to one requested withdrawal:
// the request's measurement must match how the item is tracked, the amount
// must not exceed current stock, and, when cap enforcement is on, must not
// exceed the item's per-transaction sign-out limit.
func validateWithdrawal(item *models.Item, kind models.StockKind, amount float64, enforceLimit bool) error {
	active := item.Stock()
	if active.Kind != models.StockNone && active.Kind != kind {
		return fmt.Errorf("%w: item %s is %s-tracked", apperrors.ErrWrongMeasurementType, item.ProductID, active.Kind)
	}

	if enforceLimit {
		if limit, ok := item.SignoutLimit(kind); ok && amount > limit {
			return fmt.Errorf("%w: limit is %v", apperrors.ErrSignoutLimitExceeded, limit)
		}
	}

	if amount > currentStock(item, kind) {
		return fmt.Errorf("%w: item %s", apperrors.ErrInsufficientStock, item.ProductID)
	}

	return nil
}
