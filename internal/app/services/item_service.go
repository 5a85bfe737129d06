package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

// Default low-stock thresholds, overridable per request.
const (
	DefaultLowStockQuantityThreshold int64   = 5
	DefaultLowStockWeightThreshold   float64 = 10
)

// ItemStore is the item persistence surface the service needs.
type ItemStore interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, productID string) (*models.Item, error)
	GetAllItems(ctx context.Context, vendorID *int64) ([]*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, productID string) error
	DecrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) (bool, error)
	IncrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) error
	SetGlobalLimits(ctx context.Context, maxQuantity *int64, maxWeight *float64) (int64, error)
	GetLowStockItems(ctx context.Context, quantityThreshold int64, weightThreshold float64) ([]*models.Item, error)
	GetDistinctTypes(ctx context.Context) ([]string, error)
}

// WithdrawResult is the pre/post snapshot of a successful withdrawal.
type WithdrawResult struct {
	Item   *models.Item
	Before models.Stock
	After  models.Stock
}

// ItemService defines the interface for item and stock-ledger operations
type ItemService interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemByID(ctx context.Context, productID string) (*models.Item, error)
	ListItems(ctx context.Context, vendorID *int64) ([]*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, productID string) error
	ListTypes(ctx context.Context) ([]string, error)
	Withdraw(ctx context.Context, productID string, req StockRequest) (*WithdrawResult, error)
	Restock(ctx context.Context, productID string, req StockRequest) (*models.Item, error)
	SetGlobalLimits(ctx context.Context, maxQuantity *int64, maxWeight *float64) (int64, error)
	LowStock(ctx context.Context, quantityThreshold *int64, weightThreshold *float64) ([]*models.Item, error)
}

// ItemServiceOptions carries deployment-level tuning for the item service
type ItemServiceOptions struct {
	// EnforceSignoutLimits turns on server-side checking of the
	// per-transaction max_signout_* caps. Historically the caps were only
	// checked client-side, so this defaults to off.
	EnforceSignoutLimits bool

	// Defaults for the low-stock report when the request does not supply
	// its own thresholds. Zero values fall back to the package defaults.
	LowStockQuantityThreshold int64
	LowStockWeightThreshold   float64
}

// itemServiceImpl implements the ItemService interface
type itemServiceImpl struct {
	items                ItemStore
	enforceSignoutLimits bool
	lowStockQuantity     int64
	lowStockWeight       float64
}

// NewItemService creates a new item service instance
func NewItemService(items ItemStore, opts ItemServiceOptions) ItemService {
	if opts.LowStockQuantityThreshold <= 0 {
		opts.LowStockQuantityThreshold = DefaultLowStockQuantityThreshold
	}
	if opts.LowStockWeightThreshold <= 0 {
		opts.LowStockWeightThreshold = DefaultLowStockWeightThreshold
	}
	return &itemServiceImpl{
		items:                items,
		enforceSignoutLimits: opts.EnforceSignoutLimits,
		lowStockQuantity:     opts.LowStockQuantityThreshold,
		lowStockWeight:       opts.LowStockWeightThreshold,
	}
}

// validateItem validates item data before database operations
func validateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(item.ProductID) == "" {
		return fmt.Errorf("%w: product ID is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(item.ProductName) == "" {
		return fmt.Errorf("%w: product name is required", apperrors.ErrValidationFailed)
	}
	if item.VendorID <= 0 {
		return fmt.Errorf("%w: vendor ID is required", apperrors.ErrValidationFailed)
	}
	// An item is quantity-tracked or weight-tracked, never both.
	if item.OrderQuantity != nil && *item.OrderQuantity > 0 &&
		item.WeightAmount != nil && *item.WeightAmount > 0 {
		return fmt.Errorf("%w: order_quantity and weight_amount cannot both be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateItem creates a new item with its caller-supplied product ID
func (s *itemServiceImpl) CreateItem(ctx context.Context, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}
	item.ProductID = strings.TrimSpace(item.ProductID)

	if err := s.items.CreateItem(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrItemAlreadyExists) {
			return apperrors.ErrItemAlreadyExists
		}
		return fmt.Errorf("error creating item: %w", err)
	}
	return nil
}

// GetItemByID retrieves an item by product ID
func (s *itemServiceImpl) GetItemByID(ctx context.Context, productID string) (*models.Item, error) {
	item, err := s.items.GetItemByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error retrieving item: %w", err)
	}
	return item, nil
}

// ListItems retrieves all items, optionally filtered by vendor
func (s *itemServiceImpl) ListItems(ctx context.Context, vendorID *int64) ([]*models.Item, error) {
	items, err := s.items.GetAllItems(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving items: %w", err)
	}
	return items, nil
}

// UpdateItem replaces an item's mutable fields
func (s *itemServiceImpl) UpdateItem(ctx context.Context, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrItemNotFound
		}
		return fmt.Errorf("error updating item: %w", err)
	}
	return nil
}

// DeleteItem removes an item
func (s *itemServiceImpl) DeleteItem(ctx context.Context, productID string) error {
	if err := s.items.DeleteItem(ctx, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrItemNotFound
		}
		return fmt.Errorf("error deleting item: %w", err)
	}
	return nil
}

// ListTypes returns all distinct item types
func (s *itemServiceImpl) ListTypes(ctx context.Context) ([]string, error) {
	types, err := s.items.GetDistinctTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving item types: %w", err)
	}
	return types, nil
}

// Withdraw validates and applies one withdrawal against an item's stock.
// The decrement itself is a conditional update; a failed guard after
// validation means a concurrent withdrawal won the stock, which is also
// reported as insufficient stock.
func (s *itemServiceImpl) Withdraw(ctx context.Context, productID string, req StockRequest) (*WithdrawResult, error) {
	kind, amount, err := resolveStockRequest(req.Quantity, req.Weight)
	if err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := validateWithdrawal(item, kind, amount, s.enforceSignoutLimits); err != nil {
		return nil, err
	}

	before := currentStock(item, kind)

	ok, err := s.items.DecrementStock(ctx, productID, kind, amount)
	if err != nil {
		return nil, fmt.Errorf("error withdrawing stock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: item %s", apperrors.ErrInsufficientStock, productID)
	}

	updated, err := s.GetItemByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &WithdrawResult{
		Item:   updated,
		Before: stockSnapshot(kind, before),
		After:  stockSnapshot(kind, currentStock(updated, kind)),
	}, nil
}

// Restock adds supply to an existing item. The added amount must be in the
// measurement the item is tracked in; there is no upper bound.
func (s *itemServiceImpl) Restock(ctx context.Context, productID string, req StockRequest) (*models.Item, error) {
	kind, amount, err := resolveStockRequest(req.Quantity, req.Weight)
	if err != nil {
		return nil, err
	}

	item, err := s.GetItemByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if active := item.Stock(); active.Kind != models.StockNone && active.Kind != kind {
		return nil, fmt.Errorf("%w: item %s is %s-tracked", apperrors.ErrWrongMeasurementType, productID, active.Kind)
	}

	if err := s.items.IncrementStock(ctx, productID, kind, amount); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error restocking item: %w", err)
	}

	return s.GetItemByID(ctx, productID)
}

// SetGlobalLimits overwrites the sign-out caps on every item unconditionally
func (s *itemServiceImpl) SetGlobalLimits(ctx context.Context, maxQuantity *int64, maxWeight *float64) (int64, error) {
	if maxQuantity == nil && maxWeight == nil {
		return 0, fmt.Errorf("%w: at least one limit must be provided", apperrors.ErrValidationFailed)
	}
	if maxQuantity != nil && *maxQuantity <= 0 {
		return 0, fmt.Errorf("%w: max sign-out quantity must be positive", apperrors.ErrValidationFailed)
	}
	if maxWeight != nil && *maxWeight <= 0 {
		return 0, fmt.Errorf("%w: max sign-out weight must be positive", apperrors.ErrValidationFailed)
	}

	affected, err := s.items.SetGlobalLimits(ctx, maxQuantity, maxWeight)
	if err != nil {
		return 0, fmt.Errorf("error setting global limits: %w", err)
	}
	return affected, nil
}

// lowStockFraction scores how critically low an item is: current stock as a
// fraction of the threshold for its measurement type. Lower is more urgent.
func lowStockFraction(item *models.Item, quantityThreshold int64, weightThreshold float64) float64 {
	stock := item.Stock()
	switch stock.Kind {
	case models.StockWeight:
		return stock.Weight / weightThreshold
	case models.StockQuantity:
		return float64(stock.Quantity) / float64(quantityThreshold)
	default:
		return 0
	}
}

// sortByLowStockFraction orders items most-critical first regardless of
// measurement type, with name as the tie-break.
func sortByLowStockFraction(items []*models.Item, quantityThreshold int64, weightThreshold float64) {
	sort.SliceStable(items, func(i, j int) bool {
		fi := lowStockFraction(items[i], quantityThreshold, weightThreshold)
		fj := lowStockFraction(items[j], quantityThreshold, weightThreshold)
		if fi != fj {
			return fi < fj
		}
		return items[i].ProductName < items[j].ProductName
	})
}

// LowStock reports items whose active stock is positive and at or below the
// applicable threshold, most critical first. Items at zero are out of
// stock, not low, and are excluded.
func (s *itemServiceImpl) LowStock(ctx context.Context, quantityThreshold *int64, weightThreshold *float64) ([]*models.Item, error) {
	qty := s.lowStockQuantity
	if quantityThreshold != nil {
		qty = *quantityThreshold
	}
	weight := s.lowStockWeight
	if weightThreshold != nil {
		weight = *weightThreshold
	}
	if qty <= 0 || weight <= 0 {
		return nil, fmt.Errorf("%w: thresholds must be positive", apperrors.ErrValidationFailed)
	}

	items, err := s.items.GetLowStockItems(ctx, qty, weight)
	if err != nil {
		return nil, fmt.Errorf("error retrieving low stock items: %w", err)
	}

	sortByLowStockFraction(items, qty, weight)
	return items, nil
}
