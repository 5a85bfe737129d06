package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

func quantityItem(id string, qty int64) *models.Item {
	return &models.Item{
		ProductID:     id,
		ProductName:   "Item " + id,
		VendorID:      1,
		OrderQuantity: int64Ptr(qty),
	}
}

func weightItem(id string, weight float64) *models.Item {
	return &models.Item{
		ProductID:    id,
		ProductName:  "Item " + id,
		VendorID:     1,
		WeightAmount: float64Ptr(weight),
	}
}

func newTestItemService(store *mockItemStore) ItemService {
	return NewItemService(store, ItemServiceOptions{})
}

func TestResolveStockRequest(t *testing.T) {
	tests := []struct {
		name     string
		quantity *int64
		weight   *float64
		wantKind models.StockKind
		wantAmt  float64
		wantErr  bool
	}{
		{"quantity only", int64Ptr(3), nil, models.StockQuantity, 3, false},
		{"weight only", nil, float64Ptr(1.5), models.StockWeight, 1.5, false},
		{"neither", nil, nil, models.StockNone, 0, true},
		{"both", int64Ptr(3), float64Ptr(1.5), models.StockNone, 0, true},
		{"zero quantity", int64Ptr(0), nil, models.StockNone, 0, true},
		{"negative weight", nil, float64Ptr(-2), models.StockNone, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, amount, err := resolveStockRequest(tt.quantity, tt.weight)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantAmt, amount)
		})
	}
}

func TestWithdrawQuantity(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 10), nil).Once()
	store.On("DecrementStock", mock.Anything, "RICE-5LB", models.StockQuantity, float64(4)).
		Return(true, nil).Once()
	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 6), nil).Once()

	result, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(4)})
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Before.Quantity)
	assert.Equal(t, int64(6), result.After.Quantity)
	assert.Equal(t, models.StockQuantity, result.Before.Kind)
	require.NotNil(t, result.Item.OrderQuantity)
	assert.Equal(t, int64(6), *result.Item.OrderQuantity)
	store.AssertExpectations(t)
}

func TestWithdrawWrongMeasurementType(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "LENTILS").
		Return(weightItem("LENTILS", 12.5), nil).Once()

	_, err := svc.Withdraw(context.Background(), "LENTILS", StockRequest{Quantity: int64Ptr(2)})
	assert.ErrorIs(t, err, apperrors.ErrWrongMeasurementType)
	store.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawInsufficientStock(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 3), nil).Once()

	_, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(4)})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestWithdrawExactStockToZero(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 3), nil).Once()
	store.On("DecrementStock", mock.Anything, "RICE-5LB", models.StockQuantity, float64(3)).
		Return(true, nil).Once()
	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 0), nil).Once()

	result, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.After.Quantity)
}

func TestWithdrawLostRace(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	// Snapshot says enough stock, but the conditional update loses to a
	// concurrent withdrawal.
	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 5), nil).Once()
	store.On("DecrementStock", mock.Anything, "RICE-5LB", models.StockQuantity, float64(5)).
		Return(false, nil).Once()

	_, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(5)})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestWithdrawItemNotFound(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "MISSING").
		Return(nil, repositories.ErrNotFound).Once()

	_, err := svc.Withdraw(context.Background(), "MISSING", StockRequest{Quantity: int64Ptr(1)})
	assert.ErrorIs(t, err, apperrors.ErrItemNotFound)
}

func TestWithdrawSignoutLimitEnforced(t *testing.T) {
	store := new(mockItemStore)
	svc := NewItemService(store, ItemServiceOptions{EnforceSignoutLimits: true})

	item := quantityItem("RICE-5LB", 50)
	item.MaxSignoutQuantity = int64Ptr(2)
	store.On("GetItemByID", mock.Anything, "RICE-5LB").Return(item, nil).Once()

	_, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(3)})
	assert.ErrorIs(t, err, apperrors.ErrSignoutLimitExceeded)
}

func TestWithdrawSignoutLimitIgnoredByDefault(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	item := quantityItem("RICE-5LB", 50)
	item.MaxSignoutQuantity = int64Ptr(2)
	store.On("GetItemByID", mock.Anything, "RICE-5LB").Return(item, nil).Once()
	store.On("DecrementStock", mock.Anything, "RICE-5LB", models.StockQuantity, float64(3)).
		Return(true, nil).Once()
	store.On("GetItemByID", mock.Anything, "RICE-5LB").
		Return(quantityItem("RICE-5LB", 47), nil).Once()

	_, err := svc.Withdraw(context.Background(), "RICE-5LB", StockRequest{Quantity: int64Ptr(3)})
	assert.NoError(t, err)
}

func TestWithdrawWeightFractional(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "LENTILS").
		Return(weightItem("LENTILS", 2.5), nil).Once()
	store.On("DecrementStock", mock.Anything, "LENTILS", models.StockWeight, 1.25).
		Return(true, nil).Once()
	store.On("GetItemByID", mock.Anything, "LENTILS").
		Return(weightItem("LENTILS", 1.25), nil).Once()

	result, err := svc.Withdraw(context.Background(), "LENTILS", StockRequest{Weight: float64Ptr(1.25)})
	require.NoError(t, err)
	assert.Equal(t, 2.5, result.Before.Weight)
	assert.Equal(t, 1.25, result.After.Weight)
}

func TestRestockWrongKind(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("GetItemByID", mock.Anything, "LENTILS").
		Return(weightItem("LENTILS", 3), nil).Once()

	_, err := svc.Restock(context.Background(), "LENTILS", StockRequest{Quantity: int64Ptr(5)})
	assert.ErrorIs(t, err, apperrors.ErrWrongMeasurementType)
}

func TestRestockZeroStockItemAcceptsEitherKind(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	// Both stock columns at zero/null: the item has no active
	// representation, so a restock establishes one.
	item := &models.Item{ProductID: "NEW", ProductName: "New", VendorID: 1}
	store.On("GetItemByID", mock.Anything, "NEW").Return(item, nil).Once()
	store.On("IncrementStock", mock.Anything, "NEW", models.StockWeight, 4.0).Return(nil).Once()
	store.On("GetItemByID", mock.Anything, "NEW").Return(weightItem("NEW", 4), nil).Once()

	updated, err := svc.Restock(context.Background(), "NEW", StockRequest{Weight: float64Ptr(4)})
	require.NoError(t, err)
	require.NotNil(t, updated.WeightAmount)
	assert.Equal(t, 4.0, *updated.WeightAmount)
}

func TestSetGlobalLimitsRequiresAField(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	_, err := svc.SetGlobalLimits(context.Background(), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	store.AssertNotCalled(t, "SetGlobalLimits", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetGlobalLimitsReportsAffectedRows(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("SetGlobalLimits", mock.Anything, int64Ptr(5), (*float64)(nil)).
		Return(int64(12), nil).Once()

	affected, err := svc.SetGlobalLimits(context.Background(), int64Ptr(5), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), affected)
}

func TestCreateItemRejectsBothStockKinds(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	item := quantityItem("DUAL", 5)
	item.WeightAmount = float64Ptr(2)

	err := svc.CreateItem(context.Background(), item)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateItemDuplicate(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	store.On("CreateItem", mock.Anything, mock.Anything).
		Return(repositories.ErrItemAlreadyExists).Once()

	err := svc.CreateItem(context.Background(), quantityItem("RICE-5LB", 10))
	assert.ErrorIs(t, err, apperrors.ErrItemAlreadyExists)
}

func TestLowStockOrdering(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	// Quantity threshold 5, weight threshold 10. Fractions: beans 1/5=0.2,
	// flour 8/10=0.8, oats 2/10=0.2 (ties with beans, name breaks it).
	beans := quantityItem("BEANS", 1)
	beans.ProductName = "Beans"
	flour := weightItem("FLOUR", 8)
	flour.ProductName = "Flour"
	oats := weightItem("OATS", 2)
	oats.ProductName = "Oats"

	store.On("GetLowStockItems", mock.Anything, int64(5), float64(10)).
		Return([]*models.Item{flour, beans, oats}, nil).Once()

	items, err := svc.LowStock(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Beans", items[0].ProductName)
	assert.Equal(t, "Oats", items[1].ProductName)
	assert.Equal(t, "Flour", items[2].ProductName)
}

func TestLowStockRejectsNonPositiveThreshold(t *testing.T) {
	store := new(mockItemStore)
	svc := newTestItemService(store)

	_, err := svc.LowStock(context.Background(), int64Ptr(0), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
