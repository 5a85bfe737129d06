package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/retriever-essentials/pantry/internal/app/models"
)

type mockItemStore struct {
	mock.Mock
}

func (m *mockItemStore) CreateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemStore) GetItemByID(ctx context.Context, productID string) (*models.Item, error) {
	args := m.Called(ctx, productID)
	if item := args.Get(0); item != nil {
		return item.(*models.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemStore) GetAllItems(ctx context.Context, vendorID *int64) ([]*models.Item, error) {
	args := m.Called(ctx, vendorID)
	if items := args.Get(0); items != nil {
		return items.([]*models.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemStore) UpdateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemStore) DeleteItem(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *mockItemStore) DecrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) (bool, error) {
	args := m.Called(ctx, productID, kind, amount)
	return args.Bool(0), args.Error(1)
}

func (m *mockItemStore) IncrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) error {
	args := m.Called(ctx, productID, kind, amount)
	return args.Error(0)
}

func (m *mockItemStore) SetGlobalLimits(ctx context.Context, maxQuantity *int64, maxWeight *float64) (int64, error) {
	args := m.Called(ctx, maxQuantity, maxWeight)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemStore) GetLowStockItems(ctx context.Context, quantityThreshold int64, weightThreshold float64) ([]*models.Item, error) {
	args := m.Called(ctx, quantityThreshold, weightThreshold)
	if items := args.Get(0); items != nil {
		return items.([]*models.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemStore) GetDistinctTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if types := args.Get(0); types != nil {
		return types.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockVendorStore struct {
	mock.Mock
}

func (m *mockVendorStore) CreateVendor(ctx context.Context, vendor *models.Vendor) (int64, error) {
	args := m.Called(ctx, vendor)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVendorStore) GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if vendor := args.Get(0); vendor != nil {
		return vendor.(*models.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorStore) GetAllVendors(ctx context.Context) ([]*models.Vendor, error) {
	args := m.Called(ctx)
	if vendors := args.Get(0); vendors != nil {
		return vendors.([]*models.Vendor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVendorStore) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *mockVendorStore) DeleteVendor(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVendorStore) CountVendorItems(ctx context.Context, vendorID int64) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTransactionStore struct {
	mock.Mock
}

func (m *mockTransactionStore) CreateTransaction(ctx context.Context, txn *models.Transaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionStore) GetAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	if txns := args.Get(0); txns != nil {
		return txns.([]*models.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionStore) GetTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	args := m.Called(ctx, userID)
	if txns := args.Get(0); txns != nil {
		return txns.([]*models.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionStore) GetItemTransactionCounts(ctx context.Context) ([]*models.ItemTransactionCount, error) {
	args := m.Called(ctx)
	if counts := args.Get(0); counts != nil {
		return counts.([]*models.ItemTransactionCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTransactionStore) GetStatusUserCounts(ctx context.Context) ([]*models.StatusUserCount, error) {
	args := m.Called(ctx)
	if counts := args.Get(0); counts != nil {
		return counts.([]*models.StatusUserCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
