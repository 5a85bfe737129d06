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

func TestCreateVendorRequiresName(t *testing.T) {
	vendors := new(mockVendorStore)
	svc := NewVendorService(vendors, new(mockItemStore))

	_, err := svc.CreateVendor(context.Background(), &models.Vendor{VendorName: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	vendors.AssertNotCalled(t, "CreateVendor", mock.Anything, mock.Anything)
}

func TestCreateVendorTrimsName(t *testing.T) {
	vendors := new(mockVendorStore)
	svc := NewVendorService(vendors, new(mockItemStore))

	vendors.On("CreateVendor", mock.Anything, mock.MatchedBy(func(v *models.Vendor) bool {
		return v.VendorName == "Food Depot"
	})).Return(int64(3), nil).Once()

	id, err := svc.CreateVendor(context.Background(), &models.Vendor{VendorName: "  Food Depot  "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestDeleteVendorBlockedByItems(t *testing.T) {
	vendors := new(mockVendorStore)
	svc := NewVendorService(vendors, new(mockItemStore))

	vendors.On("DeleteVendor", mock.Anything, int64(7)).
		Return(repositories.ErrVendorHasItems).Once()
	vendors.On("CountVendorItems", mock.Anything, int64(7)).
		Return(int64(4), nil).Once()

	err := svc.DeleteVendor(context.Background(), 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrVendorHasItems)
	assert.Contains(t, err.Error(), "4 items")
}

func TestDeleteVendorNotFound(t *testing.T) {
	vendors := new(mockVendorStore)
	svc := NewVendorService(vendors, new(mockItemStore))

	vendors.On("DeleteVendor", mock.Anything, int64(9)).
		Return(repositories.ErrNotFound).Once()

	err := svc.DeleteVendor(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)
}

func TestGetVendorItemsChecksVendorExists(t *testing.T) {
	vendors := new(mockVendorStore)
	items := new(mockItemStore)
	svc := NewVendorService(vendors, items)

	vendors.On("GetVendorByID", mock.Anything, int64(5)).
		Return(nil, repositories.ErrNotFound).Once()

	_, err := svc.GetVendorItems(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrVendorNotFound)
	items.AssertNotCalled(t, "GetAllItems", mock.Anything, mock.Anything)
}

func TestGetVendorItemsFiltersByVendor(t *testing.T) {
	vendors := new(mockVendorStore)
	items := new(mockItemStore)
	svc := NewVendorService(vendors, items)

	vendorID := int64(5)
	vendors.On("GetVendorByID", mock.Anything, vendorID).
		Return(&models.Vendor{VendorID: vendorID, VendorName: "Food Depot"}, nil).Once()
	items.On("GetAllItems", mock.Anything, &vendorID).
		Return([]*models.Item{quantityItem("RICE-5LB", 10)}, nil).Once()

	got, err := svc.GetVendorItems(context.Background(), vendorID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "RICE-5LB", got[0].ProductID)
}
