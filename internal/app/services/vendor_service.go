package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

// VendorStore is the vendor persistence surface the service needs.
type VendorStore interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) (int64, error)
	GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error)
	GetAllVendors(ctx context.Context) ([]*models.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *models.Vendor) error
	DeleteVendor(ctx context.Context, id int64) error
	CountVendorItems(ctx context.Context, vendorID int64) (int64, error)
}

// VendorService defines the interface for vendor-related operations
type VendorService interface {
	CreateVendor(ctx context.Context, vendor *models.Vendor) (int64, error)
	GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error)
	GetAllVendors(ctx context.Context) ([]*models.Vendor, error)
	GetVendorItems(ctx context.Context, id int64) ([]*models.Item, error)
	UpdateVendor(ctx context.Context, vendor *models.Vendor) error
	DeleteVendor(ctx context.Context, id int64) error
}

// vendorServiceImpl implements the VendorService interface
type vendorServiceImpl struct {
	vendors VendorStore
	items   ItemStore
}

// NewVendorService creates a new vendor service instance
func NewVendorService(vendors VendorStore, items ItemStore) VendorService {
	return &vendorServiceImpl{
		vendors: vendors,
		items:   items,
	}
}

// validateVendor validates vendor data before database operations
func validateVendor(vendor *models.Vendor) error {
	if vendor == nil {
		return fmt.Errorf("%w: vendor is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(vendor.VendorName) == "" {
		return fmt.Errorf("%w: vendor name is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateVendor creates a new vendor
func (s *vendorServiceImpl) CreateVendor(ctx context.Context, vendor *models.Vendor) (int64, error) {
	if err := validateVendor(vendor); err != nil {
		return 0, err
	}
	vendor.VendorName = strings.TrimSpace(vendor.VendorName)

	id, err := s.vendors.CreateVendor(ctx, vendor)
	if err != nil {
		return 0, fmt.Errorf("error creating vendor: %w", err)
	}
	return id, nil
}

// GetVendorByID retrieves a vendor by ID
func (s *vendorServiceImpl) GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid vendor ID", apperrors.ErrValidationFailed)
	}

	vendor, err := s.vendors.GetVendorByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, fmt.Errorf("error retrieving vendor: %w", err)
	}
	return vendor, nil
}

// GetAllVendors retrieves all vendors
func (s *vendorServiceImpl) GetAllVendors(ctx context.Context) ([]*models.Vendor, error) {
	vendors, err := s.vendors.GetAllVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vendors: %w", err)
	}
	return vendors, nil
}

// GetVendorItems lists the items a vendor owns, verifying the vendor exists
func (s *vendorServiceImpl) GetVendorItems(ctx context.Context, id int64) ([]*models.Item, error) {
	if _, err := s.GetVendorByID(ctx, id); err != nil {
		return nil, err
	}

	items, err := s.items.GetAllItems(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving vendor items: %w", err)
	}
	return items, nil
}

// UpdateVendor updates an existing vendor
func (s *vendorServiceImpl) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	if err := validateVendor(vendor); err != nil {
		return err
	}
	if vendor.VendorID <= 0 {
		return fmt.Errorf("%w: invalid vendor ID", apperrors.ErrValidationFailed)
	}

	if err := s.vendors.UpdateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return fmt.Errorf("error updating vendor: %w", err)
	}
	return nil
}

// DeleteVendor deletes a vendor. Vendors still owning items cannot be
// deleted; the error carries the item count so the caller can explain.
func (s *vendorServiceImpl) DeleteVendor(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid vendor ID", apperrors.ErrValidationFailed)
	}

	err := s.vendors.DeleteVendor(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrVendorHasItems) {
			count, countErr := s.vendors.CountVendorItems(ctx, id)
			if countErr != nil {
				count = 0
			}
			return apperrors.NewCustomError(apperrors.ErrVendorHasItems,
				fmt.Sprintf("This vendor has %d items associated with it. Please remove or reassign these items before deleting the vendor.", count))
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrVendorNotFound
		}
		return fmt.Errorf("error deleting vendor: %w", err)
	}
	return nil
}
