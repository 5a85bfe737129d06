package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
)

// Vendor error types
var (
	// ErrVendorNotFound is returned when a vendor is not found.
	ErrVendorNotFound = ErrNotFound
	// ErrVendorHasItems is returned when trying to delete a vendor that owns items.
	ErrVendorHasItems = errors.New("vendor has associated items and cannot be deleted")
)

var vendorColumns = []string{
	"vendor_id", "vendor_name", "contact_person", "address", "phone", "email",
}

// VendorRepository handles vendor database operations
type VendorRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(db Querier) *VendorRepository {
	return &VendorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanVendor(row pgx.Row) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	err := row.Scan(
		&vendor.VendorID, &vendor.VendorName, &vendor.ContactPerson,
		&vendor.Address, &vendor.Phone, &vendor.Email,
	)
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// CreateVendor creates a new vendor and returns its generated id
func (r *VendorRepository) CreateVendor(ctx context.Context, vendor *models.Vendor) (int64, error) {
	sql, args, err := r.sb.Insert("vendors").
		Columns("vendor_name", "contact_person", "address", "phone", "email").
		Values(vendor.VendorName, vendor.ContactPerson, vendor.Address, vendor.Phone, vendor.Email).
		Suffix("RETURNING vendor_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create vendor SQL")
		return 0, fmt.Errorf("failed to build create vendor query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create vendor query")
		return 0, fmt.Errorf("error creating vendor: %w", err)
	}

	return id, nil
}

// GetVendorByID retrieves a vendor by ID
func (r *VendorRepository) GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	sql, args, err := r.sb.Select(vendorColumns...).
		From("vendors").
		Where(squirrel.Eq{"vendor_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get vendor by ID SQL")
		return nil, fmt.Errorf("failed to build get vendor query: %w", err)
	}

	vendor, err := scanVendor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		logger.Error().Err(err).Int64("vendorID", id).Msg("Error scanning vendor row")
		return nil, fmt.Errorf("error getting vendor by ID: %w", err)
	}

	return vendor, nil
}

// GetAllVendors retrieves all vendors
func (r *VendorRepository) GetAllVendors(ctx context.Context) ([]*models.Vendor, error) {
	sql, args, err := r.sb.Select(vendorColumns...).
		From("vendors").
		OrderBy("vendor_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all vendors SQL")
		return nil, fmt.Errorf("failed to build get all vendors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all vendors query")
		return nil, fmt.Errorf("error querying vendors: %w", err)
	}
	defer rows.Close()

	vendors := []*models.Vendor{}
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning vendor row during get all")
			return nil, fmt.Errorf("error scanning vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating vendor rows")
		return nil, fmt.Errorf("error iterating vendor rows: %w", err)
	}

	return vendors, nil
}

// UpdateVendor updates an existing vendor
func (r *VendorRepository) UpdateVendor(ctx context.Context, vendor *models.Vendor) error {
	sql, args, err := r.sb.Update("vendors").
		SetMap(map[string]interface{}{
			"vendor_name":    vendor.VendorName,
			"contact_person": vendor.ContactPerson,
			"address":        vendor.Address,
			"phone":          vendor.Phone,
			"email":          vendor.Email,
		}).
		Where(squirrel.Eq{"vendor_id": vendor.VendorID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update vendor SQL")
		return fmt.Errorf("failed to build update vendor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("vendorID", vendor.VendorID).Msg("Error executing update vendor query")
		return fmt.Errorf("error updating vendor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrVendorNotFound
	}

	return nil
}

// CountVendorItems returns how many items a vendor owns
func (r *VendorRepository) CountVendorItems(ctx context.Context, vendorID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("items").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count vendor items SQL")
		return 0, fmt.Errorf("failed to build count vendor items query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("vendorID", vendorID).Msg("Error counting vendor items")
		return 0, fmt.Errorf("error counting vendor items: %w", err)
	}

	return count, nil
}

// DeleteVendor deletes a vendor by ID. Deletion is blocked while the vendor
// still owns items.
func (r *VendorRepository) DeleteVendor(ctx context.Context, id int64) error {
	count, err := r.CountVendorItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrVendorHasItems
	}

	sql, args, err := r.sb.Delete("vendors").
		Where(squirrel.Eq{"vendor_id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete vendor SQL")
		return fmt.Errorf("failed to build delete vendor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("vendorID", id).Msg("Error executing delete vendor query")
		return fmt.Errorf("error deleting vendor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Vendor not found (might have been deleted between check and delete)
		return ErrVendorNotFound
	}

	return nil
}
