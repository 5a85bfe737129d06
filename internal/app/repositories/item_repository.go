package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/pkg/dberrors"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
)

// Item error types
var (
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = ErrNotFound
	// ErrItemAlreadyExists is returned when an item with the same product ID exists.
	ErrItemAlreadyExists = errors.New("item with this product ID already exists")
)

var itemColumns = []string{
	"product_id", "product_name", "description", "type", "vendor_id",
	"price_per_unit", "order_quantity", "weight_amount",
	"max_signout_quantity", "max_signout_weight",
}

// ItemRepository handles item database operations
type ItemRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db Querier) *ItemRepository {
	return &ItemRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ItemRepository) WithTx(tx pgx.Tx) *ItemRepository {
	return &ItemRepository{db: tx, sb: r.sb}
}

func scanItem(row pgx.Row) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(
		&item.ProductID, &item.ProductName, &item.Description, &item.Type,
		&item.VendorID, &item.PricePerUnit, &item.OrderQuantity, &item.WeightAmount,
		&item.MaxSignoutQuantity, &item.MaxSignoutWeight,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem inserts a new item with its caller-supplied product ID
func (r *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	sql, args, err := r.sb.Insert("items").
		Columns(itemColumns...).
		Values(
			item.ProductID, item.ProductName, item.Description, item.Type,
			item.VendorID, item.PricePerUnit, item.OrderQuantity, item.WeightAmount,
			item.MaxSignoutQuantity, item.MaxSignoutWeight,
		).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create item SQL")
		return fmt.Errorf("failed to build create item query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrItemAlreadyExists
		}
		logger.Error().Err(err).Str("productID", item.ProductID).Msg("Error executing create item query")
		return fmt.Errorf("error creating item: %w", err)
	}

	return nil
}

// GetItemByID retrieves an item by its product ID
func (r *ItemRepository) GetItemByID(ctx context.Context, productID string) (*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From("items").
		Where(squirrel.Eq{"product_id": productID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get item by ID SQL")
		return nil, fmt.Errorf("failed to build get item query: %w", err)
	}

	item, err := scanItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		logger.Error().Err(err).Str("productID", productID).Msg("Error scanning item row")
		return nil, fmt.Errorf("error getting item by ID: %w", err)
	}

	return item, nil
}

// GetAllItems retrieves all items, optionally filtered by owning vendor
func (r *ItemRepository) GetAllItems(ctx context.Context, vendorID *int64) ([]*models.Item, error) {
	builder := r.sb.Select(itemColumns...).
		From("items").
		OrderBy("product_name ASC")
	if vendorID != nil {
		builder = builder.Where(squirrel.Eq{"vendor_id": *vendorID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all items SQL")
		return nil, fmt.Errorf("failed to build get all items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all items query")
		return nil, fmt.Errorf("error querying items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning item row during get all")
			return nil, fmt.Errorf("error scanning item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating item rows")
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}

// UpdateItem replaces an item's mutable fields
func (r *ItemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	sql, args, err := r.sb.Update("items").
		SetMap(map[string]interface{}{
			"product_name":         item.ProductName,
			"description":          item.Description,
			"type":                 item.Type,
			"vendor_id":            item.VendorID,
			"price_per_unit":       item.PricePerUnit,
			"order_quantity":       item.OrderQuantity,
			"weight_amount":        item.WeightAmount,
			"max_signout_quantity": item.MaxSignoutQuantity,
			"max_signout_weight":   item.MaxSignoutWeight,
		}).
		Where(squirrel.Eq{"product_id": item.ProductID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update item SQL")
		return fmt.Errorf("failed to build update item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("productID", item.ProductID).Msg("Error executing update item query")
		return fmt.Errorf("error updating item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes an item by product ID
func (r *ItemRepository) DeleteItem(ctx context.Context, productID string) error {
	sql, args, err := r.sb.Delete("items").
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete item SQL")
		return fmt.Errorf("failed to build delete item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("productID", productID).Msg("Error executing delete item query")
		return fmt.Errorf("error deleting item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// stockColumn maps a stock kind to the column holding it.
func stockColumn(kind models.StockKind) string {
	if kind == models.StockWeight {
		return "weight_amount"
	}
	return "order_quantity"
}

// DecrementStock atomically subtracts amount from the item's active stock
// column. The WHERE clause re-checks sufficiency so two concurrent
// withdrawals cannot both succeed on the same stock; a false return means
// the guard failed (insufficient stock, possibly lost to a concurrent
// withdrawal).
func (r *ItemRepository) DecrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) (bool, error) {
	column := stockColumn(kind)
	sql, args, err := r.sb.Update("items").
		Set(column, squirrel.Expr(column+" - ?", amount)).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Expr(column+" >= ?", amount)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building decrement stock SQL")
		return false, fmt.Errorf("failed to build decrement stock query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("productID", productID).Msg("Error executing decrement stock query")
		return false, fmt.Errorf("error decrementing stock: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// IncrementStock adds amount to the item's stock column for the given kind.
// NULL is treated as zero so restocking a drained item works.
func (r *ItemRepository) IncrementStock(ctx context.Context, productID string, kind models.StockKind, amount float64) error {
	column := stockColumn(kind)
	sql, args, err := r.sb.Update("items").
		Set(column, squirrel.Expr("COALESCE("+column+", 0) + ?", amount)).
		Where(squirrel.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building increment stock SQL")
		return fmt.Errorf("failed to build increment stock query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("productID", productID).Msg("Error executing increment stock query")
		return fmt.Errorf("error incrementing stock: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// SetGlobalLimits overwrites the sign-out caps for every item in the store.
// Only the provided caps are written; at least one must be non-nil.
func (r *ItemRepository) SetGlobalLimits(ctx context.Context, maxQuantity *int64, maxWeight *float64) (int64, error) {
	update := map[string]interface{}{}
	if maxQuantity != nil {
		update["max_signout_quantity"] = *maxQuantity
	}
	if maxWeight != nil {
		update["max_signout_weight"] = *maxWeight
	}

	sql, args, err := r.sb.Update("items").SetMap(update).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set global limits SQL")
		return 0, fmt.Errorf("failed to build set global limits query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing set global limits query")
		return 0, fmt.Errorf("error setting global limits: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// GetLowStockItems returns items whose active stock is positive and at or
// below the threshold for their measurement type. Ordering by criticality
// is applied by the service layer.
func (r *ItemRepository) GetLowStockItems(ctx context.Context, quantityThreshold int64, weightThreshold float64) ([]*models.Item, error) {
	sql, args, err := r.sb.Select(itemColumns...).
		From("items").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Gt{"order_quantity": 0},
				squirrel.LtOrEq{"order_quantity": quantityThreshold},
			},
			squirrel.And{
				squirrel.Gt{"weight_amount": 0},
				squirrel.LtOrEq{"weight_amount": weightThreshold},
			},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building low stock SQL")
		return nil, fmt.Errorf("failed to build low stock query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing low stock query")
		return nil, fmt.Errorf("error querying low stock items: %w", err)
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning low stock item row")
			return nil, fmt.Errorf("error scanning low stock item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating low stock item rows")
		return nil, fmt.Errorf("error iterating low stock item rows: %w", err)
	}

	return items, nil
}

// GetDistinctTypes returns all non-null item types, sorted
func (r *ItemRepository) GetDistinctTypes(ctx context.Context) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT type").
		From("items").
		Where(squirrel.NotEq{"type": nil}).
		OrderBy("type ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building distinct types SQL")
		return nil, fmt.Errorf("failed to build distinct types query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing distinct types query")
		return nil, fmt.Errorf("error querying item types: %w", err)
	}
	defer rows.Close()

	types := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			logger.Error().Err(err).Msg("Error scanning item type row")
			return nil, fmt.Errorf("error scanning item type row: %w", err)
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating item type rows")
		return nil, fmt.Errorf("error iterating item type rows: %w", err)
	}

	return types, nil
}
