package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/pkg/logger"
)

// TransactionRepository handles the append-only transaction ledger. Rows are
// never updated or deleted.
type TransactionRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db Querier) *TransactionRepository {
	return &TransactionRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *TransactionRepository) WithTx(tx pgx.Tx) *TransactionRepository {
	return &TransactionRepository{db: tx, sb: r.sb}
}

// CreateTransaction appends one withdrawal record and returns its id. The
// user status must already be normalized by the caller.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn *models.Transaction) (int64, error) {
	sql, args, err := r.sb.Insert("transactions").
		Columns("user_id", "product_id", "quantity_taken", "user_status").
		Values(txn.UserID, txn.ProductID, txn.QuantityTaken, txn.UserStatus).
		Suffix("RETURNING transaction_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create transaction SQL")
		return 0, fmt.Errorf("failed to build create transaction query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("userID", txn.UserID).Str("productID", txn.ProductID).
			Msg("Error executing create transaction query")
		return 0, fmt.Errorf("error creating transaction: %w", err)
	}

	return id, nil
}

func (r *TransactionRepository) scanTransactions(rows pgx.Rows, withUsername bool) ([]*models.Transaction, error) {
	defer rows.Close()

	txns := []*models.Transaction{}
	for rows.Next() {
		txn := &models.Transaction{}
		dest := []any{
			&txn.TransactionID, &txn.UserID, &txn.ProductID, &txn.QuantityTaken,
			&txn.UserStatus, &txn.TakenAt, &txn.ProductName, &txn.ProductType,
		}
		if withUsername {
			dest = append(dest, &txn.Username)
		}
		if err := rows.Scan(dest...); err != nil {
			logger.Error().Err(err).Msg("Error scanning transaction row")
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating transaction rows")
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

// GetAllTransactions lists every transaction joined with item and user
// display fields, newest first.
func (r *TransactionRepository) GetAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	sql, args, err := r.sb.Select(
		"t.transaction_id", "t.user_id", "t.product_id", "t.quantity_taken",
		"t.user_status", "t.taken_at", "i.product_name", "i.type",
		"u.first_name || ' ' || u.last_name AS username",
	).
		From("transactions t").
		Join("items i ON t.product_id = i.product_id").
		Join("users u ON t.user_id = u.user_id").
		OrderBy("t.taken_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all transactions SQL")
		return nil, fmt.Errorf("failed to build get all transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all transactions query")
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}

	return r.scanTransactions(rows, true)
}

// GetTransactionsByUser lists one user's transactions, newest first
func (r *TransactionRepository) GetTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	sql, args, err := r.sb.Select(
		"t.transaction_id", "t.user_id", "t.product_id", "t.quantity_taken",
		"t.user_status", "t.taken_at", "i.product_name", "i.type",
	).
		From("transactions t").
		Join("items i ON t.product_id = i.product_id").
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.taken_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user transactions SQL")
		return nil, fmt.Errorf("failed to build get user transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing get user transactions query")
		return nil, fmt.Errorf("error querying user transactions: %w", err)
	}

	return r.scanTransactions(rows, false)
}

// GetItemTransactionCounts groups transactions per item and returns the
// counts ordered by count descending, then item name ascending. Ranking is
// assigned by the service layer.
func (r *TransactionRepository) GetItemTransactionCounts(ctx context.Context) ([]*models.ItemTransactionCount, error) {
	sql, args, err := r.sb.Select(
		"i.product_id", "i.product_name", "i.type",
		"COUNT(*) AS total_transactions",
	).
		From("transactions t").
		Join("items i ON t.product_id = i.product_id").
		GroupBy("i.product_id", "i.product_name", "i.type").
		OrderBy("total_transactions DESC", "i.product_name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building item transaction counts SQL")
		return nil, fmt.Errorf("failed to build item transaction counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing item transaction counts query")
		return nil, fmt.Errorf("error querying item transaction counts: %w", err)
	}
	defer rows.Close()

	counts := []*models.ItemTransactionCount{}
	for rows.Next() {
		c := &models.ItemTransactionCount{}
		if err := rows.Scan(&c.ProductID, &c.ProductName, &c.Type, &c.TotalTransactions); err != nil {
			logger.Error().Err(err).Msg("Error scanning item transaction count row")
			return nil, fmt.Errorf("error scanning item transaction count row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating item transaction count rows")
		return nil, fmt.Errorf("error iterating item transaction count rows: %w", err)
	}

	return counts, nil
}

// GetStatusUserCounts counts distinct participating users per stored
// (already normalized) user status.
func (r *TransactionRepository) GetStatusUserCounts(ctx context.Context) ([]*models.StatusUserCount, error) {
	sql, args, err := r.sb.Select("user_status", "COUNT(DISTINCT user_id) AS count").
		From("transactions").
		GroupBy("user_status").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building status user counts SQL")
		return nil, fmt.Errorf("failed to build status user counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing status user counts query")
		return nil, fmt.Errorf("error querying status user counts: %w", err)
	}
	defer rows.Close()

	counts := []*models.StatusUserCount{}
	for rows.Next() {
		c := &models.StatusUserCount{}
		if err := rows.Scan(&c.UserStatus, &c.Count); err != nil {
			logger.Error().Err(err).Msg("Error scanning status user count row")
			return nil, fmt.Errorf("error scanning status user count row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating status user count rows")
		return nil, fmt.Errorf("error iterating status user count rows: %w", err)
	}

	return counts, nil
}
