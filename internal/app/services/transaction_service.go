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

// DefaultMostTakenLimit is the rank cutoff for the most-taken report.
const DefaultMostTakenLimit int64 = 10

// TransactionStore is the ledger persistence surface the service needs.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) (int64, error)
	GetAllTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error)
	GetItemTransactionCounts(ctx context.Context) ([]*models.ItemTransactionCount, error)
	GetStatusUserCounts(ctx context.Context) ([]*models.StatusUserCount, error)
}

// TransactionService defines recording and reporting over the withdrawal
// ledger.
type TransactionService interface {
	RecordWithdrawal(ctx context.Context, userID, productID string, amount float64) (int64, error)
	GetAllTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error)
	MostTaken(ctx context.Context, limit *int64) ([]*models.ItemTransactionCount, error)
	StatusCounts(ctx context.Context) (undergraduate, graduate int64, err error)
}

// transactionServiceImpl implements the TransactionService interface
type transactionServiceImpl struct {
	transactions TransactionStore
	users        UserStore
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService(transactions TransactionStore, users UserStore) TransactionService {
	return &transactionServiceImpl{
		transactions: transactions,
		users:        users,
	}
}

// RecordWithdrawal appends one immutable withdrawal record. The user's
// status is snapshotted lower-cased so aggregate queries can group
// case-insensitively. Stock sufficiency is not re-checked here; the caller
// is expected to have performed a successful withdrawal first.
func (s *transactionServiceImpl) RecordWithdrawal(ctx context.Context, userID, productID string, amount float64) (int64, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(productID) == "" {
		return 0, fmt.Errorf("%w: user_id and product_id are required", apperrors.ErrValidationFailed)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: quantity_taken must be positive", apperrors.ErrValidationFailed)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error looking up user: %w", err)
	}

	if strings.TrimSpace(user.Status) == "" {
		return 0, apperrors.ErrMissingStatus
	}

	id, err := s.transactions.CreateTransaction(ctx, &models.Transaction{
		UserID:        userID,
		ProductID:     productID,
		QuantityTaken: amount,
		UserStatus:    models.NormalizeStatus(user.Status),
	})
	if err != nil {
		return 0, fmt.Errorf("error recording withdrawal: %w", err)
	}

	return id, nil
}

// GetAllTransactions lists every transaction, newest first
func (s *transactionServiceImpl) GetAllTransactions(ctx context.Context) ([]*models.Transaction, error) {
	txns, err := s.transactions.GetAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving transactions: %w", err)
	}
	return txns, nil
}

// GetTransactionsByUser lists one user's transactions, newest first
func (s *transactionServiceImpl) GetTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	txns, err := s.transactions.GetTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user transactions: %w", err)
	}
	return txns, nil
}

// assignRanks applies standard competition ranking to counts already sorted
// by count descending: tied counts share a rank, and the next distinct
// count's rank equals the number of strictly higher-ranked rows plus one.
func assignRanks(counts []*models.ItemTransactionCount) {
	for i, c := range counts {
		if i > 0 && c.TotalTransactions == counts[i-1].TotalTransactions {
			c.Ranking = counts[i-1].Ranking
		} else {
			c.Ranking = int64(i + 1)
		}
	}
}

// MostTaken ranks items by transaction count and returns every item with
// rank at or below the limit, names ascending within ties.
func (s *transactionServiceImpl) MostTaken(ctx context.Context, limit *int64) ([]*models.ItemTransactionCount, error) {
	cutoff := DefaultMostTakenLimit
	if limit != nil {
		if *limit <= 0 {
			return nil, fmt.Errorf("%w: limit must be positive", apperrors.ErrValidationFailed)
		}
		cutoff = *limit
	}

	counts, err := s.transactions.GetItemTransactionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving most taken items: %w", err)
	}

	assignRanks(counts)

	ranked := []*models.ItemTransactionCount{}
	for _, c := range counts {
		if c.Ranking <= cutoff {
			ranked = append(ranked, c)
		}
	}
	return ranked, nil
}

// StatusCounts returns distinct participating users for the two named
// statuses. Other status values are grouped by the query but not surfaced.
func (s *transactionServiceImpl) StatusCounts(ctx context.Context) (undergraduate, graduate int64, err error) {
	counts, err := s.transactions.GetStatusUserCounts(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("error retrieving status counts: %w", err)
	}

	for _, c := range counts {
		switch models.NormalizeStatus(c.UserStatus) {
		case models.StatusUndergraduate:
			undergraduate = c.Count
		case models.StatusGraduate:
			graduate = c.Count
		}
	}
	return undergraduate, graduate, nil
}
