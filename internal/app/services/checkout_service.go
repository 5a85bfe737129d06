package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/db"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

// CheckoutService performs withdrawal plus recording for a whole cart
// atomically. Unlike the legacy two-call flow, a failure on any line rolls
// back the entire batch: no stock is decremented without a matching record.
type CheckoutService interface {
	Checkout(ctx context.Context, userID string, lines []dto.CheckoutLine) ([]int64, error)
}

// checkoutServiceImpl implements the CheckoutService interface
type checkoutServiceImpl struct {
	db                   *db.PostgresDB
	items                *repositories.ItemRepository
	users                *repositories.UserRepository
	transactions         *repositories.TransactionRepository
	enforceSignoutLimits bool
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	database *db.PostgresDB,
	items *repositories.ItemRepository,
	users *repositories.UserRepository,
	transactions *repositories.TransactionRepository,
	enforceSignoutLimits bool,
) CheckoutService {
	return &checkoutServiceImpl{
		db:                   database,
		items:                items,
		users:                users,
		transactions:         transactions,
		enforceSignoutLimits: enforceSignoutLimits,
	}
}

// Checkout runs every cart line inside one database transaction. Each line
// is validated, its stock decremented via the conditional update, and a
// ledger row appended; the first failing line aborts and rolls back all
// prior lines.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID string, lines []dto.CheckoutLine) ([]int64, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", apperrors.ErrValidationFailed)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: at least one cart line is required", apperrors.ErrValidationFailed)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if strings.TrimSpace(user.Status) == "" {
		return nil, apperrors.ErrMissingStatus
	}
	status := models.NormalizeStatus(user.Status)

	ids := make([]int64, 0, len(lines))
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		items := s.items.WithTx(tx)
		transactions := s.transactions.WithTx(tx)

		for _, line := range lines {
			kind, amount, err := resolveStockRequest(line.Quantity, line.Weight)
			if err != nil {
				return err
			}

			item, err := items.GetItemByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return apperrors.NewCustomError(apperrors.ErrItemNotFound,
						fmt.Sprintf("item %s not found", line.ProductID))
				}
				return fmt.Errorf("error looking up item %s: %w", line.ProductID, err)
			}

			if err := validateWithdrawal(item, kind, amount, s.enforceSignoutLimits); err != nil {
				return err
			}

			ok, err := items.DecrementStock(ctx, line.ProductID, kind, amount)
			if err != nil {
				return fmt.Errorf("error withdrawing stock for item %s: %w", line.ProductID, err)
			}
			if !ok {
				return fmt.Errorf("%w: item %s", apperrors.ErrInsufficientStock, line.ProductID)
			}

			id, err := transactions.CreateTransaction(ctx, &models.Transaction{
				UserID:        userID,
				ProductID:     line.ProductID,
				QuantityTaken: amount,
				UserStatus:    status,
			})
			if err != nil {
				return fmt.Errorf("error recording withdrawal for item %s: %w", line.ProductID, err)
			}
			ids = append(ids, id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}
