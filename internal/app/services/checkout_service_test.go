package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
)

// The transactional path needs a live database; only the up-front
// validation is covered here.

func TestCheckoutRequiresUserID(t *testing.T) {
	svc := NewCheckoutService(nil, nil, nil, nil, false)

	_, err := svc.Checkout(context.Background(), "  ", []dto.CheckoutLine{
		{ProductID: "RICE-5LB", Quantity: int64Ptr(1)},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCheckoutRequiresLines(t *testing.T) {
	svc := NewCheckoutService(nil, nil, nil, nil, false)

	_, err := svc.Checkout(context.Background(), "JD12345", nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
