package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/app/services"
	"github.com/retriever-essentials/pantry/internal/middleware"
)

// CheckoutController handles atomic cart checkout
type CheckoutController struct {
	checkoutService services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(checkoutService services.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// Checkout withdraws and records every cart line in one database
// transaction. If any line fails, nothing is withdrawn.
func (c *CheckoutController) Checkout(ctx *gin.Context) {
	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid checkout data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	ids, err := c.checkoutService.Checkout(ctx, req.UserID, req.Lines)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CheckoutResponse{
		Message:        "Checkout completed successfully",
		TransactionIDs: ids,
	})
}
