package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/app/services"
	"github.com/retriever-essentials/pantry/internal/middleware"
)

// TransactionController handles the withdrawal ledger and its reports
type TransactionController struct {
	transactionService services.TransactionService
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactionService services.TransactionService) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// CreateTransaction records a withdrawal that already happened. Stock is
// not touched here; callers decrement via the items endpoints first, or use
// checkout to do both atomically.
func (c *TransactionController) CreateTransaction(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid transaction data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	id, err := c.transactionService.RecordWithdrawal(ctx, req.UserID, req.ProductID, req.QuantityTaken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Message:       "Transaction recorded successfully",
		TransactionID: id,
	})
}

// GetAllTransactions lists the full ledger, newest first
func (c *TransactionController) GetAllTransactions(ctx *gin.Context) {
	txns, err := c.transactionService.GetAllTransactions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, txns)
}

// GetTransactionsByUser lists one user's withdrawals, newest first
func (c *TransactionController) GetTransactionsByUser(ctx *gin.Context) {
	txns, err := c.transactionService.GetTransactionsByUser(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, txns)
}

// MostTaken reports the most frequently withdrawn items with competition
// ranking. Ties share a rank and everything tied at the cutoff is included,
// so the result may exceed the limit.
func (c *TransactionController) MostTaken(ctx *gin.Context) {
	var limit *int64
	if raw := ctx.Query("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			ctx.JSON(http.StatusBadRequest,
				dto.NewErrorResponse("Invalid limit").WithDetails("limit must be a positive number"))
			return
		}
		limit = &v
	}

	counts, err := c.transactionService.MostTaken(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// StatusCounts reports how many distinct undergraduates and graduates have
// withdrawn at least once.
func (c *TransactionController) StatusCounts(ctx *gin.Context) {
	undergraduate, graduate, err := c.transactionService.StatusCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusCountsResponse{
		UndergraduateCount: undergraduate,
		GraduateCount:      graduate,
	})
}
