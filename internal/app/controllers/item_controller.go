package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/app/services"
	"github.com/retriever-essentials/pantry/internal/middleware"
)

// ItemController handles item catalog and stock-ledger operations
type ItemController struct {
	itemService services.ItemService
}

// NewItemController creates a new ItemController
func NewItemController(itemService services.ItemService) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

// CreateItem handles item creation
func (c *ItemController) CreateItem(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid item data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	item := &models.Item{
		ProductID:          req.ProductID,
		ProductName:        req.ProductName,
		Description:        req.Description,
		Type:               req.Type,
		VendorID:           req.VendorID,
		PricePerUnit:       req.PricePerUnit,
		OrderQuantity:      req.OrderQuantity,
		WeightAmount:       req.WeightAmount,
		MaxSignoutQuantity: req.MaxSignoutQuantity,
		MaxSignoutWeight:   req.MaxSignoutWeight,
	}

	if err := c.itemService.CreateItem(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateItemResponse{
		Message: "Item created successfully",
		ID:      item.ProductID,
		Item:    item,
	})
}

// GetItemByID retrieves a single item by its product ID
func (c *ItemController) GetItemByID(ctx *gin.Context) {
	item, err := c.itemService.GetItemByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// ListItems retrieves the full catalog, optionally filtered by vendor
func (c *ItemController) ListItems(ctx *gin.Context) {
	var vendorID *int64
	if raw := ctx.Query("vendor_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest,
				dto.NewErrorResponse("Invalid vendor ID").WithDetails("vendor_id must be a valid number"))
			return
		}
		vendorID = &id
	}

	items, err := c.itemService.ListItems(ctx, vendorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// ListTypes retrieves the distinct item categories in the catalog
func (c *ItemController) ListTypes(ctx *gin.Context) {
	types, err := c.itemService.ListTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// UpdateItem replaces an item's mutable fields
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid item data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	item := &models.Item{
		ProductID:          ctx.Param("id"),
		ProductName:        req.ProductName,
		Description:        req.Description,
		Type:               req.Type,
		VendorID:           req.VendorID,
		PricePerUnit:       req.PricePerUnit,
		OrderQuantity:      req.OrderQuantity,
		WeightAmount:       req.WeightAmount,
		MaxSignoutQuantity: req.MaxSignoutQuantity,
		MaxSignoutWeight:   req.MaxSignoutWeight,
	}

	if err := c.itemService.UpdateItem(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteItem removes an item from the catalog
func (c *ItemController) DeleteItem(ctx *gin.Context) {
	if err := c.itemService.DeleteItem(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted successfully"})
}

// Withdraw decrements an item's stock by the requested quantity or weight
func (c *ItemController) Withdraw(ctx *gin.Context) {
	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid withdrawal request").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	result, err := c.itemService.Withdraw(ctx, ctx.Param("id"), services.StockRequest{
		Quantity: req.Quantity,
		Weight:   req.Weight,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WithdrawResponse{
		Message:     "Stock withdrawn successfully",
		UpdatedItem: result.Item,
		Before:      result.Before,
		After:       result.After,
	})
}

// Restock adds supply to an existing item
func (c *ItemController) Restock(ctx *gin.Context) {
	var req dto.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid restock request").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	item, err := c.itemService.Restock(ctx, ctx.Param("id"), services.StockRequest{
		Quantity: req.Quantity,
		Weight:   req.Weight,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RestockResponse{
		Message:     "Stock replenished successfully",
		UpdatedItem: item,
	})
}

// SetGlobalLimits overwrites the sign-out caps across the whole catalog
func (c *ItemController) SetGlobalLimits(ctx *gin.Context) {
	var req dto.GlobalLimitsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid limits request").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	affected, err := c.itemService.SetGlobalLimits(ctx, req.MaxSignoutQuantity, req.MaxSignoutWeight)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AffectedRowsResponse{
		Message:      "Global sign-out limits updated",
		AffectedRows: affected,
	})
}

// LowStock lists items whose stock is at or below the threshold for their
// measurement type, most depleted first.
func (c *ItemController) LowStock(ctx *gin.Context) {
	var quantityThreshold *int64
	var weightThreshold *float64

	if raw := ctx.Query("quantity"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			ctx.JSON(http.StatusBadRequest,
				dto.NewErrorResponse("Invalid threshold").WithDetails("quantity must be a non-negative number"))
			return
		}
		quantityThreshold = &v
	}
	if raw := ctx.Query("weight"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			ctx.JSON(http.StatusBadRequest,
				dto.NewErrorResponse("Invalid threshold").WithDetails("weight must be a non-negative number"))
			return
		}
		weightThreshold = &v
	}

	items, err := c.itemService.LowStock(ctx, quantityThreshold, weightThreshold)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}
