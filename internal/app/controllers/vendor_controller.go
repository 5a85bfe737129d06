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

// VendorController handles vendor-related operations
type VendorController struct {
	vendorService services.VendorService
}

// NewVendorController creates a new VendorController
func NewVendorController(vendorService services.VendorService) *VendorController {
	return &VendorController{
		vendorService: vendorService,
	}
}

func vendorIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid vendor ID").WithDetails("Vendor ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// CreateVendor handles vendor creation
func (c *VendorController) CreateVendor(ctx *gin.Context) {
	var req dto.VendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid vendor data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	vendor := &models.Vendor{
		VendorName:    req.VendorName,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
	}

	id, err := c.vendorService.CreateVendor(ctx, vendor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	vendor.VendorID = id
	ctx.JSON(http.StatusCreated, dto.CreateVendorResponse{
		Message: "Vendor created successfully",
		ID:      id,
		Vendor:  vendor,
	})
}

// GetVendorByID retrieves a vendor by ID
func (c *VendorController) GetVendorByID(ctx *gin.Context) {
	id, ok := vendorIDParam(ctx)
	if !ok {
		return
	}

	vendor, err := c.vendorService.GetVendorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// GetAllVendors retrieves all vendors
func (c *VendorController) GetAllVendors(ctx *gin.Context) {
	vendors, err := c.vendorService.GetAllVendors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vendors)
}

// GetVendorItems lists the items supplied by one vendor
func (c *VendorController) GetVendorItems(ctx *gin.Context) {
	id, ok := vendorIDParam(ctx)
	if !ok {
		return
	}

	items, err := c.vendorService.GetVendorItems(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// UpdateVendor updates an existing vendor
func (c *VendorController) UpdateVendor(ctx *gin.Context) {
	id, ok := vendorIDParam(ctx)
	if !ok {
		return
	}

	var req dto.VendorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid vendor data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	vendor := &models.Vendor{
		VendorID:      id,
		VendorName:    req.VendorName,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
	}

	if err := c.vendorService.UpdateVendor(ctx, vendor); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, vendor)
}

// DeleteVendor deletes a vendor. Vendors with associated items are
// rejected rather than cascading the delete into the catalog.
func (c *VendorController) DeleteVendor(ctx *gin.Context) {
	id, ok := vendorIDParam(ctx)
	if !ok {
		return
	}

	if err := c.vendorService.DeleteVendor(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Vendor deleted successfully"})
}
