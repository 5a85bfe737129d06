package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/controllers"
	"github.com/retriever-essentials/pantry/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	itemController *controllers.ItemController,
	vendorController *controllers.VendorController,
	userController *controllers.UserController,
	transactionController *controllers.TransactionController,
	checkoutController *controllers.CheckoutController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Writes to the catalog and vendor list are admin-gated; everything a
	// pantry volunteer does at the counter (reads, withdrawals, recording,
	// checkout) is open, matching how the tool is deployed on a trusted
	// campus network.
	admin := authMiddleware.JWTAuth()
	adminOnly := authMiddleware.AdminRequired()

	items := api.Group("/items")
	{
		items.GET("", itemController.ListItems)
		items.GET("/low-stock", itemController.LowStock)
		items.GET("/:id", itemController.GetItemByID)

		// Legacy name kept for the existing front end; checkout below is
		// the atomic replacement for the two-call flow.
		items.POST("/:id/update-quantity", itemController.Withdraw)

		itemsAdmin := items.Group("")
		itemsAdmin.Use(admin, adminOnly)
		{
			itemsAdmin.POST("", itemController.CreateItem)
			itemsAdmin.PUT("/:id", itemController.UpdateItem)
			itemsAdmin.DELETE("/:id", itemController.DeleteItem)
			itemsAdmin.POST("/:id/restock", itemController.Restock)
			itemsAdmin.POST("/update-global-limits", itemController.SetGlobalLimits)
		}
	}

	api.GET("/types", itemController.ListTypes)

	vendors := api.Group("/vendors")
	{
		vendors.GET("", vendorController.GetAllVendors)
		vendors.GET("/:id", vendorController.GetVendorByID)
		vendors.GET("/:id/items", vendorController.GetVendorItems)

		vendorsAdmin := vendors.Group("")
		vendorsAdmin.Use(admin, adminOnly)
		{
			vendorsAdmin.POST("", vendorController.CreateVendor)
			vendorsAdmin.PUT("/:id", vendorController.UpdateVendor)
			vendorsAdmin.DELETE("/:id", vendorController.DeleteVendor)
		}
	}

	users := api.Group("/users")
	{
		users.POST("/signup", userController.Signup)
		users.POST("/login", userController.Login)
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)

		usersAdmin := users.Group("")
		usersAdmin.Use(admin, adminOnly)
		{
			usersAdmin.PUT("/:id", userController.UpdateUser)
			usersAdmin.DELETE("/:id", userController.DeleteUser)
		}
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("", transactionController.GetAllTransactions)
		transactions.GET("/most-taken", transactionController.MostTaken)
		transactions.GET("/unique-students", transactionController.StatusCounts)
		transactions.GET("/:id", transactionController.GetTransactionsByUser)
		transactions.POST("", transactionController.CreateTransaction)
	}

	api.POST("/checkout", checkoutController.Checkout)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
