package routes

import (
	"github.com/gin-gonic/gin"

	"shoppos/controllers"
	"shoppos/middleware"
)

// Controllers bundles everything the route table wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	Sales     *controllers.SalesController
	Receipts  *controllers.ReceiptController
	Purchases *controllers.PurchaseController
	Reports   *controllers.ReportsController
	Dashboard *controllers.DashboardController
	Settings  *controllers.SettingsController
}

func InitializeRoutes(router *gin.Engine, c Controllers) {
	router.POST("/login", c.Auth.Login)
	router.POST("/logout", c.Auth.Logout)
	router.GET("/me", c.Auth.Me)
	router.GET("/receipt/:token", c.Receipts.ViewByToken)

	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.Authenticated(), middleware.RoleGate())
	{
		dashboard.GET("", c.Dashboard.Metrics)

		// Products page: both roles.
		dashboard.GET("/products", c.Products.List)
		dashboard.PUT("/products/:id", c.Products.Update)
		dashboard.DELETE("/products/:id", c.Products.Delete)

		// Sales (POS): both roles.
		dashboard.GET("/sales/products", c.Sales.AvailableProducts)
		dashboard.GET("/sales/cart", c.Sales.GetCart)
		dashboard.POST("/sales/cart", c.Sales.AddToCart)
		dashboard.PUT("/sales/cart/:id", c.Sales.AdjustCartLine)
		dashboard.DELETE("/sales/cart/:id", c.Sales.RemoveCartLine)
		dashboard.DELETE("/sales/cart", c.Sales.ClearCart)
		dashboard.POST("/sales/checkout", c.Sales.Checkout)

		// Receipts: both roles.
		dashboard.GET("/receipts", c.Receipts.List)
		dashboard.GET("/receipts/:id", c.Receipts.Get)
		dashboard.POST("/receipts/:id/email", c.Receipts.Email)

		// Admin-only prefixes, enforced per navigation by the role gate.
		dashboard.GET("/inventory", c.Products.ListInventory)
		dashboard.GET("/inventory/options", c.Products.Options)
		dashboard.POST("/inventory", c.Products.Create)
		dashboard.PUT("/inventory/:id", c.Products.Update)
		dashboard.DELETE("/inventory/:id", c.Products.Delete)

		dashboard.GET("/purchases", c.Purchases.List)
		dashboard.POST("/purchases", c.Purchases.Create)

		dashboard.GET("/reports", c.Reports.SalesReport)

		dashboard.GET("/settings", c.Settings.Get)
		dashboard.PUT("/settings", c.Settings.Update)
	}
}
