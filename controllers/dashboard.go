package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/store"
)

// DashboardController is a read-only consumer of the ledger and the receipt
// log; the metrics it returns depend on the caller's role.
type DashboardController struct {
	products *store.ProductStore
	receipts *store.ReceiptStore
}

func NewDashboardController(products *store.ProductStore, receipts *store.ReceiptStore) *DashboardController {
	return &DashboardController{products: products, receipts: receipts}
}

func (d *DashboardController) Metrics(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var todaySales float64
	todayReceipts := 0
	for _, r := range d.receipts.List() {
		if r.Date == today {
			todaySales += r.Total
			todayReceipts++
		}
	}

	out := gin.H{
		"todaySales":    todaySales,
		"todayReceipts": todayReceipts,
	}

	if c.GetString("role") == models.RoleAdmin {
		var stockValue float64
		lowStock, outOfStock := 0, 0
		products := d.products.List()
		for _, p := range products {
			stockValue += p.CostPrice * float64(p.Quantity)
			switch models.GetStockStatus(p.Quantity, p.ReorderLevel) {
			case models.StockLow:
				lowStock++
			case models.StockOut:
				outOfStock++
			}
		}
		out["totalProducts"] = len(products)
		out["stockValue"] = stockValue
		out["lowStock"] = lowStock
		out["outOfStock"] = outOfStock
	}

	c.JSON(http.StatusOK, out)
}
