package utils

import (
	"log"

	"shoppos/models"
	"shoppos/store"
)

// CheckLowStock scans the ledger and logs every product at Low or Out status.
// Scheduled daily from main as a restock reminder.
func CheckLowStock(products *store.ProductStore) {
	log.Println("Running low stock check")

	low, out := 0, 0
	for _, p := range products.List() {
		switch models.GetStockStatus(p.Quantity, p.ReorderLevel) {
		case models.StockOut:
			out++
			log.Printf("OUT OF STOCK: %s (id %d), reorder level %d", p.Name, p.ID, p.ReorderLevel)
		case models.StockLow:
			low++
			log.Printf("LOW STOCK: %s (id %d), %d left, reorder level %d", p.Name, p.ID, p.Quantity, p.ReorderLevel)
		}
	}
	log.Printf("Low stock check completed: %d low, %d out of stock", low, out)
}
