package store

import "shoppos/models"

// seedProducts is the catalog the ledger starts from when no valid snapshot
// exists.
var seedProducts = []models.Product{
	{ID: 1, Name: "Milk 1L", Category: "Dairy", Price: 7, CostPrice: 5, Unit: "units", Quantity: 30, ReorderLevel: 20, LastRestocked: "2024-01-14", SKU: "MLK-001"},
	{ID: 2, Name: "Bread (Loaf)", Category: "Groceries", Price: 5, CostPrice: 3, Unit: "units", Quantity: 15, ReorderLevel: 20, LastRestocked: "2024-01-14", SKU: "BRD-002"},
	{ID: 3, Name: "Rice 2kg", Category: "Groceries", Price: 15, CostPrice: 10, Unit: "units", Quantity: 150, ReorderLevel: 50, LastRestocked: "2024-01-15", SKU: "RCE-003"},
	{ID: 4, Name: "Cooking Oil 1L", Category: "Groceries", Price: 14, CostPrice: 9, Unit: "units", Quantity: 25, ReorderLevel: 10, LastRestocked: "2024-01-14", SKU: "OIL-004"},
	{ID: 5, Name: "Soft Drinks 500ml", Category: "Beverages", Price: 5, CostPrice: 2.5, Unit: "units", Quantity: 0, ReorderLevel: 50, LastRestocked: "2024-01-10", SKU: "DRK-005"},
	{ID: 6, Name: "Snacks (Pack)", Category: "Snacks", Price: 3.5, CostPrice: 2, Unit: "units", Quantity: 8, ReorderLevel: 10, LastRestocked: "2024-01-13"},
	{ID: 7, Name: "Eggs (Tray)", Category: "Groceries", Price: 18, CostPrice: 12, Unit: "units", Quantity: 20, ReorderLevel: 5, LastRestocked: "2024-01-14"},
	{ID: 8, Name: "Tomatoes 1kg", Category: "Groceries", Price: 8, CostPrice: 4, Unit: "kg", Quantity: 12, ReorderLevel: 5, LastRestocked: "2024-01-13"},
}

var seedPurchases = []models.Purchase{
	{ID: 1, Date: "2024-01-15", Supplier: "Wholesale Grocers", InvoiceNumber: "INV-001", Items: []models.PurchaseItem{{Name: "Rice 2kg", Quantity: "50 units", UnitPrice: 12, Total: 600}}, TotalCost: 600, Status: "Completed"},
	{ID: 2, Date: "2024-01-14", Supplier: "Dairy Co", InvoiceNumber: "INV-002", Items: []models.PurchaseItem{{Name: "Milk 1L", Quantity: "100 units", UnitPrice: 5, Total: 500}}, TotalCost: 500, Status: "Completed"},
	{ID: 3, Date: "2024-01-14", Supplier: "Bakery Supplies", InvoiceNumber: "INV-003", Items: []models.PurchaseItem{{Name: "Bread", Quantity: "80 units", UnitPrice: 2.5, Total: 200}}, TotalCost: 200, Status: "Completed"},
}

func defaultSettings() models.Settings {
	return models.Settings{
		ShopName: "Inventory System",
		Address:  "Accra - Ghana",
		Phone:    "+233 XX XXX XXXX",
		Currency: "GHS",
		Footer:   "Thank you for your business!",
	}
}
