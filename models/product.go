package models

// StockStatus categories derived from quantity and reorder level.
const (
	StockGood = "Good"
	StockLow  = "Low"
	StockOut  = "Out"
)

// GetStockStatus derives the stock health of a product. The status is never
// stored on the product; every view recomputes it from the current quantity.
func GetStockStatus(quantity, reorderLevel int) string {
	if quantity == 0 {
		return StockOut
	}
	if quantity <= reorderLevel {
		return StockLow
	}
	return StockGood
}

// Units and Categories are the fixed option lists offered by the product forms.
var (
	Units      = []string{"units", "kg", "L", "pack", "boxes", "pieces"}
	Categories = []string{"Groceries", "Beverages", "Dairy", "Snacks", "Household", "Personal Care"}
)

type Product struct {
	ID            int     `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Category      string  `bson:"category" json:"category"`
	Price         float64 `bson:"price" json:"price"`
	CostPrice     float64 `bson:"cost_price" json:"costPrice"`
	Unit          string  `bson:"unit" json:"unit"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	ReorderLevel  int     `bson:"reorder_level" json:"reorderLevel"`
	LastRestocked string  `bson:"last_restocked" json:"lastRestocked"`
	SKU           string  `bson:"sku,omitempty" json:"sku,omitempty"`
	Image         string  `bson:"image,omitempty" json:"image,omitempty"`
}

// ProductInput carries the fields a caller supplies when creating a product.
// The ledger assigns the id and lastRestocked itself.
type ProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Unit         string  `json:"unit" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	CostPrice    float64 `json:"costPrice" binding:"gte=0"`
	Quantity     int     `json:"quantity" binding:"gte=0"`
	ReorderLevel int     `json:"reorderLevel" binding:"gte=0"`
	SKU          string  `json:"sku"`
	Image        string  `json:"image"`
}

// ProductUpdate is a partial update; nil fields are left untouched. Presence
// of Quantity or ReorderLevel resets lastRestocked.
type ProductUpdate struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	CostPrice    *float64 `json:"costPrice" binding:"omitempty,gte=0"`
	Quantity     *int     `json:"quantity" binding:"omitempty,gte=0"`
	ReorderLevel *int     `json:"reorderLevel" binding:"omitempty,gte=0"`
	SKU          *string  `json:"sku"`
	Image        *string  `json:"image"`
}

// DeductLine is one product/quantity pair of a committed sale.
type DeductLine struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

type Purchase struct {
	ID            int            `bson:"id" json:"id"`
	Date          string         `bson:"date" json:"date"`
	Supplier      string         `bson:"supplier" json:"supplier"`
	InvoiceNumber string         `bson:"invoice_number" json:"invoiceNumber"`
	Items         []PurchaseItem `bson:"items" json:"items"`
	TotalCost     float64        `bson:"total_cost" json:"totalCost"`
	Status        string         `bson:"status" json:"status"`
}

type PurchaseItem struct {
	Name      string  `bson:"name" json:"name"`
	Quantity  string  `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
	Total     float64 `bson:"total" json:"total"`
}

// Settings is the receipt template used by printing and email export.
type Settings struct {
	ShopName string `bson:"shop_name" json:"shopName"`
	Address  string `bson:"address" json:"address"`
	Phone    string `bson:"phone" json:"phone"`
	Currency string `bson:"currency" json:"currency"`
	Footer   string `bson:"footer" json:"footer"`
}
