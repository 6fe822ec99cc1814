package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/store"
)

type PurchaseController struct {
	purchases *store.PurchaseStore
}

func NewPurchaseController(purchases *store.PurchaseStore) *PurchaseController {
	return &PurchaseController{purchases: purchases}
}

func (p *PurchaseController) List(c *gin.Context) {
	purchases := p.purchases.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"purchases": purchases, "total": len(purchases)})
}

type purchaseInput struct {
	Date          string                `json:"date"`
	Supplier      string                `json:"supplier" binding:"required"`
	InvoiceNumber string                `json:"invoiceNumber" binding:"required"`
	Items         []models.PurchaseItem `json:"items" binding:"required,min=1"`
}

func (p *PurchaseController) Create(c *gin.Context) {
	var input purchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}

	var totalCost float64
	for _, item := range input.Items {
		totalCost += item.Total
	}

	purchase := p.purchases.Add(models.Purchase{
		Date:          input.Date,
		Supplier:      input.Supplier,
		InvoiceNumber: input.InvoiceNumber,
		Items:         input.Items,
		TotalCost:     totalCost,
		Status:        "Completed",
	})
	c.JSON(http.StatusCreated, purchase)
}
