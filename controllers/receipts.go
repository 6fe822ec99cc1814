package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoppos/config"
	"shoppos/store"
	"shoppos/utils"
)

type ReceiptController struct {
	receipts *store.ReceiptStore
	settings *store.SettingsStore
	smtp     config.SMTPConfig
}

func NewReceiptController(receipts *store.ReceiptStore, settings *store.SettingsStore, smtp config.SMTPConfig) *ReceiptController {
	return &ReceiptController{receipts: receipts, settings: settings, smtp: smtp}
}

func (r *ReceiptController) List(c *gin.Context) {
	receipts := r.receipts.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"receipts": receipts, "total": len(receipts)})
}

func (r *ReceiptController) Get(c *gin.Context) {
	receipt, ok := r.receipts.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// ViewByToken is the public print/export view, reachable without a session.
func (r *ReceiptController) ViewByToken(c *gin.Context) {
	receipt, ok := r.receipts.FindByViewToken(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"receipt":  receipt,
		"template": r.settings.Get(),
	})
}

type emailInput struct {
	To string `json:"to" binding:"required,email"`
}

// Email sends the rendered receipt to the customer.
func (r *ReceiptController) Email(c *gin.Context) {
	receipt, ok := r.receipts.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template := r.settings.Get()
	body := utils.RenderReceiptText(receipt, template)
	err := utils.SendEmail(r.smtp, input.To, "Receipt "+receipt.ID+" - "+template.ShopName, body)
	if err != nil {
		log.Printf("failed to email receipt %s: %v", receipt.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt sent"})
}
