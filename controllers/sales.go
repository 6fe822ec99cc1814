package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shoppos/middleware"
	"shoppos/models"
	"shoppos/pos"
	"shoppos/store"
)

// SalesController drives the POS flow: pick from available products, build
// the cart, check out. It owns the single active cart.
type SalesController struct {
	products *store.ProductStore
	receipts *store.ReceiptStore
	cart     *pos.Cart
}

func NewSalesController(products *store.ProductStore, receipts *store.ReceiptStore) *SalesController {
	return &SalesController{
		products: products,
		receipts: receipts,
		cart:     pos.NewCart(),
	}
}

// AvailableProducts lists what the POS can sell: quantity > 0.
func (s *SalesController) AvailableProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": s.products.Available()})
}

func (s *SalesController) cartState() gin.H {
	return gin.H{
		"lines":    s.cart.Lines(),
		"subtotal": s.cart.Subtotal(),
	}
}

func (s *SalesController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartState())
}

type addLineInput struct {
	ID       int `json:"id" binding:"required"`
	Quantity int `json:"quantity"`
}

func (s *SalesController) AddToCart(c *gin.Context) {
	var input addLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, ok := s.products.Get(input.ID)
	if !ok || product.Quantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available for sale"})
		return
	}

	s.cart.AddLine(product, input.Quantity)
	c.JSON(http.StatusOK, s.cartState())
}

type adjustLineInput struct {
	Delta int `json:"delta" binding:"required"`
}

func (s *SalesController) AdjustCartLine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input adjustLineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.cart.AdjustLine(id, input.Delta)
	c.JSON(http.StatusOK, s.cartState())
}

func (s *SalesController) RemoveCartLine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	s.cart.RemoveLine(id)
	c.JSON(http.StatusOK, s.cartState())
}

func (s *SalesController) ClearCart(c *gin.Context) {
	s.cart.Clear()
	c.JSON(http.StatusOK, s.cartState())
}

type checkoutInput struct {
	CustomerName  string  `json:"customerName"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
	Discount      float64 `json:"discount" binding:"gte=0"`
}

// Checkout commits the sale. The cart is cleared only after the receipt
// exists.
func (s *SalesController) Checkout(c *gin.Context) {
	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	receipt, err := pos.Checkout(s.products, s.receipts, s.cart, pos.CheckoutInput{
		CustomerName:  input.CustomerName,
		PaymentMethod: input.PaymentMethod,
		Discount:      input.Discount,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.cart.Clear()
	middleware.CheckoutsTotal.WithLabelValues(receipt.PaymentMethod).Inc()
	c.JSON(http.StatusCreated, receipt)
}
