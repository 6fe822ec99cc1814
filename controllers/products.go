package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shoppos/models"
	"shoppos/store"
)

// ProductController serves both the products page (available to both roles)
// and the admin-only inventory management page. Both operate on the same
// ledger.
type ProductController struct {
	products *store.ProductStore
}

func NewProductController(products *store.ProductStore) *ProductController {
	return &ProductController{products: products}
}

// List filters the catalog by category and free-text query.
func (p *ProductController) List(c *gin.Context) {
	category := c.Query("category")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	var out []models.Product
	for _, product := range p.products.List() {
		if category != "" && product.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(product.Name), q) &&
			!strings.Contains(strings.ToLower(product.Category), q) &&
			!strings.Contains(strings.ToLower(product.SKU), q) {
			continue
		}
		out = append(out, product)
	}
	c.JSON(http.StatusOK, gin.H{"products": out, "total": len(out)})
}

// ListInventory is the inventory page view: each product carries its derived
// status, filterable by status and free-text query.
func (p *ProductController) ListInventory(c *gin.Context) {
	statusFilter := c.Query("status")
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	type inventoryItem struct {
		models.Product
		Status string `json:"status"`
	}

	var out []inventoryItem
	for _, product := range p.products.List() {
		status := models.GetStockStatus(product.Quantity, product.ReorderLevel)
		if statusFilter != "" && status != statusFilter {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(product.Name), q) &&
			!strings.Contains(strings.ToLower(product.Category), q) {
			continue
		}
		out = append(out, inventoryItem{Product: product, Status: status})
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "total": len(out)})
}

// Options returns the fixed unit and category lists for the product forms.
func (p *ProductController) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"units":      models.Units,
		"categories": models.Categories,
	})
}

func (p *ProductController) Create(c *gin.Context) {
	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := p.products.Add(input)
	c.JSON(http.StatusCreated, product)
}

func (p *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var updates models.ProductUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p.products.Update(id, updates)
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (p *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	p.products.Remove(id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
