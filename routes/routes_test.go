package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppos/config"
	"shoppos/controllers"
	"shoppos/models"
	"shoppos/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	snaps := store.NewMemorySnapshots()
	sessions := store.NewSessionStore(snaps)
	products := store.NewProductStore(snaps)
	receipts := store.NewReceiptStore(snaps)
	purchases := store.NewPurchaseStore(snaps)
	settings := store.NewSettingsStore(snaps)

	router := gin.New()
	InitializeRoutes(router, Controllers{
		Auth:      controllers.NewAuthController(controllers.SelfAsserted{}, sessions),
		Products:  controllers.NewProductController(products),
		Sales:     controllers.NewSalesController(products, receipts),
		Receipts:  controllers.NewReceiptController(receipts, settings, config.SMTPConfig{}),
		Purchases: controllers.NewPurchaseController(purchases),
		Reports:   controllers.NewReportsController(receipts),
		Dashboard: controllers.NewDashboardController(products, receipts),
		Settings:  controllers.NewSettingsController(settings),
	})
	return router
}

func request(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, name, role string) string {
	t.Helper()
	w := request(t, router, http.MethodPost, "/login", "", gin.H{"name": name, "role": role})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	router := newTestRouter(t)
	w := request(t, router, http.MethodPost, "/login", "", gin.H{"name": "Ama", "role": "manager"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPOSFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "Kofi", models.RoleSales)

	// Milk 1L (id 1) is seeded with quantity 30 at 7 each.
	w := request(t, router, http.MethodPost, "/dashboard/sales/cart", token, gin.H{"id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	// Adding the same product again merges into one line.
	w = request(t, router, http.MethodPost, "/dashboard/sales/cart", token, gin.H{"id": 1, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Lines    []models.CartLine `json:"lines"`
		Subtotal float64           `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 35.0, cart.Subtotal)

	w = request(t, router, http.MethodPost, "/dashboard/sales/checkout", token, gin.H{
		"paymentMethod": "Cash",
		"customerName":  "John Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var receipt models.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, 35.0, receipt.Total)
	assert.Equal(t, "John Doe", receipt.Customer)

	// The cart is empty after a successful checkout.
	w = request(t, router, http.MethodGet, "/dashboard/sales/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Lines)

	// And the ledger reflects the sale.
	w = request(t, router, http.MethodGet, "/dashboard/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	for _, p := range listing.Products {
		if p.ID == 1 {
			assert.Equal(t, 25, p.Quantity)
		}
	}

	// The receipt shows up in the log.
	w = request(t, router, http.MethodGet, "/dashboard/receipts/"+receipt.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// And on the public print view.
	w = request(t, router, http.MethodGet, "/receipt/"+receipt.ViewToken, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "Kofi", models.RoleSales)

	// Empty cart.
	w := request(t, router, http.MethodPost, "/dashboard/sales/checkout", token, gin.H{"paymentMethod": "Cash"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown payment method.
	request(t, router, http.MethodPost, "/dashboard/sales/cart", token, gin.H{"id": 1, "quantity": 1})
	w = request(t, router, http.MethodPost, "/dashboard/sales/checkout", token, gin.H{"paymentMethod": "Cheque"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRejectsOutOfStockProduct(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "Kofi", models.RoleSales)

	// Soft Drinks 500ml (id 5) is seeded with quantity 0.
	w := request(t, router, http.MethodPost, "/dashboard/sales/cart", token, gin.H{"id": 5, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryCRUD(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "Ama", models.RoleAdmin)

	w := request(t, router, http.MethodPost, "/dashboard/inventory", token, gin.H{
		"name": "Sardines (Tin)", "category": "Groceries", "price": 6.5, "costPrice": 4.0,
		"unit": "pieces", "quantity": 40, "reorderLevel": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 9, created.ID)

	w = request(t, router, http.MethodPut, fmt.Sprintf("/dashboard/inventory/%d", created.ID), token, gin.H{"price": 7.0})
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, router, http.MethodDelete, fmt.Sprintf("/dashboard/inventory/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSalesRoleGatedFromInventory(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "Kofi", models.RoleSales)

	w := request(t, router, http.MethodGet, "/dashboard/inventory", token, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	// The dashboard itself is fine.
	w = request(t, router, http.MethodGet, "/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMeReflectsSession(t *testing.T) {
	router := newTestRouter(t)

	w := request(t, router, http.MethodGet, "/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.RoleAnonymous)

	login(t, router, "Ama", models.RoleAdmin)
	w = request(t, router, http.MethodGet, "/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ama")

	request(t, router, http.MethodPost, "/logout", "", nil)
	w = request(t, router, http.MethodGet, "/me", "", nil)
	assert.Contains(t, w.Body.String(), models.RoleAnonymous)
}
