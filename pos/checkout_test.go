package pos

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoppos/models"
	"shoppos/store"
)

func checkoutFixtures(t *testing.T) (*store.ProductStore, *store.ReceiptStore) {
	t.Helper()
	snaps := store.NewMemorySnapshots()
	return store.NewProductStore(snaps), store.NewReceiptStore(snaps)
}

func TestCheckoutCompleteSale(t *testing.T) {
	products, receipts := checkoutFixtures(t)

	// Seed catalog: Milk 1L is id 1, price 7, quantity 30, reorder level 20.
	milk, ok := products.Get(1)
	require.True(t, ok)

	cart := NewCart()
	cart.AddLine(milk, 5)

	receipt, err := Checkout(products, receipts, cart, CheckoutInput{PaymentMethod: "Cash"})
	require.NoError(t, err)

	assert.Equal(t, 35.0, receipt.Total)
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, models.CartLine{ID: 1, Name: "Milk 1L", Price: 7, Quantity: 5}, receipt.Items[0])
	assert.Equal(t, time.Now().Format("2006-01-02"), receipt.Date)
	assert.NotEmpty(t, receipt.ViewToken)

	after, _ := products.Get(1)
	assert.Equal(t, 25, after.Quantity)
	assert.Equal(t, models.StockGood, models.GetStockStatus(after.Quantity, after.ReorderLevel))

	stored, ok := receipts.Get(receipt.ID)
	require.True(t, ok)
	assert.Equal(t, receipt, stored)

	// Clearing the cart afterwards must not touch the returned receipt.
	cart.Clear()
	assert.Len(t, receipt.Items, 1)
}

func TestCheckoutOversellClampsStockAtZero(t *testing.T) {
	products, receipts := checkoutFixtures(t)

	qty := 3
	products.Update(1, models.ProductUpdate{Quantity: &qty})
	milk, _ := products.Get(1)

	cart := NewCart()
	cart.AddLine(milk, 10)

	receipt, err := Checkout(products, receipts, cart, CheckoutInput{PaymentMethod: "Cash"})
	require.NoError(t, err)

	// Stock clamps, but the receipt still reports the requested quantity.
	after, _ := products.Get(1)
	assert.Equal(t, 0, after.Quantity)
	assert.Equal(t, 70.0, receipt.Total)
	assert.Equal(t, 10, receipt.Items[0].Quantity)
}

func TestCheckoutClampsDiscount(t *testing.T) {
	products, receipts := checkoutFixtures(t)
	milk, _ := products.Get(1)

	cart := NewCart()
	cart.AddLine(milk, 2)

	receipt, err := Checkout(products, receipts, cart, CheckoutInput{PaymentMethod: "Card", Discount: 100})
	require.NoError(t, err)
	assert.Equal(t, 0.0, receipt.Total)
	assert.Equal(t, 100.0, receipt.Discount)
}

func TestCheckoutDropsRemovedProducts(t *testing.T) {
	products, receipts := checkoutFixtures(t)
	milk, _ := products.Get(1)
	bread, _ := products.Get(2)

	cart := NewCart()
	cart.AddLine(milk, 1)
	cart.AddLine(bread, 2)

	products.Remove(1)

	receipt, err := Checkout(products, receipts, cart, CheckoutInput{PaymentMethod: "Cash"})
	require.NoError(t, err)

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 2, receipt.Items[0].ID)
	assert.Equal(t, 10.0, receipt.Total)

	after, _ := products.Get(2)
	assert.Equal(t, 13, after.Quantity)
}

func TestCheckoutEmptyCart(t *testing.T) {
	products, receipts := checkoutFixtures(t)

	_, err := Checkout(products, receipts, NewCart(), CheckoutInput{PaymentMethod: "Cash"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestReceiptIDsStrictlyIncrease(t *testing.T) {
	products, receipts := checkoutFixtures(t)
	milk, _ := products.Get(1)

	var prev string
	for i := 0; i < 5; i++ {
		cart := NewCart()
		cart.AddLine(milk, 1)
		receipt, err := Checkout(products, receipts, cart, CheckoutInput{PaymentMethod: "Cash"})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(receipt.ID, "R-"))
		if prev != "" {
			assert.Greater(t, receipt.ID, prev)
		}
		prev = receipt.ID
	}
}
