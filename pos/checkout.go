package pos

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shoppos/models"
	"shoppos/store"
)

// ErrEmptyCart is returned when checkout is attempted with nothing to sell.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutInput are the operator-supplied fields of a sale.
type CheckoutInput struct {
	CustomerName  string
	PaymentMethod string
	Discount      float64
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newReceiptID derives the id from the current time in base36. Ids are
// strictly increasing within the process; same-millisecond checkouts bump the
// clock value. Not collision-safe across processes.
func newReceiptID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return "R-" + strings.ToUpper(strconv.FormatInt(ms, 36))
}

// Checkout converts the cart into a committed stock deduction and a receipt.
// Lines whose product has been removed from the ledger are dropped first. The
// discount is clamped so the total never goes negative; it is not validated
// against the subtotal. The deduction is applied as a single unit against the
// ledger, and stock clamps at zero rather than rejecting oversell. The caller
// clears the cart only after the receipt is returned.
func Checkout(products *store.ProductStore, receipts *store.ReceiptStore, cart *Cart, input CheckoutInput) (models.Receipt, error) {
	var lines []models.CartLine
	for _, line := range cart.Lines() {
		if _, ok := products.Get(line.ID); ok {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return models.Receipt{}, ErrEmptyCart
	}

	var subtotal float64
	deductions := make([]models.DeductLine, len(lines))
	for i, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
		deductions[i] = models.DeductLine{ID: line.ID, Quantity: line.Quantity}
	}
	total := subtotal - input.Discount
	if total < 0 {
		total = 0
	}

	products.Deduct(deductions)

	now := time.Now()
	receipt := models.Receipt{
		ID:            newReceiptID(now),
		Date:          now.Format("2006-01-02"),
		Time:          now.Format("15:04"),
		Customer:      input.CustomerName,
		PaymentMethod: input.PaymentMethod,
		Discount:      input.Discount,
		Total:         total,
		Items:         lines,
		ViewToken:     uuid.NewString(),
	}
	receipts.Append(receipt)
	return receipt, nil
}
