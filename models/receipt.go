package models

// CartLine is one product/quantity pair pending sale. Price is a snapshot
// taken when the line is added, so a later ledger price edit does not change
// an in-progress cart.
type CartLine struct {
	ID       int     `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Receipt is the immutable record of a completed sale.
type Receipt struct {
	ID            string     `bson:"id" json:"id"`
	Date          string     `bson:"date" json:"date"`
	Time          string     `bson:"time" json:"time"`
	Customer      string     `bson:"customer,omitempty" json:"customer,omitempty"`
	PaymentMethod string     `bson:"payment_method" json:"paymentMethod"`
	Discount      float64    `bson:"discount" json:"discount"`
	Total         float64    `bson:"total" json:"total"`
	Items         []CartLine `bson:"items" json:"items"`
	ViewToken     string     `bson:"view_token" json:"viewToken"`
}

// PaymentMethods accepted at checkout.
var PaymentMethods = []string{"Cash", "Mobile Money", "Card"}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
