package utils

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"shoppos/config"
	"shoppos/models"
)

// RenderReceiptText renders a receipt into the plain-text form used by the
// email export, with the shop header and footer from settings.
func RenderReceiptText(r models.Receipt, s models.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\nTel: %s\n\n", s.ShopName, s.Address, s.Phone)
	fmt.Fprintf(&b, "Receipt %s\nDate %s %s\n", r.ID, r.Date, r.Time)
	if r.Customer != "" {
		fmt.Fprintf(&b, "Customer %s\n", r.Customer)
	}
	b.WriteString("\nItems\n")
	for _, item := range r.Items {
		fmt.Fprintf(&b, "  %s x %d @ %s %.2f = %s %.2f\n",
			item.Name, item.Quantity, s.Currency, item.Price,
			s.Currency, item.Price*float64(item.Quantity))
	}
	if r.Discount > 0 {
		fmt.Fprintf(&b, "\nDiscount - %s %.2f\n", s.Currency, r.Discount)
	}
	fmt.Fprintf(&b, "\nTotal %s %.2f\nPayment: %s\n\n%s\n",
		s.Currency, r.Total, r.PaymentMethod, s.Footer)
	return b.String()
}

func SendEmail(cfg config.SMTPConfig, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return d.DialAndSend(m)
}
