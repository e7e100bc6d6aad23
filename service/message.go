package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
)

// Customer-facing labels for the payment methods, as rendered in the
// WhatsApp message.
var paymentLabels = map[string]string{
	models.PaymentDebit:  "Débito",
	models.PaymentCredit: "Crédito",
	models.PaymentPix:    "PIX",
	models.PaymentCash:   "Dinheiro",
}

// FormatOrderMessage renders the waiter notification for an order: plain
// text with *emphasis* markers, sections in a fixed sequence, items numbered
// from 1, every amount with exactly two decimals. The result is safe to
// URL-encode into a wa.me link.
func FormatOrderMessage(order models.Order) string {
	var b strings.Builder

	b.WriteString("🍽️ *NOVO PEDIDO* 🍽️\n\n")
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", deref(order.Customer_name))
	fmt.Fprintf(&b, "📍 *Mesa:* %s\n", deref(order.Table_number))
	fmt.Fprintf(&b, "👨‍🍳 *Garçom:* %s\n", order.Waiter_name)
	fmt.Fprintf(&b, "💳 *Pagamento:* %s\n\n", paymentLabels[deref(order.Payment_method)])

	b.WriteString("📋 *Itens do Pedido:*\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, item.Product_name)
		fmt.Fprintf(&b, "   Qtd: %d x R$ %.2f = R$ %.2f", item.Quantity, item.Unit_price, item.Total_price)
	}

	fmt.Fprintf(&b, "\n\n💰 *TOTAL: R$ %.2f*", order.Total_amount)

	if order.Observation != nil && *order.Observation != "" {
		fmt.Fprintf(&b, "\n\n📝 *Observações:*\n%s", *order.Observation)
	}

	return b.String()
}

// NotificationTarget picks the phone number the notification is routed to:
// the waiter's phone stripped to digits, or the configured fallback when the
// waiter has none on file.
func NotificationTarget(phone *string, fallback string) string {
	if phone != nil {
		if digits := stripNonDigits(*phone); digits != "" {
			return digits
		}
	}
	return stripNonDigits(fallback)
}

// BuildWhatsAppLink builds the wa.me deep link that opens a chat with the
// target number and the order message prefilled. The hand-off is
// fire-and-forget: nothing comes back about delivery.
func BuildWhatsAppLink(target, message string) string {
	return "https://wa.me/" + target + "?text=" + url.QueryEscape(message)
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
