package service

import (
	"errors"
	"strings"
	"time"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
)

var (
	// ErrEmptyCart blocks submission of an order with no line items.
	ErrEmptyCart = errors.New("cart has no items")
	// ErrInvalidWaiter means the chosen waiter is missing or inactive.
	ErrInvalidWaiter = errors.New("waiter not available")
)

// FieldError points a validation failure at a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors aggregates all validation failures of one submission so the
// customer sees every problem at once.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(msgs, "; ")
}

// CheckoutInfo carries the customer-entered checkout form fields.
type CheckoutInfo struct {
	CustomerName  string `json:"customer_name"`
	TableNumber   string `json:"table_number"`
	PaymentMethod string `json:"payment_method"`
	Observation   string `json:"observation"`
}

// Derivation is everything checkout produces from a cart: the order record
// to persist, the notification text, and the phone number it goes to. The
// caller performs the persistence and the WhatsApp hand-off.
type Derivation struct {
	Order   models.Order
	Message string
	Target  string
}

var paymentMethods = map[string]bool{
	models.PaymentDebit:  true,
	models.PaymentCredit: true,
	models.PaymentPix:    true,
	models.PaymentCash:   true,
}

// DeriveOrder freezes a cart into an immutable order at the reference
// instant. Each line's unit price is resolved once, here, and total_amount
// is the sum of the frozen line totals; nothing is recomputed from the live
// cart afterwards, so a promotion expiring mid-checkout cannot make the
// totals diverge. Id and timestamps are left for the persistence layer to
// assign.
func DeriveOrder(cart Cart, info CheckoutInfo, waiter *models.Waiter, fallbackPhone string, now time.Time) (*Derivation, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	if waiter == nil || waiter.Name == nil || waiter.Active == nil || !*waiter.Active {
		return nil, ErrInvalidWaiter
	}

	var fieldErrs FieldErrors
	if strings.TrimSpace(info.CustomerName) == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "customer_name", Message: "customer name is required"})
	}
	if strings.TrimSpace(info.TableNumber) == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "table_number", Message: "table number is required"})
	}
	if !paymentMethods[info.PaymentMethod] {
		fieldErrs = append(fieldErrs, FieldError{Field: "payment_method", Message: "payment method must be one of debit, credit, pix, cash"})
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	items := make([]models.OrderItem, 0, len(cart))
	var totalAmount float64
	for _, line := range cart {
		quote, err := ResolveDisplayPrice(line.Product, now)
		if err != nil {
			return nil, err
		}
		if line.Product.Name == nil {
			return nil, FieldErrors{{Field: "items", Message: "cart line is missing its product name"}}
		}
		if line.Quantity <= 0 {
			return nil, FieldErrors{{Field: "items", Message: "cart line quantity must be positive"}}
		}

		item := models.OrderItem{
			Product_id:   line.Product.Product_id,
			Product_name: *line.Product.Name,
			Quantity:     line.Quantity,
			Unit_price:   quote.EffectivePrice,
			Total_price:  quote.EffectivePrice * float64(line.Quantity),
		}
		items = append(items, item)
		totalAmount += item.Total_price
	}

	customerName := info.CustomerName
	tableNumber := info.TableNumber
	paymentMethod := info.PaymentMethod

	order := models.Order{
		Customer_name:  &customerName,
		Table_number:   &tableNumber,
		Waiter_id:      &waiter.Waiter_id,
		Waiter_name:    *waiter.Name,
		Items:          items,
		Payment_method: &paymentMethod,
		Total_amount:   totalAmount,
		Status:         models.StatusPending,
	}
	if obs := strings.TrimSpace(info.Observation); obs != "" {
		order.Observation = &obs
	}

	return &Derivation{
		Order:   order,
		Message: FormatOrderMessage(order),
		Target:  NotificationTarget(waiter.Phone, fallbackPhone),
	}, nil
}
