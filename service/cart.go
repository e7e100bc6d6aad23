package service

import (
	"time"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
)

// CartItem is one line of a customer's cart: a product snapshot plus a
// quantity. Carts live on the client until checkout; they are never
// persisted server-side.
type CartItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is an ordered set of lines, at most one per product id. All
// operations return a fresh slice and leave their input untouched, so a
// cart value can be shared freely.
type Cart []CartItem

// AddOrIncrement bumps the quantity of an existing line or appends a new
// line with quantity 1.
func AddOrIncrement(cart Cart, product models.Product) Cart {
	next := make(Cart, len(cart), len(cart)+1)
	copy(next, cart)

	for i := range next {
		if next[i].Product.Product_id == product.Product_id {
			next[i].Quantity++
			return next
		}
	}

	return append(next, CartItem{Product: product, Quantity: 1})
}

// SetQuantity replaces a line's quantity. A quantity of zero (or less)
// removes the line entirely; setting an absent product id is a no-op.
func SetQuantity(cart Cart, productID string, quantity int) Cart {
	if quantity <= 0 {
		return RemoveItem(cart, productID)
	}

	next := make(Cart, len(cart))
	copy(next, cart)

	for i := range next {
		if next[i].Product.Product_id == productID {
			next[i].Quantity = quantity
			break
		}
	}

	return next
}

// RemoveItem drops the line for a product id; no-op if absent.
func RemoveItem(cart Cart, productID string) Cart {
	next := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.Product.Product_id != productID {
			next = append(next, item)
		}
	}
	return next
}

// LineTotal is the line's effective unit price times its quantity.
func LineTotal(item CartItem, now time.Time) (float64, error) {
	quote, err := ResolveDisplayPrice(item.Product, now)
	if err != nil {
		return 0, err
	}
	return quote.EffectivePrice * float64(item.Quantity), nil
}

// CartTotal sums the line totals of the whole cart.
func CartTotal(cart Cart, now time.Time) (float64, error) {
	var total float64
	for _, item := range cart {
		lineTotal, err := LineTotal(item, now)
		if err != nil {
			return 0, err
		}
		total += lineTotal
	}
	return total, nil
}

// TotalItemCount sums the quantities across all lines.
func TotalItemCount(cart Cart) int {
	var count int
	for _, item := range cart {
		count += item.Quantity
	}
	return count
}
