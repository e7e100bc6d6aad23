package service

import (
	"testing"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/stretchr/testify/require"
)

const fallbackPhone = "5511999999999"

func activeWaiter() *models.Waiter {
	return &models.Waiter{
		Waiter_id: "w1",
		Name:      strPtr("Bruno"),
		Phone:     strPtr("+55 (11) 98765-4321"),
		Active:    boolPtr(true),
	}
}

func checkoutCart() Cart {
	burger := namedProduct("p1", "X Burger", 10)
	juice := promoProduct(20, 15, strPtr("2026-03-01"), strPtr("2026-03-31"))
	juice.Product_id = "p2"
	juice.Name = strPtr("Suco de Laranja")

	return Cart{
		{Product: burger, Quantity: 2},
		{Product: juice, Quantity: 1},
	}
}

func checkoutInfo() CheckoutInfo {
	return CheckoutInfo{
		CustomerName:  "Ana",
		TableNumber:   "12",
		PaymentMethod: models.PaymentPix,
		Observation:   "Sem cebola",
	}
}

func TestDeriveOrderFreezesPrices(t *testing.T) {
	derivation, err := DeriveOrder(checkoutCart(), checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
	require.NoError(t, err)

	order := derivation.Order
	require.Len(t, order.Items, 2)

	require.Equal(t, models.OrderItem{
		Product_id:   "p1",
		Product_name: "X Burger",
		Quantity:     2,
		Unit_price:   10,
		Total_price:  20,
	}, order.Items[0])

	require.Equal(t, models.OrderItem{
		Product_id:   "p2",
		Product_name: "Suco de Laranja",
		Quantity:     1,
		Unit_price:   15,
		Total_price:  15,
	}, order.Items[1])

	require.Equal(t, 35.0, order.Total_amount)
	require.Equal(t, models.StatusPending, order.Status)
	require.Equal(t, "Ana", *order.Customer_name)
	require.Equal(t, "12", *order.Table_number)
	require.Equal(t, "w1", *order.Waiter_id)
	require.Equal(t, "Bruno", order.Waiter_name)
	require.Equal(t, models.PaymentPix, *order.Payment_method)
	require.Equal(t, "Sem cebola", *order.Observation)
}

func TestDeriveOrderEmptyCart(t *testing.T) {
	_, err := DeriveOrder(nil, checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestDeriveOrderInvalidWaiter(t *testing.T) {
	inactive := activeWaiter()
	inactive.Active = boolPtr(false)

	tests := []struct {
		name   string
		waiter *models.Waiter
	}{
		{name: "missingWaiter", waiter: nil},
		{name: "inactiveWaiter", waiter: inactive},
		{name: "unnamedWaiter", waiter: &models.Waiter{Waiter_id: "w2", Active: boolPtr(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveOrder(checkoutCart(), checkoutInfo(), tt.waiter, fallbackPhone, testNow)
			require.ErrorIs(t, err, ErrInvalidWaiter)
		})
	}
}

func TestDeriveOrderAggregatesFieldErrors(t *testing.T) {
	info := CheckoutInfo{
		CustomerName:  "   ",
		TableNumber:   "",
		PaymentMethod: "check",
	}

	_, err := DeriveOrder(checkoutCart(), info, activeWaiter(), fallbackPhone, testNow)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)

	fields := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = fe.Field
	}
	require.Equal(t, []string{"customer_name", "table_number", "payment_method"}, fields)
}

func TestDeriveOrderRejectsNonPositiveQuantity(t *testing.T) {
	cart := Cart{{Product: namedProduct("p1", "X Burger", 10), Quantity: 0}}

	_, err := DeriveOrder(cart, checkoutInfo(), activeWaiter(), fallbackPhone, testNow)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Equal(t, "items", fieldErrs[0].Field)
}

func TestDeriveOrderPropagatesPriceInvariant(t *testing.T) {
	cart := Cart{{Product: namedProduct("p1", "X Burger", -1), Quantity: 1}}

	_, err := DeriveOrder(cart, checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
	require.ErrorIs(t, err, ErrPriceInvariant)
}

func TestDeriveOrderOmitsBlankObservation(t *testing.T) {
	info := checkoutInfo()
	info.Observation = "   "

	derivation, err := DeriveOrder(checkoutCart(), info, activeWaiter(), fallbackPhone, testNow)
	require.NoError(t, err)
	require.Nil(t, derivation.Order.Observation)
}

func TestDeriveOrderTarget(t *testing.T) {
	t.Run("stripsWaiterPhoneToDigits", func(t *testing.T) {
		derivation, err := DeriveOrder(checkoutCart(), checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
		require.NoError(t, err)
		require.Equal(t, "5511987654321", derivation.Target)
	})

	t.Run("fallsBackWhenPhoneMissing", func(t *testing.T) {
		waiter := activeWaiter()
		waiter.Phone = nil

		derivation, err := DeriveOrder(checkoutCart(), checkoutInfo(), waiter, fallbackPhone, testNow)
		require.NoError(t, err)
		require.Equal(t, fallbackPhone, derivation.Target)
	})

	t.Run("fallsBackWhenPhoneHasNoDigits", func(t *testing.T) {
		waiter := activeWaiter()
		waiter.Phone = strPtr("n/a")

		derivation, err := DeriveOrder(checkoutCart(), checkoutInfo(), waiter, fallbackPhone, testNow)
		require.NoError(t, err)
		require.Equal(t, fallbackPhone, derivation.Target)
	})
}

func TestDeriveOrderDoesNotMutateCart(t *testing.T) {
	cart := checkoutCart()

	_, err := DeriveOrder(cart, checkoutInfo(), activeWaiter(), fallbackPhone, testNow)
	require.NoError(t, err)

	require.Equal(t, checkoutCart(), cart)
}
