package service

import (
	"testing"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/stretchr/testify/require"
)

func namedProduct(id, name string, price float64) models.Product {
	return models.Product{
		Product_id:  id,
		Category_id: strPtr("cat-1"),
		Name:        strPtr(name),
		Price:       floatPtr(price),
		Active:      boolPtr(true),
	}
}

func TestAddOrIncrement(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)
	juice := namedProduct("p2", "Suco de Laranja", 8)

	cart := AddOrIncrement(nil, burger)
	cart = AddOrIncrement(cart, juice)
	cart = AddOrIncrement(cart, burger)

	require.Len(t, cart, 2)
	require.Equal(t, "p1", cart[0].Product.Product_id)
	require.Equal(t, 2, cart[0].Quantity)
	require.Equal(t, "p2", cart[1].Product.Product_id)
	require.Equal(t, 1, cart[1].Quantity)
}

func TestAddOrIncrementDoesNotMutateInput(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)

	original := AddOrIncrement(nil, burger)
	_ = AddOrIncrement(original, burger)

	require.Equal(t, 1, original[0].Quantity)
}

func TestCartTotalOrderIndependent(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)
	juice := namedProduct("p2", "Suco de Laranja", 8)
	pudding := namedProduct("p3", "Pudim", 12.5)

	var first Cart
	for _, p := range []models.Product{burger, juice, burger, pudding} {
		first = AddOrIncrement(first, p)
	}

	var second Cart
	for _, p := range []models.Product{pudding, burger, burger, juice} {
		second = AddOrIncrement(second, p)
	}

	firstTotal, err := CartTotal(first, testNow)
	require.NoError(t, err)
	secondTotal, err := CartTotal(second, testNow)
	require.NoError(t, err)

	require.Equal(t, firstTotal, secondTotal)
	require.Equal(t, 40.5, firstTotal)
}

func TestSetQuantity(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)
	juice := namedProduct("p2", "Suco de Laranja", 8)

	cart := AddOrIncrement(AddOrIncrement(nil, burger), juice)

	cart = SetQuantity(cart, "p2", 4)
	require.Equal(t, 4, cart[1].Quantity)

	// Unknown ids are left alone.
	unchanged := SetQuantity(cart, "missing", 9)
	require.Equal(t, cart, unchanged)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)
	juice := namedProduct("p2", "Suco de Laranja", 8)

	cart := AddOrIncrement(AddOrIncrement(nil, burger), juice)

	cart = SetQuantity(cart, "p1", 0)
	require.Len(t, cart, 1)
	require.Equal(t, "p2", cart[0].Product.Product_id)

	total, err := CartTotal(cart, testNow)
	require.NoError(t, err)
	require.Equal(t, 8.0, total)

	// Removing an already removed line changes nothing.
	cart = SetQuantity(cart, "p1", 0)
	require.Len(t, cart, 1)
}

func TestRemoveItem(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)

	cart := AddOrIncrement(nil, burger)
	cart = RemoveItem(cart, "p1")
	require.Empty(t, cart)

	cart = RemoveItem(cart, "p1")
	require.Empty(t, cart)
}

func TestTotalItemCount(t *testing.T) {
	burger := namedProduct("p1", "X Burger", 10)
	juice := namedProduct("p2", "Suco de Laranja", 8)

	var cart Cart
	require.Equal(t, 0, TotalItemCount(cart))

	cart = AddOrIncrement(cart, burger)
	cart = AddOrIncrement(cart, burger)
	cart = AddOrIncrement(cart, juice)
	require.Equal(t, 3, TotalItemCount(cart))
}

func TestLineTotalUsesEffectivePrice(t *testing.T) {
	promo := promoProduct(20, 15, nil, nil)
	promo.Product_id = "p9"

	item := CartItem{Product: promo, Quantity: 3}
	total, err := LineTotal(item, testNow)
	require.NoError(t, err)
	require.Equal(t, 45.0, total)
}

func TestCartTotalPropagatesPriceError(t *testing.T) {
	broken := namedProduct("p1", "X Burger", 0)

	cart := Cart{{Product: broken, Quantity: 1}}
	_, err := CartTotal(cart, testNow)
	require.ErrorIs(t, err, ErrPriceInvariant)
}
