package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
)

// ErrPriceInvariant means a product carries a non-positive price field.
// Catalog validation rejects these at write time, so hitting this during
// pricing is a data fault, not a user error.
var ErrPriceInvariant = errors.New("price must be positive")

// PriceQuote is the result of resolving a product's display price at a
// given instant.
type PriceQuote struct {
	EffectivePrice float64 `json:"effective_price"`
	Discounted     bool    `json:"discounted"`
}

// ResolveDisplayPrice computes the price actually charged for a product at
// the reference instant. A promotion applies only while is_promotion is set,
// a promotion price exists, and the instant falls inside the inclusive
// promotion window. The promotion price is charged whenever the promotion is
// active, but Discounted is reported only when it strictly undercuts the
// regular price.
func ResolveDisplayPrice(product models.Product, now time.Time) (PriceQuote, error) {
	if product.Price == nil || *product.Price <= 0 {
		return PriceQuote{}, fmt.Errorf("product %s: %w", product.Product_id, ErrPriceInvariant)
	}
	if product.Promotion_price != nil && *product.Promotion_price <= 0 {
		return PriceQuote{}, fmt.Errorf("product %s: promotion %w", product.Product_id, ErrPriceInvariant)
	}

	active := product.Is_promotion &&
		product.Promotion_price != nil &&
		boundReached(product.Promotion_start, now) &&
		boundNotPassed(product.Promotion_end, now)

	if !active {
		return PriceQuote{EffectivePrice: *product.Price}, nil
	}

	return PriceQuote{
		EffectivePrice: *product.Promotion_price,
		Discounted:     *product.Promotion_price < *product.Price,
	}, nil
}

// boundReached reports whether the window has started: an absent bound
// always passes, an unparseable bound never does.
func boundReached(bound *string, now time.Time) bool {
	if bound == nil || *bound == "" {
		return true
	}
	start, err := time.Parse(models.PromotionDateLayout, *bound)
	if err != nil {
		return false
	}
	return !start.After(dayOf(now))
}

// boundNotPassed reports whether the window has not yet ended. Bounds are
// inclusive: the promotion still applies on the end date itself.
func boundNotPassed(bound *string, now time.Time) bool {
	if bound == nil || *bound == "" {
		return true
	}
	end, err := time.Parse(models.PromotionDateLayout, *bound)
	if err != nil {
		return false
	}
	return !end.Before(dayOf(now))
}

// dayOf truncates an instant to day granularity in UTC, matching the
// granularity of the stored date strings.
func dayOf(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
