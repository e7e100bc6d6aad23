package service

import (
	"testing"
	"time"

	"github.com/HenricoAmalfi03/Menu-Interativo/models"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// March 10th, mid-afternoon, so day-granularity truncation matters.
var testNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func testProduct(price float64) models.Product {
	return models.Product{
		Product_id:  "prod-1",
		Category_id: strPtr("cat-1"),
		Name:        strPtr("X Burger"),
		Price:       floatPtr(price),
		Active:      boolPtr(true),
	}
}

func promoProduct(price, promoPrice float64, start, end *string) models.Product {
	product := testProduct(price)
	product.Is_promotion = true
	product.Promotion_price = floatPtr(promoPrice)
	product.Promotion_start = start
	product.Promotion_end = end
	return product
}

func TestResolveDisplayPriceWithoutPromotion(t *testing.T) {
	product := testProduct(20)
	// Promotion fields alone must not change anything while the flag is off.
	product.Promotion_price = floatPtr(5)
	product.Promotion_start = strPtr("2026-01-01")

	quote, err := ResolveDisplayPrice(product, testNow)
	require.NoError(t, err)
	require.Equal(t, 20.0, quote.EffectivePrice)
	require.False(t, quote.Discounted)
}

func TestResolveDisplayPriceFlagWithoutPromotionPrice(t *testing.T) {
	product := testProduct(20)
	product.Is_promotion = true

	quote, err := ResolveDisplayPrice(product, testNow)
	require.NoError(t, err)
	require.Equal(t, 20.0, quote.EffectivePrice)
	require.False(t, quote.Discounted)
}

func TestResolveDisplayPriceActivePromotion(t *testing.T) {
	product := promoProduct(20, 15, strPtr("2026-03-01"), strPtr("2026-03-31"))

	quote, err := ResolveDisplayPrice(product, testNow)
	require.NoError(t, err)
	require.Equal(t, 15.0, quote.EffectivePrice)
	require.True(t, quote.Discounted)
}

func TestResolveDisplayPricePromotionNotCheaper(t *testing.T) {
	tests := []struct {
		name       string
		promoPrice float64
	}{
		{name: "equalToPrice", promoPrice: 20},
		{name: "abovePrice", promoPrice: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := promoProduct(20, tt.promoPrice, nil, nil)

			quote, err := ResolveDisplayPrice(product, testNow)
			require.NoError(t, err)
			// The promotion price still applies; only the discount badge is
			// withheld.
			require.Equal(t, tt.promoPrice, quote.EffectivePrice)
			require.False(t, quote.Discounted)
		})
	}
}

func TestResolveDisplayPriceWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     *string
		end       *string
		wantPromo bool
	}{
		{name: "openEnded", start: nil, end: nil, wantPromo: true},
		{name: "startsToday", start: strPtr("2026-03-10"), end: nil, wantPromo: true},
		{name: "startsTomorrow", start: strPtr("2026-03-11"), end: nil, wantPromo: false},
		{name: "endsToday", start: nil, end: strPtr("2026-03-10"), wantPromo: true},
		{name: "endedYesterday", start: nil, end: strPtr("2026-03-09"), wantPromo: false},
		{name: "insideWindow", start: strPtr("2026-03-01"), end: strPtr("2026-03-31"), wantPromo: true},
		{name: "emptyBoundsActLikeAbsent", start: strPtr(""), end: strPtr(""), wantPromo: true},
		{name: "malformedStartDisables", start: strPtr("03/10/2026"), end: nil, wantPromo: false},
		{name: "malformedEndDisables", start: nil, end: strPtr("soon"), wantPromo: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := promoProduct(20, 15, tt.start, tt.end)

			quote, err := ResolveDisplayPrice(product, testNow)
			require.NoError(t, err)
			if tt.wantPromo {
				require.Equal(t, 15.0, quote.EffectivePrice)
				require.True(t, quote.Discounted)
			} else {
				require.Equal(t, 20.0, quote.EffectivePrice)
				require.False(t, quote.Discounted)
			}
		})
	}
}

func TestResolveDisplayPriceInvariantViolations(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "missingPrice", product: models.Product{Product_id: "p"}},
		{name: "zeroPrice", product: testProduct(0)},
		{name: "negativePrice", product: testProduct(-3)},
		{name: "zeroPromotionPrice", product: promoProduct(20, 0, nil, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDisplayPrice(tt.product, testNow)
			require.ErrorIs(t, err, ErrPriceInvariant)
		})
	}
}
