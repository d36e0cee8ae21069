package booking

import (
	"testing"
	"time"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var pricingNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func pkgPriced(price string) *domain.TravelPackage {
	return &domain.TravelPackage{
		ID:        7,
		Name:      "Lisbon Getaway",
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestComputeQuote_EarlyBirdOnly(t *testing.T) {
	// 2 travelers at 100.00, 31 days out: base 200, 10% early bird.
	quote := ComputeQuote(pkgPriced("100.00"), 2, pricingNow.AddDate(0, 0, 31), pricingNow, DefaultPricingRules())

	assert.Equal(t, "200.00", quote.BaseAmount.StringFixed(2))
	assert.Equal(t, "20.00", quote.Discount.StringFixed(2))
	assert.Equal(t, "180.00", quote.FinalAmount.StringFixed(2))
}

func TestComputeQuote_BulkOnly(t *testing.T) {
	// 5 travelers at 100.00, only 5 days out: base 500, 15% bulk.
	quote := ComputeQuote(pkgPriced("100.00"), 5, pricingNow.AddDate(0, 0, 5), pricingNow, DefaultPricingRules())

	assert.Equal(t, "500.00", quote.BaseAmount.StringFixed(2))
	assert.Equal(t, "75.00", quote.Discount.StringFixed(2))
	assert.Equal(t, "425.00", quote.FinalAmount.StringFixed(2))
}

func TestComputeQuote_DiscountsStack(t *testing.T) {
	// 6 travelers at 100.00, 40 days out: base 600, 10% + 15% = 25%.
	quote := ComputeQuote(pkgPriced("100.00"), 6, pricingNow.AddDate(0, 0, 40), pricingNow, DefaultPricingRules())

	assert.Equal(t, "600.00", quote.BaseAmount.StringFixed(2))
	assert.Equal(t, "150.00", quote.Discount.StringFixed(2))
	assert.Equal(t, "450.00", quote.FinalAmount.StringFixed(2))
}

func TestComputeQuote_NoDiscount(t *testing.T) {
	quote := ComputeQuote(pkgPriced("100.00"), 2, pricingNow.AddDate(0, 0, 5), pricingNow, DefaultPricingRules())

	assert.Equal(t, "200.00", quote.BaseAmount.StringFixed(2))
	assert.True(t, quote.Discount.IsZero())
	assert.Equal(t, "200.00", quote.FinalAmount.StringFixed(2))
}

func TestComputeQuote_ExactlyThirtyDaysGetsEarlyBird(t *testing.T) {
	quote := ComputeQuote(pkgPriced("100.00"), 1, pricingNow.AddDate(0, 0, 30), pricingNow, DefaultPricingRules())

	assert.Equal(t, "10.00", quote.Discount.StringFixed(2))
}

func TestComputeQuote_TwentyNineDaysMissesEarlyBird(t *testing.T) {
	quote := ComputeQuote(pkgPriced("100.00"), 1, pricingNow.AddDate(0, 0, 29), pricingNow, DefaultPricingRules())

	assert.True(t, quote.Discount.IsZero())
}

func TestComputeQuote_ExactlyFiveTravelersGetsBulk(t *testing.T) {
	quote := ComputeQuote(pkgPriced("80.00"), 5, pricingNow.AddDate(0, 0, 5), pricingNow, DefaultPricingRules())

	assert.Equal(t, "60.00", quote.Discount.StringFixed(2))
	assert.Equal(t, "340.00", quote.FinalAmount.StringFixed(2))
}

func TestComputeQuote_FourTravelersMissesBulk(t *testing.T) {
	quote := ComputeQuote(pkgPriced("80.00"), 4, pricingNow.AddDate(0, 0, 5), pricingNow, DefaultPricingRules())

	assert.True(t, quote.Discount.IsZero())
}

func TestComputeQuote_ExactDecimalArithmetic(t *testing.T) {
	// 3 travelers at 33.33, 40 days out: base 99.99, 10% = 9.999 exact.
	quote := ComputeQuote(pkgPriced("33.33"), 3, pricingNow.AddDate(0, 0, 40), pricingNow, DefaultPricingRules())

	assert.Equal(t, "99.99", quote.BaseAmount.StringFixed(2))
	assert.True(t, quote.Discount.Equal(decimal.RequireFromString("9.999")))
	assert.True(t, quote.FinalAmount.Equal(decimal.RequireFromString("89.991")))
}

func TestComputeQuote_FinalNeverNegative(t *testing.T) {
	rules := DefaultPricingRules()
	rules.EarlyBirdPercent = decimal.NewFromInt(90)
	rules.BulkPercent = decimal.NewFromInt(20)

	quote := ComputeQuote(pkgPriced("100.00"), 5, pricingNow.AddDate(0, 0, 40), pricingNow, rules)

	assert.True(t, quote.FinalAmount.IsZero())
}

func TestComputeQuote_ZeroPricePackage(t *testing.T) {
	quote := ComputeQuote(pkgPriced("0.00"), 6, pricingNow.AddDate(0, 0, 40), pricingNow, DefaultPricingRules())

	assert.True(t, quote.BaseAmount.IsZero())
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.FinalAmount.IsZero())
}

func TestComputeQuote_IsDeterministic(t *testing.T) {
	pkg := pkgPriced("149.50")
	date := pricingNow.AddDate(0, 0, 45)

	a := ComputeQuote(pkg, 5, date, pricingNow, DefaultPricingRules())
	b := ComputeQuote(pkg, 5, date, pricingNow, DefaultPricingRules())

	assert.Equal(t, a, b)
}
