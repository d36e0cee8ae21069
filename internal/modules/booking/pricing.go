package booking

import (
	"time"

	"flyease/internal/domain"

	"github.com/shopspring/decimal"
)

// PricingRules are the discount thresholds and percentages. Rules are
// additive: every triggered rule contributes its percentage of the base.
type PricingRules struct {
	EarlyBirdDays    int
	EarlyBirdPercent decimal.Decimal
	BulkTravelerMin  int
	BulkPercent      decimal.Decimal
}

func DefaultPricingRules() PricingRules {
	return PricingRules{
		EarlyBirdDays:    30,
		EarlyBirdPercent: decimal.NewFromInt(10),
		BulkTravelerMin:  5,
		BulkPercent:      decimal.NewFromInt(15),
	}
}

// Quote is a computed, not-yet-persisted price breakdown for a prospective
// booking. Senior/junior sub-counts are carried for the richer customer-info
// step but feed no discount rule yet.
type Quote struct {
	PackageID     int64           `json:"package_id"`
	PackageName   string          `json:"package_name"`
	TravelerCount int             `json:"traveler_count"`
	SeniorCount   int             `json:"senior_count,omitempty"`
	JuniorCount   int             `json:"junior_count,omitempty"`
	TravelDate    time.Time       `json:"travel_date"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	BaseAmount    decimal.Decimal `json:"base_amount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	QuotedAt      time.Time       `json:"quoted_at"`
}

// ComputeQuote derives a price quote from the package, traveler count and
// travel date. It is pure: identical inputs always produce an identical
// quote, so it can run on every form edit. All arithmetic stays in exact
// decimals; rounding happens only at display.
func ComputeQuote(pkg *domain.TravelPackage, travelerCount int, travelDate time.Time, now time.Time, rules PricingRules) Quote {
	base := pkg.UnitPrice.Mul(decimal.NewFromInt(int64(travelerCount)))

	percent := decimal.Zero
	if !travelDate.Before(now.AddDate(0, 0, rules.EarlyBirdDays)) {
		percent = percent.Add(rules.EarlyBirdPercent)
	}
	if travelerCount >= rules.BulkTravelerMin {
		percent = percent.Add(rules.BulkPercent)
	}

	discount := base.Mul(percent).Div(decimal.NewFromInt(100))
	final := base.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Quote{
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		TravelerCount: travelerCount,
		TravelDate:    travelDate,
		UnitPrice:     pkg.UnitPrice,
		BaseAmount:    base,
		Discount:      discount,
		FinalAmount:   final,
		QuotedAt:      now,
	}
}
