// Package pricing holds the subscription price formula, courier eligibility
// and the summary frozen at the end of the configure step. Everything here is
// pure and safe to call from any goroutine.
package pricing

import (
	"math"

	"newspaper_checkout/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeDistance      = errors.New("distance must not be negative")
	ErrInvalidDistance       = errors.New("distance must be a finite number")
	ErrUnknownFrequency      = errors.New("unknown subscription frequency")
	ErrUnknownBillingCycle   = errors.New("unknown billing cycle")
	ErrUnknownDeliveryMethod = errors.New("unknown delivery method")
)

const (
	// Postal surcharge tiers, in kilometers from the publishing house.
	FarSurchargeFromKm = 50.0
	MidSurchargeFromKm = 20.0

	currencyPrecision = 2
)

var (
	dailyBasePrice   = decimal.RequireFromString("15.99")
	weekendBasePrice = decimal.RequireFromString("8.99")
	farSurcharge     = decimal.RequireFromString("5.00")
	midSurcharge     = decimal.RequireFromString("2.50")
	annualFactor     = decimal.RequireFromString("0.9")
	monthsPerYear    = decimal.NewFromInt(12)
	savingsEpsilon   = decimal.RequireFromString("0.0001")
)

// BasePrice is the monthly price before any distance surcharge.
func BasePrice(frequency entities.Frequency) (decimal.Decimal, error) {
	switch frequency {
	case entities.FrequencyDaily:
		return dailyBasePrice, nil
	case entities.FrequencyWeekend:
		return weekendBasePrice, nil
	default:
		return decimal.Zero, errors.Wrapf(ErrUnknownFrequency, "frequency %q", frequency)
	}
}

// Surcharge is the monthly distance surcharge. Courier delivery never pays it.
func Surcharge(distanceKm float64, method entities.DeliveryMethod) decimal.Decimal {
	if method != entities.DeliveryMethodPost {
		return decimal.Zero
	}
	switch {
	case distanceKm > FarSurchargeFromKm:
		return farSurcharge
	case distanceKm > MidSurchargeFromKm:
		return midSurcharge
	default:
		return decimal.Zero
	}
}

// ComputePrice prices one subscription configuration.
//
// The annual price is derived from the unrounded monthly amount and rounded on
// its own, so rounding never compounds.
func ComputePrice(
	frequency entities.Frequency,
	distanceKm float64,
	billingCycle entities.BillingCycle,
	deliveryMethod entities.DeliveryMethod,
) (entities.PriceQuote, error) {
	if err := ValidateDistance(distanceKm); err != nil {
		return entities.PriceQuote{}, err
	}
	base, err := BasePrice(frequency)
	if err != nil {
		return entities.PriceQuote{}, err
	}
	if !billingCycle.Valid() {
		return entities.PriceQuote{}, errors.Wrapf(ErrUnknownBillingCycle, "billing cycle %q", billingCycle)
	}
	if !deliveryMethod.Valid() {
		return entities.PriceQuote{}, errors.Wrapf(ErrUnknownDeliveryMethod, "delivery method %q", deliveryMethod)
	}

	monthly := base.Add(Surcharge(distanceKm, deliveryMethod))
	yearly := monthly.Mul(monthsPerYear)
	if billingCycle == entities.BillingCycleAnnual {
		yearly = yearly.Mul(annualFactor)
	}

	monthlyRounded := monthly.Round(currencyPrecision)
	annualRounded := yearly.Round(currencyPrecision)
	savings := monthlyRounded.Mul(monthsPerYear).Sub(annualRounded).Round(currencyPrecision)

	return entities.PriceQuote{
		MonthlyPrice:  monthlyRounded.InexactFloat64(),
		AnnualPrice:   annualRounded.InexactFloat64(),
		AnnualSavings: savings.InexactFloat64(),
		ShowSavings:   billingCycle == entities.BillingCycleAnnual && savings.GreaterThan(savingsEpsilon),
	}, nil
}

// ComputePriceTable prices both frequencies for the same distance, cycle and
// delivery method, as shown side by side on the configure step.
func ComputePriceTable(
	distanceKm float64,
	billingCycle entities.BillingCycle,
	deliveryMethod entities.DeliveryMethod,
) (map[entities.Frequency]entities.PriceQuote, error) {
	table := make(map[entities.Frequency]entities.PriceQuote, 2)
	for _, f := range []entities.Frequency{entities.FrequencyDaily, entities.FrequencyWeekend} {
		q, err := ComputePrice(f, distanceKm, billingCycle, deliveryMethod)
		if err != nil {
			return nil, err
		}
		table[f] = q
	}
	return table, nil
}

// PriceDraft recomputes the draft prices. It is the only place draft prices
// are written.
func PriceDraft(draft entities.SubscriptionDraft) (entities.SubscriptionDraft, entities.PriceQuote, error) {
	q, err := ComputePrice(draft.Frequency, draft.DistanceKm, draft.BillingCycle, draft.DeliveryMethod)
	if err != nil {
		return draft, entities.PriceQuote{}, err
	}
	draft.MonthlyPrice = q.MonthlyPrice
	draft.AnnualPrice = q.AnnualPrice
	return draft, q, nil
}

func ValidateDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return ErrInvalidDistance
	}
	if distanceKm < 0 {
		return errors.Wrapf(ErrNegativeDistance, "got %v km", distanceKm)
	}
	return nil
}

// FormatPrice renders an amount in euros, e.g. "€15.99".
func FormatPrice(amount float64) string {
	return "€" + decimal.NewFromFloat(amount).StringFixed(currencyPrecision)
}
