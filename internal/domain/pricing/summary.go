package pricing

import (
	"time"

	"newspaper_checkout/internal/domain/entities"

	"github.com/cockroachdb/errors"
)

var (
	ErrEditionNotSelected  = errors.New("no newspaper edition selected")
	ErrEditionNotInCatalog = errors.New("selected edition is not available for this postal code")
	ErrPriceMismatch       = errors.New("draft prices do not match the pricing formula")
)

func FrequencyLabel(f entities.Frequency) string {
	switch f {
	case entities.FrequencyDaily:
		return "Daily (Mon-Sat)"
	case entities.FrequencyWeekend:
		return "Weekend (Fri-Sat)"
	default:
		return string(f)
	}
}

// BuildSummary validates the draft one last time and freezes it into the
// summary shown on every later step.
func BuildSummary(
	draft entities.SubscriptionDraft,
	catalog entities.EditionCatalog,
	city string,
	courierEligible bool,
	now time.Time,
) (entities.QuoteSummary, error) {
	if draft.EditionID == nil {
		return entities.QuoteSummary{}, ErrEditionNotSelected
	}
	edition, ok := catalog.Find(*draft.EditionID)
	if !ok {
		return entities.QuoteSummary{}, errors.Wrapf(ErrEditionNotInCatalog, "edition %d", *draft.EditionID)
	}
	if !draft.DeliveryMethod.Valid() {
		return entities.QuoteSummary{}, ErrDeliveryMethodRequired
	}
	if draft.DeliveryMethod == entities.DeliveryMethodDeliveryAgent && !courierEligible {
		return entities.QuoteSummary{}, ErrCourierNotEligible
	}

	quote, err := ComputePrice(draft.Frequency, draft.DistanceKm, draft.BillingCycle, draft.DeliveryMethod)
	if err != nil {
		return entities.QuoteSummary{}, err
	}
	if quote.MonthlyPrice != draft.MonthlyPrice || quote.AnnualPrice != draft.AnnualPrice {
		return entities.QuoteSummary{}, errors.Wrapf(ErrPriceMismatch,
			"draft %.2f/%.2f, formula %.2f/%.2f", draft.MonthlyPrice, draft.AnnualPrice, quote.MonthlyPrice, quote.AnnualPrice)
	}

	s := entities.QuoteSummary{
		EditionID:           edition.ID,
		EditionName:         edition.Name,
		Frequency:           draft.Frequency,
		FrequencyLabel:      FrequencyLabel(draft.Frequency),
		DeliveryMethod:      draft.DeliveryMethod,
		DeliveryMethodLabel: DeliveryMethodLabel(draft.DeliveryMethod),
		BillingCycle:        draft.BillingCycle,
		PostalCode:          draft.PostalCode,
		City:                city,
		DistanceKm:          draft.DistanceKm,
		Quote:               quote,
		MonthlyPriceLabel:   FormatPrice(quote.MonthlyPrice),
		AnnualPriceLabel:    FormatPrice(quote.AnnualPrice),
		FrozenAt:            now.UTC(),
	}
	if quote.ShowSavings {
		s.SavingsLabel = "Save " + FormatPrice(quote.AnnualSavings)
	}
	return s, nil
}
