package usecase

import (
	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
)

// QuotePreview prices both frequencies for one distance without a session.
type QuotePreview struct {
	DistanceKm     float64
	BillingCycle   entities.BillingCycle
	DeliveryMethod entities.DeliveryMethod
	Quotes         map[entities.Frequency]entities.PriceQuote
	// CourierEligible is set only when the preview was made for an address.
	CourierEligible *bool
	Notices         []Notice
}

type IQuoteUseCase interface {
	Preview(distanceKm float64, cycle entities.BillingCycle, method entities.DeliveryMethod) (QuotePreview, error)
	PreviewForAddress(postalCode string, distanceKm float64, hasLocalEdition bool, cycle entities.BillingCycle, method entities.DeliveryMethod) (QuotePreview, error)
	CheckEligibility(postalCode string, distanceKm float64, hasLocalEdition bool) bool
}

type QuoteUseCase struct {
	policy pricing.EligibilityPolicy
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(policy pricing.EligibilityPolicy) *QuoteUseCase {
	return &QuoteUseCase{policy: policy}
}

func (u *QuoteUseCase) Preview(distanceKm float64, cycle entities.BillingCycle, method entities.DeliveryMethod) (QuotePreview, error) {
	if cycle == "" {
		cycle = entities.BillingCycleMonthly
	}
	if method == entities.DeliveryMethodUnset {
		method = entities.DeliveryMethodPost
	}
	table, err := pricing.ComputePriceTable(distanceKm, cycle, method)
	if err != nil {
		return QuotePreview{}, err
	}
	return QuotePreview{
		DistanceKm:     distanceKm,
		BillingCycle:   cycle,
		DeliveryMethod: method,
		Quotes:         table,
	}, nil
}

// PreviewForAddress prices like Preview, but a courier selection the address
// cannot get is priced as post and reported with a notice.
func (u *QuoteUseCase) PreviewForAddress(postalCode string, distanceKm float64, hasLocalEdition bool, cycle entities.BillingCycle, method entities.DeliveryMethod) (QuotePreview, error) {
	eligible := u.policy.IsCourierEligible(postalCode, distanceKm, hasLocalEdition)

	var notices []Notice
	if method != entities.DeliveryMethodUnset {
		var corrected bool
		method, corrected = pricing.ReconcileDeliveryMethod(method, eligible)
		if corrected {
			notices = append(notices, Notice{Code: NoticeDeliveryMethodReset, Message: deliveryMethodResetMessage})
		}
	}

	preview, err := u.Preview(distanceKm, cycle, method)
	if err != nil {
		return QuotePreview{}, err
	}
	preview.CourierEligible = &eligible
	preview.Notices = notices
	return preview, nil
}

func (u *QuoteUseCase) CheckEligibility(postalCode string, distanceKm float64, hasLocalEdition bool) bool {
	return u.policy.IsCourierEligible(postalCode, distanceKm, hasLocalEdition)
}
