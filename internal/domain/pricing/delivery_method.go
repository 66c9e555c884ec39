package pricing

import (
	"newspaper_checkout/internal/domain/entities"

	"github.com/cockroachdb/errors"
)

var (
	ErrCourierNotEligible     = errors.New("courier delivery is not available for this address")
	ErrDeliveryMethodRequired = errors.New("delivery method must be post or courier")
)

// SelectDeliveryMethod applies one customer selection to the delivery method
// state machine:
//
//	Unset   -> Courier  only if eligible
//	Unset   -> Post     always
//	Courier -> Post     always
//	Post    -> Courier  only if eligible
//	any     -> Unset    never
//
// On error the current method is returned unchanged.
func SelectDeliveryMethod(current, requested entities.DeliveryMethod, courierEligible bool) (entities.DeliveryMethod, error) {
	switch requested {
	case entities.DeliveryMethodPost:
		return requested, nil
	case entities.DeliveryMethodDeliveryAgent:
		if !courierEligible {
			return current, ErrCourierNotEligible
		}
		return requested, nil
	case entities.DeliveryMethodUnset:
		return current, ErrDeliveryMethodRequired
	default:
		return current, errors.Wrapf(ErrUnknownDeliveryMethod, "delivery method %q", requested)
	}
}

// DefaultDeliveryMethod is used when the draft is created: courier when the
// address qualifies, post otherwise.
func DefaultDeliveryMethod(courierEligible bool) entities.DeliveryMethod {
	if courierEligible {
		return entities.DeliveryMethodDeliveryAgent
	}
	return entities.DeliveryMethodPost
}

// ReconcileDeliveryMethod brings a stored selection back in line with the
// current eligibility. corrected is true when a courier selection had to be
// reset to post, which the caller must tell the customer about.
func ReconcileDeliveryMethod(current entities.DeliveryMethod, courierEligible bool) (method entities.DeliveryMethod, corrected bool) {
	switch current {
	case entities.DeliveryMethodDeliveryAgent:
		if courierEligible {
			return current, false
		}
		return entities.DeliveryMethodPost, true
	case entities.DeliveryMethodPost:
		return current, false
	default:
		return DefaultDeliveryMethod(courierEligible), false
	}
}

func DeliveryMethodLabel(m entities.DeliveryMethod) string {
	switch m {
	case entities.DeliveryMethodDeliveryAgent:
		return "Morning Courier"
	case entities.DeliveryMethodPost:
		return "Postal Service"
	default:
		return "Not selected"
	}
}
