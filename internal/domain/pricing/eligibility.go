package pricing

import "strings"

const (
	DefaultOriginPostalCode     = "72762"
	DefaultMaxCourierDistanceKm = 50.0
)

// EligibilityPolicy decides where the morning courier delivers.
type EligibilityPolicy struct {
	OriginPostalCode     string
	MaxCourierDistanceKm float64
}

var DefaultPolicy = EligibilityPolicy{
	OriginPostalCode:     DefaultOriginPostalCode,
	MaxCourierDistanceKm: DefaultMaxCourierDistanceKm,
}

func NewEligibilityPolicy(originPostalCode string, maxCourierDistanceKm float64) EligibilityPolicy {
	p := DefaultPolicy
	if v := strings.TrimSpace(originPostalCode); v != "" {
		p.OriginPostalCode = v
	}
	if maxCourierDistanceKm > 0 {
		p.MaxCourierDistanceKm = maxCourierDistanceKm
	}
	return p
}

// IsCourierEligible requires a local edition for the area and a destination
// within the courier radius (inclusive). The origin postal code is always
// inside the radius.
func (p EligibilityPolicy) IsCourierEligible(postalCode string, distanceKm float64, hasLocalEdition bool) bool {
	if !hasLocalEdition {
		return false
	}
	if p.OriginPostalCode != "" && strings.TrimSpace(postalCode) == p.OriginPostalCode {
		return true
	}
	if ValidateDistance(distanceKm) != nil {
		return false
	}
	return distanceKm <= p.MaxCourierDistanceKm
}

// IsCourierEligible applies DefaultPolicy.
func IsCourierEligible(postalCode string, distanceKm float64, hasLocalEdition bool) bool {
	return DefaultPolicy.IsCourierEligible(postalCode, distanceKm, hasLocalEdition)
}
