package entities

// DistanceStatus tells a real distance apart from a postal code the distance
// service does not know.
type DistanceStatus string

const (
	DistanceStatusResolved DistanceStatus = "resolved"
	DistanceStatusNotFound DistanceStatus = "not_found"
)

// DistanceQuote is the travel distance from the publishing house to a postal
// code. DistanceKm is only meaningful when Status is resolved.
type DistanceQuote struct {
	PostalCode string         `json:"postal_code"`
	DistanceKm float64        `json:"distance_km"`
	Status     DistanceStatus `json:"status"`
}

func (q DistanceQuote) Resolved() bool {
	return q.Status == DistanceStatusResolved
}
