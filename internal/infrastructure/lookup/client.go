package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/infrastructure/logger"
	"newspaper_checkout/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
)

var (
	ErrUpstreamStatus      = errors.New("lookup service returned an unexpected status")
	ErrUpstreamUnreachable = errors.New("lookup service unreachable")
	ErrMalformedResponse   = errors.New("lookup service returned a malformed response")
	ErrEditionDataMissing  = errors.New("lookup service returned no edition data")
)

const (
	pathDistance     = "/distance"
	pathLocalEdition = "/localversions"

	maxResponseBytes = 1 << 20
)

// Client talks to the distance / local edition service. It never retries: a
// failed lookup is reported to the caller, which blocks the wizard step.
type Client struct {
	baseURL          string
	http             *http.Client
	originPostalCode string
}

var (
	_ interfaces.IDistanceLookup = (*Client)(nil)
	_ interfaces.IEditionLookup  = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration, originPostalCode string) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:          strings.TrimRight(baseURL, "/"),
		http:             &http.Client{Timeout: timeout},
		originPostalCode: strings.TrimSpace(originPostalCode),
	}
}

type distanceResponse struct {
	DistanceCalcObj []struct {
		Distance       float64 `json:"distance"`
		PlzDestination string  `json:"plzDestination"`
	} `json:"distanceCalcObj"`
}

// GetDistance resolves the travel distance to postalCode.
//
// The upstream answers unknown postal codes with a missing entry or a zero
// distance; both become a not_found quote, except for the origin postal code
// where zero is the real distance.
func (c *Client) GetDistance(ctx context.Context, postalCode string) (entities.DistanceQuote, error) {
	notFound := entities.DistanceQuote{PostalCode: postalCode, Status: entities.DistanceStatusNotFound}

	var resp distanceResponse
	status, err := c.getJSON(ctx, pathDistance, url.Values{"plzDestination": {postalCode}}, &resp)
	if status == http.StatusNotFound {
		logger.L.Infow("[lookup][distance] postal code unknown", "postal_code", postalCode)
		return notFound, nil
	}
	if err != nil {
		return entities.DistanceQuote{}, err
	}
	if len(resp.DistanceCalcObj) == 0 {
		logger.L.Infow("[lookup][distance] empty result", "postal_code", postalCode)
		return notFound, nil
	}

	km := resp.DistanceCalcObj[0].Distance
	if km < 0 {
		return entities.DistanceQuote{}, errors.Wrapf(ErrMalformedResponse, "negative distance %v for %s", km, postalCode)
	}
	if km == 0 && postalCode != c.originPostalCode {
		logger.L.Infow("[lookup][distance] zero distance for non-origin postal code", "postal_code", postalCode)
		return notFound, nil
	}

	logger.L.Debugw("[lookup][distance] resolved", "postal_code", postalCode, "distance_km", km)
	return entities.DistanceQuote{PostalCode: postalCode, DistanceKm: km, Status: entities.DistanceStatusResolved}, nil
}

// GetLocalEditions returns the editions deliverable to postalCode. An empty
// catalog is a valid answer; a response without edition data is an error.
func (c *Client) GetLocalEditions(ctx context.Context, postalCode string) (entities.EditionCatalog, error) {
	var envelope map[string]json.RawMessage
	if _, err := c.getJSON(ctx, pathLocalEdition, url.Values{"plz": {postalCode}}, &envelope); err != nil {
		return entities.EditionCatalog{}, err
	}

	raw, ok := envelope["localversions"]
	if !ok {
		return entities.EditionCatalog{}, errors.Wrapf(ErrEditionDataMissing, "postal code %s", postalCode)
	}

	catalog, err := ParseEditionCatalog(postalCode, raw)
	if err != nil {
		logger.L.Warnw("[lookup][editions] malformed catalog", "postal_code", postalCode, "err", err)
		return entities.EditionCatalog{}, err
	}
	logger.L.Debugw("[lookup][editions] resolved", "postal_code", postalCode, "editions", len(catalog.Editions))
	return catalog, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (int, error) {
	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		logger.L.Warnw("[lookup][http] request failed", "path", path, "err", err)
		return 0, errors.Mark(errors.Wrapf(err, "GET %s", path), ErrUpstreamUnreachable)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return res.StatusCode, errors.Mark(errors.Wrapf(err, "read %s", path), ErrUpstreamUnreachable)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		logger.L.Warnw("[lookup][http] unexpected status", "path", path, "status", res.StatusCode)
		return res.StatusCode, errors.Wrapf(ErrUpstreamStatus, "GET %s: %d", path, res.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return res.StatusCode, errors.Mark(errors.Wrapf(err, "decode %s", path), ErrMalformedResponse)
	}
	return res.StatusCode, nil
}
