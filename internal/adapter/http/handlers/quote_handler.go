package handlers

import (
	"net/http"

	request "newspaper_checkout/internal/adapter/http/dto/request"
	response "newspaper_checkout/internal/adapter/http/dto/response"
	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/usecase"
	"newspaper_checkout/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var errInvalidQuoteQuery = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "distance_km is required and must not be negative", http.StatusBadRequest)

// QuoteHandler exposes the pricing engine without a checkout session.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote godoc
// @Summary  Preview subscription prices
// @Tags     quotes
// @Produce  json
// @Param    distance_km        query     number  true   "Distance from the publishing house in km"
// @Param    billing_cycle      query     string  false  "Monthly or Annual"
// @Param    delivery_method    query     string  false  "Post or DeliveryAgent"
// @Param    postal_code        query     string  false  "Postal code, enables the courier eligibility check and prices an ineligible courier selection as post"
// @Param    has_local_edition  query     bool    false  "Whether a local edition exists"
// @Success  200                {object}  response.QuotePreviewResponse
// @Failure  400                {object}  pkg.HTTPError
// @Router   /quotes [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	var q request.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuoteQuery.HTTPStatus, errInvalidQuoteQuery.ToHTTPError())
		return
	}

	cycle, method := entities.BillingCycle(q.BillingCycle), entities.DeliveryMethod(q.DeliveryMethod)
	var (
		preview usecase.QuotePreview
		err     error
	)
	if q.PostalCode != "" {
		preview, err = h.usecase.PreviewForAddress(q.PostalCode, *q.DistanceKm, q.HasLocalEdition, cycle, method)
	} else {
		preview, err = h.usecase.Preview(*q.DistanceKm, cycle, method)
	}
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePreview(preview))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrNegativeDistance), errors.Is(err, pricing.ErrInvalidDistance):
		return errInvalidQuoteQuery
	default:
		return mapCheckoutError(err)
	}
}
