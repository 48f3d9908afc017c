// Package api exposes the analytics services over HTTP.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/transactions/analytics"
	"storefront/transactions/appcontext"
	"storefront/transactions/ingest"

	"github.com/gin-gonic/gin"
)

const (
	msgProvideMonth  = "Provide month"
	msgInternalError = "Internal server error"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	listing    *analytics.ListingService
	aggregator *analytics.MonthlyAggregator
	reports    *analytics.ReportBuilder
	gateway    *ingest.Gateway
}

// NewHandler creates a new Handler.
func NewHandler(
	listing *analytics.ListingService,
	aggregator *analytics.MonthlyAggregator,
	reports *analytics.ReportBuilder,
	gateway *ingest.Gateway,
) *Handler {
	return &Handler{
		listing:    listing,
		aggregator: aggregator,
		reports:    reports,
		gateway:    gateway,
	}
}

// FetchFeed triggers the one-time bulk load from the upstream feed.
func (h *Handler) FetchFeed(c *gin.Context) {
	stats, err := h.gateway.Ingest(c.Request.Context())
	if err != nil {
		internalError(c, "feed ingestion", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products successfully fetched",
		"inserted": stats.Inserted,
	})
}

// ListTransactions serves one page of the filtered listing.
func (h *Handler) ListTransactions(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "page must be an integer"})
			return
		}
		page = parsed
	}

	result, err := h.listing.List(c.Request.Context(), page, c.Query("search"))
	if err != nil {
		internalError(c, "transaction listing", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FinancialSummary serves the monthly revenue and sold/unsold counts.
func (h *Handler) FinancialSummary(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	summary, err := h.aggregator.FinancialSummary(c.Request.Context(), month)
	if err != nil {
		aggregationError(c, "financial summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// PriceHistogram serves the monthly price-bucket histogram.
func (h *Handler) PriceHistogram(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	histogram, err := h.aggregator.PriceHistogram(c.Request.Context(), month)
	if err != nil {
		aggregationError(c, "price histogram", err)
		return
	}

	c.JSON(http.StatusOK, histogram)
}

// CategoryDistribution serves the monthly category counts.
func (h *Handler) CategoryDistribution(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	distribution, err := h.aggregator.CategoryDistribution(c.Request.Context(), month)
	if err != nil {
		aggregationError(c, "category distribution", err)
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// CompositeReport serves the merged monthly report.
func (h *Handler) CompositeReport(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	report, err := h.reports.Report(c.Request.Context(), month)
	if err != nil {
		aggregationError(c, "composite report", err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// monthParam extracts the required month query parameter. On a missing or
// non-integer value it writes the client error itself and reports false.
func monthParam(c *gin.Context) (int, bool) {
	raw := c.Query("month")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgProvideMonth})
		return 0, false
	}

	month, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgProvideMonth})
		return 0, false
	}

	return month, true
}

// aggregationError maps a failed monthly aggregation to a response: month
// validation failures are the caller's fault, everything else is uniform.
func aggregationError(c *gin.Context, operation string, err error) {
	if errors.Is(err, analytics.ErrInvalidMonth) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	internalError(c, operation, err)
}

// internalError logs the cause for operators and returns a fixed message;
// the underlying error never reaches the caller.
func internalError(c *gin.Context, operation string, err error) {
	ctx := c.Request.Context()
	logger := appcontext.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "Request failed", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternalError})
}
