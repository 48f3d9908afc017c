package api

import (
	"github.com/gin-gonic/gin"

	"storefront/transactions/analytics"
	"storefront/transactions/ingest"
	"storefront/transactions/repository"
)

// RegisterRoutes wires the services over the given repository and mounts the
// HTTP surface under /api.
func RegisterRoutes(r *gin.Engine, repo repository.Repository, gateway *ingest.Gateway) {
	listing := analytics.NewListingService(repo)
	aggregator := analytics.NewMonthlyAggregator(repo)
	reports := analytics.NewReportBuilder(aggregator)

	h := NewHandler(listing, aggregator, reports, gateway)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// One-time bulk load from the upstream feed
	api.GET("/fetching", h.FetchFeed)

	// Listing
	api.GET("/transactions", h.ListTransactions)

	// Monthly aggregation views
	api.GET("/staticks", h.FinancialSummary)
	api.GET("/pricerange", h.PriceHistogram)
	api.GET("/piechart", h.CategoryDistribution)

	// Composite report over the three monthly views
	api.GET("/", h.CompositeReport)
}
