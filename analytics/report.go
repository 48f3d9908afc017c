package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CompositeReport merges the three monthly views under their historical wire
// names. The key spellings are the contract; do not correct them.
type CompositeReport struct {
	Staticks *FinancialSummary `json:"staticks"`
	BarChat  map[string]int    `json:"barChat"`
	PieChar  map[string]int    `json:"pieChar"`
}

// ReportBuilder fans out to the three monthly projections and joins them
// into one response.
type ReportBuilder struct {
	aggregator *MonthlyAggregator
}

// NewReportBuilder creates a new ReportBuilder.
func NewReportBuilder(aggregator *MonthlyAggregator) *ReportBuilder {
	return &ReportBuilder{aggregator: aggregator}
}

// Report computes the composite report for the given month. The three
// sub-queries run concurrently and the result is all-or-nothing: any
// sub-failure fails the whole call with no partial views.
func (b *ReportBuilder) Report(ctx context.Context, month int) (*CompositeReport, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	var report CompositeReport
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := b.aggregator.FinancialSummary(ctx, month)
		if err != nil {
			return err
		}
		report.Staticks = summary
		return nil
	})
	g.Go(func() error {
		histogram, err := b.aggregator.PriceHistogram(ctx, month)
		if err != nil {
			return err
		}
		report.BarChat = histogram
		return nil
	})
	g.Go(func() error {
		distribution, err := b.aggregator.CategoryDistribution(ctx, month)
		if err != nil {
			return err
		}
		report.PieChar = distribution
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("composite report for month %d failed: %w", month, err)
	}

	return &report, nil
}
