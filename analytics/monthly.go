package analytics

import (
	"context"
	"errors"
	"fmt"

	"storefront/transactions/repository"
)

// ErrInvalidMonth is returned when a month selector is missing or outside 1-12.
var ErrInvalidMonth = errors.New("month must be an integer between 1 and 12")

// histogramBuckets are the ten fixed price bands, in ascending order. Each
// band is right-closed: a price on a boundary falls in the lower band. The
// labels are the wire contract and must not change.
var histogramBuckets = []string{
	"0 - 100",
	"101-200",
	"201-300",
	"301-400",
	"401-500",
	"501-600",
	"601-700",
	"701-800",
	"801-900",
	"901-above",
}

// FinancialSummary is the monthly revenue and sold/unsold view.
type FinancialSummary struct {
	TotalSaleAmount float64 `json:"totalSaleAmount"`
	SoldItem        int     `json:"soldItem"`
	NotSoldItem     int     `json:"notSoldItem"`
}

// MonthlyAggregator computes the three independent monthly projections over
// the same month-of-sale filter.
type MonthlyAggregator struct {
	repo repository.Repository
}

// NewMonthlyAggregator creates a new MonthlyAggregator.
func NewMonthlyAggregator(repo repository.Repository) *MonthlyAggregator {
	return &MonthlyAggregator{repo: repo}
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w, got %d", ErrInvalidMonth, month)
	}

	return nil
}

// FinancialSummary computes total sale amount and sold/unsold counts for the
// given calendar month. Only a strict sold == true counts as sold; absent and
// false both land in notSoldItem.
func (a *MonthlyAggregator) FinancialSummary(ctx context.Context, month int) (*FinancialSummary, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := a.repo.TransactionsByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("financial summary for month %d failed: %w", month, err)
	}

	summary := &FinancialSummary{}
	for _, t := range transactions {
		summary.TotalSaleAmount += t.Price
		if t.IsSold() {
			summary.SoldItem++
		} else {
			summary.NotSoldItem++
		}
	}

	return summary, nil
}

// PriceHistogram counts the month's transactions into the ten fixed price
// bands. Every band is present in the result, including empty ones.
func (a *MonthlyAggregator) PriceHistogram(ctx context.Context, month int) (map[string]int, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := a.repo.TransactionsByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("price histogram for month %d failed: %w", month, err)
	}

	histogram := make(map[string]int, len(histogramBuckets))
	for _, bucket := range histogramBuckets {
		histogram[bucket] = 0
	}
	for _, t := range transactions {
		histogram[bucketFor(t.Price)]++
	}

	return histogram, nil
}

// CategoryDistribution counts the month's transactions per raw category
// label. Categories with no matches are absent, unlike histogram bands.
func (a *MonthlyAggregator) CategoryDistribution(ctx context.Context, month int) (map[string]int, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	transactions, err := a.repo.TransactionsByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("category distribution for month %d failed: %w", month, err)
	}

	categories := make(map[string]int)
	for _, t := range transactions {
		categories[t.Category]++
	}

	return categories, nil
}

// bucketFor maps a price to its band label. Bands are disjoint and exhaustive
// since every boundary is inclusive on the upper side only.
func bucketFor(price float64) string {
	switch {
	case price <= 100:
		return histogramBuckets[0]
	case price <= 200:
		return histogramBuckets[1]
	case price <= 300:
		return histogramBuckets[2]
	case price <= 400:
		return histogramBuckets[3]
	case price <= 500:
		return histogramBuckets[4]
	case price <= 600:
		return histogramBuckets[5]
	case price <= 700:
		return histogramBuckets[6]
	case price <= 800:
		return histogramBuckets[7]
	case price <= 900:
		return histogramBuckets[8]
	default:
		return histogramBuckets[9]
	}
}
