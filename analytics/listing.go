package analytics

import (
	"context"
	"fmt"

	"storefront/transactions/model"
	"storefront/transactions/repository"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListingResult is the wire shape of one listing page.
type ListingResult struct {
	TotalProductsCount int64               `json:"totalProductsCount"`
	Products           []model.Transaction `json:"products"`
}

// ListingService serves paginated, filtered transaction listings.
type ListingService struct {
	repo repository.Repository
}

// NewListingService creates a new ListingService.
func NewListingService(repo repository.Repository) *ListingService {
	return &ListingService{repo: repo}
}

// List returns one page of transactions for the given search token.
// The skip offset always uses the fixed page size of 10, even on the numeric
// branch where the per-page limit is 4.
func (s *ListingService) List(ctx context.Context, page int, search string) (*ListingResult, error) {
	filter := ResolveFilter(search)

	// page <= 0 had no defined behavior upstream; clamp to the first page.
	skip := int64(page-1) * DefaultPageSize
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().SetSkip(skip).SetLimit(filter.Limit)
	if len(filter.Sort) > 0 {
		opts.SetSort(filter.Sort)
	}

	products, err := s.repo.FindTransactions(ctx, filter.Query, opts)
	if err != nil {
		return nil, fmt.Errorf("listing query failed: %w", err)
	}
	if products == nil {
		products = []model.Transaction{}
	}

	// Known inconsistency, kept on purpose: the numeric branch has always
	// reported a fixed total of 4 rather than the true match count, and
	// clients depend on it. Every other branch reports the real count.
	total := int64(NumericSearchLimit)
	if !filter.Numeric {
		total, err = s.repo.CountTransactions(ctx, filter.Query)
		if err != nil {
			return nil, fmt.Errorf("listing count failed: %w", err)
		}
	}

	return &ListingResult{
		TotalProductsCount: total,
		Products:           products,
	}, nil
}
