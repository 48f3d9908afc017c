package repository

import (
	"context"

	"storefront/transactions/model"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines the interface for transaction storage operations.
type Repository interface {
	// CountTransactions returns the number of documents matching filter,
	// independent of any pagination.
	CountTransactions(ctx context.Context, filter interface{}) (int64, error)
	// FindTransactions returns the documents matching filter, honoring the
	// sort/skip/limit carried by opts.
	FindTransactions(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]model.Transaction, error)
	// TransactionsByMonth returns every document whose dateOfSale falls in
	// the given calendar month (1-12), regardless of year.
	TransactionsByMonth(ctx context.Context, month int) ([]model.Transaction, error)
	// BulkInsertTransactions inserts the given transactions verbatim and
	// returns the number inserted.
	BulkInsertTransactions(ctx context.Context, transactions []model.Transaction) (int, error)
	// RecordIngestRun appends an ingest log entry.
	RecordIngestRun(ctx context.Context, entry model.IngestLog) error
}
