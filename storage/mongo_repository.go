package storage

import (
	"context"
	"fmt"

	"storefront/transactions/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// TransactionsCollection is the flat collection holding every ingested record.
	TransactionsCollection = "transactions"
	ingestRunsCollection   = "ingestRuns"

	// TextIndexName is the compound text index backing relevance search.
	TextIndexName = "title_description_text"
)

// MongoRepository implements the repository.Repository interface for MongoDB.
type MongoRepository struct {
	provider CollectionProvider
}

// NewMongoRepository creates a new MongoRepository.
func NewMongoRepository(provider CollectionProvider) *MongoRepository {
	return &MongoRepository{
		provider: provider,
	}
}

// MonthOfSaleFilter builds the query matching records whose dateOfSale falls
// in the given calendar month (1-12), ignoring the year.
func MonthOfSaleFilter(month int) bson.M {
	return bson.M{
		"$expr": bson.M{
			"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, month},
		},
	}
}

// EnsureIndexes creates the compound text index over title and description
// required for relevance-scored free-text search. Safe to call repeatedly.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	collection := r.provider.Collection(TransactionsCollection)
	index := mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
		},
		Options: options.Index().SetName(TextIndexName),
	}
	if _, err := collection.CreateIndex(ctx, index); err != nil {
		return fmt.Errorf("failed to ensure text index on %s: %w", TransactionsCollection, err)
	}

	return nil
}

// CountTransactions counts the documents matching filter, independent of pagination.
func (r *MongoRepository) CountTransactions(ctx context.Context, filter interface{}) (int64, error) {
	collection := r.provider.Collection(TransactionsCollection)
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents in %s: %w", TransactionsCollection, err)
	}

	return count, nil
}

// FindTransactions returns the documents matching filter, honoring the
// sort/skip/limit carried by opts. opts may be nil.
func (r *MongoRepository) FindTransactions(
	ctx context.Context,
	filter interface{},
	opts *options.FindOptions,
) ([]model.Transaction, error) {
	collection := r.provider.Collection(TransactionsCollection)
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", TransactionsCollection, err)
	}

	var transactions []model.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode documents from %s: %w", TransactionsCollection, err)
	}

	return transactions, nil
}

// TransactionsByMonth returns every document sold in the given calendar month.
func (r *MongoRepository) TransactionsByMonth(ctx context.Context, month int) ([]model.Transaction, error) {
	return r.FindTransactions(ctx, MonthOfSaleFilter(month), nil)
}

// BulkInsertTransactions inserts transactions into the transactions collection.
// The insert is ordered, so a failure aborts at the first rejected document.
func (r *MongoRepository) BulkInsertTransactions(
	ctx context.Context,
	transactions []model.Transaction,
) (int, error) {
	if len(transactions) == 0 {
		return 0, nil // Nothing to insert
	}

	documents := make([]interface{}, 0, len(transactions))
	for _, doc := range transactions {
		documents = append(documents, doc)
	}

	collection := r.provider.Collection(TransactionsCollection)
	result, err := collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("failed to perform bulk insert into %s: %w", TransactionsCollection, err)
	}

	return len(result.InsertedIDs), nil
}

// RecordIngestRun appends an entry to the ingestRuns collection.
func (r *MongoRepository) RecordIngestRun(ctx context.Context, entry model.IngestLog) error {
	collection := r.provider.Collection(ingestRunsCollection)
	if _, err := collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert into %s collection: %w", ingestRunsCollection, err)
	}

	return nil
}
