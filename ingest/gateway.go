// Package ingest pulls the upstream transaction feed and bulk-loads it into
// the record store.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/transactions/appcontext"
	"storefront/transactions/config"
	"storefront/transactions/model"
	"storefront/transactions/repository"

	"github.com/google/uuid"
)

var (
	errFeedUnexpectedStatusCode = errors.New("unexpected http status code from feed")
	errFeedBodyUnmarshall       = errors.New("error unmarshalling feed response body")
)

// FeedUnexpectedStatusCodeError is an error wrapper for non-success feed responses.
func FeedUnexpectedStatusCodeError(statusCode int) error {
	return fmt.Errorf("%w, %d", errFeedUnexpectedStatusCode, statusCode)
}

// FeedBodyUnmarshallError is an error wrapper for undecodable feed payloads.
func FeedBodyUnmarshallError(baseErr error) error {
	return fmt.Errorf("%w, %w", errFeedBodyUnmarshall, baseErr)
}

// GatewayDependencies holds all the dependencies for the Gateway.
type GatewayDependencies struct {
	Config     *config.Config
	Repo       repository.Repository
	HTTPClient *http.Client
}

// Gateway orchestrates one bulk load: fetch the feed, decode it, insert the
// records, and append an ingest log entry.
type Gateway struct {
	deps    GatewayDependencies
	feedURL string
}

// NewGateway creates a new Gateway instance.
func NewGateway(deps GatewayDependencies) *Gateway {
	// Use a default http client if none is provided.
	if deps.HTTPClient == nil {
		deps.HTTPClient = &http.Client{}
	}

	return &Gateway{
		deps:    deps,
		feedURL: deps.Config.FeedURL,
	}
}

// Ingest handles the main data ingestion process. The insert is ordered, so
// a rejected document aborts the run with nothing after it inserted.
func (g *Gateway) Ingest(ctx context.Context) (*Stats, error) {
	logger := appcontext.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Starting feed ingestion", "url", g.feedURL)

	transactions, err := g.fetchFeed(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch upstream feed", "error", err)
		return nil, fmt.Errorf("fetch of upstream feed failed: %w", err)
	}

	inserted, err := g.deps.Repo.BulkInsertTransactions(ctx, transactions)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to bulk insert feed records", "error", err)
		return nil, fmt.Errorf("bulk insert of feed records failed: %w", err)
	}

	stats := &Stats{
		RunID:    uuid.NewString(),
		Fetched:  len(transactions),
		Inserted: inserted,
	}

	entry := model.IngestLog{
		RunID:           stats.RunID,
		SourceURL:       g.feedURL,
		RecordsInserted: int64(inserted),
		IngestTimestamp: time.Now(),
	}
	if err := g.deps.Repo.RecordIngestRun(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to record ingest run", "error", err)
		return nil, fmt.Errorf("recording of ingest run failed: %w", err)
	}

	logger.InfoContext(ctx, "Feed ingestion completed", "fetched", stats.Fetched, "inserted", stats.Inserted)
	return stats, nil
}

// fetchFeed sends a GET request to the feed URL and decodes the payload.
func (g *Gateway) fetchFeed(ctx context.Context) ([]model.Transaction, error) {
	// Create the request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	// Send the request.
	resp, err := g.deps.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, FeedUnexpectedStatusCodeError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var transactions []model.Transaction
	err = json.Unmarshal(body, &transactions)
	if err != nil {
		return nil, FeedBodyUnmarshallError(err)
	}

	return transactions, nil
}
