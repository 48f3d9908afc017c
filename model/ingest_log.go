package model

import "time"

// IngestLog represents a record in the ingestRuns collection, one per
// completed bulk load from the upstream feed.
type IngestLog struct {
	RunID           string    `bson:"run_id"`
	SourceURL       string    `bson:"source_url"`
	RecordsInserted int64     `bson:"records_inserted"`
	IngestTimestamp time.Time `bson:"ingest_timestamp"`
}
