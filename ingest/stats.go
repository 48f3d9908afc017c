package ingest

import (
	"fmt"
	"log/slog"
)

// Stats holds statistics about a feed ingestion run.
type Stats struct {
	RunID    string
	Fetched  int
	Inserted int
}

// Log prints the final statistics to the provided logger.
func (s *Stats) Log(logger *slog.Logger) {
	logger.Info("--- Ingestion Stats ---")
	logger.Info(fmt.Sprintf("Run id: %s", s.RunID))
	logger.Info(fmt.Sprintf("Records fetched: %d", s.Fetched))
	logger.Info(fmt.Sprintf("Records inserted: %d", s.Inserted))
	logger.Info("-----------------------")
}
