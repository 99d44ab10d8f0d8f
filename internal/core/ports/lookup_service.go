package ports

import (
	"context"
	"time"
)

// CheckInput carries a single raw zip code query.
type CheckInput struct {
	Zip string
}

// CheckResult is the answer to a single zip code query.
type CheckResult struct {
	Zip            string // normalized 5-digit form
	Contaminated   bool
	Source         string // reporting source when contaminated, empty otherwise
	DatasetVersion string
}

// BulkCheckItem is one entry of a multi-zip check. Invalid inputs do not fail
// the whole request; they come back with Valid=false.
type BulkCheckItem struct {
	Input        string // the raw value as submitted
	Zip          string // normalized form, empty when invalid
	Valid        bool
	Contaminated bool
	Source       string
}

// DatasetStats describes the currently served dataset snapshot.
type DatasetStats struct {
	Records  int
	Sources  int
	LoadedAt time.Time
	Version  string
}

// LookupService answers contamination membership queries against the loaded
// dataset. Queries are pure reads; only Load/reload replaces the snapshot.
type LookupService interface {
	Check(ctx context.Context, input CheckInput) (*CheckResult, error)
	CheckMany(ctx context.Context, zips []string) ([]BulkCheckItem, error)
	Stats(ctx context.Context) (*DatasetStats, error)
}

// DatasetLoader is the reload surface used by the refresher and the admin
// reload endpoint.
type DatasetLoader interface {
	Load(ctx context.Context) error
}
