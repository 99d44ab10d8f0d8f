package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/pfaswatch/zipcheck/internal/pkg/metrics"
	"github.com/pfaswatch/zipcheck/internal/core/domain"
	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// LookupService answers contamination membership queries against an immutable
// dataset snapshot. Load replaces the snapshot atomically; Check and friends
// are lock-free reads of whatever snapshot is current.
type LookupService struct {
	repo    ports.RecordRepository
	clock   clockwork.Clock
	logger  zerolog.Logger
	current atomic.Pointer[domain.Dataset]
}

func NewLookupService(repo ports.RecordRepository, clock clockwork.Clock, logger zerolog.Logger) *LookupService {
	return &LookupService{repo: repo, clock: clock, logger: logger}
}

// Load fetches all records from the backing store, builds a fresh Dataset,
// and publishes it. On any error the previous snapshot (if one exists) keeps
// serving; a partially loaded dataset is never installed.
func (s *LookupService) Load(ctx context.Context) error {
	start := s.clock.Now()

	records, err := s.repo.FetchAll(ctx)
	if err != nil {
		metrics.DatasetRefreshDuration.WithLabelValues("error").Observe(s.clock.Since(start).Seconds())
		return fmt.Errorf("load dataset: %w", err)
	}

	ds, err := domain.NewDataset(records, s.clock.Now().UTC())
	if err != nil {
		metrics.DatasetRefreshDuration.WithLabelValues("error").Observe(s.clock.Since(start).Seconds())
		return fmt.Errorf("load dataset: %w", err)
	}

	s.current.Store(ds)
	metrics.DatasetRefreshDuration.WithLabelValues("success").Observe(s.clock.Since(start).Seconds())
	metrics.DatasetRecords.Set(float64(ds.Len()))

	s.logger.Info().
		Int("records", ds.Len()).
		Int("sources", ds.Sources()).
		Str("version", ds.Version()).
		Msg("dataset loaded")

	return nil
}

// Check normalizes the input and reports whether it is a known contaminated
// zip. Fails with domain.ErrInvalidZipCode when the input cannot be
// normalized and domain.ErrDatasetNotLoaded before the first successful load.
func (s *LookupService) Check(ctx context.Context, input ports.CheckInput) (*ports.CheckResult, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}

	zip, err := domain.NormalizeZip(input.Zip)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("check %q: %w", input.Zip, err)
	}

	result := &ports.CheckResult{Zip: zip, DatasetVersion: ds.Version()}
	if rec, ok := ds.Contains(zip); ok {
		result.Contaminated = true
		result.Source = rec.Source
		metrics.LookupsTotal.WithLabelValues("contaminated").Inc()
	} else {
		metrics.LookupsTotal.WithLabelValues("clean").Inc()
	}

	s.logger.Debug().Str("zip", zip).Bool("contaminated", result.Contaminated).Msg("zip checked")
	return result, nil
}

// CheckMany checks a list of raw zips in one pass. Invalid entries are
// reported per item rather than failing the whole call.
func (s *LookupService) CheckMany(ctx context.Context, zips []string) ([]ports.BulkCheckItem, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}

	items := make([]ports.BulkCheckItem, 0, len(zips))
	for _, raw := range zips {
		item := ports.BulkCheckItem{Input: raw}
		zip, err := domain.NormalizeZip(raw)
		if err != nil {
			metrics.LookupsTotal.WithLabelValues("invalid").Inc()
			items = append(items, item)
			continue
		}
		item.Valid = true
		item.Zip = zip
		if rec, ok := ds.Contains(zip); ok {
			item.Contaminated = true
			item.Source = rec.Source
			metrics.LookupsTotal.WithLabelValues("contaminated").Inc()
		} else {
			metrics.LookupsTotal.WithLabelValues("clean").Inc()
		}
		items = append(items, item)
	}
	return items, nil
}

// Stats returns metadata about the snapshot currently being served.
func (s *LookupService) Stats(ctx context.Context) (*ports.DatasetStats, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return &ports.DatasetStats{
		Records:  ds.Len(),
		Sources:  ds.Sources(),
		LoadedAt: ds.LoadedAt(),
		Version:  ds.Version(),
	}, nil
}

// Snapshot exposes the current dataset to in-process collaborators (the batch
// service). Returns ErrDatasetNotLoaded before the first load.
func (s *LookupService) Snapshot() (*domain.Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return ds, nil
}

var _ ports.LookupService = (*LookupService)(nil)
var _ ports.DatasetLoader = (*LookupService)(nil)
