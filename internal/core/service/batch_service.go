package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/pfaswatch/zipcheck/internal/core/domain"
	"github.com/pfaswatch/zipcheck/internal/core/ports"
	"github.com/pfaswatch/zipcheck/internal/pkg/metrics"
)

// annotationColumn is appended to every processed file.
const annotationColumn = "in_pfas_area"

// zipColumnNames are the header names tried, in order, when the caller does
// not name the zip column explicitly.
var zipColumnNames = []string{"zip", "zip_code", "zipcode", "postal_code", "postal", "zip code"}

// DatasetSource yields the current dataset snapshot.
type DatasetSource interface {
	Snapshot() (*domain.Dataset, error)
}

// BatchResultCache abstracts the idempotency store for batch summaries (Redis).
type BatchResultCache interface {
	Get(ctx context.Context, key string) (*ports.BatchSummary, bool, error)
	Put(ctx context.Context, key string, summary *ports.BatchSummary) error
}

type batchService struct {
	dataset DatasetSource
	cache   BatchResultCache
	maxRows int
	log     zerolog.Logger
}

// NewBatchService returns a BatchService that annotates uploaded CSV and
// Excel files against the current dataset snapshot. maxRows caps file size;
// re-uploads of an identical file are answered from the cache.
func NewBatchService(dataset DatasetSource, cache BatchResultCache, maxRows int, log zerolog.Logger) ports.BatchService {
	return &batchService{dataset: dataset, cache: cache, maxRows: maxRows, log: log}
}

// Process parses the uploaded file, finds the zip column, annotates every row
// with an in_pfas_area flag, and returns the annotated rows plus a summary.
func (s *batchService) Process(ctx context.Context, in ports.BatchInput) (*ports.BatchResult, error) {
	ds, err := s.dataset.Snapshot()
	if err != nil {
		return nil, err
	}

	// Idempotent replay: an identical upload returns the cached summary.
	key := batchKey(in.ClientID, in.Content)
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("file", in.FileName).Msg("batch cache check failed, processing anyway")
	} else if ok {
		metrics.BatchCacheTotal.WithLabelValues("hit").Inc()
		s.log.Info().Str("file", in.FileName).Msg("batch replayed from cache")
		return &ports.BatchResult{Summary: *cached, AlreadyProcessed: true}, nil
	}
	metrics.BatchCacheTotal.WithLabelValues("miss").Inc()

	header, rows, err := parseUpload(in.FileName, in.Content)
	if err != nil {
		return nil, fmt.Errorf("process batch: %w", err)
	}
	if s.maxRows > 0 && len(rows) > s.maxRows {
		return nil, fmt.Errorf("process batch: %w (%d rows, limit %d)", domain.ErrBatchTooLarge, len(rows), s.maxRows)
	}

	zipIdx, zipName, err := findZipColumn(header, in.ZipColumn)
	if err != nil {
		return nil, fmt.Errorf("process batch: %w", err)
	}

	summary := ports.BatchSummary{
		FileName:       in.FileName,
		ZipColumn:      zipName,
		TotalRows:      len(rows),
		DatasetVersion: ds.Version(),
	}

	annotated := make([][]string, 0, len(rows))
	for _, row := range rows {
		flag := "invalid"
		if zipIdx < len(row) {
			if zip, nerr := domain.NormalizeZip(row[zipIdx]); nerr == nil {
				if _, hit := ds.Contains(zip); hit {
					flag = "yes"
				} else {
					flag = "no"
				}
			}
		}
		switch flag {
		case "yes":
			summary.ContaminatedRows++
			metrics.BatchRowsTotal.WithLabelValues("contaminated").Inc()
		case "no":
			metrics.BatchRowsTotal.WithLabelValues("clean").Inc()
		default:
			summary.InvalidRows++
			metrics.BatchRowsTotal.WithLabelValues("invalid").Inc()
		}
		annotated = append(annotated, append(append([]string{}, row...), flag))
	}

	if err := s.cache.Put(ctx, key, &summary); err != nil {
		s.log.Warn().Err(err).Str("file", in.FileName).Msg("failed to cache batch summary")
	}

	s.log.Info().
		Str("file", in.FileName).
		Str("zip_column", zipName).
		Int("rows", summary.TotalRows).
		Int("contaminated", summary.ContaminatedRows).
		Int("invalid", summary.InvalidRows).
		Msg("batch processed")

	return &ports.BatchResult{
		Summary: summary,
		Header:  append(append([]string{}, header...), annotationColumn),
		Rows:    annotated,
	}, nil
}

// parseUpload dispatches on the upload's extension. Spreadsheets (.xlsx,
// .xlsm) go through excelize; everything else is treated as CSV. Legacy
// binary .xls is rejected with ErrUnsupportedFileType rather than being fed
// to the CSV reader.
func parseUpload(fileName string, content []byte) ([]string, [][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm":
		return parseXLSX(content)
	case ".xls":
		return nil, nil, fmt.Errorf("%w: legacy .xls, convert to .xlsx or .csv", domain.ErrUnsupportedFileType)
	default:
		return parseCSV(content)
	}
}

// parseXLSX reads the first sheet of a workbook into header and data rows.
// excelize omits trailing empty cells, so rows may be ragged; the annotation
// loop treats a missing zip cell as invalid.
func parseXLSX(content []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("parse xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("parse xlsx: workbook has no sheets")
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("parse xlsx: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("parse xlsx: empty sheet")
	}
	return all[0], all[1:], nil
}

// parseCSV splits the payload into header and data rows. Ragged rows are
// tolerated; a UTF-8 BOM on the first cell is stripped.
func parseCSV(content []byte) (header []string, rows [][]string, err error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("parse csv: empty file")
	}

	header = all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return header, all[1:], nil
}

// findZipColumn resolves the zip column index. An explicit name must match a
// header (case-insensitive); otherwise the conventional names are tried in
// order. Returns domain.ErrNoZipColumn when nothing matches.
func findZipColumn(header []string, explicit string) (int, string, error) {
	if explicit != "" {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(explicit)) {
				return i, h, nil
			}
		}
		return 0, "", fmt.Errorf("%w: column %q not in header", domain.ErrNoZipColumn, explicit)
	}

	for _, want := range zipColumnNames {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), want) {
				return i, h, nil
			}
		}
	}
	return 0, "", domain.ErrNoZipColumn
}

// batchKey fingerprints an upload. The client id is part of the key so two
// clients uploading the same file do not share cache entries.
func batchKey(clientID string, content []byte) string {
	sum := sha256.Sum256(content)
	return fmt.Sprintf("batch:%s:%x", clientID, sum)
}
