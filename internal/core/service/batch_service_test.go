package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/pfaswatch/zipcheck/internal/core/domain"
	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubDatasetSource struct {
	ds *domain.Dataset
}

func (s *stubDatasetSource) Snapshot() (*domain.Dataset, error) {
	if s.ds == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return s.ds, nil
}

type stubBatchCache struct {
	entries map[string]*ports.BatchSummary
	getErr  error
	putErr  error
	puts    int
}

func newStubBatchCache() *stubBatchCache {
	return &stubBatchCache{entries: make(map[string]*ports.BatchSummary)}
}

func (c *stubBatchCache) Get(_ context.Context, key string) (*ports.BatchSummary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	s, ok := c.entries[key]
	return s, ok, nil
}

func (c *stubBatchCache) Put(_ context.Context, key string, summary *ports.BatchSummary) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.puts++
	c.entries[key] = summary
	return nil
}

func testDataset(t *testing.T, zips ...string) *domain.Dataset {
	t.Helper()
	records := make([]domain.ContaminationRecord, 0, len(zips))
	for _, z := range zips {
		records = append(records, domain.ContaminationRecord{ZipCode: z, Source: "EWG"})
	}
	ds, err := domain.NewDataset(records, time.Now().UTC())
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}

func newBatchSvc(t *testing.T, cache BatchResultCache, maxRows int, zips ...string) ports.BatchService {
	t.Helper()
	return NewBatchService(&stubDatasetSource{ds: testDataset(t, zips...)}, cache, maxRows, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestBatchService_Process_AnnotatesRows(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210", "08701")

	csvData := strings.Join([]string{
		"name,zip_code",
		"alice,90210",
		"bob,00000",
		"carol,8701",
		"dave,nope",
	}, "\n")

	result, err := svc.Process(context.Background(), ports.BatchInput{
		FileName: "clients.csv",
		Content:  []byte(csvData),
		ClientID: "client_1",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if result.Summary.TotalRows != 4 {
		t.Errorf("expected 4 rows, got %d", result.Summary.TotalRows)
	}
	if result.Summary.ContaminatedRows != 2 {
		t.Errorf("expected 2 contaminated rows, got %d", result.Summary.ContaminatedRows)
	}
	if result.Summary.InvalidRows != 1 {
		t.Errorf("expected 1 invalid row, got %d", result.Summary.InvalidRows)
	}
	if result.Summary.ZipColumn != "zip_code" {
		t.Errorf("expected auto-detected zip_code column, got %q", result.Summary.ZipColumn)
	}

	if got := result.Header[len(result.Header)-1]; got != "in_pfas_area" {
		t.Errorf("expected appended in_pfas_area column, got %q", got)
	}
	wantFlags := []string{"yes", "no", "yes", "invalid"}
	for i, row := range result.Rows {
		if got := row[len(row)-1]; got != wantFlags[i] {
			t.Errorf("row %d: expected flag %q, got %q", i, wantFlags[i], got)
		}
	}
}

func xlsxFile(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestBatchService_Process_XLSXUpload(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210", "08701")

	content := xlsxFile(t, [][]interface{}{
		{"name", "zip_code"},
		{"alice", "90210"},
		{"bob", "00000"},
		{"carol", 8701}, // numeric cell, needs padding
	})

	result, err := svc.Process(context.Background(), ports.BatchInput{
		FileName: "clients.xlsx",
		Content:  content,
		ClientID: "client_1",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if result.Summary.TotalRows != 3 {
		t.Errorf("expected 3 rows, got %d", result.Summary.TotalRows)
	}
	if result.Summary.ContaminatedRows != 2 {
		t.Errorf("expected 2 contaminated rows, got %d", result.Summary.ContaminatedRows)
	}
	if result.Summary.ZipColumn != "zip_code" {
		t.Errorf("expected auto-detected zip_code column, got %q", result.Summary.ZipColumn)
	}
	if got := result.Header[len(result.Header)-1]; got != "in_pfas_area" {
		t.Errorf("expected appended in_pfas_area column, got %q", got)
	}
}

func TestBatchService_Process_LegacyXLSRejected(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	_, err := svc.Process(context.Background(), ports.BatchInput{
		FileName: "clients.xls",
		Content:  []byte{0xd0, 0xcf, 0x11, 0xe0}, // OLE2 magic
	})
	if !errors.Is(err, domain.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestBatchService_Process_ExplicitZipColumn(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	csvData := "member_zip,other\n90210,x\n"
	result, err := svc.Process(context.Background(), ports.BatchInput{
		FileName:  "f.csv",
		ZipColumn: "Member_Zip", // case-insensitive
		Content:   []byte(csvData),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Summary.ZipColumn != "member_zip" {
		t.Errorf("expected member_zip, got %q", result.Summary.ZipColumn)
	}
	if result.Summary.ContaminatedRows != 1 {
		t.Errorf("expected 1 contaminated row")
	}
}

func TestBatchService_Process_NoZipColumn(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	_, err := svc.Process(context.Background(), ports.BatchInput{
		FileName: "f.csv",
		Content:  []byte("name,city\nalice,austin\n"),
	})
	if !errors.Is(err, domain.ErrNoZipColumn) {
		t.Fatalf("expected ErrNoZipColumn, got %v", err)
	}
}

func TestBatchService_Process_ExplicitColumnMissing(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	_, err := svc.Process(context.Background(), ports.BatchInput{
		FileName:  "f.csv",
		ZipColumn: "postcode",
		Content:   []byte("zip\n90210\n"),
	})
	if !errors.Is(err, domain.ErrNoZipColumn) {
		t.Fatalf("expected ErrNoZipColumn, got %v", err)
	}
}

func TestBatchService_Process_RowLimit(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 2, "90210")

	csvData := "zip\n90210\n90210\n90210\n"
	_, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: []byte(csvData)})
	if !errors.Is(err, domain.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
}

func TestBatchService_Process_CacheReplay(t *testing.T) {
	cache := newStubBatchCache()
	svc := newBatchSvc(t, cache, 0, "90210")

	input := ports.BatchInput{FileName: "f.csv", Content: []byte("zip\n90210\n"), ClientID: "client_1"}

	first, err := svc.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("first process: %v", err)
	}
	if first.AlreadyProcessed {
		t.Fatalf("first run should not be a replay")
	}
	if cache.puts != 1 {
		t.Fatalf("expected summary cached once, got %d", cache.puts)
	}

	second, err := svc.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("second process: %v", err)
	}
	if !second.AlreadyProcessed {
		t.Fatalf("identical upload should replay from cache")
	}
	if len(second.Rows) != 0 {
		t.Errorf("replay should not carry rows")
	}
	if second.Summary != first.Summary {
		t.Errorf("replayed summary mismatch: %+v vs %+v", second.Summary, first.Summary)
	}
}

func TestBatchService_Process_DifferentClientsDoNotShareCache(t *testing.T) {
	cache := newStubBatchCache()
	svc := newBatchSvc(t, cache, 0, "90210")

	content := []byte("zip\n90210\n")
	if _, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: content, ClientID: "client_1"}); err != nil {
		t.Fatalf("process: %v", err)
	}

	result, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: content, ClientID: "client_2"})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.AlreadyProcessed {
		t.Errorf("another client's identical file must not replay from cache")
	}
}

func TestBatchService_Process_CacheErrorProcessesAnyway(t *testing.T) {
	cache := newStubBatchCache()
	cache.getErr = errors.New("redis down")
	svc := newBatchSvc(t, cache, 0, "90210")

	result, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: []byte("zip\n90210\n")})
	if err != nil {
		t.Fatalf("cache failure must not fail the batch: %v", err)
	}
	if result.AlreadyProcessed {
		t.Errorf("unexpected replay")
	}
}

func TestBatchService_Process_NotLoaded(t *testing.T) {
	svc := NewBatchService(&stubDatasetSource{}, newStubBatchCache(), 0, zerolog.Nop())

	_, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: []byte("zip\n90210\n")})
	if !errors.Is(err, domain.ErrDatasetNotLoaded) {
		t.Fatalf("expected ErrDatasetNotLoaded, got %v", err)
	}
}

func TestBatchService_Process_EmptyFile(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	if _, err := svc.Process(context.Background(), ports.BatchInput{FileName: "f.csv", Content: []byte("")}); err == nil {
		t.Fatalf("expected error for empty file")
	}
}

func TestBatchService_Process_ShortRowIsInvalid(t *testing.T) {
	svc := newBatchSvc(t, newStubBatchCache(), 0, "90210")

	// second data row is missing the zip cell entirely
	result, err := svc.Process(context.Background(), ports.BatchInput{
		FileName: "f.csv",
		Content:  []byte("name,zip\nalice,90210\nbob\n"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Summary.InvalidRows != 1 {
		t.Errorf("expected short row counted invalid, got %d", result.Summary.InvalidRows)
	}
}
