package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/pfaswatch/zipcheck/internal/core/domain"
	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRecordRepo struct {
	records  []domain.ContaminationRecord
	fetchErr error
	fetches  int
}

func (r *stubRecordRepo) FetchAll(_ context.Context) ([]domain.ContaminationRecord, error) {
	r.fetches++
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	return r.records, nil
}

func newLoadedService(t *testing.T, records []domain.ContaminationRecord) (*LookupService, *stubRecordRepo) {
	t.Helper()
	repo := &stubRecordRepo{records: records}
	svc := NewLookupService(repo, clockwork.NewFakeClock(), zerolog.Nop())
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc, repo
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLookupService_Check_Hit(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{
		{ZipCode: "90210", Source: "EWG"},
	})

	result, err := svc.Check(context.Background(), ports.CheckInput{Zip: "90210"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Contaminated {
		t.Errorf("expected 90210 to be contaminated")
	}
	if result.Source != "EWG" {
		t.Errorf("expected source EWG, got %q", result.Source)
	}
	if result.Zip != "90210" {
		t.Errorf("expected normalized zip 90210, got %q", result.Zip)
	}
}

func TestLookupService_Check_AllLoadedRecordsHit(t *testing.T) {
	records := []domain.ContaminationRecord{
		{ZipCode: "90210"}, {ZipCode: "08701"}, {ZipCode: "123"},
	}
	svc, _ := newLoadedService(t, records)

	for _, rec := range records {
		result, err := svc.Check(context.Background(), ports.CheckInput{Zip: rec.ZipCode})
		if err != nil {
			t.Fatalf("check %q: %v", rec.ZipCode, err)
		}
		if !result.Contaminated {
			t.Errorf("expected loaded record %q to report contaminated", rec.ZipCode)
		}
	}
}

func TestLookupService_Check_Miss(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210"}})

	result, err := svc.Check(context.Background(), ports.CheckInput{Zip: "00000"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if result.Contaminated {
		t.Errorf("expected 00000 to be clean")
	}
}

func TestLookupService_Check_NormalizesInput(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210"}})

	result, err := svc.Check(context.Background(), ports.CheckInput{Zip: " 90210 "})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.Contaminated {
		t.Errorf("whitespace-padded input should match dataset entry")
	}
}

func TestLookupService_Check_InvalidInput(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210"}})

	_, err := svc.Check(context.Background(), ports.CheckInput{Zip: "abc"})
	if !errors.Is(err, domain.ErrInvalidZipCode) {
		t.Fatalf("expected ErrInvalidZipCode, got %v", err)
	}
}

func TestLookupService_Check_NotLoaded(t *testing.T) {
	svc := NewLookupService(&stubRecordRepo{}, clockwork.NewFakeClock(), zerolog.Nop())

	_, err := svc.Check(context.Background(), ports.CheckInput{Zip: "90210"})
	if !errors.Is(err, domain.ErrDatasetNotLoaded) {
		t.Fatalf("expected ErrDatasetNotLoaded, got %v", err)
	}
}

func TestLookupService_Load_FetchErrorKeepsOldSnapshot(t *testing.T) {
	svc, repo := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210"}})

	repo.fetchErr = errors.New("mongo down")
	if err := svc.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}

	// Previous snapshot still serves.
	result, err := svc.Check(context.Background(), ports.CheckInput{Zip: "90210"})
	if err != nil || !result.Contaminated {
		t.Fatalf("old snapshot should keep serving, got result=%v err=%v", result, err)
	}
}

func TestLookupService_Load_BadRecordKeepsOldSnapshot(t *testing.T) {
	svc, repo := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210"}})

	repo.records = []domain.ContaminationRecord{{ZipCode: "garbage"}}
	err := svc.Load(context.Background())
	if !errors.Is(err, domain.ErrDatasetFormat) {
		t.Fatalf("expected ErrDatasetFormat, got %v", err)
	}

	if _, err := svc.Check(context.Background(), ports.CheckInput{Zip: "90210"}); err != nil {
		t.Fatalf("old snapshot should keep serving: %v", err)
	}
}

func TestLookupService_CheckMany_MixedInput(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{{ZipCode: "90210", Source: "EWG"}})

	items, err := svc.CheckMany(context.Background(), []string{"90210", "00000", "abc"})
	if err != nil {
		t.Fatalf("checkMany: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	if !items[0].Valid || !items[0].Contaminated || items[0].Source != "EWG" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if !items[1].Valid || items[1].Contaminated {
		t.Errorf("unexpected second item: %+v", items[1])
	}
	if items[2].Valid {
		t.Errorf("expected third item invalid: %+v", items[2])
	}
	if items[2].Input != "abc" {
		t.Errorf("invalid item should echo raw input, got %q", items[2].Input)
	}
}

func TestLookupService_Stats(t *testing.T) {
	svc, _ := newLoadedService(t, []domain.ContaminationRecord{
		{ZipCode: "90210", Source: "EWG"},
		{ZipCode: "08701", Source: "EPA"},
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Records != 2 || stats.Sources != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Version == "" {
		t.Errorf("expected non-empty version")
	}
}
