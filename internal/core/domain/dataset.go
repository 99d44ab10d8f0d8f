package domain

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"
)

// Dataset is an immutable snapshot of the contamination reference data, keyed
// by normalized zip code. Once built it is never mutated; a refresh builds a
// new Dataset and swaps the pointer, so concurrent readers need no locking.
type Dataset struct {
	records  map[string]ContaminationRecord
	sources  int
	loadedAt time.Time
	version  string
}

// NewDataset validates and indexes records into a Dataset. Every record's zip
// code must normalize to 5 digits; a single bad record fails the whole build
// with ErrDatasetFormat so a partially loaded dataset is never served. When
// the same zip appears more than once, the first record wins.
func NewDataset(records []ContaminationRecord, loadedAt time.Time) (*Dataset, error) {
	byZip := make(map[string]ContaminationRecord, len(records))
	sources := make(map[string]struct{})

	for i, rec := range records {
		zip, err := NormalizeZip(rec.ZipCode)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d has zip %q", ErrDatasetFormat, i, rec.ZipCode)
		}
		if _, seen := byZip[zip]; !seen {
			byZip[zip] = ContaminationRecord{ZipCode: zip, Source: rec.Source}
		}
		if rec.Source != "" {
			sources[rec.Source] = struct{}{}
		}
	}

	return &Dataset{
		records:  byZip,
		sources:  len(sources),
		loadedAt: loadedAt,
		version:  datasetVersion(byZip),
	}, nil
}

// Contains reports whether the given normalized zip is in the dataset, and
// returns the matching record when it is. Callers must normalize first.
func (d *Dataset) Contains(zip string) (ContaminationRecord, bool) {
	rec, ok := d.records[zip]
	return rec, ok
}

// Len returns the number of distinct zip codes in the dataset.
func (d *Dataset) Len() int { return len(d.records) }

// Sources returns the number of distinct reporting sources.
func (d *Dataset) Sources() int { return d.sources }

// LoadedAt returns when this snapshot was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Version is a content fingerprint of the zip set. Two snapshots with the
// same zips carry the same version regardless of load time.
func (d *Dataset) Version() string { return d.version }

// datasetVersion hashes the sorted zip keys into a short stable tag.
func datasetVersion(byZip map[string]ContaminationRecord) string {
	zips := make([]string, 0, len(byZip))
	for zip := range byZip {
		zips = append(zips, zip)
	}
	sort.Strings(zips)

	h := fnv.New64a()
	for _, zip := range zips {
		_, _ = h.Write([]byte(zip))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
