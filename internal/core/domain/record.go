package domain

import "errors"

var ErrDatasetFormat = errors.New("malformed dataset record")
var ErrDatasetNotLoaded = errors.New("dataset not loaded")
var ErrBatchTooLarge = errors.New("batch file too large")
var ErrNoZipColumn = errors.New("no zip code column found")
var ErrUnsupportedFileType = errors.New("unsupported file type")
var ErrForbidden = errors.New("access forbidden")

// ContaminationRecord is one entry of the reference dataset: a zip code with
// documented PFAS contamination and the reporting source it came from.
// Records are immutable reference data; queries never mutate them.
type ContaminationRecord struct {
	ZipCode string `json:"zip_code" bson:"zip_code"`
	Source  string `json:"source,omitempty" bson:"source,omitempty"`
}
