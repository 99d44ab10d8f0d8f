package ports

import "context"

// BatchInput carries an uploaded file of zip codes to annotate.
type BatchInput struct {
	FileName string
	// ZipColumn optionally names the column holding zip codes. When empty the
	// service auto-detects it from a list of conventional header names.
	ZipColumn string
	// Content is the raw CSV payload. It is hashed for idempotent replay.
	Content []byte
	// ClientID scopes the cached result to the uploading client.
	ClientID string
}

// BatchSummary holds the aggregate outcome of a batch run. This is the part
// that gets cached; row data is only produced by a fresh run.
type BatchSummary struct {
	FileName         string `json:"file_name"`
	ZipColumn        string `json:"zip_column"`
	TotalRows        int    `json:"total_rows"`
	ContaminatedRows int    `json:"contaminated_rows"`
	InvalidRows      int    `json:"invalid_rows"`
	DatasetVersion   string `json:"dataset_version"`
}

// BatchResult is returned by Process. Header/Rows mirror the uploaded file
// with an extra in_pfas_area column appended to every row.
type BatchResult struct {
	Summary BatchSummary
	Header  []string
	Rows    [][]string
	// AlreadyProcessed is true when an identical file was processed before and
	// the summary was served from cache. Rows are empty in that case.
	AlreadyProcessed bool
}

// BatchService annotates uploaded zip code files against the dataset.
type BatchService interface {
	Process(ctx context.Context, input BatchInput) (*BatchResult, error)
}
