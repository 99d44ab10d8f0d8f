package handler

type batchSummaryResponse struct {
	FileName         string `json:"file_name"`
	ZipColumn        string `json:"zip_column"`
	TotalRows        int    `json:"total_rows"`
	ContaminatedRows int    `json:"contaminated_rows"`
	InvalidRows      int    `json:"invalid_rows"`
	DatasetVersion   string `json:"dataset_version"`
}

// batchResponse carries the run summary and, for fresh runs, the uploaded
// rows with the in_pfas_area column appended. Cache replays return the
// summary only.
type batchResponse struct {
	Summary          batchSummaryResponse `json:"summary"`
	Header           []string             `json:"header,omitempty"`
	Rows             [][]string           `json:"rows,omitempty"`
	AlreadyProcessed bool                 `json:"already_processed,omitempty"`
}
