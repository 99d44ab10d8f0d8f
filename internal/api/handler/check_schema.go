package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type checkResponse struct {
	Zip            string `json:"zip"`
	Contaminated   bool   `json:"contaminated"`
	Source         string `json:"source,omitempty"`
	DatasetVersion string `json:"dataset_version"`
}

type bulkCheckRequest struct {
	Zips []string `json:"zips" validate:"required,min=1,max=1000"`
}

// bulkCheckItemResponse reports one zip of a bulk request. Invalid inputs are
// flagged rather than failing the whole request.
type bulkCheckItemResponse struct {
	Input        string `json:"input"`
	Zip          string `json:"zip,omitempty"`
	Valid        bool   `json:"valid"`
	Contaminated bool   `json:"contaminated"`
	Source       string `json:"source,omitempty"`
}

type bulkCheckResponse struct {
	Results      []bulkCheckItemResponse `json:"results"`
	Checked      int                     `json:"checked"`
	Contaminated int                     `json:"contaminated"`
	Invalid      int                     `json:"invalid"`
}
