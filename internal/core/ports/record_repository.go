package ports

import (
	"context"

	"github.com/pfaswatch/zipcheck/internal/core/domain"
)

// RecordRepository provides access to the external contamination dataset.
// The dataset is read in full at load time and never written by this service.
type RecordRepository interface {
	// FetchAll returns every contamination record in the backing store.
	// Zip codes come back raw; normalization happens when the Dataset is built.
	FetchAll(ctx context.Context) ([]domain.ContaminationRecord, error)
}
