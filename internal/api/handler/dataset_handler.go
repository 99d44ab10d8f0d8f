package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// DatasetHandler exposes dataset metadata and the admin reload operation.
type DatasetHandler struct {
	service ports.LookupService
	loader  ports.DatasetLoader
}

func NewDatasetHandler(service ports.LookupService, loader ports.DatasetLoader) *DatasetHandler {
	return &DatasetHandler{service: service, loader: loader}
}

type datasetResponse struct {
	Records  int       `json:"records"`
	Sources  int       `json:"sources"`
	LoadedAt time.Time `json:"loaded_at"`
	Version  string    `json:"version"`
}

// Get handles GET /v1/dataset.
//
// @Summary      Describe the dataset snapshot currently being served
// @Tags         dataset
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  datasetResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/dataset [get]
func (h *DatasetHandler) Get(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, datasetResponse{
		Records:  stats.Records,
		Sources:  stats.Sources,
		LoadedAt: stats.LoadedAt,
		Version:  stats.Version,
	})
}

// Reload handles POST /v1/dataset/reload, an admin-only forced refresh.
//
// @Summary      Reload the dataset from the backing store
// @Tags         dataset
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  datasetResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/dataset/reload [post]
func (h *DatasetHandler) Reload(c echo.Context) error {
	if err := h.loader.Load(c.Request().Context()); err != nil {
		return err
	}
	return h.Get(c)
}
