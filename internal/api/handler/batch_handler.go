package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// maxUploadBytes caps the accepted multipart file size before parsing.
const maxUploadBytes = 10 << 20 // 10 MiB

// BatchHandler handles batch file uploads.
type BatchHandler struct {
	service ports.BatchService
}

func NewBatchHandler(service ports.BatchService) *BatchHandler {
	return &BatchHandler{service: service}
}

// Upload handles POST /v1/batches: annotates an uploaded file of zip codes.
//
// With ?format=csv the annotated file itself is returned as a download;
// otherwise the response is JSON with summary and rows.
//
// @Summary      Check every zip code in an uploaded CSV or Excel file
// @Tags         batches
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file        formData  file    true   "CSV or Excel (.xlsx) file with a zip code column"
// @Param        zip_column  formData  string  false  "Header name of the zip column (auto-detected when omitted)"
// @Param        format      query     string  false  "Set to csv to download the annotated file"
// @Success      200  {object}  batchResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      413  {object}  errorResponse
// @Failure      415  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/batches [post]
func (h *BatchHandler) Upload(c echo.Context) error {
	_, clientID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds upload limit")
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if len(content) > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file exceeds upload limit")
	}

	result, err := h.service.Process(c.Request().Context(), ports.BatchInput{
		FileName:  fh.Filename,
		ZipColumn: c.FormValue("zip_column"),
		Content:   content,
		ClientID:  clientID,
	})
	if err != nil {
		return err
	}

	if c.QueryParam("format") == "csv" && !result.AlreadyProcessed {
		return writeAnnotatedCSV(c, fh.Filename, result)
	}

	return c.JSON(http.StatusOK, toBatchResponse(result))
}

func toBatchResponse(r *ports.BatchResult) batchResponse {
	return batchResponse{
		Summary: batchSummaryResponse{
			FileName:         r.Summary.FileName,
			ZipColumn:        r.Summary.ZipColumn,
			TotalRows:        r.Summary.TotalRows,
			ContaminatedRows: r.Summary.ContaminatedRows,
			InvalidRows:      r.Summary.InvalidRows,
			DatasetVersion:   r.Summary.DatasetVersion,
		},
		Header:           r.Header,
		Rows:             r.Rows,
		AlreadyProcessed: r.AlreadyProcessed,
	}
}

// writeAnnotatedCSV streams the annotated rows back as a file download named
// <original>_with_pfas_status.csv.
func writeAnnotatedCSV(c echo.Context, fileName string, r *ports.BatchResult) error {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if base == "" {
		base = "zipcodes"
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, base+"_with_pfas_status.csv"))
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write(r.Header); err != nil {
		return err
	}
	if err := w.WriteAll(r.Rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
