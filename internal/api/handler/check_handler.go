package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// CheckHandler handles zip code membership queries.
type CheckHandler struct {
	service ports.LookupService
}

func NewCheckHandler(service ports.LookupService) *CheckHandler {
	return &CheckHandler{service: service}
}

// Check handles GET /v1/zipcodes/:zip.
//
// @Summary      Check a single zip code against the PFAS dataset
// @Tags         zipcodes
// @Produce      json
// @Security     BearerAuth
// @Param        zip  path      string  true  "Zip code (5-digit, ZIP+4 accepted)"
// @Success      200  {object}  checkResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/zipcodes/{zip} [get]
func (h *CheckHandler) Check(c echo.Context) error {
	result, err := h.service.Check(c.Request().Context(), ports.CheckInput{Zip: c.Param("zip")})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkResponse{
		Zip:            result.Zip,
		Contaminated:   result.Contaminated,
		Source:         result.Source,
		DatasetVersion: result.DatasetVersion,
	})
}

// CheckMany handles POST /v1/zipcodes/check.
//
// @Summary      Check a list of zip codes in one call
// @Tags         zipcodes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkCheckRequest  true  "Zip codes to check (max 1000)"
// @Success      200   {object}  bulkCheckResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/zipcodes/check [post]
func (h *CheckHandler) CheckMany(c echo.Context) error {
	var req bulkCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	items, err := h.service.CheckMany(c.Request().Context(), req.Zips)
	if err != nil {
		return err
	}

	resp := bulkCheckResponse{Results: make([]bulkCheckItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Results = append(resp.Results, bulkCheckItemResponse{
			Input:        item.Input,
			Zip:          item.Zip,
			Valid:        item.Valid,
			Contaminated: item.Contaminated,
			Source:       item.Source,
		})
		if item.Valid {
			resp.Checked++
			if item.Contaminated {
				resp.Contaminated++
			}
		} else {
			resp.Invalid++
		}
	}

	return c.JSON(http.StatusOK, resp)
}
