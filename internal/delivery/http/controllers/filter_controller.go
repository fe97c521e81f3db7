package controllers

import (
	"log/slog"
	"net/http"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

// UpdateFiltersRequest is the request body for PUT /filters. The whole
// configuration is replaced at once.
type UpdateFiltersRequest struct {
	Search       string `json:"search"`
	SortBy       string `json:"sortBy"`
	ShowUpcoming bool   `json:"showUpcoming"`
	ShowPast     bool   `json:"showPast"`
	ShowActive   bool   `json:"showActive"`
}

// FiltersSuccessResponse is the success envelope for the filter endpoints (200).
type FiltersSuccessResponse struct {
	Data  domain.FilterConfig `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type FilterController struct {
	Logger  *slog.Logger
	Service domain.TrackerService
}

func NewFilterController(logger *slog.Logger, svc domain.TrackerService) *FilterController {
	return &FilterController{
		Logger:  logger,
		Service: svc,
	}
}

// GetFilters godoc
// @Summary Get the active filter configuration
// @Tags filters
// @Produce json
// @Success 200 {object} controllers.FiltersSuccessResponse "data contains the filter configuration"
// @Router /filters [get]
func (c *FilterController) GetFilters(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Filters())
}

// UpdateFilters godoc
// @Summary Replace the filter configuration
// @Description Sets the search text, sort key, and the three visibility toggles. An unknown sort key rejects the whole update.
// @Tags filters
// @Accept json
// @Produce json
// @Param filters body UpdateFiltersRequest true "Filter configuration"
// @Success 200 {object} controllers.FiltersSuccessResponse "data contains the applied configuration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /filters [put]
func (c *FilterController) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var req UpdateFiltersRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	key, err := domain.ParseSortKey(req.SortBy)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	c.Service.SetSearch(req.Search)
	if err := c.Service.SetSort(key); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	c.Service.SetVisibility(req.ShowUpcoming, req.ShowPast, req.ShowActive)
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.Filters())
}
