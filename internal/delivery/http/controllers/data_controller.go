package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
	"conftrack/internal/export"
	"conftrack/internal/metrics"
)

// importBodyLimit caps PUT /data payloads. Snapshot documents are small;
// anything past this is a mistake or abuse.
const importBodyLimit = 4 << 20

// RefreshResponse is the data payload for POST /data/refresh.
type RefreshResponse struct {
	Source domain.Source `json:"source"`
	Count  int           `json:"count"`
}

// RefreshSuccessResponse is the success envelope for POST /data/refresh (200).
type RefreshSuccessResponse struct {
	Data  RefreshResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ImportResponse is the data payload for PUT /data.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ImportSuccessResponse is the success envelope for PUT /data (200).
type ImportSuccessResponse struct {
	Data  ImportResponse    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type DataController struct {
	Logger  *slog.Logger
	Service domain.TrackerService
	Metrics *metrics.Metrics
}

func NewDataController(logger *slog.Logger, svc domain.TrackerService, m *metrics.Metrics) *DataController {
	return &DataController{
		Logger:  logger,
		Service: svc,
		Metrics: m,
	}
}

// Refresh godoc
// @Summary Re-run the tiered data load
// @Description Re-fetches the remote snapshot (falling back to the local copy, then the built-in defaults) and replaces the tracked list with the result. Reports which tier won and how many records it held.
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RefreshSuccessResponse "data contains the winning source and record count"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /data/refresh [post]
func (c *DataController) Refresh(w http.ResponseWriter, r *http.Request) {
	source, count, err := c.Service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.Metrics.RecordSnapshotLoad(string(source), count)
	helpers.WriteJSONSuccess(w, http.StatusOK, RefreshResponse{Source: source, Count: count})
}

// Import godoc
// @Summary Replace all data from a snapshot document
// @Description Accepts a snapshot document (object form or a legacy bare array) and replaces the whole tracked list. Every record is validated; the first invalid record rejects the entire import and leaves the list unchanged.
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ImportSuccessResponse "data contains the imported record count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /data [put]
func (c *DataController) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, importBodyLimit))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unreadable request body")
		return
	}
	count, err := c.Service.ImportSnapshot(r.Context(), raw)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	c.Metrics.SetRecordCount(count)
	helpers.WriteJSONSuccess(w, http.StatusOK, ImportResponse{Imported: count})
}

// ExportJSON godoc
// @Summary Download the data as a snapshot document
// @Description Returns the full tracked list as a pretty-printed snapshot document, served as an attachment named conferences.json.
// @Tags data
// @Produce json
// @Success 200 {string} string "snapshot document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /data/export [get]
func (c *DataController) ExportJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := c.Service.ExportJSON(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="conferences.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// ExportPDF godoc
// @Summary Download the current view as a PDF
// @Description Renders the filtered, sorted conference list as a tabular PDF.
// @Tags data
// @Produce application/pdf
// @Success 200 {string} string "PDF document"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /data/export/pdf [get]
func (c *DataController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	views, _, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	records := make([]*domain.Conference, 0, len(views))
	for _, v := range views {
		records = append(records, v.Conference)
	}
	doc, err := export.RenderPDF(records, time.Now().Format("2006-01-02"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "pdf render failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="conferences-%s.pdf"`, time.Now().Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
