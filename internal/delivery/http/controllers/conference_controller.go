package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

// ConferenceRequest is the request body for POST /conferences and
// PUT /conferences/{conferenceID}. ID and timestamps are server-managed.
type ConferenceRequest struct {
	Name                string `json:"name"`
	Location            string `json:"location"`
	Website             string `json:"website,omitempty"`
	Category            string `json:"category,omitempty"`
	SubmissionDate      string `json:"submissionDate"`
	NotificationDate    string `json:"notificationDate"`
	ConferenceStartDate string `json:"conferenceStartDate"`
	ConferenceEndDate   string `json:"conferenceEndDate"`
	Status              string `json:"status,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// Validate implements Validator. Presence and format only; the service
// enforces the date ordering rules.
func (c ConferenceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	for _, d := range []struct{ field, value string }{
		{"submissionDate", c.SubmissionDate},
		{"notificationDate", c.NotificationDate},
		{"conferenceStartDate", c.ConferenceStartDate},
		{"conferenceEndDate", c.ConferenceEndDate},
	} {
		if d.value == "" {
			errs = append(errs, d.field+" is required")
			continue
		}
		if _, err := domain.ParseDate(d.value); err != nil {
			errs = append(errs, d.field+" must be a YYYY-MM-DD date")
		}
	}
	return errs
}

// candidate converts the request into a domain candidate. Call only after
// Validate has accepted the date strings.
func (c ConferenceRequest) candidate() *domain.Candidate {
	sub, _ := domain.ParseDate(c.SubmissionDate)
	notif, _ := domain.ParseDate(c.NotificationDate)
	start, _ := domain.ParseDate(c.ConferenceStartDate)
	end, _ := domain.ParseDate(c.ConferenceEndDate)
	return &domain.Candidate{
		Name:                c.Name,
		Location:            c.Location,
		Website:             c.Website,
		Category:            domain.Category(c.Category),
		SubmissionDate:      sub,
		NotificationDate:    notif,
		ConferenceStartDate: start,
		ConferenceEndDate:   end,
		Status:              domain.Status(c.Status),
		Notes:               c.Notes,
	}
}

// ListConferencesResponse is the data payload for GET /conferences.
type ListConferencesResponse struct {
	Conferences []*domain.ConferenceView `json:"conferences"`
	Stats       domain.Stats             `json:"stats"`
	Filters     domain.FilterConfig      `json:"filters"`
}

// ListConferencesSuccessResponse is the success envelope for GET /conferences (200).
type ListConferencesSuccessResponse struct {
	Data  ListConferencesResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ConferenceSuccessResponse is the success envelope for create and update (200/201).
type ConferenceSuccessResponse struct {
	Data  *domain.Conference `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.TrackerService
}

func NewConferenceController(logger *slog.Logger, svc domain.TrackerService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// writeServiceError maps tracker errors onto the response envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeValidation, verr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "conference not found")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListConferences godoc
// @Summary List tracked conferences
// @Description Returns the conference list under the current filter configuration, sorted, with deadline countdowns and header stats. Stats always count the full list, not the filtered view.
// @Tags conferences
// @Produce json
// @Success 200 {object} controllers.ListConferencesSuccessResponse "data contains conferences, stats, and the active filters"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [get]
func (c *ConferenceController) ListConferences(w http.ResponseWriter, r *http.Request) {
	views, stats, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListConferencesResponse{
		Conferences: views,
		Stats:       stats,
		Filters:     c.Service.Filters(),
	})
}

// CreateConference godoc
// @Summary Add a conference
// @Description Validates and appends a new conference record. The dates must satisfy submission <= notification <= start <= end; equal dates are accepted. The record is persisted before the call returns.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conference body ConferenceRequest true "Conference record"
// @Success 201 {object} controllers.ConferenceSuccessResponse "data contains the stored record with its assigned ID"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req ConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rec, err := c.Service.Add(r.Context(), req.candidate())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, rec)
}

// UpdateConference godoc
// @Summary Replace a conference
// @Description Replaces the record with the given ID in place. The ID and creation timestamp are preserved; position in the list does not change.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param conference body ConferenceRequest true "Replacement record"
// @Success 200 {object} controllers.ConferenceSuccessResponse "data contains the updated record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req ConferenceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rec, err := c.Service.Edit(r.Context(), conferenceID, req.candidate())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, rec)
}

// DeleteConference godoc
// @Summary Delete a conference
// @Description Removes the record with the given ID and persists the shortened list.
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted ID"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/{conferenceID} [delete]
func (c *ConferenceController) DeleteConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	if err := c.Service.Delete(r.Context(), conferenceID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": conferenceID})
}
