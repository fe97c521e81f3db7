package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTrackerService implements domain.TrackerService for handler tests.
type fakeTrackerService struct {
	loadSource    domain.Source
	loadCount     int
	loadErr       error
	listViews     []*domain.ConferenceView
	listStats     domain.Stats
	listErr       error
	addResult     *domain.Conference
	addErr        error
	editResult    *domain.Conference
	editErr       error
	deleteErr     error
	importCount   int
	importErr     error
	exportResult  []byte
	exportErr     error
	filters       domain.FilterConfig
	setSortErr    error
	lastCandidate *domain.Candidate
	lastEditID    string
	lastDeleteID  string
	lastImportRaw []byte
	lastSearch    string
	lastSortKey   domain.SortKey
}

func (f *fakeTrackerService) Load(context.Context) (domain.Source, int, error) {
	return f.loadSource, f.loadCount, f.loadErr
}

func (f *fakeTrackerService) Refresh(ctx context.Context) (domain.Source, int, error) {
	return f.Load(ctx)
}

func (f *fakeTrackerService) List(context.Context) ([]*domain.ConferenceView, domain.Stats, error) {
	return f.listViews, f.listStats, f.listErr
}

func (f *fakeTrackerService) Add(_ context.Context, cand *domain.Candidate) (*domain.Conference, error) {
	f.lastCandidate = cand
	return f.addResult, f.addErr
}

func (f *fakeTrackerService) Edit(_ context.Context, id string, cand *domain.Candidate) (*domain.Conference, error) {
	f.lastEditID = id
	f.lastCandidate = cand
	return f.editResult, f.editErr
}

func (f *fakeTrackerService) Delete(_ context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeTrackerService) SetSearch(search string) { f.lastSearch = search }

func (f *fakeTrackerService) SetSort(key domain.SortKey) error {
	f.lastSortKey = key
	return f.setSortErr
}

func (f *fakeTrackerService) SetVisibility(showUpcoming, showPast, showActive bool) {
	f.filters.ShowUpcoming = showUpcoming
	f.filters.ShowPast = showPast
	f.filters.ShowActive = showActive
}

func (f *fakeTrackerService) Filters() domain.FilterConfig { return f.filters }

func (f *fakeTrackerService) ImportSnapshot(_ context.Context, raw []byte) (int, error) {
	f.lastImportRaw = raw
	return f.importCount, f.importErr
}

func (f *fakeTrackerService) ExportJSON(context.Context) ([]byte, error) {
	return f.exportResult, f.exportErr
}

func validConferenceBody() map[string]any {
	return map[string]any{
		"name":                "ICML 2025",
		"location":            "Vancouver, Canada",
		"category":            "computer-science",
		"submissionDate":      "2025-01-30",
		"notificationDate":    "2025-05-01",
		"conferenceStartDate": "2025-07-13",
		"conferenceEndDate":   "2025-07-19",
		"status":              "planned",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestListConferences(t *testing.T) {
	rec := &domain.Conference{ID: "c1", Name: "ICML 2025", Location: "Vancouver"}
	svc := &fakeTrackerService{
		listViews: []*domain.ConferenceView{
			{Conference: rec, Countdown: domain.Countdown{Text: "3 days", Urgent: true}},
		},
		listStats: domain.Stats{Total: 1, Upcoming: 1},
		filters:   domain.DefaultFilterConfig(),
	}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.ListConferences(rr, httptest.NewRequest(http.MethodGet, "/conferences", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data  ListConferencesResponse `json:"data"`
		Error *helpers.APIError       `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	require.Len(t, envelope.Data.Conferences, 1)
	assert.Equal(t, "ICML 2025", envelope.Data.Conferences[0].Name)
	assert.Equal(t, "3 days", envelope.Data.Conferences[0].Countdown.Text)
	assert.True(t, envelope.Data.Conferences[0].Countdown.Urgent)
	assert.Equal(t, 1, envelope.Data.Stats.Total)
	assert.True(t, envelope.Data.Filters.ShowPast)
}

func TestListConferences_ServiceError(t *testing.T) {
	svc := &fakeTrackerService{listErr: errors.New("boom")}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.ListConferences(rr, httptest.NewRequest(http.MethodGet, "/conferences", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeInternalError, envelope.Error.Code)
}

func TestCreateConference(t *testing.T) {
	now := time.Now()
	svc := &fakeTrackerService{
		addResult: &domain.Conference{ID: "c1", Name: "ICML 2025", CreatedAt: now, UpdatedAt: now},
	}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/conferences", jsonBody(t, validConferenceBody()))
	c.CreateConference(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.lastCandidate)
	assert.Equal(t, "ICML 2025", svc.lastCandidate.Name)
	assert.Equal(t, "2025-01-30", svc.lastCandidate.SubmissionDate.String())
}

func TestCreateConference_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{"missing name", func(b map[string]any) { b["name"] = "" }},
		{"missing location", func(b map[string]any) { b["location"] = "  " }},
		{"missing submission date", func(b map[string]any) { b["submissionDate"] = "" }},
		{"malformed date", func(b map[string]any) { b["conferenceEndDate"] = "July 19" }},
		{"unknown field", func(b map[string]any) { b["bogus"] = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeTrackerService{}
			c := NewConferenceController(testLogger, svc)
			body := validConferenceBody()
			tt.mutate(body)

			rr := httptest.NewRecorder()
			c.CreateConference(rr, httptest.NewRequest(http.MethodPost, "/conferences", jsonBody(t, body)))

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Nil(t, svc.lastCandidate, "service must not be called")
		})
	}
}

func TestCreateConference_ValidationErrorFromService(t *testing.T) {
	svc := &fakeTrackerService{
		addErr: &domain.ValidationError{Field: "notificationDate", Reason: "must not be before submissionDate"},
	}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.CreateConference(rr, httptest.NewRequest(http.MethodPost, "/conferences", jsonBody(t, validConferenceBody())))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeValidation, envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "notificationDate")
}

func TestUpdateConference(t *testing.T) {
	svc := &fakeTrackerService{
		editResult: &domain.Conference{ID: "c1", Name: "ICML 2025"},
	}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/conferences/c1", jsonBody(t, validConferenceBody()))
	req.SetPathValue("conferenceID", "c1")
	c.UpdateConference(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "c1", svc.lastEditID)
}

func TestUpdateConference_NotFound(t *testing.T) {
	svc := &fakeTrackerService{editErr: domain.ErrNotFound}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/conferences/nope", jsonBody(t, validConferenceBody()))
	req.SetPathValue("conferenceID", "nope")
	c.UpdateConference(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
}

func TestDeleteConference(t *testing.T) {
	svc := &fakeTrackerService{}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/conferences/c1", nil)
	req.SetPathValue("conferenceID", "c1")
	c.DeleteConference(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "c1", svc.lastDeleteID)
}

func TestDeleteConference_NotFound(t *testing.T) {
	svc := &fakeTrackerService{deleteErr: domain.ErrNotFound}
	c := NewConferenceController(testLogger, svc)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/conferences/nope", nil)
	req.SetPathValue("conferenceID", "nope")
	c.DeleteConference(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
