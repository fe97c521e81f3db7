package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

func TestRefresh(t *testing.T) {
	svc := &fakeTrackerService{loadSource: domain.SourceRemote, loadCount: 12}
	c := NewDataController(testLogger, svc, nil)

	rr := httptest.NewRecorder()
	c.Refresh(rr, httptest.NewRequest(http.MethodPost, "/data/refresh", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data RefreshResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, domain.SourceRemote, envelope.Data.Source)
	assert.Equal(t, 12, envelope.Data.Count)
}

func TestImport(t *testing.T) {
	svc := &fakeTrackerService{importCount: 3}
	c := NewDataController(testLogger, svc, nil)

	doc := `{"version":"1.0","conferences":[]}`
	rr := httptest.NewRecorder()
	c.Import(rr, httptest.NewRequest(http.MethodPut, "/data", strings.NewReader(doc)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, doc, string(svc.lastImportRaw))
	var envelope struct {
		Data ImportResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, 3, envelope.Data.Imported)
}

func TestImport_InvalidDocument(t *testing.T) {
	svc := &fakeTrackerService{importErr: domain.ErrInvalidInput}
	c := NewDataController(testLogger, svc, nil)

	rr := httptest.NewRecorder()
	c.Import(rr, httptest.NewRequest(http.MethodPut, "/data", strings.NewReader("not json")))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
}

func TestExportJSON(t *testing.T) {
	doc := []byte(`{"version":"1.0","conferences":[]}`)
	svc := &fakeTrackerService{exportResult: doc}
	c := NewDataController(testLogger, svc, nil)

	rr := httptest.NewRecorder()
	c.ExportJSON(rr, httptest.NewRequest(http.MethodGet, "/data/export", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="conferences.json"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, doc, rr.Body.Bytes())
}

func TestExportPDF(t *testing.T) {
	rec := &domain.Conference{ID: "c1", Name: "ICML 2025", Location: "Vancouver"}
	svc := &fakeTrackerService{
		listViews: []*domain.ConferenceView{{Conference: rec}},
	}
	c := NewDataController(testLogger, svc, nil)

	rr := httptest.NewRecorder()
	c.ExportPDF(rr, httptest.NewRequest(http.MethodGet, "/data/export/pdf", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF", rr.Body.String()[:4])
}
