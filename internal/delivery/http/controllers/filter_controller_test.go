package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

func TestGetFilters(t *testing.T) {
	svc := &fakeTrackerService{filters: domain.DefaultFilterConfig()}
	c := NewFilterController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.GetFilters(rr, httptest.NewRequest(http.MethodGet, "/filters", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data domain.FilterConfig `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, domain.SortByName, envelope.Data.SortBy)
	assert.True(t, envelope.Data.ShowUpcoming)
}

func TestUpdateFilters(t *testing.T) {
	svc := &fakeTrackerService{filters: domain.DefaultFilterConfig()}
	c := NewFilterController(testLogger, svc)

	body := jsonBody(t, map[string]any{
		"search":       "icml",
		"sortBy":       "submissionDate",
		"showUpcoming": true,
		"showPast":     false,
		"showActive":   true,
	})
	rr := httptest.NewRecorder()
	c.UpdateFilters(rr, httptest.NewRequest(http.MethodPut, "/filters", body))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "icml", svc.lastSearch)
	assert.Equal(t, domain.SortBySubmissionDate, svc.lastSortKey)
	assert.False(t, svc.filters.ShowPast)
}

func TestUpdateFilters_UnknownSortKey(t *testing.T) {
	svc := &fakeTrackerService{filters: domain.DefaultFilterConfig()}
	c := NewFilterController(testLogger, svc)

	body := jsonBody(t, map[string]any{
		"search":       "",
		"sortBy":       "popularity",
		"showUpcoming": true,
		"showPast":     true,
		"showActive":   true,
	})
	rr := httptest.NewRecorder()
	c.UpdateFilters(rr, httptest.NewRequest(http.MethodPut, "/filters", body))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	assert.Empty(t, svc.lastSearch, "config must not change on a bad sort key")
}
