package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conftrack/internal/delivery/http/helpers"
	"conftrack/internal/domain"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token          string
	err            error
	lastPassphrase string
}

func (f *fakeAuthService) Login(passphrase string) (string, error) {
	f.lastPassphrase = passphrase
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func TestLogin(t *testing.T) {
	svc := &fakeAuthService{token: "signed-token"}
	c := NewAuthController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{"passphrase": "open sesame"})))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "open sesame", svc.lastPassphrase)
	var envelope struct {
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	assert.Equal(t, "signed-token", envelope.Data.Token)
}

func TestLogin_InvalidPassphrase(t *testing.T) {
	svc := &fakeAuthService{err: domain.ErrInvalidCredentials}
	c := NewAuthController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{"passphrase": "wrong"})))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
}

func TestLogin_EmptyPassphrase(t *testing.T) {
	svc := &fakeAuthService{}
	c := NewAuthController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{"passphrase": ""})))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, svc.lastPassphrase)
}

func TestLogin_ServiceFailure(t *testing.T) {
	svc := &fakeAuthService{err: errors.New("hash mismatch config")}
	c := NewAuthController(testLogger, svc)

	rr := httptest.NewRecorder()
	c.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", jsonBody(t, map[string]string{"passphrase": "x"})))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
