// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	svcs := newTestServices(t)
	svcs.SessionService.(*fakeSessionSvc).register = func(req models.RegisterRequest) (models.User, error) {
		assert.Equal(t, "ann@example.com", req.Email)
		return models.User{ID: 7, Email: req.Email, Username: req.Username, Role: models.RoleUser, PasswordHash: "secret"}, nil
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, postJSON("/api/auth/register", `{"email":"ann@example.com","username":"chef"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	token, err := utils.ParseBearerToken(rec.Header().Get("Authorization"))
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	var resp struct {
		Email string         `json:"email"`
		Role  models.Role    `json:"role"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ann@example.com", resp.Email)
	assert.Equal(t, models.RoleUser, resp.Role)
	assert.NotContains(t, resp.User, "passwordHash")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidPassword),
			wantStatus: http.StatusBadRequest,
			wantMsg:    validators.ErrInvalidPassword.Error(),
		},
		{"duplicate email", service.ErrEmailAlreadyRegistered, http.StatusConflict, service.ErrEmailAlreadyRegistered.Error()},
		{"remote failure", fmt.Errorf("%w: timeout", service.ErrRegistrationFailed), http.StatusBadGateway, http.StatusText(http.StatusBadGateway)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.SessionService.(*fakeSessionSvc).register = func(models.RegisterRequest) (models.User, error) {
				return models.User{}, tt.err
			}
			router := newTestHandler(t, svcs).Init()

			rec := serve(t, router, postJSON("/api/auth/register", `{}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, decodeError(t, rec), tt.wantMsg)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, postJSON("/api/auth/register", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, ErrInvalidJSON.Error(), decodeError(t, rec))
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLoginLocal_PassesAdminFlag(t *testing.T) {
	svcs := newTestServices(t)
	svcs.SessionService.(*fakeSessionSvc).loginLocal = func(req models.LoginRequest) (models.User, error) {
		require.True(t, req.Admin)
		return models.User{ID: 1, Email: req.Email, Role: models.RoleAdmin}, nil
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, postJSON("/api/auth/login", `{"email":"admin@example.com","password":"Admin123","admin":true}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}

func TestLoginLocal_InvalidCredentials(t *testing.T) {
	svcs := newTestServices(t)
	svcs.SessionService.(*fakeSessionSvc).loginLocal = func(models.LoginRequest) (models.User, error) {
		return models.User{}, service.ErrInvalidCredentials
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, postJSON("/api/auth/login", `{"email":"a@example.com","password":"x"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), decodeError(t, rec))
}

func TestLoginRemote_Success(t *testing.T) {
	svcs := newTestServices(t)
	svcs.SessionService.(*fakeSessionSvc).loginRemote = func(req models.LoginRequest) (models.RemoteUser, error) {
		return models.RemoteUser{Key: "ann@example,com", Email: req.Email, Role: models.RoleUser}, nil
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, postJSON("/api/auth/login/remote", `{"email":"ann@example.com","password":"Secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"ann@example,com"`)
}

// ── google ───────────────────────────────────────────────────────────────────

func TestGoogleSignIn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"bad token", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"disabled", service.ErrIdentityUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices(t)
			svcs.SessionService.(*fakeSessionSvc).googleSignIn = func(idToken string) (models.User, error) {
				assert.Equal(t, "google-id-token", idToken)
				if tt.err != nil {
					return models.User{}, tt.err
				}
				return models.User{ID: 3, Email: "g@example.com", Role: models.RoleUser}, nil
			}
			router := newTestHandler(t, svcs).Init()

			rec := serve(t, router, postJSON("/api/auth/google", `{"idToken":"google-id-token"}`))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
