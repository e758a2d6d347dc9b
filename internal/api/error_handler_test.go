package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/worknest/workforce-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return rec, body
}

func TestHTTPErrorHandlerStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", domain.NewValidationError("title is required"), http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"throttled", domain.ErrTooManyLoginAttempts, http.StatusTooManyRequests},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"employee missing", domain.ErrEmployeeNotFound, http.StatusNotFound},
		{"project missing", domain.ErrProjectNotFound, http.StatusNotFound},
		{"task missing", domain.ErrTaskNotFound, http.StatusNotFound},
		{"workflow missing", domain.ErrWorkflowNotFound, http.StatusNotFound},
		{"step missing", domain.ErrStepNotFound, http.StatusNotFound},
		{"duplicate employee", domain.ErrEmployeeExists, http.StatusConflict},
		{"project has tasks", domain.ErrProjectHasTasks, http.StatusConflict},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "route not found"), http.StatusNotFound},
		{"unexpected", errors.New("db connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := renderError(t, tt.err)
			if rec.Code != tt.code {
				t.Errorf("code = %d, want %d", rec.Code, tt.code)
			}
			if body.Success {
				t.Error("error envelope must carry success=false")
			}
			if body.Error == "" {
				t.Error("error envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandlerValidationMessage(t *testing.T) {
	_, body := renderError(t, domain.NewValidationError("title is required", "email must be valid"))
	if body.Error != "title is required; email must be valid" {
		t.Errorf("message = %q", body.Error)
	}
}

func TestHTTPErrorHandlerHidesInternalDetails(t *testing.T) {
	_, body := renderError(t, errors.New("pq: password authentication failed"))
	if body.Error != "internal server error" {
		t.Errorf("internal errors must not leak: %q", body.Error)
	}
}

func TestHTTPErrorHandlerWrappedDomainError(t *testing.T) {
	rec, _ := renderError(t, errors.Join(errors.New("fetch workflow"), domain.ErrWorkflowNotFound))
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d, want %d for wrapped domain error", rec.Code, http.StatusNotFound)
	}
}
