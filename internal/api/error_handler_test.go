package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inmobilia/housing-api/internal/core/domain"
)

func testContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"no results", domain.ErrNoResults, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"department not found", domain.ErrDepartmentNotFound, http.StatusNotFound},
		{"duplicate user", domain.ErrUserExists, http.StatusBadRequest},
		{"invalid filter", domain.ErrInvalidFilter, http.StatusBadRequest},
		{"infrastructure failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := resolveError(tc.err, zerolog.Nop(), testContext())
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
		})
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrUserNotFound)
	code, _ := resolveError(wrapped, zerolog.Nop(), testContext())
	if code != http.StatusNotFound {
		t.Fatalf("wrapped domain errors must still map, got %d", code)
	}
}

func TestResolveError_EchoHTTPErrorPassthrough(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "age must be at least 18"), zerolog.Nop(), testContext())
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "age must be at least 18" {
		t.Fatalf("expected message passthrough, got %q", msg)
	}
}

func TestResolveError_InternalMessageNotLeaked(t *testing.T) {
	_, msg := resolveError(errors.New("mongo: topology closed"), zerolog.Nop(), testContext())
	if msg != "internal server error" {
		t.Fatalf("infrastructure details leaked: %q", msg)
	}
}
