package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Validation("bad age %q", "x"), KindValidation},
		{NotFound("patient not found"), KindNotFound},
		{ForeignKey("no such doctor"), KindForeignKey},
		{Conflict("duplicate medicine"), KindConflict},
		{State("bill not eligible"), KindState},
		{errors.New("plain"), KindUnknown},
		{fmt.Errorf("wrapped: %w", Conflict("dup")), KindConflict},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestFromPG_NoRows(t *testing.T) {
	err := FromPG(pgx.ErrNoRows, "patient")
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "patient not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestFromPG_ForeignKey(t *testing.T) {
	err := FromPG(&pgconn.PgError{Code: "23503"}, "appointment")
	if KindOf(err) != KindForeignKey {
		t.Fatalf("expected foreign key, got %v", err)
	}
}

func TestFromPG_Unique(t *testing.T) {
	err := FromPG(&pgconn.PgError{Code: "23505"}, "medicine")
	if KindOf(err) != KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestFromPG_Passthrough(t *testing.T) {
	plain := errors.New("connection refused")
	if got := FromPG(plain, "bill"); got != plain {
		t.Errorf("expected passthrough, got %v", got)
	}
	if FromPG(nil, "bill") != nil {
		t.Error("expected nil for nil error")
	}
}

func doHandle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := zerolog.New(os.Stderr)
	HTTPErrorHandler(logger)(err, c)

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_Statuses(t *testing.T) {
	cases := []struct {
		err    error
		status int
		label  string
	}{
		{Validation("bad input"), http.StatusBadRequest, "validation"},
		{NotFound("gone"), http.StatusNotFound, "not_found"},
		{ForeignKey("missing ref"), http.StatusBadRequest, "foreign_key"},
		{Conflict("dup"), http.StatusConflict, "conflict"},
		{State("not eligible"), http.StatusConflict, "state"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		rec, body := doHandle(t, tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
		if body.Error != tc.label {
			t.Errorf("%v: label = %q, want %q", tc.err, body.Error, tc.label)
		}
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := doHandle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if body.Detail != "method not allowed" {
		t.Errorf("detail = %q", body.Detail)
	}
}

func TestHTTPErrorHandler_HidesInternalDetail(t *testing.T) {
	_, body := doHandle(t, errors.New("pq: password authentication failed"))
	if body.Detail != "internal server error" {
		t.Errorf("internal detail leaked: %q", body.Detail)
	}
}
