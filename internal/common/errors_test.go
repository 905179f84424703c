package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", InvalidArgument("bad"), http.StatusBadRequest},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"permission denied", PermissionDenied("no"), http.StatusForbidden},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"unauthenticated", Unauthenticated("who"), http.StatusUnauthorized},
		{"internal", Internal("boom"), http.StatusInternalServerError},
		{"raw error", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NotFound("x"), codes.NotFound))
	assert.False(t, IsCode(NotFound("x"), codes.PermissionDenied))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, Conflict("phone number already registered"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"phone number already registered"}`, rec.Body.String())
}

func TestWriteErrorStripsStatusPrefix(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, InvalidArgument("invalid cursor format"))

	require.JSONEq(t, `{"message":"invalid cursor format"}`, rec.Body.String())
}
