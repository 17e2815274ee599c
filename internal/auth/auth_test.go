package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

func protectedHandler() (http.Handler, *bool) {
	reached := false
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
		writer.WriteHeader(http.StatusNoContent)
	}), &reached
}

func TestRequireKey_DisabledWithEmptyKey(t *testing.T) {
	next, reached := protectedHandler()
	handler := RequireKey("")(next)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, *reached)
}

func TestRequireKey_MissingHeader(t *testing.T) {
	next, reached := protectedHandler()
	handler := RequireKey("secret")(next)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *reached)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, httpx.StatusError, resp.Status)
	require.Equal(t, "missing api key", resp.Message)
}

func TestRequireKey_WrongKey(t *testing.T) {
	next, reached := protectedHandler()
	handler := RequireKey("secret")(next)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	req.Header.Set(HeaderAPIKey, "not-the-secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, *reached)

	var resp httpx.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "invalid api key", resp.Message)
}

func TestRequireKey_CorrectKey(t *testing.T) {
	next, reached := protectedHandler()
	handler := RequireKey("secret")(next)

	req := httptest.NewRequest(http.MethodPost, "/api/items", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.True(t, *reached)
}
