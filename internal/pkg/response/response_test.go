package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

func perform(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Success(c, gin.H{"id": 1})
	})

	require.Equal(t, 200, w.Code)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	require.Equal(t, float64(1), data["id"])
}

func TestMessage(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		Message(c, "logged out")
	})

	require.Equal(t, 200, w.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, "logged out", body["message"])
	require.NotContains(t, body, "data")
}

func TestBadRequestWithCode(t *testing.T) {
	w, body := perform(t, func(c *gin.Context) {
		BadRequest(c, "nickname invalid", "VALIDATION_FAILED")
	})

	require.Equal(t, 400, w.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "nickname invalid", body["error"])
	require.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestUpstream_SentinelMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantTag  string
	}{
		{apperrors.ErrNotFound, 404, "NOT_FOUND"},
		{apperrors.ErrUnauthorized, 401, "UNAUTHORIZED"},
		{apperrors.ErrForbidden, 403, "FORBIDDEN"},
		{apperrors.ErrBadRequest, 400, "BAD_REQUEST"},
		{apperrors.ErrUnavailable, 502, "BACKEND_UNREACHABLE"},
		{apperrors.ErrUpstream, 502, "BACKEND_ERROR"},
	}

	for _, tc := range cases {
		w, body := perform(t, func(c *gin.Context) {
			Upstream(c, tc.err)
		})
		require.Equal(t, tc.wantCode, w.Code, tc.wantTag)
		require.Equal(t, tc.wantTag, body["code"])
	}
}
