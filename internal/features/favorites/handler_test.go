package favorites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

func newFavoritesRouter(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *upstream.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store := upstream.NewMemoryStore()
	client := upstream.New(srv.URL, store, nil)

	r := gin.New()
	RegisterRoutes(r.Group("/api"), client)
	return r, store
}

func TestList_RequiresSession(t *testing.T) {
	r, _ := newFavoritesRouter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("backend must not be called")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/favorites", nil))

	require.Equal(t, 401, w.Code)
}

func TestList_DegradesToEmpty(t *testing.T) {
	r, store := newFavoritesRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	})
	store.Set("tok")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/favorites", nil))

	require.Equal(t, 200, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.Empty(t, body["data"])
}

func TestAdd_ForwardsPostID(t *testing.T) {
	var payload map[string]int64
	r, store := newFavoritesRouter(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/favorites", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(200)
	})
	store.Set("tok")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/favorites", strings.NewReader(`{"postId":11}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, int64(11), payload["postId"])
}

func TestRemove(t *testing.T) {
	var method, path string
	r, store := newFavoritesRouter(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(200)
	})
	store.Set("tok")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/favorites/11", nil))

	require.Equal(t, 200, w.Code)
	require.Equal(t, http.MethodDelete, method)
	require.Equal(t, "/favorites/11", path)
}
