package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := NewMemoryStore()
	return New(srv.URL, store, nil), store
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var got string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	})

	// No token stored: no header at all.
	err := client.do(context.Background(), http.MethodGet, "/ping", nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	store.Set("tok-123")
	err = client.do(context.Background(), http.MethodGet, "/ping", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", got)
}

func TestClient_ErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{400, apperrors.ErrBadRequest},
		{401, apperrors.ErrUnauthorized},
		{403, apperrors.ErrForbidden},
		{404, apperrors.ErrNotFound},
		{500, apperrors.ErrUpstream},
		{502, apperrors.ErrUpstream},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
		require.ErrorIs(t, err, tc.want, "status %d", tc.status)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, tc.status, apiErr.Status)
	}
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(400)
		w.Write([]byte(`{"message":"title is required"}`))
	})

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.EqualError(t, err, "title is required")
}

func TestClient_ErrorMessageFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte("<html>boom</html>"))
	})

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.EqualError(t, err, "HTTP error 500")
}

func TestClient_NonJSONSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	})

	var out struct {
		Value string `json:"value"`
	}
	err := client.do(context.Background(), http.MethodGet, "/x", nil, &out)
	require.NoError(t, err)
	require.Empty(t, out.Value)
}

func TestClient_TransportFailure(t *testing.T) {
	store := NewMemoryStore()
	client := New("http://127.0.0.1:1", store, nil)

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestClient_ForbiddenRetry(t *testing.T) {
	old := forbiddenRetryDelay
	forbiddenRetryDelay = time.Millisecond
	t.Cleanup(func() { forbiddenRetryDelay = old })

	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(403)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	})

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil, withForbiddenRetry())
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestClient_ForbiddenRetry_OnlyOnce(t *testing.T) {
	old := forbiddenRetryDelay
	forbiddenRetryDelay = time.Millisecond
	t.Cleanup(func() { forbiddenRetryDelay = old })

	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(403)
	})

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil, withForbiddenRetry())
	require.ErrorIs(t, err, apperrors.ErrForbidden)
	require.Equal(t, 2, calls)
}

func TestClient_NoRetryWithoutOption(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(403)
	})

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
	require.Equal(t, 1, calls)
}

func TestClient_HeaderOverride(t *testing.T) {
	var got string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(204)
	})
	store.Set("stored-token")

	err := client.do(context.Background(), http.MethodGet, "/x", nil, nil, withHeader("Authorization", "Bearer override"))
	require.NoError(t, err)
	require.Equal(t, "Bearer override", got)
}

func TestClient_EmptySuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(200)
	})

	var out envelope[User]
	err := client.do(context.Background(), http.MethodGet, "/x", nil, &out)
	require.NoError(t, err)
	require.Nil(t, out.Data)
}
