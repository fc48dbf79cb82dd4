package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "user@example.com", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"user":{"id":7,"nickname":"민재"},"token":"jwt-token"}}`))
	})

	result, err := client.Login(context.Background(), Credentials{Email: "user@example.com", Password: "pw1234!a"})
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, "jwt-token", result.Token)
	require.Equal(t, int64(7), result.User.ID)
	require.Equal(t, "jwt-token", store.Get())
}

func TestLogin_UnknownUser(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"code":"USER404","message":"no such user"}`))
	})

	result, err := client.Login(context.Background(), Credentials{Email: "nobody@example.com", Password: "x"})
	require.NoError(t, err)
	require.False(t, result.OK)
	require.Equal(t, CodeUserNotFound, result.Code)
	require.Equal(t, "no such user", result.Message)
	require.Empty(t, store.Get())
}

func TestLogin_RejectionWithoutMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false}`))
	})

	result, err := client.Login(context.Background(), Credentials{})
	require.NoError(t, err)
	require.False(t, result.OK)
	require.Equal(t, "login failed", result.Message)
}

func TestLogout_ClearsTokenOnFailure(t *testing.T) {
	store := NewMemoryStore()
	store.Set("stale")
	client := New("http://127.0.0.1:1", store, nil)

	err := client.Logout(context.Background())
	require.Error(t, err)
	require.Empty(t, store.Get())
}

func TestLogout_NotifiesBackend(t *testing.T) {
	var path string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(200)
	})
	store.Set("tok")

	require.NoError(t, client.Logout(context.Background()))
	require.Equal(t, "/auth/logout", path)
	require.Empty(t, store.Get())
}

func TestSignup(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/signup", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"USER200","message":"welcome"}`))
	})

	res, err := client.Signup(context.Background(), SignupInput{Email: "new@example.com"})
	require.NoError(t, err)
	require.Equal(t, CodeSignupOK, res.Code)
}

func TestCheckEmailDuplicate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/check-email", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		if payload["email"] == "taken@example.com" {
			w.Write([]byte(`{"code":"USER400"}`))
			return
		}
		w.Write([]byte(`{"code":"USER202"}`))
	})

	res, err := client.CheckEmailDuplicate(context.Background(), "free@example.com")
	require.NoError(t, err)
	require.Equal(t, CodeEmailAvailable, res.Code)

	res, err = client.CheckEmailDuplicate(context.Background(), "taken@example.com")
	require.NoError(t, err)
	require.Equal(t, CodeEmailTaken, res.Code)
}

func TestCheckNicknameDuplicate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/check-nickname", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"USER401"}`))
	})

	res, err := client.CheckNicknameDuplicate(context.Background(), "듀플")
	require.NoError(t, err)
	require.Equal(t, CodeNicknameTaken, res.Code)
}

func TestFetchKakaoConfig(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/kakao-config", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"clientId":"kakao-id","redirectUri":"http://localhost:3000/login"}`))
	})

	cfg, err := client.FetchKakaoConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, "kakao-id", cfg.ClientID)
	require.Equal(t, "http://localhost:3000/login", cfg.RedirectURI)
}
