package upstream

import (
	"context"
	"net/http"
)

// Login authenticates against the backend. On success the returned token
// is stored for subsequent requests. Business rejections (unknown user,
// wrong password) are reported through the LoginResult, not as errors.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var body struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    *struct {
			User  *User  `json:"user"`
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/login", creds, &body); err != nil {
		return nil, err
	}

	if body.Success && body.Data != nil && body.Data.Token != "" {
		c.store.Set(body.Data.Token)
		return &LoginResult{
			OK:      true,
			User:    body.Data.User,
			Token:   body.Data.Token,
			Message: body.Message,
		}, nil
	}

	message := body.Message
	if message == "" {
		message = "login failed"
	}
	return &LoginResult{Code: body.Code, Message: message}, nil
}

// Signup registers a new account. The backend answers with a bare
// code/message pair; CodeSignupOK is the success literal.
func (c *Client) Signup(ctx context.Context, in SignupInput) (*StatusResult, error) {
	var res StatusResult
	if err := c.do(ctx, http.MethodPost, "/user/signup", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout notifies the backend best-effort and always clears the token
// store. A failed notification must not leave a stale token behind.
func (c *Client) Logout(ctx context.Context) error {
	defer c.store.Clear()
	if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		c.log.Warn("logout request failed: %v", err)
		return err
	}
	return nil
}

// CheckEmailDuplicate reports email availability via status code:
// CodeEmailAvailable or CodeEmailTaken. Taken is not an error.
func (c *Client) CheckEmailDuplicate(ctx context.Context, email string) (*StatusResult, error) {
	var res StatusResult
	payload := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/user/check-email", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckNicknameDuplicate reports nickname availability via status code:
// CodeNicknameAvailable or CodeNicknameTaken.
func (c *Client) CheckNicknameDuplicate(ctx context.Context, nickname string) (*StatusResult, error) {
	var res StatusResult
	payload := map[string]string{"nickname": nickname}
	if err := c.do(ctx, http.MethodPost, "/user/check-nickname", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchKakaoConfig returns the OAuth client settings for the kakao
// login/signup redirects. The endpoint answers unwrapped JSON.
func (c *Client) FetchKakaoConfig(ctx context.Context) (*KakaoConfig, error) {
	var cfg KakaoConfig
	if err := c.do(ctx, http.MethodGet, "/kakao-config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
