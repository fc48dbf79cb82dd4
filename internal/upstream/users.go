package upstream

import (
	"context"
	"net/http"

	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

// GetProfile fetches the authenticated user's profile. Profile calls opt
// into the one-shot forbidden retry; a just-issued token can be rejected
// until the backend has propagated it.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var body envelope[User]
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, &body, withForbiddenRetry()); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &APIError{Message: "profile: empty response", kind: apperrors.ErrUpstream}
	}
	return body.Data, nil
}

func (c *Client) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*User, error) {
	var body envelope[User]
	if err := c.do(ctx, http.MethodPut, "/users/profile", in, &body, withForbiddenRetry()); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &APIError{Message: "update profile: empty response", kind: apperrors.ErrUpstream}
	}
	return body.Data, nil
}

// GetMyPosts lists the posts authored by the authenticated user.
func (c *Client) GetMyPosts(ctx context.Context, policy ListPolicy) ([]Post, error) {
	var body envelope[[]Post]
	if err := c.do(ctx, http.MethodGet, "/users/posts", nil, &body); err != nil {
		return listFailure[Post](c, policy, "my posts", err)
	}
	if body.Data == nil {
		return []Post{}, nil
	}
	return *body.Data, nil
}

// GetMyApplications lists the join requests the authenticated user has
// submitted, each with its post snapshot and status.
func (c *Client) GetMyApplications(ctx context.Context, policy ListPolicy) ([]Application, error) {
	var body envelope[[]Application]
	if err := c.do(ctx, http.MethodGet, "/users/applications", nil, &body); err != nil {
		return listFailure[Application](c, policy, "my applications", err)
	}
	if body.Data == nil {
		return []Application{}, nil
	}
	return *body.Data, nil
}
