package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// GetFavorites lists the caller's bookmarked posts.
func (c *Client) GetFavorites(ctx context.Context, policy ListPolicy) ([]Favorite, error) {
	var body envelope[[]Favorite]
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, &body); err != nil {
		return listFailure[Favorite](c, policy, "favorites", err)
	}
	if body.Data == nil {
		return []Favorite{}, nil
	}
	return *body.Data, nil
}

// AddFavorite bookmarks a post. The backend treats repeats as no-ops, so
// the UI can toggle optimistically.
func (c *Client) AddFavorite(ctx context.Context, postID int64) error {
	payload := map[string]int64{"postId": postID}
	return c.do(ctx, http.MethodPost, "/favorites", payload, nil)
}

// RemoveFavorite drops a bookmark, idempotently.
func (c *Client) RemoveFavorite(ctx context.Context, postID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", postID), nil, nil)
}
