package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	apperrors "github.com/minjaekim/sportsmate-web/pkg/errors"
)

func (f PostFilters) query() string {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set("sport", f.Sport)
	set("sortBy", f.SortBy)
	set("search", f.Search)
	set("region", f.Region)
	set("gender", f.Gender)
	set("date", f.Date)
	return q.Encode()
}

// GetPosts lists recruitment posts. Absent filters are omitted from the
// query entirely. A missing data field counts as an empty listing.
func (c *Client) GetPosts(ctx context.Context, filters PostFilters, policy ListPolicy) ([]Post, error) {
	path := "/posts"
	if q := filters.query(); q != "" {
		path += "?" + q
	}

	var body envelope[[]Post]
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return listFailure[Post](c, policy, "posts", err)
	}
	if body.Data == nil {
		return []Post{}, nil
	}
	return *body.Data, nil
}

// GetPost fetches a single post. A success response without data is
// reported as not found.
func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	var body envelope[Post]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/posts/%d", id), nil, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "post not found", kind: apperrors.ErrNotFound}
	}
	return body.Data, nil
}

func (c *Client) CreatePost(ctx context.Context, in CreatePostInput) (*Post, error) {
	var body envelope[Post]
	if err := c.do(ctx, http.MethodPost, "/posts", in, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &APIError{Message: "create post: empty response", kind: apperrors.ErrUpstream}
	}
	return body.Data, nil
}

func (c *Client) UpdatePost(ctx context.Context, id int64, in UpdatePostInput) (*Post, error) {
	var body envelope[Post]
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/posts/%d", id), in, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &APIError{Message: "update post: empty response", kind: apperrors.ErrUpstream}
	}
	return body.Data, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/posts/%d", id), nil, nil)
}
