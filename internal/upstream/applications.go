package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// ApplyToPost submits a join request for a post.
func (c *Client) ApplyToPost(ctx context.Context, postID int64) error {
	payload := map[string]int64{"postId": postID}
	return c.do(ctx, http.MethodPost, "/applications", payload, nil)
}

// ApproveApplication accepts a pending join request on a post the caller
// authored.
func (c *Client) ApproveApplication(ctx context.Context, postID, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/applications/%d/approve", postID, userID), nil, nil)
}

// RejectApplication declines a pending join request.
func (c *Client) RejectApplication(ctx context.Context, postID, userID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/applications/%d/reject", postID, userID), nil, nil)
}
