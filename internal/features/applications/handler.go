package applications

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// Handler serves the join-request actions: apply from the post detail
// screen, approve/reject from the author's my-posts screen. All three are
// command-style; the backend owns the approval workflow.
type Handler struct {
	client *upstream.Client
}

// NewHandler creates a new applications handler
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{client: client}
}

// Apply submits a join request for a post.
func (h *Handler) Apply(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return
	}

	if err := h.client.ApplyToPost(c.Request.Context(), postID); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "application submitted")
}

// Approve accepts a pending join request.
func (h *Handler) Approve(c *gin.Context) {
	postID, userID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.client.ApproveApplication(c.Request.Context(), postID, userID); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "application approved")
}

// Reject declines a pending join request.
func (h *Handler) Reject(c *gin.Context) {
	postID, userID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.client.RejectApplication(c.Request.Context(), postID, userID); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "application rejected")
}

func (h *Handler) ids(c *gin.Context) (postID, userID int64, ok bool) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id", "INVALID_ID")
		return 0, 0, false
	}
	return postID, userID, true
}
