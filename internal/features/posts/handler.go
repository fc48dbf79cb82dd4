package posts

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// Handler serves the browse/detail/write screens of the mobile UI
type Handler struct {
	client *upstream.Client
}

// NewHandler creates a new posts handler
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{client: client}
}

// List returns posts matching the optional filters. Fetch failures
// degrade to an empty listing; the page shows its retry affordance
// instead of an error screen.
func (h *Handler) List(c *gin.Context) {
	var filters upstream.PostFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "invalid filters", "INVALID_QUERY")
		return
	}

	posts, _ := h.client.GetPosts(c.Request.Context(), filters, upstream.FailSoft)
	response.Success(c, posts)
}

// Get returns one post with its participant list.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return
	}

	post, err := h.client.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, post)
}

// Create submits a new recruitment post.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	post, err := h.client.CreatePost(c.Request.Context(), req.toInput())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, post)
}

// Update edits a post the caller authored.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	post, err := h.client.UpdatePost(c.Request.Context(), id, req.toInput())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, post)
}

// Delete removes a post the caller authored.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return
	}

	if err := h.client.DeletePost(c.Request.Context(), id); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "post deleted")
}
