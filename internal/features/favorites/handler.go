package favorites

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

type addRequest struct {
	PostID int64 `json:"postId" binding:"required"`
}

// Handler serves the favorites screen and the bookmark toggle
type Handler struct {
	client *upstream.Client
}

// NewHandler creates a new favorites handler
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{client: client}
}

// List returns the caller's bookmarked posts; failures degrade to an
// empty list.
func (h *Handler) List(c *gin.Context) {
	favorites, _ := h.client.GetFavorites(c.Request.Context(), upstream.FailSoft)
	response.Success(c, favorites)
}

// Add bookmarks a post. The UI toggles optimistically; repeats are
// no-ops backend-side.
func (h *Handler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := h.client.AddFavorite(c.Request.Context(), req.PostID); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "favorite added")
}

// Remove drops a bookmark.
func (h *Handler) Remove(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid post id", "INVALID_ID")
		return
	}

	if err := h.client.RemoveFavorite(c.Request.Context(), postID); err != nil {
		response.Upstream(c, err)
		return
	}
	response.Message(c, "favorite removed")
}
