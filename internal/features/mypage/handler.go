package mypage

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// Handler serves the mypage screens: profile, own posts, bookmarks and
// submitted applications.
type Handler struct {
	client *upstream.Client
}

// NewHandler creates a new mypage handler
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{client: client}
}

// Overview aggregates the mypage landing screen. The four fetches are
// independent, so they run concurrently and are awaited jointly. A
// profile failure surfaces; list failures degrade to empty sections.
func (h *Handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg         sync.WaitGroup
		profile    *upstream.User
		profileErr error
		resp       OverviewResponse
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		profile, profileErr = h.client.GetProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		resp.MyPosts, _ = h.client.GetMyPosts(ctx, upstream.FailSoft)
	}()
	go func() {
		defer wg.Done()
		resp.Favorites, _ = h.client.GetFavorites(ctx, upstream.FailSoft)
	}()
	go func() {
		defer wg.Done()
		resp.Applications, _ = h.client.GetMyApplications(ctx, upstream.FailSoft)
	}()
	wg.Wait()

	if profileErr != nil {
		response.Upstream(c, profileErr)
		return
	}
	resp.Profile = profile

	response.Success(c, resp)
}

// Profile returns the authenticated user's profile.
func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.client.GetProfile(c.Request.Context())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, profile)
}

// UpdateProfile applies a partial profile edit.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	profile, err := h.client.UpdateProfile(c.Request.Context(), req.toInput())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, profile)
}

// MyPosts lists the posts the caller authored.
func (h *Handler) MyPosts(c *gin.Context) {
	posts, _ := h.client.GetMyPosts(c.Request.Context(), upstream.FailSoft)
	response.Success(c, posts)
}

// MyApplications lists the caller's join requests with their status.
func (h *Handler) MyApplications(c *gin.Context) {
	applications, _ := h.client.GetMyApplications(c.Request.Context(), upstream.FailSoft)
	response.Success(c, applications)
}
