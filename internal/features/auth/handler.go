package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/pkg/session"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// EmailStore remembers the login email across sessions when the user
// checks "keep me logged in".
type EmailStore interface {
	RememberEmail(email string)
	RememberedEmail() string
	ForgetEmail()
}

// Handler handles login, signup and session endpoints for the mobile UI
type Handler struct {
	client *upstream.Client
	emails EmailStore
	log    *logger.Logger
}

// NewHandler creates a new auth handler. emails may be nil when no
// persistent store is wired (tests).
func NewHandler(client *upstream.Client, emails EmailStore, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		client: client,
		emails: emails,
		log:    log,
	}
}

// Login authenticates against the backend. Business rejections come back
// as a 401 envelope carrying the backend's code and message; only
// transport-level trouble maps to a gateway error status.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.client.Login(c.Request.Context(), upstream.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Upstream(c, err)
		return
	}

	if !result.OK {
		response.Error(c, http.StatusUnauthorized, result.Message, result.Code)
		return
	}

	if h.emails != nil {
		if req.RememberEmail {
			h.emails.RememberEmail(req.Email)
		} else {
			h.emails.ForgetEmail()
		}
	}

	response.Success(c, result.User)
}

// Logout tells the backend best-effort; the local session is gone either
// way, so the page always gets an acknowledgment.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.client.Logout(c.Request.Context()); err != nil {
		h.log.Warn("backend logout failed: %v", err)
	}
	response.Message(c, "logged out")
}

// Signup registers a new account after mirroring the page's checks.
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateSignupRequest(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	result, err := h.client.Signup(c.Request.Context(), req.toInput())
	if err != nil {
		response.Upstream(c, err)
		return
	}

	if result.Code != upstream.CodeSignupOK {
		response.Error(c, http.StatusBadRequest, result.Message, result.Code)
		return
	}

	message := result.Message
	if message == "" {
		message = "signup complete"
	}
	response.Message(c, message)
}

// Session reports whether a live token is held and the remembered login
// email, so the login page can prefill and the app can skip the login
// screen. A stale JWT-shaped token is cleared here.
func (h *Handler) Session(c *gin.Context) {
	token := h.client.Store().Get()
	if token != "" && session.Expired(token) {
		h.client.Store().Clear()
		token = ""
	}

	resp := SessionResponse{LoggedIn: token != ""}
	if h.emails != nil {
		resp.RememberedEmail = h.emails.RememberedEmail()
	}
	response.Success(c, resp)
}

// CheckEmail maps the backend's availability code to a boolean. "Taken"
// is a normal answer, not an error.
func (h *Handler) CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.client.CheckEmailDuplicate(c.Request.Context(), req.Email)
	if err != nil {
		response.Upstream(c, err)
		return
	}

	switch result.Code {
	case upstream.CodeEmailAvailable:
		response.Success(c, AvailabilityResponse{Available: true})
	case upstream.CodeEmailTaken:
		response.Success(c, AvailabilityResponse{Available: false})
	default:
		response.Error(c, http.StatusBadGateway, result.Message, result.Code)
	}
}

// CheckNickname maps the backend's availability code to a boolean.
func (h *Handler) CheckNickname(c *gin.Context) {
	var req CheckNicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.client.CheckNicknameDuplicate(c.Request.Context(), req.Nickname)
	if err != nil {
		response.Upstream(c, err)
		return
	}

	switch result.Code {
	case upstream.CodeNicknameAvailable:
		response.Success(c, AvailabilityResponse{Available: true})
	case upstream.CodeNicknameTaken:
		response.Success(c, AvailabilityResponse{Available: false})
	default:
		response.Error(c, http.StatusBadGateway, result.Message, result.Code)
	}
}

// KakaoConfig passes the OAuth client settings through to the login page.
func (h *Handler) KakaoConfig(c *gin.Context) {
	cfg, err := h.client.FetchKakaoConfig(c.Request.Context())
	if err != nil {
		response.Upstream(c, err)
		return
	}
	response.Success(c, cfg)
}
