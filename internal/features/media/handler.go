package media

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/cloudinary"
	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
)

// Handler uploads post images. The create-post screen uploads first and
// sends the returned URL in the post's image field.
type Handler struct {
	cloudinary *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cloudinary: cld}
}

// UploadImage stores a post image and returns its URL.
func (h *Handler) UploadImage(c *gin.Context) {
	if h.cloudinary == nil {
		response.Error(c, 503, "image uploads are not configured", "UPLOADS_DISABLED")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload file", "UPLOAD_FAILED")
		return
	}

	response.Success(c, result)
}
