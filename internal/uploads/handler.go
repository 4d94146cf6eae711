package uploads

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/extract"
	"interview-backend/internal/shared/server/respond"
)

// maxResumeBytes bounds uploaded resume size.
const maxResumeBytes = 10 << 20

// Handler serves resume uploads used to prefill the candidate profile.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/extract", h.extractResume)
}

func (h *Handler) extractResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxResumeBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume exceeds the size limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if len(data) > maxResumeBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume exceeds the size limit", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	text, err := extract.Text(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusBadRequest, "unsupported_type", "only PDF and DOCX resumes are supported", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "failed to extract text from resume", nil)
		return
	}

	respond.OK(c, gin.H{"experience": strings.TrimSpace(text)})
}
