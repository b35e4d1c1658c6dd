package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/mhenry-dev/portfolio-api/pkg/errors"
	"github.com/mhenry-dev/portfolio-api/pkg/metrics"
)

// ResumeReader loads the resume asset from disk
type ResumeReader interface {
	Read() ([]byte, error)
}

type ResumeHandler struct {
	service ResumeReader
}

func NewResumeHandler(service ResumeReader) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// GetResume serves the resume PDF fully buffered, with no range or caching
// support.
func (h *ResumeHandler) GetResume(c *gin.Context) {
	data, err := h.service.Read()
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			metrics.ResumeDownloads.WithLabelValues("not_found").Inc()
			respondError(c, http.StatusNotFound, "Resume not found", err)
			return
		}

		metrics.ResumeDownloads.WithLabelValues("error").Inc()
		respondError(c, http.StatusInternalServerError, "Failed to read resume", err)
		return
	}

	metrics.ResumeDownloads.WithLabelValues("success").Inc()
	c.Data(http.StatusOK, "application/pdf", data)
}
