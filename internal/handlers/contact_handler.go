package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mhenry-dev/portfolio-api/internal/models"
)

// ContactSubmitter processes a validated contact form submission
type ContactSubmitter interface {
	SubmitContactForm(ctx context.Context, req *models.ContactRequest) *models.ContactResponse
}

type ContactHandler struct {
	service ContactSubmitter
}

func NewContactHandler(service ContactSubmitter) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact parses and validates the JSON body, then delegates to the
// contact service. Structural parse failures and field violations both yield
// 400; the service decides between 200 and 500 for everything past
// validation.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		attachError(c, err)

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  ParseValidationErrors(validationErrors),
			})
			return
		}

		// Malformed JSON or wrong field types: reject before validation
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	resp := h.service.SubmitContactForm(c.Request.Context(), &req)

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, resp)
}
