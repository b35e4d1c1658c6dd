package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mhenry-dev/portfolio-api/config"
	"github.com/mhenry-dev/portfolio-api/internal/models"
	"github.com/mhenry-dev/portfolio-api/pkg/brevo"
	"github.com/mhenry-dev/portfolio-api/pkg/logger"
	"github.com/mhenry-dev/portfolio-api/pkg/metrics"
	"github.com/mhenry-dev/portfolio-api/pkg/sanitize"
)

const (
	submissionAcceptedMessage = "Thank you for your message. We'll get back to you soon!"
	notificationFailedMessage = "Your message was received, but there was an issue sending the notification email. " +
		"Please try again or contact us directly."
)

// ContactService handles contact form submissions: it sanitizes the fields,
// mints a correlation id, and forwards a notification email through the
// Brevo gateway. Submissions are not persisted; the structured log line is
// the only record.
type ContactService struct {
	cfg    *config.Config
	sender brevo.Sender
}

// NewContactService creates a new contact service instance
func NewContactService(cfg *config.Config, sender brevo.Sender) *ContactService {
	return &ContactService{
		cfg:    cfg,
		sender: sender,
	}
}

// SubmitContactForm processes one validated submission. It always returns an
// acknowledgment carrying the correlation id; a gateway failure only
// downgrades Success and the message text.
func (s *ContactService) SubmitContactForm(ctx context.Context, req *models.ContactRequest) *models.ContactResponse {
	// Sanitized values are used for both logging and the outbound email, so
	// control characters never reach the downstream provider.
	email := sanitize.Clean(req.Email)
	firstName := sanitize.Clean(req.FirstName)
	lastName := sanitize.Clean(req.LastName)
	phoneNumber := sanitize.Clean(req.PhoneNumber)

	submissionID := uuid.NewString()

	logger.Info("Contact form submitted",
		zap.String("submission_id", submissionID),
		zap.String("first_name", firstName),
		zap.String("last_name", lastName),
		zap.String("email", email),
	)

	msg := s.buildMessage(submissionID, firstName, lastName, email, phoneNumber, req.Message)

	start := time.Now()
	err := s.sender.Send(ctx, msg)
	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.EmailGatewayRequestDuration.WithLabelValues("send_email", "error").Observe(duration)
		metrics.EmailGatewayRequestTotal.WithLabelValues("send_email", "error").Inc()
		metrics.ContactFormSubmissions.WithLabelValues("email_failed").Inc()
		logger.LogGatewayCall("send_email", "error", duration,
			zap.String("submission_id", submissionID),
			zap.Error(err))

		return &models.ContactResponse{
			Success: false,
			Message: notificationFailedMessage,
			ID:      submissionID,
		}
	}

	metrics.EmailGatewayRequestDuration.WithLabelValues("send_email", "success").Observe(duration)
	metrics.EmailGatewayRequestTotal.WithLabelValues("send_email", "success").Inc()
	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.LogGatewayCall("send_email", "success", duration,
		zap.String("submission_id", submissionID))

	return &models.ContactResponse{
		Success: true,
		Message: submissionAcceptedMessage,
		ID:      submissionID,
	}
}

// buildMessage composes the notification email for one submission.
func (s *ContactService) buildMessage(submissionID, firstName, lastName, email, phoneNumber, message string) *brevo.Message {
	htmlContent := fmt.Sprintf(`
<h2>New Contact Form Submission</h2>
<p><strong>Contact ID:</strong> %s</p>
<p><strong>Name:</strong> %s %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><em>This message was sent from your website contact form.</em></p>
`,
		submissionID,
		html.EscapeString(firstName),
		html.EscapeString(lastName),
		html.EscapeString(email),
		html.EscapeString(phoneNumber),
		renderMessageBody(message),
	)

	return &brevo.Message{
		Sender: brevo.Contact{
			Name:  s.cfg.Brevo.SenderName,
			Email: s.cfg.Brevo.SenderEmail,
		},
		To: []brevo.Contact{
			{Name: "Contact Form", Email: s.cfg.Brevo.RecipientEmail},
		},
		Subject:     fmt.Sprintf("New Contact Form Submission from %s %s", firstName, lastName),
		HTMLContent: htmlContent,
	}
}

// renderMessageBody sanitizes the free-text message line by line so that
// newlines survive as <br> while other control characters are stripped.
func renderMessageBody(message string) string {
	lines := strings.Split(strings.ReplaceAll(message, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = html.EscapeString(sanitize.Clean(line))
	}
	return strings.Join(lines, "<br>")
}
