package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"summaryapi/internal/config"
	"summaryapi/internal/mail"
)

// shareRequest is the JSON body for sharing a summary by email.
type shareRequest struct {
	Summary    string   `json:"summary"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
}

// ShareSummary emails a generated summary to a recipient list.
func ShareSummary(mailer mail.Service, limits config.LimitsConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if int64(len(c.Body())) > limits.MaxJSONBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "Request body too large")
		}

		var req shareRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := mailer.Share(c.UserContext(), req.Summary, req.Recipients, req.Subject); err != nil {
			return writeShareError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Summary shared successfully"})
	}
}

func writeShareError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, mail.ErrNotConfigured):
		return writeError(c, fiber.StatusInternalServerError, "Email credentials not configured. Please set EMAIL_USER and EMAIL_PASS in your .env file.")
	case errors.Is(err, mail.ErrEmptySummary), errors.Is(err, mail.ErrNoRecipients):
		return writeError(c, fiber.StatusBadRequest, "Summary and recipients are required")
	case errors.Is(err, mail.ErrAuth):
		return writeError(c, fiber.StatusInternalServerError, "Email authentication failed. Please check your Gmail credentials and ensure you are using an App Password, not your regular password.")
	case errors.Is(err, mail.ErrConnection):
		return writeError(c, fiber.StatusInternalServerError, "Failed to connect to email server. Please check your internet connection.")
	default:
		return writeError(c, fiber.StatusInternalServerError, "Failed to share summary: "+err.Error())
	}
}
