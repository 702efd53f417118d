package handler

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"summaryapi/internal/config"
	"summaryapi/internal/extract"
	"summaryapi/internal/model"
	"summaryapi/internal/summarize"
	"summaryapi/internal/transcribe"
)

// generateRequest is the JSON body accepted when no file is uploaded.
type generateRequest struct {
	TranscriptText string `json:"transcriptText"`
	CustomPrompt   string `json:"customPrompt"`
}

// GenerateSummary accepts a transcript as a multipart file upload (field
// "transcript"), a multipart text field, or a JSON body, normalizes it to
// plain text, and returns the generated summary.
func GenerateSummary(pipeline extract.Service, summarizer summarize.Service, limits config.LimitsConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var transcriptText, customPrompt string

		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			customPrompt = c.FormValue("customPrompt")

			fh, err := c.FormFile("transcript")
			if err == nil {
				f, err := fh.Open()
				if err != nil {
					return writeError(c, fiber.StatusBadRequest, "Cannot open uploaded file")
				}
				data, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					return writeError(c, fiber.StatusBadRequest, "Cannot read uploaded file")
				}

				tr, err := pipeline.Extract(c.UserContext(), model.Upload{
					Filename:    fh.Filename,
					ContentType: fh.Header.Get("Content-Type"),
					Size:        fh.Size,
					Data:        data,
				})
				if err != nil {
					return writeExtractError(c, err)
				}
				transcriptText = tr.Text
			} else {
				transcriptText = c.FormValue("transcriptText")
			}
		} else {
			if int64(len(c.Body())) > limits.MaxJSONBytes {
				return writeError(c, fiber.StatusRequestEntityTooLarge, "Request body too large")
			}
			var req generateRequest
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "Invalid request body")
			}
			transcriptText = req.TranscriptText
			customPrompt = req.CustomPrompt
		}

		if transcriptText == "" {
			return writeError(c, fiber.StatusBadRequest, "No transcript provided")
		}

		summary, err := summarizer.Summarize(c.UserContext(), transcriptText, customPrompt)
		if err != nil {
			return writeSummarizeError(c, err)
		}
		return c.JSON(fiber.Map{"summary": summary})
	}
}

// writeExtractError maps normalization pipeline failures onto HTTP statuses
// and the user-facing messages for each.
func writeExtractError(c *fiber.Ctx, err error) error {
	var (
		sizeErr *extract.SizeError
		typeErr *extract.UnsupportedTypeError
		exErr   *extract.ExtractionError
	)
	switch {
	case errors.As(err, &sizeErr):
		return writeError(c, fiber.StatusBadRequest, "File too large. Please upload files smaller than 5MB.")
	case errors.As(err, &typeErr):
		return writeError(c, fiber.StatusInternalServerError, "File type not supported: "+typeErr.MIME+". Please upload text, PDF, DOC, DOCX, or audio files.")
	case errors.Is(err, extract.ErrEmptyText):
		return writeError(c, fiber.StatusBadRequest, "Transcript text is empty")
	case errors.Is(err, transcribe.ErrUnavailable):
		return writeError(c, fiber.StatusInternalServerError, transcribe.ErrUnavailable.Error())
	case errors.Is(err, transcribe.ErrAudioTooLarge):
		return writeError(c, fiber.StatusInternalServerError, transcribe.ErrAudioTooLarge.Error())
	case errors.As(err, &exErr):
		return writeError(c, fiber.StatusInternalServerError, exErr.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "Failed to process uploaded file: "+err.Error())
	}
}

// writeSummarizeError maps summary generation failures, keeping the
// remediation wording for each known remote rejection.
func writeSummarizeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, summarize.ErrNotConfigured):
		return writeError(c, fiber.StatusInternalServerError, "Gemini API key not configured. Please check your .env file.")
	case errors.Is(err, summarize.ErrEmptyTranscript):
		return writeError(c, fiber.StatusBadRequest, "Transcript text is empty")
	case errors.Is(err, summarize.ErrAPIKeyInvalid):
		return writeError(c, fiber.StatusInternalServerError, "Invalid Gemini API key. Please check your API key.")
	case errors.Is(err, summarize.ErrPermissionDenied):
		return writeError(c, fiber.StatusInternalServerError, "Permission denied. Please check your Gemini API key permissions.")
	default:
		return writeError(c, fiber.StatusInternalServerError, "Failed to generate summary: "+err.Error())
	}
}
