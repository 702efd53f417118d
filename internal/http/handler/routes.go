package handler

import (
	"github.com/gofiber/fiber/v2"

	"summaryapi/internal/config"
	"summaryapi/internal/extract"
	"summaryapi/internal/mail"
	"summaryapi/internal/summarize"
)

// RegisterRoutes attaches the API routes to the provided Fiber app.
// Handlers stay thin: request parsing and error mapping only, with the
// injected services carrying the business logic.
func RegisterRoutes(app *fiber.App, pipeline extract.Service, summarizer summarize.Service, mailer mail.Service, limits config.LimitsConfig) {
	RegisterDocs(app)

	api := app.Group("/api")

	api.Get("/health", HealthCheck())
	api.Post("/generate-summary", GenerateSummary(pipeline, summarizer, limits))
	api.Post("/share-summary", ShareSummary(mailer, limits))
}
