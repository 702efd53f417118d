package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"summaryapi/internal/config"
	"summaryapi/internal/extract"
	handlers "summaryapi/internal/http/handler"
	"summaryapi/internal/http/middleware"
	"summaryapi/internal/mail"
	"summaryapi/internal/otel"
	"summaryapi/internal/summarize"
	"summaryapi/internal/transcribe"
)

func main() {
	ctx := context.Background()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing; a missing collector degrades to noop.
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// The generative-text capability is only constructed when a real key is
	// present; the summarize service reports the missing configuration per
	// request otherwise.
	var generator summarize.Generator
	if cfg.Gemini.Configured() {
		generator, err = summarize.NewGemini(ctx, cfg.Gemini)
		if err != nil {
			log.Fatalf("failed to initialize gemini client: %v", err)
		}
	}

	// Assemble services. The transcription adapter doubles as the audio
	// extraction strategy of the normalization pipeline.
	whisper := transcribe.New(cfg.OpenAI, cfg.Limits.MaxAudioBytes)
	pipeline := extract.NewService(extract.NewPDF(), extract.NewWord(), whisper, cfg.Limits.MaxUploadBytes)
	summarizer := summarize.NewService(generator, cfg.Gemini)
	mailer := mail.NewService(mail.NewSMTPSender(cfg.Mail), cfg.Mail)

	app := fiber.New(fiber.Config{
		// Slightly above the 5MB upload ceiling so the handler-level checks
		// produce the specific error messages instead of a bare 413.
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, pipeline, summarizer, mailer, cfg.Limits)

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
