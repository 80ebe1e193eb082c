// Package router assembles the fiber application: middleware, error mapping
// and routes.
package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/config"
	"alfredoptarigan/recruiter-api/internal/handlers"
	"alfredoptarigan/recruiter-api/internal/metrics"
	"alfredoptarigan/recruiter-api/internal/services"
)

const AppName = "AI Recruiter API"

type Dependencies struct {
	Recruiter services.RecruiterService
	PDFParser services.PDFParserService
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func New(cfg *config.Config, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Inference.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Server.BodyLimit),
		ErrorHandler: handlers.NewErrorHandler(deps.Logger),
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.IsDevelopment(),
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders: "X-Request-ID, " + handlers.HeaderInputTruncated,
	}))

	// Handlers
	healthHandler := handlers.NewHealthHandler(deps.Recruiter)
	eligibilityHandler := handlers.NewEligibilityHandler(deps.Recruiter)
	recommendationHandler := handlers.NewRecommendationHandler(deps.Recruiter)
	uploadHandler := handlers.NewUploadHandler(
		eligibilityHandler,
		recommendationHandler,
		deps.PDFParser,
		cfg.Upload.MaxFileSize,
	)

	// Routes
	app.Get("/", healthHandler.HandleHealth)
	app.Get("/health/ready", healthHandler.HandleReady)
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	app.Post("/predict_eligibility", eligibilityHandler.HandlePredict)
	app.Post("/predict_eligibility/upload", uploadHandler.HandlePredictUpload)
	app.Post("/recommend_job", recommendationHandler.HandleRecommend)
	app.Post("/recommend_job/upload", uploadHandler.HandleRecommendUpload)

	return app
}
