package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/config"
	"alfredoptarigan/recruiter-api/internal/inference"
	"alfredoptarigan/recruiter-api/internal/logger"
	"alfredoptarigan/recruiter-api/internal/metrics"
	"alfredoptarigan/recruiter-api/internal/router"
	"alfredoptarigan/recruiter-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	// Load models. Failures leave both models unloaded; the server still starts.
	ctx := context.Background()
	models := inference.NewLoader(cfg, zl).Load(ctx)

	// Initialize services
	m := metrics.New()
	recruiterService := services.NewRecruiterService(models, m, zl, cfg.Inference.Timeout)
	pdfParser := services.NewPDFParserService()
	zl.Info("✅ Services initialized successfully", zap.Bool("models_ready", models.Ready()))

	app := router.New(cfg, router.Dependencies{
		Recruiter: recruiterService,
		PDFParser: pdfParser,
		Metrics:   m,
		Logger:    zl,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
