package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/recruiter-api/internal/config"
	"alfredoptarigan/recruiter-api/internal/inference"
	"alfredoptarigan/recruiter-api/internal/logger"
	"alfredoptarigan/recruiter-api/internal/metrics"
	"alfredoptarigan/recruiter-api/internal/services"
)

type probeCase struct {
	Name           string
	ResumeText     string
	JobDescription string
}

// Loads both models with the server's configuration and runs a few known
// inputs through them, plus every PDF found in ./sample_resumes.
func main() {
	log.Println("🚀 Starting model probe...")

	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}

	ctx := context.Background()
	models := inference.NewLoader(cfg, zl).Load(ctx)
	if !models.Ready() {
		log.Fatalf("❌ Models are not loaded: %v", models.Classifier.Reason())
	}

	recruiter := services.NewRecruiterService(models, metrics.New(), zap.NewNop(), cfg.Inference.Timeout)
	pdfParser := services.NewPDFParserService()

	cases := []probeCase{
		{
			Name:           "Backend engineer",
			ResumeText:     "5 years Python backend experience",
			JobDescription: "Senior Backend Engineer, Python required",
		},
		{
			Name:           "Data analyst",
			ResumeText:     "Experienced data analyst with SQL and Tableau skills",
			JobDescription: "Business Intelligence Analyst, dashboards and reporting",
		},
	}

	files, _ := filepath.Glob("./sample_resumes/*.pdf")
	for _, path := range files {
		log.Printf("\n📄 Reading: %s", path)
		f, err := os.Open(path)
		if err != nil {
			log.Printf("   ⚠️  Cannot open file, skipping: %v", err)
			continue
		}
		content, err := pdfParser.ExtractText(f)
		f.Close()
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			continue
		}
		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		cases = append(cases, probeCase{
			Name:           filepath.Base(path),
			ResumeText:     content.Text,
			JobDescription: cases[0].JobDescription,
		})
	}

	successCount := 0
	failCount := 0

	for _, c := range cases {
		log.Printf("\n🔎 Probing: %s", c.Name)

		prediction, err := recruiter.PredictEligibility(ctx, c.ResumeText, c.JobDescription)
		if err != nil {
			log.Printf("   ❌ Eligibility failed: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Eligibility: %s (%.4f) truncated=%t", prediction.Prediction, prediction.Confidence, prediction.Truncated)

		recommendation, err := recruiter.RecommendJob(ctx, c.ResumeText)
		if err != nil {
			log.Printf("   ❌ Recommendation failed: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Suggested job: %s", recommendation.SuggestedJob)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Probe Summary:")
	log.Printf("   ✅ Successful: %d inputs", successCount)
	log.Printf("   ❌ Failed: %d inputs", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}

	log.Println("✅ Both models answered every probe!")
}
