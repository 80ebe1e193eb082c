package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendHTTP   = "http"
	BackendGemini = "gemini"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Upload      UploadConfig
	Inference   InferenceConfig
	Classifier  ModelConfig
	Recommender ModelConfig
	Gemini      GeminiConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int64
}

type LogConfig struct {
	Level  string
	Format string
}

// UploadConfig limits resume files; it should stay below Server.BodyLimit so
// the multipart envelope fits.
type UploadConfig struct {
	MaxFileSize int64
}

type InferenceConfig struct {
	Timeout  time.Duration
	APIToken string
}

// ModelConfig points at one on-disk model directory and the backend serving it.
type ModelConfig struct {
	Path     string
	Backend  string
	Endpoint string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8000"),
			Env:       getEnv("ENV", "development"),
			BodyLimit: getEnvAsInt64("BODY_LIMIT", 10485760),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 5242880),
		},
		Inference: InferenceConfig{
			Timeout:  getEnvAsDuration("INFERENCE_TIMEOUT", "60s"),
			APIToken: getEnv("INFERENCE_API_TOKEN", ""),
		},
		Classifier: ModelConfig{
			Path:     getEnv("CLASSIFIER_PATH", "./eligibility_classifier"),
			Backend:  strings.ToLower(getEnv("CLASSIFIER_BACKEND", BackendHTTP)),
			Endpoint: getEnv("CLASSIFIER_ENDPOINT", ""),
		},
		Recommender: ModelConfig{
			Path:     getEnv("RECOMMENDER_PATH", "./job_recommender"),
			Backend:  strings.ToLower(getEnv("RECOMMENDER_BACKEND", BackendHTTP)),
			Endpoint: getEnv("RECOMMENDER_ENDPOINT", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
