package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	S3         S3Config
	Textract   TextractConfig
	Generator  GeneratorConfig
	Extraction ExtractionConfig
	Log        LogConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// TextractConfig holds AWS Textract settings.
type TextractConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// GeneratorConfig holds LLM text generation settings.
type GeneratorConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"default_model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExtractionConfig holds extraction pipeline limits.
type ExtractionConfig struct {
	// MaxInlineMB is the inline-submission ceiling for PDF payloads.
	// Referenced-by-storage submission has no ceiling.
	MaxInlineMB int64 `mapstructure:"max_inline_mb"`
	// SummaryPrefixChars bounds how much extracted text is sent to the
	// summarizer per request.
	SummaryPrefixChars int `mapstructure:"summary_prefix_chars"`
}

// MaxInlineBytes returns the inline ceiling in bytes.
func (e *ExtractionConfig) MaxInlineBytes() int64 {
	return e.MaxInlineMB * 1024 * 1024
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the DOCBRIEF_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCBRIEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "docbrief-uploads")
	v.SetDefault("s3.endpoint", "")

	// Textract defaults
	v.SetDefault("textract.region", "us-east-1")
	v.SetDefault("textract.endpoint", "")

	// Generator defaults
	v.SetDefault("generator.api_key", "")
	v.SetDefault("generator.default_model", "claude-sonnet-4-20250514")
	v.SetDefault("generator.timeout_secs", 60)

	// Extraction defaults
	v.SetDefault("extraction.max_inline_mb", 10)
	v.SetDefault("extraction.summary_prefix_chars", 3000)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                     "DOCBRIEF_SERVER_PORT",
		"server.read_timeout":             "DOCBRIEF_SERVER_READ_TIMEOUT",
		"server.write_timeout":            "DOCBRIEF_SERVER_WRITE_TIMEOUT",
		"server.environment":              "DOCBRIEF_SERVER_ENVIRONMENT",
		"s3.region":                       "DOCBRIEF_S3_REGION",
		"s3.bucket":                       "DOCBRIEF_S3_BUCKET",
		"s3.endpoint":                     "DOCBRIEF_S3_ENDPOINT",
		"s3.access_key":                   "DOCBRIEF_S3_ACCESS_KEY",
		"s3.secret_key":                   "DOCBRIEF_S3_SECRET_KEY",
		"textract.region":                 "DOCBRIEF_TEXTRACT_REGION",
		"textract.endpoint":               "DOCBRIEF_TEXTRACT_ENDPOINT",
		"textract.access_key":             "DOCBRIEF_TEXTRACT_ACCESS_KEY",
		"textract.secret_key":             "DOCBRIEF_TEXTRACT_SECRET_KEY",
		"generator.api_key":               "DOCBRIEF_GENERATOR_API_KEY",
		"generator.default_model":         "DOCBRIEF_GENERATOR_DEFAULT_MODEL",
		"generator.timeout_secs":          "DOCBRIEF_GENERATOR_TIMEOUT_SECS",
		"extraction.max_inline_mb":        "DOCBRIEF_EXTRACTION_MAX_INLINE_MB",
		"extraction.summary_prefix_chars": "DOCBRIEF_EXTRACTION_SUMMARY_PREFIX_CHARS",
		"log.level":                       "DOCBRIEF_LOG_LEVEL",
		"log.format":                      "DOCBRIEF_LOG_FORMAT",
		"cors.allowed_origins":            "DOCBRIEF_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCBRIEF_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCBRIEF_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Textract = TextractConfig{
		Region:    v.GetString("textract.region"),
		Endpoint:  v.GetString("textract.endpoint"),
		AccessKey: v.GetString("textract.access_key"),
		SecretKey: v.GetString("textract.secret_key"),
	}
	cfg.Generator = GeneratorConfig{
		APIKey:      v.GetString("generator.api_key"),
		Model:       v.GetString("generator.default_model"),
		TimeoutSecs: v.GetInt("generator.timeout_secs"),
	}
	cfg.Extraction = ExtractionConfig{
		MaxInlineMB:        v.GetInt64("extraction.max_inline_mb"),
		SummaryPrefixChars: v.GetInt("extraction.summary_prefix_chars"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
