package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm" validate:"required"`
	Assets     AssetsConfig     `mapstructure:"assets" validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// LLMConfig contains settings for the external generation services.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
	ImageModel   string `mapstructure:"image_model" validate:"required"`

	// MaxOutputTokens bounds the length of a single generation response.
	MaxOutputTokens int `mapstructure:"max_output_tokens" validate:"gt=0"`
}

// AssetsConfig contains settings for generated-image storage.
type AssetsConfig struct {
	Bucket string `mapstructure:"bucket" validate:"required"`
	Region string `mapstructure:"region" validate:"required"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores
	// (MinIO and similar). Empty means AWS.
	Endpoint string `mapstructure:"endpoint"`

	// PublicBaseURL is the CDN or bucket URL prefix under which uploaded
	// objects are publicly reachable.
	PublicBaseURL string `mapstructure:"public_base_url" validate:"required,url"`
}

// GenerationConfig tunes the fan-out pipeline.
type GenerationConfig struct {
	// WorkerCount caps how many generation tasks run concurrently.
	// Keeps the pipeline inside external service rate limits.
	WorkerCount int `mapstructure:"worker_count" validate:"gt=0"`

	// QueueSize bounds the in-memory task queue.
	QueueSize int `mapstructure:"queue_size" validate:"gt=0"`

	// BatchTimeoutMinutes is the wall-clock budget shared by every task of
	// one batch. A task that exceeds it fails alone.
	BatchTimeoutMinutes int `mapstructure:"batch_timeout_minutes" validate:"gt=0"`

	// MaxBatchSize rejects oversized /request-items calls.
	MaxBatchSize int `mapstructure:"max_batch_size" validate:"gt=0"`
}
