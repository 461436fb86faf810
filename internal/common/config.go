package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	Agent    AgentConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string // non-empty selects the embedded sqlite store instead of Postgres
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
	LogFile  string
}

// StorageConfig holds object-store configuration
type StorageConfig struct {
	Bucket        string
	Region        string
	UploadURLTTL  time.Duration
	MaxUploadSize int64
}

// ExtractConfig holds extraction-provider configuration
type ExtractConfig struct {
	Model       string
	VisionModel string
	APIKey      string
	BaseURL     string
	Temperature float32
	// Timeout bounds the provider call on its own, independent of the
	// request deadline. Expiry is treated like any provider error and
	// triggers the fallback parser.
	Timeout time.Duration
}

// AgentConfig holds agent-orchestration configuration
type AgentConfig struct {
	Model    string
	MaxTurns int
	Workers  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			LogFile:  getEnv("LOG_FILE", ""),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("UPLOAD_BUCKET", "pantryd-uploads"),
			Region:        getEnv("AWS_REGION", "us-east-1"),
			UploadURLTTL:  getEnvAsDuration("UPLOAD_URL_TTL", 15*time.Minute),
			MaxUploadSize: getEnvAsInt64("UPLOAD_MAX_BYTES", 20<<20),
		},
		Extract: ExtractConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			VisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4o"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Agent: AgentConfig{
			Model:    getEnv("AGENT_MODEL", "gpt-4o-mini"),
			MaxTurns: getEnvAsInt("AGENT_MAX_TURNS", 8),
			Workers:  getEnvAsInt("JOB_WORKERS", 4),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Extract.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Agent.MaxTurns <= 0 {
		return NewAppError("CONFIG_ERROR", "AGENT_MAX_TURNS must be positive", ErrInvalidInput)
	}
	return nil
}
