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
	Extract  ExtractConfig
	OCR      OCRConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string // used when DSN is empty
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
}

// ExtractConfig holds text-extraction thresholds
type ExtractConfig struct {
	MaxFileSize     int64
	MinTextLength   int
	MinUsableLength int
	WorkDir         string
}

// OCRConfig holds OCR tool configuration
type OCRConfig struct {
	Pdftotext         string
	Pdftoppm          string
	Tesseract         string
	Language          string
	DPI               int
	MaxPages          int
	TessdataDir       string
	AggressiveCleanup bool
}

// QueueConfig holds worker-pool configuration
type QueueConfig struct {
	Workers        int
	Size           int
	ProcessTimeout time.Duration
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
		},
		Extract: ExtractConfig{
			MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 50<<20),
			MinTextLength:   getEnvAsInt("MIN_TEXT_LENGTH", 100),
			MinUsableLength: getEnvAsInt("MIN_USABLE_LENGTH", 40),
			WorkDir:         getEnv("EXTRACT_WORK_DIR", ""),
		},
		OCR: OCRConfig{
			Pdftotext:         getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:          getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:         getEnv("TESSERACT_BIN", "tesseract"),
			Language:          getEnv("TESSERACT_LANG", "eng"),
			DPI:               getEnvAsInt("OCR_DPI", 300),
			MaxPages:          getEnvAsInt("OCR_MAX_PAGES", 0),
			TessdataDir:       getEnv("TESSDATA_PREFIX", ""),
			AggressiveCleanup: getEnvAsBool("OCR_AGGRESSIVE_CLEANUP", false),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			Size:           getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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
		return NewAppError("CONFIG_ERROR", "DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extract.MinUsableLength > c.Extract.MinTextLength {
		return NewAppError("CONFIG_ERROR", "MIN_USABLE_LENGTH must not exceed MIN_TEXT_LENGTH", ErrInvalidInput)
	}
	return nil
}
