package common

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	// ReceiptsDir is the folder scanned for receipt PDFs.
	ReceiptsDir string
	// OutputPath is the report path; empty means the dated default name.
	OutputPath string
	// LogoPath is the optional SVG logo drawn in the report header.
	LogoPath string
	// XLSXPath, when set, also writes a flat XLSX view of the trips.
	XLSXPath string
	LogLevel slog.Level
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		ReceiptsDir: getEnv("RECEIPTS_DIR", "uber"),
		OutputPath:  getEnv("OUTPUT_PATH", ""),
		LogoPath:    getEnv("LOGO_PATH", filepath.Join("assets", "logo.svg")),
		XLSXPath:    getEnv("XLSX_PATH", ""),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
