package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds application-wide configuration populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// Text-to-Speech client. Empty values fall back to Application Default Credentials.
	TTSCredentialsFile string
	TTSEndpoint        string

	// OAuth client and token used for Drive uploads.
	SecretsDir      string
	CredentialsPath string
	TokenPath       string
	LoopbackAddr    string

	DriveUploadEnabled bool
	DriveFolderID      string

	MetricsTextfile string
}

// Load reads .env (if present) and environment variables and returns Config with defaults applied.
func Load() *Config {
	_ = godotenv.Load()
	cfg := &Config{
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "console"),
		TTSCredentialsFile: getEnv("TTS_CREDENTIALS_FILE", ""),
		TTSEndpoint:        getEnv("TTS_ENDPOINT", ""),
		SecretsDir:         getEnv("SECRETS_DIR", "secrets"),
		CredentialsPath:    getEnv("GOOGLE_CREDENTIALS", ""),
		TokenPath:          getEnv("GOOGLE_TOKEN", ""),
		LoopbackAddr:       getEnv("GOOGLE_LOOPBACK_ADDR", "localhost:8080"),
		DriveUploadEnabled: getEnvBool("DRIVE_UPLOAD_ENABLED", false),
		DriveFolderID:      getEnv("DRIVE_FOLDER_ID", ""),
		MetricsTextfile:    getEnv("METRICS_TEXTFILE", ""),
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = filepath.Join(cfg.SecretsDir, "token.json")
	}
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = filepath.Join(cfg.SecretsDir, "credentials.json")
	}
	return cfg
}

// Validate rejects settings that cannot work together.
func (c *Config) Validate() error {
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.DriveUploadEnabled && c.CredentialsPath == "" {
		return fmt.Errorf("drive upload needs GOOGLE_CREDENTIALS")
	}
	return nil
}

// GetLogLevel returns the configured level, defaulting to info.
func (c *Config) GetLogLevel() zap.AtomicLevel {
	lvl, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return lvl
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	default:
		return def
	}
}
