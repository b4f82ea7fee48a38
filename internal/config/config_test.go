package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"LOG_LEVEL", "LOG_FORMAT", "TTS_CREDENTIALS_FILE", "TTS_ENDPOINT", "SECRETS_DIR",
		"GOOGLE_CREDENTIALS", "GOOGLE_TOKEN", "GOOGLE_LOOPBACK_ADDR",
		"DRIVE_UPLOAD_ENABLED", "DRIVE_FOLDER_ID", "METRICS_TEXTFILE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.TTSCredentialsFile)
	assert.Empty(t, cfg.TTSEndpoint)
	assert.Equal(t, "secrets", cfg.SecretsDir)
	assert.Equal(t, filepath.Join("secrets", "credentials.json"), cfg.CredentialsPath)
	assert.Equal(t, filepath.Join("secrets", "token.json"), cfg.TokenPath)
	assert.Equal(t, "localhost:8080", cfg.LoopbackAddr)
	assert.False(t, cfg.DriveUploadEnabled)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TTS_CREDENTIALS_FILE", "/etc/sa.json")
	t.Setenv("TTS_ENDPOINT", "eu-texttospeech.googleapis.com:443")
	t.Setenv("SECRETS_DIR", "/run/secrets")
	t.Setenv("GOOGLE_CREDENTIALS", "")
	t.Setenv("GOOGLE_TOKEN", "/tmp/token.json")
	t.Setenv("DRIVE_UPLOAD_ENABLED", "yes")
	t.Setenv("DRIVE_FOLDER_ID", "folder123")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/s2t.prom")

	cfg := Load()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/sa.json", cfg.TTSCredentialsFile)
	assert.Equal(t, "eu-texttospeech.googleapis.com:443", cfg.TTSEndpoint)
	assert.Equal(t, filepath.Join("/run/secrets", "credentials.json"), cfg.CredentialsPath)
	assert.Equal(t, "/tmp/token.json", cfg.TokenPath)
	assert.True(t, cfg.DriveUploadEnabled)
	assert.Equal(t, "folder123", cfg.DriveFolderID)
	assert.Equal(t, "/var/lib/node_exporter/s2t.prom", cfg.MetricsTextfile)
	assert.Equal(t, zap.DebugLevel, cfg.GetLogLevel().Level())
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"1", false, true},
		{"ON", false, true},
		{"off", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("S2T_TEST_BOOL", tt.value)
		assert.Equal(t, tt.want, getEnvBool("S2T_TEST_BOOL", tt.def), "value %q", tt.value)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "warn", LogFormat: "console", CredentialsPath: "c.json"}
	assert.NoError(t, valid.Validate())

	badLevel := valid
	badLevel.LogLevel = "loud"
	assert.Error(t, badLevel.Validate())

	badFormat := valid
	badFormat.LogFormat = "xml"
	assert.Error(t, badFormat.Validate())

	upload := valid
	upload.DriveUploadEnabled = true
	upload.CredentialsPath = ""
	assert.Error(t, upload.Validate())
}

func TestGetLogLevelFallback(t *testing.T) {
	cfg := &Config{LogLevel: "nonsense"}
	assert.Equal(t, zap.InfoLevel, cfg.GetLogLevel().Level())
}
