package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, 100, cfg.Extract.MinTextLength)
	assert.Equal(t, 40, cfg.Extract.MinUsableLength)
	assert.Equal(t, int64(50<<20), cfg.Extract.MaxFileSize)
	assert.Equal(t, "pdftotext", cfg.OCR.Pdftotext)
	assert.Equal(t, "eng", cfg.OCR.Language)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 4, cfg.Queue.Workers)
	assert.Equal(t, 3*time.Minute, cfg.Queue.ProcessTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MIN_TEXT_LENGTH", "200")
	t.Setenv("OCR_AGGRESSIVE_CLEANUP", "true")
	t.Setenv("QUEUE_PROCESS_TIMEOUT", "90s")
	t.Setenv("GRPC_ADDR", ":9090")

	cfg := LoadConfig()
	assert.Equal(t, 200, cfg.Extract.MinTextLength)
	assert.True(t, cfg.OCR.AggressiveCleanup)
	assert.Equal(t, 90*time.Second, cfg.Queue.ProcessTimeout)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("OCR_DPI", "very high")
	t.Setenv("QUEUE_WORKERS", "")

	cfg := LoadConfig()
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 4, cfg.Queue.Workers)
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.DSN = "postgres://localhost/resumes"
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	cfg.Database.SQLitePath = ""
	assert.Error(t, cfg.Validate())

	cfg.Database.SQLitePath = "resumes.db"
	require.NoError(t, cfg.Validate())

	cfg.Extract.MinUsableLength = cfg.Extract.MinTextLength + 1
	assert.Error(t, cfg.Validate())
}
