package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/partname/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	return cfg
}

func TestNew_NoFile(t *testing.T) {
	cfg := testConfig()
	var stdout bytes.Buffer
	l, err := New(&cfg, &stdout, &stdout)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
	assert.Contains(t, stdout.String(), "[INFO] test message")
}

func TestNew_WithFile(t *testing.T) {
	cfg := testConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "partname.log")

	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
}

func TestLogger_LevelsAndStreams(t *testing.T) {
	cfg := testConfig()
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Info("processing %s", "a_b_c.pdf")
	l.Success("renamed")
	l.Warn("skipped")
	l.Error("failed: %d", 1)
	l.Debug("hidden")

	out := stdout.String()
	assert.Contains(t, out, "[INFO] processing a_b_c.pdf")
	assert.Contains(t, out, "[SUCCESS] renamed")
	assert.Contains(t, out, "[WARN] skipped")
	assert.NotContains(t, out, "failed")
	assert.NotContains(t, out, "hidden", "debug is off unless verbose")
	assert.Contains(t, stderr.String(), "[ERROR] failed: 1")
}

func TestLogger_VerboseEnablesDebug(t *testing.T) {
	cfg := testConfig()
	cfg.Verbose = true
	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Debug("parts=%v", []string{"a", "b"})
	assert.Contains(t, stdout.String(), "[DEBUG] parts=[a b]")
}

func TestLogger_ColoredTag(t *testing.T) {
	cfg := testConfig()
	cfg.ColorMode = config.ColorAlways
	t.Cleanup(func() {
		never := testConfig()
		_, _ = New(&never, &bytes.Buffer{}, &bytes.Buffer{})
	})

	var stdout, stderr bytes.Buffer
	l, err := New(&cfg, &stdout, &stderr)
	require.NoError(t, err)

	l.Success("done")
	assert.Contains(t, stdout.String(), "\033[1;92m[SUCCESS]\033[0m done")
}
