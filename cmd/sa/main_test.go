package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-seed", "42", "-log-level", "error"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Best state: x = ")
}

func TestRunFlagFixesInvalidFile(t *testing.T) {
	path := writeConfig(t, "schedule:\n  cooling_rate: 1\nlog_level: error\n")

	var stdout, stderr bytes.Buffer

	// The file alone is rejected.
	code := run(context.Background(), []string{"-config", path}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "cooling_rate")
	assert.Empty(t, stdout.String())

	stdout.Reset()
	stderr.Reset()

	// A flag overriding the bad value makes it valid.
	code = run(context.Background(), []string{"-config", path, "-cooling-rate", "0.05", "-seed", "1"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Best state: x = ")
}

func TestRunFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "search:\n  min_coordinate: 10\n  max_coordinate: 20\nlog_level: error\n")

	var stdout, stderr bytes.Buffer

	// -min 30 pushes min above the file's max.
	code := run(context.Background(), []string{"-config", path, "-min", "30"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "min_coordinate")
}

func TestRunMissingConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "failed to read config file")
}

func TestRunCancelledReportsBestSoFar(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"-seed", "3", "-log-level", "error"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Best state: x = ")
}
