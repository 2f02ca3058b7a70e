package testutil

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vk/perdiem/internal/app"
	"github.com/vk/perdiem/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcome of a harnessed application run.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunApp runs the full pipeline for cfg with the given trips loader,
// capturing the report and the debug-level logs. Set PERDIEM_TEST_LOGS=true to print the
// logs of every run.
func RunApp(t *testing.T, cfg app.Config, loader config.Loader) *HarnessResult {
	t.Helper()

	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Output == "" {
		cfg.Output = app.OutputText
	}

	stdout := &SafeBuffer{}
	logs := &SafeBuffer{}

	a := app.NewApp(stdout, logs, &cfg, loader)
	err := a.Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("PERDIEM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return &HarnessResult{
		Stdout:    strings.TrimSpace(stdout.String()),
		LogOutput: logs.String(),
		Err:       err,
	}
}
