// Package testutil provides a standardized harness for end-to-end tests that
// drive the full application from a parameter-file source.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aguspesce/aspect/internal/app"
	"github.com/aguspesce/aspect/internal/cli"
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

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunApp writes the parameter-file source to a temp file, builds the app the
// way main does, and runs it. Startup panics are converted to errors so
// tests can assert on them.
func RunApp(t *testing.T, paramsHCL string, extraArgs ...string) *HarnessResult {
	t.Helper()

	paramsPath := filepath.Join(t.TempDir(), "params.hcl")
	require.NoError(t, os.WriteFile(paramsPath, []byte(paramsHCL), 0644))

	args := append([]string{"--log-level", "debug"}, extraArgs...)
	args = append(args, paramsPath)

	var buf SafeBuffer
	appConfig, shouldExit, err := cli.Parse(args, &buf)
	require.NoError(t, err)
	require.False(t, shouldExit)

	result := &HarnessResult{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("critical startup error: %v", r)
			}
		}()
		result.App = app.NewApp(&buf, appConfig)
		result.Err = result.App.Run(context.Background(), appConfig)
	}()

	result.LogOutput = buf.String()
	return result
}
