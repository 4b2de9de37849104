package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// CLI operation timeout constants
const (
	DefaultCLITimeout = 30 * time.Second
	VersionTimeout    = 5 * time.Second
)

// execCommandWithTimeout executes a command with a timeout derived from ctx
func execCommandWithTimeout(ctx context.Context, timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("command timed out after %v", timeout)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if err != nil {
		return output, fmt.Errorf("command failed: %w: %s", err, output)
	}

	return output, nil
}

// CheckCLIAvailable verifies that the pdfcpu CLI is available in PATH
func CheckCLIAvailable(ctx context.Context) error {
	if _, err := execCommandWithTimeout(ctx, VersionTimeout, "pdfcpu", "version"); err != nil {
		return fmt.Errorf("pdfcpu command not found or not executable: %w", err)
	}
	return nil
}
