package pdf

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Look for page count in the formats pdfcpu info has printed across versions
var pageCountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Page count:\s+(\d+)`), // "Page count: 426" (pdfcpu v0.11.1 format)
	regexp.MustCompile(`Pages:\s+(\d+)`),
	regexp.MustCompile(`No\. of pages:\s+(\d+)`),
}

// CLIEngine drives the pdfcpu binary through temporary files.
type CLIEngine struct {
	TempDir string
	Timeout time.Duration
}

func NewCLIEngine(tempDir string) *CLIEngine {
	return &CLIEngine{TempDir: tempDir, Timeout: DefaultCLITimeout}
}

func (e *CLIEngine) PageCount(ctx context.Context, data []byte) (int, error) {
	inFile, err := e.writeTemp("input", data)
	if err != nil {
		return 0, err
	}
	defer os.Remove(inFile)

	output, err := execCommandWithTimeout(ctx, e.Timeout, "pdfcpu", "info", inFile)
	if err != nil {
		return 0, fmt.Errorf("pdfcpu info failed: %w", err)
	}
	return parsePageCount(string(output))
}

func (e *CLIEngine) Extract(ctx context.Context, data []byte, pages []int) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	inFile, err := e.writeTemp("input", data)
	if err != nil {
		return nil, err
	}
	defer os.Remove(inFile)

	outFile := filepath.Join(e.TempDir, "output_"+generateUniqueID()+"_extracted.pdf")
	defer os.Remove(outFile)

	// pdfcpu collect -p pages -- inFile outFile
	pagesArg := strings.Join(pageSelection(pages), ",")
	if _, err := execCommandWithTimeout(ctx, e.Timeout, "pdfcpu", "collect", "-p", pagesArg, "--", inFile, outFile); err != nil {
		return nil, fmt.Errorf("pdfcpu collect failed: %w", err)
	}

	out, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu collect did not produce output file: %w", err)
	}
	return out, nil
}

func (e *CLIEngine) writeTemp(prefix string, data []byte) (string, error) {
	if err := os.MkdirAll(e.TempDir, TempFilePermissions); err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}
	name := filepath.Join(e.TempDir, prefix+"_"+generateUniqueID()+".pdf")
	if err := os.WriteFile(name, data, 0600); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("save input file: %w", err)
	}
	return name, nil
}

func parsePageCount(output string) (int, error) {
	for _, re := range pageCountPatterns {
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if pageCount, err := strconv.Atoi(matches[1]); err == nil {
				return pageCount, nil
			}
		}
	}
	return 0, fmt.Errorf("could not determine page count from output: %s", output)
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("%d_%s", time.Now().UnixNano(), hex.EncodeToString(b))
}
