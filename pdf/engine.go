// Package pdf wraps the PDF engine used to count and copy pages.
package pdf

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Engine loads PDF documents and assembles new ones from their pages.
type Engine interface {
	// PageCount loads data as a PDF and returns its number of pages.
	PageCount(ctx context.Context, data []byte) (int, error)

	// Extract returns a new PDF holding copies of the given 1-based pages,
	// in exactly the order supplied. Duplicates produce repeated pages.
	Extract(ctx context.Context, data []byte, pages []int) ([]byte, error)
}

var initOnce sync.Once

// Init performs the one-time process setup pdfcpu needs. It keeps pdfcpu
// from creating a configuration directory in the user's home.
func Init() {
	initOnce.Do(api.DisableConfigDir)
}

// NewEngine returns the engine registered under name.
func NewEngine(name, tempDir string) (Engine, error) {
	Init()
	switch name {
	case "", EngineLibrary:
		return NewLibraryEngine(), nil
	case EngineCLI:
		return NewCLIEngine(tempDir), nil
	default:
		return nil, fmt.Errorf("unknown pdf engine %q", name)
	}
}
