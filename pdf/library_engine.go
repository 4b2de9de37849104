package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// LibraryEngine runs pdfcpu in-process.
type LibraryEngine struct{}

func NewLibraryEngine() *LibraryEngine {
	Init()
	return &LibraryEngine{}
}

func (e *LibraryEngine) PageCount(ctx context.Context, data []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	// pdfcpu mutates its configuration while processing, so every call gets its own.
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("load pdf: %w", err)
	}
	return n, nil
}

func (e *LibraryEngine) Extract(ctx context.Context, data []byte, pages []int) ([]byte, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := api.Collect(bytes.NewReader(data), &out, pageSelection(pages), model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("collect pages: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// pageSelection turns page numbers into pdfcpu's page selection strings.
func pageSelection(pages []int) []string {
	sel := make([]string, len(pages))
	for i, p := range pages {
		sel[i] = strconv.Itoa(p)
	}
	return sel
}
