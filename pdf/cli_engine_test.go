package pdf

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"testing"

	"pdf_splitter/pdf/pdftest"
)

func TestParsePageCount(t *testing.T) {
	tests := []struct {
		output  string
		want    int
		wantErr bool
	}{
		{"    Page count: 426\n  Page size: 595.28 x 841.89 points", 426, false},
		{"PDF version: 1.7\nPages: 10\n", 10, false},
		{"No. of pages: 3", 3, false},
		{"nothing useful here", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePageCount(tt.output)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parsePageCount(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parsePageCount(%q) = %d, want %d", tt.output, got, tt.want)
		}
	}
}

func TestNewEngine(t *testing.T) {
	if e, err := NewEngine("", ""); err != nil {
		t.Fatalf("default engine: %v", err)
	} else if _, ok := e.(*LibraryEngine); !ok {
		t.Errorf("default engine is %T, want *LibraryEngine", e)
	}

	if e, err := NewEngine(EngineCLI, t.TempDir()); err != nil {
		t.Fatalf("cli engine: %v", err)
	} else if _, ok := e.(*CLIEngine); !ok {
		t.Errorf("cli engine is %T, want *CLIEngine", e)
	}

	if _, err := NewEngine("ghostscript", ""); err == nil {
		t.Error("expected error for unknown engine")
	}
}

func TestCLIEngineExtractNoPages(t *testing.T) {
	engine := NewCLIEngine(t.TempDir())
	if _, err := engine.Extract(context.Background(), pdftest.Document(1), nil); !errors.Is(err, ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestCLIEngineExtract(t *testing.T) {
	if _, err := exec.LookPath("pdfcpu"); err != nil {
		t.Skip("pdfcpu CLI not installed")
	}
	engine := NewCLIEngine(t.TempDir())
	src := pdftest.Document(3)

	n, err := engine.PageCount(context.Background(), src)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if n != 3 {
		t.Fatalf("PageCount = %d, want 3", n)
	}

	out, err := engine.Extract(context.Background(), src, []int{3, 1})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got, err := pdftest.Pages(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !reflect.DeepEqual(got, []int{3, 1}) {
		t.Errorf("output pages = %v, want [3 1]", got)
	}
}
