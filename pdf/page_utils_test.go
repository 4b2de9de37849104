package pdf

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePageList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"single", "[1]", []int{1}, false},
		{"keeps order", "[2,1,3]", []int{2, 1, 3}, false},
		{"keeps duplicates", "[1, 1]", []int{1, 1}, false},
		{"surrounding whitespace", "  [4] ", []int{4}, false},
		{"out of range still parses", "[0,-2,99]", []int{0, -2, 99}, false},
		{"empty array", "[]", nil, true},
		{"not json", "1,2,3", nil, true},
		{"object", `{"pages":[1]}`, nil, true},
		{"string entries", `["1"]`, nil, true},
		{"fractional entries", "[1.5]", nil, true},
		{"null", "null", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageList(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPageFormat) {
					t.Fatalf("ParsePageList(%q) error = %v, want ErrInvalidPageFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePageList(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePageList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInvalidPages(t *testing.T) {
	got := InvalidPages([]int{0, 1, 4, 3, 7, -1, 4}, 3)
	want := []int{0, 4, 7, -1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InvalidPages = %v, want %v", got, want)
	}

	if got := InvalidPages([]int{1, 2, 3}, 3); got != nil {
		t.Errorf("InvalidPages on valid pages = %v, want nil", got)
	}
}

func TestValidatePageNumbers(t *testing.T) {
	if err := ValidatePageNumbers([]int{3, 1}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidatePageNumbers([]int{2, 5, 0}, 3)
	var rangeErr *PageRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected PageRangeError, got %v", err)
	}
	if !reflect.DeepEqual(rangeErr.Pages, []int{5, 0}) || rangeErr.TotalPages != 3 {
		t.Errorf("unexpected error contents: %+v", rangeErr)
	}
	if msg := err.Error(); msg != "Pages out of range: 5, 0. The PDF has 3 pages." {
		t.Errorf("unexpected message %q", msg)
	}
}
