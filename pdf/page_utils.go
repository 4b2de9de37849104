package pdf

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPageFormat is returned when a page list is not a non-empty JSON array of integers
	ErrInvalidPageFormat = errors.New("invalid page format")

	// ErrNoPages is returned when an extraction is requested without pages
	ErrNoPages = errors.New("no pages requested")
)

// ParsePageList parses a JSON-encoded array of 1-based page numbers.
// Order and duplicates are kept as supplied.
// Supports formats: "[1]", "[2,1,3]", "[1, 1]"
func ParsePageList(pages string) ([]int, error) {
	var pageList []int
	if err := json.Unmarshal([]byte(strings.TrimSpace(pages)), &pageList); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageFormat, err)
	}
	if len(pageList) == 0 {
		return nil, fmt.Errorf("%w: empty page list", ErrInvalidPageFormat)
	}
	return pageList, nil
}

// InvalidPages returns every page outside [1, totalPages], in input order.
func InvalidPages(pages []int, totalPages int) []int {
	var invalid []int
	for _, page := range pages {
		if page < 1 || page > totalPages {
			invalid = append(invalid, page)
		}
	}
	return invalid
}

// PageRangeError describes requested pages that do not exist in the document
type PageRangeError struct {
	Pages      []int
	TotalPages int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("Pages out of range: %s. The PDF has %d pages.", JoinPages(e.Pages), e.TotalPages)
}

// ValidatePageNumbers checks if all page numbers are valid for a given total number of pages
func ValidatePageNumbers(pages []int, totalPages int) error {
	if invalid := InvalidPages(pages, totalPages); len(invalid) > 0 {
		return &PageRangeError{Pages: invalid, TotalPages: totalPages}
	}
	return nil
}

// JoinPages formats page numbers as "1, 2, 3".
func JoinPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ", ")
}
