package selection

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var whitespace = regexp.MustCompile(`\s`)

// ParseRanges parses a page specification into ranges.
// Supports formats: "1", "1,3", "1-5", "1,3-5,7"
func ParseRanges(spec string) ([]Range, error) {
	spec = whitespace.ReplaceAllString(spec, "")
	if spec == "" {
		return nil, fmt.Errorf("empty page specification")
	}

	var ranges []Range
	for _, part := range strings.Split(spec, ",") {
		if !strings.Contains(part, "-") {
			page, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			ranges = append(ranges, Range{From: page, To: page})
			continue
		}

		rangeParts := strings.Split(part, "-")
		if len(rangeParts) != 2 {
			return nil, fmt.Errorf("invalid range: %s", part)
		}
		start, err := strconv.Atoi(rangeParts[0])
		if err != nil {
			return nil, fmt.Errorf("invalid start page: %s", rangeParts[0])
		}
		end, err := strconv.Atoi(rangeParts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid end page: %s", rangeParts[1])
		}
		if start > end {
			return nil, fmt.Errorf("invalid range: start > end (%d > %d)", start, end)
		}
		ranges = append(ranges, Range{From: start, To: end})
	}

	return ranges, nil
}

// String formats ranges back into the "1,3-5" notation.
func String(ranges []Range) string {
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		if r.From == r.To {
			parts[i] = strconv.Itoa(r.From)
		} else {
			parts[i] = fmt.Sprintf("%d-%d", r.From, r.To)
		}
	}
	return strings.Join(parts, ",")
}
