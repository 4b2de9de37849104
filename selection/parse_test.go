package selection

import (
	"reflect"
	"testing"
)

func TestParseRanges(t *testing.T) {
	tests := []struct {
		input   string
		want    []Range
		wantErr bool
	}{
		{"1", []Range{{1, 1}}, false},
		{"1,3", []Range{{1, 1}, {3, 3}}, false},
		{"1-5", []Range{{1, 5}}, false},
		{" 1, 3-5 ,7 ", []Range{{1, 1}, {3, 5}, {7, 7}}, false},
		{"", nil, true},
		{"a", nil, true},
		{"1-2-3", nil, true},
		{"5-1", nil, true},
		{"x-3", nil, true},
		{"3-y", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseRanges(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseRanges(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseRanges(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := String([]Range{{1, 1}, {3, 5}}); got != "1,3-5" {
		t.Errorf("String = %q, want %q", got, "1,3-5")
	}
}
