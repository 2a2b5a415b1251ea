package utils

import (
	"strings"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{name: "valid number", value: "5", defaultValue: 1, want: 5},
		{name: "empty string", value: "", defaultValue: 10, want: 10},
		{name: "not a number", value: "abc", defaultValue: 10, want: 10},
		{name: "zero falls back", value: "0", defaultValue: 1, want: 1},
		{name: "negative falls back", value: "-3", defaultValue: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInt(tt.value, tt.defaultValue); got != tt.want {
				t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGenerateBookingRef(t *testing.T) {
	ref := GenerateBookingRef()

	if !strings.HasPrefix(ref, "GH-") {
		t.Errorf("booking ref %q missing GH- prefix", ref)
	}
	if parts := strings.Split(ref, "-"); len(parts) != 4 {
		t.Errorf("booking ref %q has %d segments, want 4", ref, len(parts))
	}
}

func TestFormatNAD(t *testing.T) {
	if got := FormatNAD(4500); got != "N$4500.00" {
		t.Errorf("FormatNAD(4500) = %q, want N$4500.00", got)
	}
}
