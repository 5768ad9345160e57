package repositories

import (
	"testing"
	"time"
)

var numberingClock = time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

func TestNextSerialCode(t *testing.T) {
	tests := []struct {
		name     string
		category string
		lastCode string
		want     string
	}{
		{"first of category", "SAR", "", "SAR-260829-0001"},
		{"same day increments", "SAR", "SAR-260829-0007", "SAR-260829-0008"},
		{"new day resets", "SAR", "SAR-260828-0042", "SAR-260829-0001"},
		{"garbage last code resets", "CHU", "CHU-xx", "CHU-260829-0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextSerialCode(tt.category, tt.lastCode, numberingClock); got != tt.want {
				t.Errorf("nextSerialCode(%q, %q) = %q, want %q", tt.category, tt.lastCode, got, tt.want)
			}
		})
	}
}

func TestNextJobworkNo(t *testing.T) {
	tests := []struct {
		name   string
		lastNo string
		want   string
	}{
		{"first ever", "", "JW-20260829-001"},
		{"same day increments", "JW-20260829-011", "JW-20260829-012"},
		{"new day resets", "JW-20260828-099", "JW-20260829-001"},
		{"malformed last resets", "JW-26-1", "JW-20260829-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextJobworkNo(tt.lastNo, numberingClock); got != tt.want {
				t.Errorf("nextJobworkNo(%q) = %q, want %q", tt.lastNo, got, tt.want)
			}
		})
	}
}

func TestValidateJobworkNo(t *testing.T) {
	valid := []string{"JW-20260829-001", "JW-20251231-999"}
	for _, no := range valid {
		if !ValidateJobworkNo(no) {
			t.Errorf("ValidateJobworkNo(%q) = false, want true", no)
		}
	}

	invalid := []string{"", "JW-2026089-001", "JW-20260829-1", "jw-20260829-001", "JW-20260829-0011", "SAR-260829-0001"}
	for _, no := range invalid {
		if ValidateJobworkNo(no) {
			t.Errorf("ValidateJobworkNo(%q) = true, want false", no)
		}
	}
}
