package util

import (
	"testing"
	"time"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: "9223372036854775807", want: 9223372036854775807},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseID(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseID(%q) expected error, got %d", tt.raw, got)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Fatalf("ParseID(%q) = %d, %v, want %d", tt.raw, got, err, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "sub-second latency", duration: 120 * time.Millisecond, expected: "0s"},
		{name: "token lifetime", duration: 24 * time.Hour, expected: "24h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
