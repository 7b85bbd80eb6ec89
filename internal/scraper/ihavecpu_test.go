package scraper

import (
	"strings"
	"testing"
)

func TestFormatSpecText(t *testing.T) {
	raw := "Memory Size 8GB Memory Type: GDDR6 Boost Clock 1777 MHz"
	got := FormatSpecText(raw)

	if !strings.Contains(got, "Memory Size: 8GB") {
		t.Errorf("missing memory size line, got %q", got)
	}
	if !strings.Contains(got, "Memory Type: GDDR6") {
		t.Errorf("missing memory type line, got %q", got)
	}
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if !strings.Contains(line, ": ") {
			t.Errorf("line %q not in Key: Value form", line)
		}
	}
}

func TestFormatSpecTextNoPairs(t *testing.T) {
	raw := "ไม่มีข้อมูลสเปก"
	if got := FormatSpecText(raw); got != raw {
		t.Errorf("expected passthrough for unparseable text, got %q", got)
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	s := New("")
	if s.BaseURL != "https://ihavecpu.com" {
		t.Errorf("unexpected default base URL %q", s.BaseURL)
	}
	s = New("https://example.com/")
	if s.BaseURL != "https://example.com" {
		t.Errorf("trailing slash not trimmed: %q", s.BaseURL)
	}
}
