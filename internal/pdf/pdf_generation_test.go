package pdf

import (
	"os"
	"testing"
	"time"
)

func TestGenerateForecastReport(t *testing.T) {
	gen := NewReportGenerator(t.TempDir())

	path, err := gen.GenerateForecastReport(ForecastReportData{
		GeneratedAt:  time.Date(2025, 6, 12, 9, 30, 0, 0, time.UTC),
		Category:     "TRACTOR",
		DealCount:    3,
		Conservative: 300000000,
		Weighted:     425000000,
		Optimistic:   600000000,
		Stages: []ForecastReportStage{
			{Label: "Demo Unit", Count: 2, Total: 300000000, Weighted: 120000000},
			{Label: "Delivery", Count: 1, Total: 300000000, Weighted: 270000000},
		},
	})
	if err != nil {
		t.Fatalf("GenerateForecastReport: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("report file is empty")
	}
}

func TestEnsureTargetRejectsPathComponents(t *testing.T) {
	gen := NewReportGenerator(t.TempDir())
	if _, err := gen.GenerateForecastReport(ForecastReportData{
		GeneratedAt: time.Now(),
		Filename:    "../escape.pdf",
	}); err == nil {
		t.Fatal("filename with path components accepted")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{450000000, "Rp 450.000.000"},
		{-1500, "Rp -1.500"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
