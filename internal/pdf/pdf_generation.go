package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders pipeline reports (interface kept small for test mocks).
type Generator interface {
	GenerateForecastReport(data ForecastReportData) (string, error)
}

// ReportGenerator writes PDF files under RootDir.
type ReportGenerator struct {
	RootDir  string
	fontName string
}

type ForecastReportStage struct {
	Label    string
	Count    int
	Total    int64
	Weighted int64
}

type ForecastReportData struct {
	GeneratedAt  time.Time
	Category     string
	RegionID     string
	DealCount    int
	Conservative int64
	Weighted     int64
	Optimistic   int64
	Stages       []ForecastReportStage
	Filename     string // no path components; generated when empty
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		fontName: "Helvetica",
	}
}

func (g *ReportGenerator) GenerateForecastReport(data ForecastReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("forecast_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Sales Pipeline Forecast", false)
	pdf.SetAuthor("AgriMach CRM", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "SALES PIPELINE FORECAST", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	pdf.CellFormat(0, 7, "Generated "+data.GeneratedAt.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	// ===== Filter scope
	g.sectionTitle(pdf, "Scope")
	category := data.Category
	if category == "" {
		category = "all categories"
	}
	region := data.RegionID
	if region == "" {
		region = "all regions"
	}
	g.kvLine(pdf, "Category", category)
	g.kvLine(pdf, "Region", region)
	g.kvLine(pdf, "Deals in scope", fmt.Sprintf("%d", data.DealCount))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Scenarios
	g.sectionTitle(pdf, "Revenue scenarios")
	g.kvLine(pdf, "Conservative", formatAmount(data.Conservative))
	g.kvLine(pdf, "Weighted", formatAmount(data.Weighted))
	g.kvLine(pdf, "Optimistic", formatAmount(data.Optimistic))
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Per-stage table
	g.sectionTitle(pdf, "Stage breakdown")
	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(60, 7, "Stage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Deals", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "Weighted", "1", 1, "R", false, 0, "")

	pdf.SetFont(g.fontName, "", 10)
	for _, stage := range data.Stages {
		pdf.CellFormat(60, 7, stage.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", stage.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, formatAmount(stage.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, formatAmount(stage.Weighted), "1", 1, "R", false, 0, "")
	}
	if len(data.Stages) == 0 {
		pdf.CellFormat(170, 7, "No deals in scope", "1", 1, "C", false, 0, "")
	}

	// ===== Page numbers
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// === helpers ===

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	return filepath.Join(g.RootDir, filename), nil
}

// formatAmount renders a rupiah amount with thousand separators.
func formatAmount(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
