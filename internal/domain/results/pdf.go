package results

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// GenerateSummaryPDF writes a one-page variance summary for a processed pay
// period under dir and returns the file path.
func GenerateSummaryPDF(report *Report, dir, clientID, runID string) (string, error) {
	if dir == "" {
		dir = "storage/reports"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, runID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Compliance Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Client: %s", clientID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Run: %s", runID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().UTC().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Rows processed")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, name := range sortedKeysInt(report.Summary.Rows) {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", name, report.Summary.Rows[name]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Findings by section")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, name := range sortedKeysRows(report.Sections) {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d rows", name, len(report.Sections[name])))
		pdf.Ln(6)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

func sortedKeysInt(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysRows(m map[string][]map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
