// Package export renders the tracked conference list into downloadable
// documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"conftrack/internal/domain"
)

// column widths in mm, summing to the printable width of an A4 landscape page.
var columns = []struct {
	header string
	width  float64
}{
	{"Name", 62},
	{"Location", 45},
	{"Category", 33},
	{"Submission", 27},
	{"Notification", 27},
	{"Conference", 53},
	{"Status", 30},
}

// RenderPDF renders the records as a tabular PDF, one row per conference,
// in the order given.
func RenderPDF(records []*domain.Conference, generated string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Conference Submission Deadlines", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated "+generated, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, rec := range records {
		cells := []string{
			rec.Name,
			rec.Location,
			string(rec.Category),
			rec.SubmissionDate.String(),
			rec.NotificationDate.String(),
			fmt.Sprintf("%s to %s", rec.ConferenceStartDate, rec.ConferenceEndDate),
			string(rec.Status),
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, 7, cells[i], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
