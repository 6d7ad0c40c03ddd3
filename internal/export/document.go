// Package export renders performance reports as PDF documents. All figures come
// from the stats package; this package only lays them out.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	margin     = 20.0
	dateLayout = "2006-01-02"
)

type rgb struct{ r, g, b int }

var (
	lavender = rgb{180, 150, 220}
	mint     = rgb{150, 200, 180}
	peach    = rgb{255, 180, 150}
	stripe   = rgb{245, 245, 245}
)

type table struct {
	headers []string
	rows    [][]string
}

// document is a thin layout layer over fpdf shared by all reports
type document struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
}

func newDocument(title string, generatedAt time.Time) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	d := &document{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: pageWidth - 2*margin,
	}

	pdf.SetFillColor(lavender.r, lavender.g, lavender.b)
	pdf.Rect(0, 0, pageWidth, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(0, 12)
	pdf.CellFormat(pageWidth, 10, d.tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetX(0)
	pdf.CellFormat(pageWidth, 8, generatedAt.Format(dateLayout), "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(50)
	return d
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.CellFormat(0, 9, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) line(text string) {
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.CellFormat(0, 6, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *document) paragraph(label, text string) {
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 6, d.tr(label), "", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.MultiCell(0, 6, d.tr(text), "", "L", false)
}

func (d *document) heading(text string) {
	d.pdf.Ln(8)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *document) table(t table, head rgb, striped bool) {
	if len(t.headers) == 0 {
		return
	}
	colWidth := d.width / float64(len(t.headers))

	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetFillColor(head.r, head.g, head.b)
	d.pdf.SetTextColor(255, 255, 255)
	for _, h := range t.headers {
		d.pdf.CellFormat(colWidth, 8, d.tr(h), "1", 0, "L", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFillColor(stripe.r, stripe.g, stripe.b)
	for i, row := range t.rows {
		fill := striped && i%2 == 1
		for _, cell := range row {
			d.pdf.CellFormat(colWidth, 7, d.tr(cell), "1", 0, "L", fill, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

func (d *document) write(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// fileStem turns free text into a file name fragment: whitespace runs become
// underscores and path separators are replaced.
func fileStem(s string) string {
	s = strings.NewReplacer("/", "-", `\`, "-").Replace(s)
	stem := strings.Join(strings.Fields(s), "_")
	if stem == "" {
		return "Untitled"
	}
	return stem
}

// MemberFileName is the download name of a member report
func MemberFileName(memberName string) string {
	return fileStem(memberName) + "_Performance_Report.pdf"
}

// TaskFileName is the download name of a task report
func TaskFileName(taskTitle string) string {
	return fileStem(taskTitle) + "_Task_Report.pdf"
}

// TeamFileName is the download name of the team report generated at the given time
func TeamFileName(generatedAt time.Time) string {
	return "Team_Performance_Report_" + generatedAt.UTC().Format(dateLayout) + ".pdf"
}

func outOfFive(v float64) string {
	return fmt.Sprintf("%.2f/5.0", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// scoreOr formats a positive score with two decimals and falls back otherwise
func scoreOr(v float64, fallback string) string {
	if v > 0 {
		return fmt.Sprintf("%.2f", v)
	}
	return fallback
}
