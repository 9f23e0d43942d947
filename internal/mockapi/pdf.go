package mockapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type pdfLine struct {
	text   string
	style  string
	size   float64
	height float64
	align  string
	gap    float64 // vertical space above the line, in mm
}

// planPDFLines lays out the printable summary of a plan.
func planPDFLines(p *storedPlan) []pdfLine {
	created := p.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}
	heading := func(text string) pdfLine {
		return pdfLine{text: text, style: "B", size: 12, height: 8, gap: 5}
	}
	body := func(text string) pdfLine {
		return pdfLine{text: text, size: 10, height: 6}
	}

	lines := []pdfLine{
		{text: "Personalized Study Plan", style: "B", size: 16, height: 10, align: "C"},
		{text: "Created: " + created, size: 10, height: 5, gap: 5},
		{text: fmt.Sprintf("Duration: %d days", p.DurationDays), size: 10, height: 5},
		heading("1. Syllabus Overview"),
		body(fmt.Sprintf("Total Hours: %d", p.SyllabusAnalysis.TotalEstimatedHours)),
	}
	for i, s := range p.SyllabusAnalysis.Subjects {
		if i == 3 {
			break
		}
		lines = append(lines, body("- "+s.Name))
	}

	lines = append(lines,
		heading("2. Learning Approach"),
		body("Style: "+p.LearningAnalysis.PrimaryLearningStyle),
		heading("3. Schedule (First 3 Days)"),
	)
	for i, d := range p.Schedule.Schedule {
		if i == 3 {
			break
		}
		lines = append(lines, pdfLine{text: fmt.Sprintf("Day %d: %s", d.Day, d.Date), size: 9, height: 5})
		for j, s := range d.Sessions {
			if j == 2 {
				break
			}
			lines = append(lines, pdfLine{text: fmt.Sprintf("  - %s: %s", s.Time, s.Topic), size: 9, height: 4})
		}
	}
	return lines
}

// renderPDF writes the plan summary as a one-page A4 document. Streams are
// left uncompressed so the text stays searchable.
func renderPDF(p *storedPlan, created time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetCreationDate(created)
	doc.SetTitle("Personalized Study Plan", true)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, l := range planPDFLines(p) {
		if l.gap > 0 {
			doc.Ln(l.gap)
		}
		doc.SetFont("Arial", l.style, l.size)
		doc.CellFormat(0, l.height, tr(l.text), "", 1, l.align, false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
