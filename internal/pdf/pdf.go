// Package pdf lays out a paper record as a paginated PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/acadport/papergen/internal/model"
)

// Render produces the PDF bytes for a paper. The layout is a centered
// title (department full name and course), a metadata line, the
// syllabus block, then the content with each non-blank line as its own
// paragraph and blank lines as vertical spacing. Page flow is left to
// the engine.
func Render(paper model.Paper, departmentName string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(15, 13, 15)
	doc.SetAutoPageBreak(true, 13)
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	width := pageWidth - left - right

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(0, 198, 255)
	doc.MultiCell(width, 8, departmentName, "", "C", false)
	doc.MultiCell(width, 8, paper.Course, "", "C", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	meta := fmt.Sprintf("Difficulty: %s | Date: %s | Created by: %s",
		paper.Difficulty, paper.Date, paper.CreatedBy)
	doc.MultiCell(width, 5, meta, "", "L", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(0, 114, 255)
	doc.MultiCell(width, 6, "Syllabus Topics:", "", "L", false)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(width, 5, paper.Syllabus, "", "L", false)
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(0, 114, 255)
	doc.MultiCell(width, 6, "Question Paper:", "", "L", false)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, line := range strings.Split(paper.Content, "\n") {
		if strings.TrimSpace(line) == "" {
			doc.Ln(2)
			continue
		}
		doc.MultiCell(width, 5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("build PDF: %w", err)
	}
	return buf.Bytes(), nil
}
