package renderer

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/hmandava/career-compass/pkg/plan"
	"github.com/pkg/errors"
)

const (
	// ContentType is the MIME type of rendered documents.
	ContentType = "application/pdf"
	// AttachmentFilename is the download filename for rendered plans.
	AttachmentFilename = "Career_Compass_Plan.pdf"

	documentTitle = "Your Personalized Career Compass Plan"
	introText     = "Here is your 8-week learning plan to achieve your goal. Stick to the schedule, and you'll make great progress!"

	// Page geometry in points. Letter page, one-inch margins except the
	// bottom, which only reserves the auto-page-break band.
	marginLeft   = 72.0
	marginTop    = 72.0
	marginRight  = 72.0
	marginBottom = 18.0

	lineHeight      = 14.0
	titleLineHeight = 22.0
	headingHeight   = 16.0
	headerRowHeight = 24.0
	cellPadding     = 6.0
	tableSpacing    = 24.0
)

// RenderPlan converts a learning plan into a paginated PDF byte stream. It
// is pure: no I/O beyond the returned buffer. An empty or absent weekly plan
// yields a document with only the title and intro. A week entry missing any
// of its four fields aborts rendering; no partial document is emitted.
func RenderPlan(p plan.LearningPlan) (pdfBytes []byte, err error) {
	for i := range p.WeeklyPlan {
		err = p.WeeklyPlan[i].Validate()
		if err != nil {
			err = errors.Wrapf(err, "cannot render plan entry %d", i)
			return pdfBytes, err
		}
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title block
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, titleLineHeight, tr(documentTitle), "", "L", false)
	pdf.Ln(tableSpacing)

	// Fixed introductory paragraph
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, lineHeight, tr(introText), "", "L", false)
	pdf.Ln(tableSpacing)

	for i := range p.WeeklyPlan {
		renderWeek(pdf, tr, &p.WeeklyPlan[i])
	}

	var buf bytes.Buffer
	err = pdf.Output(&buf)
	if err != nil {
		err = errors.Wrap(err, "failed to write PDF")
		return pdfBytes, err
	}

	pdfBytes = buf.Bytes()
	return pdfBytes, err
}

// renderWeek emits one week: a bold subheading followed by a two-column
// table with a shaded header row and the details/resources bullet lists
// side by side.
func renderWeek(pdf *fpdf.Fpdf, tr func(string) string, entry *plan.WeekEntry) {
	pageWidth, pageHeight := pdf.GetPageSize()
	colWidth := (pageWidth - marginLeft - marginRight) / 2
	textWidth := colWidth - 2*cellPadding

	details := bulletText(tr, entry.Details)
	resources := bulletText(tr, entry.Resources)

	pdf.SetFont("Helvetica", "", 11)
	lines := lineCount(pdf, details, textWidth)
	if n := lineCount(pdf, resources, textWidth); n > lines {
		lines = n
	}
	bodyRowHeight := lineHeight*float64(lines) + 2*cellPadding

	// Keep the subheading and both table rows together where they fit on
	// one page; rows taller than a page still break inside the layout
	// engine's auto page break.
	needed := headingHeight + cellPadding + headerRowHeight + bodyRowHeight
	if pdf.GetY() > marginTop && pdf.GetY()+needed > pageHeight-marginBottom {
		pdf.AddPage()
	}

	// Subheading: "Week N: Topic"
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, headingHeight, tr(entry.Week+": "+entry.Topic), "", "L", false)
	pdf.Ln(cellPadding)

	// Header row: shaded, bold, bordered
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(colWidth, headerRowHeight, "Details", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidth, headerRowHeight, "Suggested Resources", "1", 1, "L", true, 0, "")

	// Body row: beige cells with top-left aligned bullet lists
	y := pdf.GetY()
	pdf.SetFillColor(245, 245, 220)
	pdf.Rect(marginLeft, y, colWidth, bodyRowHeight, "FD")
	pdf.Rect(marginLeft+colWidth, y, colWidth, bodyRowHeight, "FD")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(marginLeft+cellPadding, y+cellPadding)
	pdf.MultiCell(textWidth, lineHeight, details, "", "L", false)
	pdf.SetXY(marginLeft+colWidth+cellPadding, y+cellPadding)
	pdf.MultiCell(textWidth, lineHeight, resources, "", "L", false)

	pdf.SetXY(marginLeft, y+bodyRowHeight)
	pdf.Ln(tableSpacing)
}

// bulletText formats list items as bullet lines, one per entry.
func bulletText(tr func(string) string, items []string) (text string) {
	bullets := make([]string, 0, len(items))
	for _, item := range items {
		bullets = append(bullets, "• "+item)
	}

	text = tr(strings.Join(bullets, "\n"))
	return text
}

// lineCount measures how many wrapped lines the text occupies at the given
// width using the current font.
func lineCount(pdf *fpdf.Fpdf, text string, width float64) (count int) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			count++
			continue
		}
		count += len(pdf.SplitText(line, width))
	}

	return count
}
