package pdf

import (
	"bytes"
	"errors"
	"strconv"

	"challan-management-backend/internal/config"
	"challan-management-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
)

var ErrNoItems = errors.New("no billing items to render")

// Geometry in points, portrait Letter (612 x 792).
const (
	startX        = 50.0
	topMargin     = 50.0
	bottomMargin  = 60.0
	baseRowHeight = 20.0
	cellPadding   = 5.0
	lineHeight    = 14.0
)

var (
	columnWidths = [4]float64{50, 200, 100, 200}
	columnTitles = [4]string{"Qty", "Particular", "Price", "Remarks"}
	// quantity and price centered, text columns left-aligned
	columnAligns = [4]string{"C", "L", "C", "L"}
)

type Renderer struct {
	company config.Company
}

func NewRenderer(company config.Company) *Renderer {
	return &Renderer{company: company}
}

// Render lays out the challan as a bordered table and returns the
// finished PDF as an in-memory byte stream. Nothing touches disk.
func (r *Renderer) Render(challan *models.Challan, items []models.BillingItem) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(startX, topMargin, startX)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	r.drawLetterhead(doc)
	drawChallanDetails(doc, challan)

	_, pageHeight := doc.GetPageSize()

	y := doc.GetY() + 10
	y = drawColumnHeader(doc, y)

	doc.SetFont("Helvetica", "", 12)
	for _, item := range items {
		cells := cellValues(item)
		height := rowHeight(doc, cells)

		// continue onto a fresh page before the row would cross the
		// bottom margin, re-striking the column header
		if y+height > pageHeight-bottomMargin {
			doc.AddPage()
			y = drawColumnHeader(doc, topMargin)
			doc.SetFont("Helvetica", "", 12)
		}

		drawRow(doc, y, height, cells)
		y += height
	}

	r.drawFooter(doc, y)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawLetterhead(doc *gofpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(200, 0, 0)
	doc.CellFormat(0, 26, r.company.Name, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 12, r.company.Address, "", 1, "C", false, 0, "")
	doc.CellFormat(0, 12, r.company.Phone, "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Helvetica", "BU", 16)
	doc.CellFormat(0, 20, "Delivery Challan", "", 1, "C", false, 0, "")
	doc.Ln(6)
}

func drawChallanDetails(doc *gofpdf.Fpdf, challan *models.Challan) {
	doc.SetFont("Helvetica", "B", 12)
	y := doc.GetY()

	doc.Text(startX, y+12, "Challan ID: "+challan.ChallanID)
	date := "Date: " + challan.Date.Format("02-01-2006")
	doc.Text(startX+tableWidth()-doc.GetStringWidth(date), y+12, date)

	doc.Text(startX, y+36, "M/s: "+challan.ClientName)
	doc.Text(startX, y+52, "Branch: "+challan.BranchName)
	doc.SetY(y + 56)
}

// drawColumnHeader strokes the title row at y and returns the y of the
// first body row beneath it.
func drawColumnHeader(doc *gofpdf.Fpdf, y float64) float64 {
	doc.SetFont("Helvetica", "B", 12)
	x := startX
	for i, title := range columnTitles {
		doc.SetXY(x+cellPadding, y+cellPadding)
		doc.CellFormat(columnWidths[i]-2*cellPadding, lineHeight, title, "", 0, "C", false, 0, "")
		x += columnWidths[i]
	}
	strokeRowBorders(doc, y, baseRowHeight)
	return y + baseRowHeight
}

func drawRow(doc *gofpdf.Fpdf, y, height float64, cells [4]string) {
	x := startX
	for i, cell := range cells {
		doc.SetXY(x+cellPadding, y+cellPadding)
		doc.MultiCell(columnWidths[i]-2*cellPadding, lineHeight, cell, "", columnAligns[i], false)
		x += columnWidths[i]
	}
	strokeRowBorders(doc, y, height)
}

// strokeRowBorders draws the bounding rectangle and the interior
// vertical separators at the same x offsets for every row, keeping the
// grid lines continuous down the table.
func strokeRowBorders(doc *gofpdf.Fpdf, y, height float64) {
	doc.Rect(startX, y, tableWidth(), height, "D")
	x := startX
	for _, w := range columnWidths[:len(columnWidths)-1] {
		x += w
		doc.Line(x, y, x, y+height)
	}
}

func (r *Renderer) drawFooter(doc *gofpdf.Fpdf, y float64) {
	doc.SetFont("Helvetica", "", 10)
	doc.Text(startX, y+30, "Customer Signature")
	caption := "For " + r.company.Name
	doc.Text(startX+tableWidth()-doc.GetStringWidth(caption), y+30, caption)
}

// rowHeight is the tallest wrapped cell, floored at the base height.
// The current font must already be set, it drives the wrap measurement.
func rowHeight(doc *gofpdf.Fpdf, cells [4]string) float64 {
	height := baseRowHeight
	for i, cell := range cells {
		if h := cellHeight(doc, cell, columnWidths[i]); h > height {
			height = h
		}
	}
	return height
}

// cellHeight measures the wrapped text height at the column's content
// width (column width minus padding on both sides).
func cellHeight(doc *gofpdf.Fpdf, text string, colWidth float64) float64 {
	if text == "" {
		return lineHeight
	}
	lines := doc.SplitLines([]byte(text), colWidth-2*cellPadding)
	return float64(len(lines)) * lineHeight
}

func cellValues(item models.BillingItem) [4]string {
	return [4]string{
		strconv.Itoa(item.Quantity),
		item.Particular,
		item.Price.StringFixed(2),
		item.Remarks,
	}
}

func tableWidth() float64 {
	var w float64
	for _, cw := range columnWidths {
		w += cw
	}
	return w
}
