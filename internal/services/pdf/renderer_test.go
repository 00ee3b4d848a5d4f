package pdf

import (
	"strings"
	"testing"
	"time"

	"challan-management-backend/internal/config"
	"challan-management-backend/internal/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() config.Company {
	return config.Company{
		Name:    "Orchid Computing India",
		Address: "151, Bannu Enclave, Road No. 42, Pitampura, Delhi-34",
		Phone:   "Phone: 27020450, 9311135345",
	}
}

func testChallan() *models.Challan {
	return &models.Challan{
		ChallanID:  "GP10001",
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ClientName: "Acme Traders",
		BranchName: "Pitampura",
	}
}

func measuringDoc() *gofpdf.Fpdf {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	return doc
}

func TestRenderEmptyItems(t *testing.T) {
	renderer := NewRenderer(testCompany())

	data, err := renderer.Render(testChallan(), nil)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Nil(t, data)
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer(testCompany())
	items := []models.BillingItem{
		{Particular: "Paper A4", Quantity: 2, Price: decimal.RequireFromString("250.00")},
	}

	data, err := renderer.Render(testChallan(), items)
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderManyRowsPaginates(t *testing.T) {
	renderer := NewRenderer(testCompany())
	var items []models.BillingItem
	for i := 0; i < 80; i++ {
		items = append(items, models.BillingItem{
			Particular: "Toner cartridge HP LaserJet refill and fitting service",
			Quantity:   1,
			Price:      decimal.RequireFromString("1450.50"),
			Remarks:    "delivered to front desk",
		})
	}

	data, err := renderer.Render(testChallan(), items)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRowHeightShortTextUsesBaseline(t *testing.T) {
	doc := measuringDoc()
	cells := [4]string{"2", "Paper A4", "250.00", ""}

	assert.Equal(t, baseRowHeight, rowHeight(doc, cells))
}

func TestRowHeightWrappedTextGrows(t *testing.T) {
	doc := measuringDoc()
	long := strings.Repeat("long particular text that wraps ", 4)
	cells := [4]string{"2", long, "250.00", ""}

	lines := doc.SplitLines([]byte(long), columnWidths[1]-2*cellPadding)
	require.Greater(t, len(lines), 2)

	want := float64(len(lines)) * lineHeight
	got := rowHeight(doc, cells)
	assert.Greater(t, got, baseRowHeight)
	assert.Equal(t, want, got)
}

func TestCellValuesFormatting(t *testing.T) {
	item := models.BillingItem{
		Particular: "Paper A4",
		Quantity:   2,
		Price:      decimal.RequireFromString("250"),
	}

	cells := cellValues(item)
	assert.Equal(t, "2", cells[0])
	assert.Equal(t, "Paper A4", cells[1])
	assert.Equal(t, "250.00", cells[2])
	// missing remarks render as an empty cell, never a placeholder
	assert.Equal(t, "", cells[3])
}
