package report

import (
	_ "embed"
	"strconv"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/signintech/gopdf"
)

//go:embed fonts/DejaVuSans.ttf
var fontRegular []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var fontBold []byte

const (
	pageWidth    = 595.28 // A4 portrait, points
	pageHeight   = 841.89
	pageMarginX  = 40.0
	pageMarginY  = 40.0
	tableRowH    = 22.0
	cellPadding  = 4.0
	currencyMark = "₹"
)

// ID : Description : Amount : Date : Category
var columnRatios = [5]float64{1, 3, 2, 2, 2}

func columnWidths() [5]float64 {
	usable := pageWidth - 2*pageMarginX
	var total float64
	for _, r := range columnRatios {
		total += r
	}
	var widths [5]float64
	for i, r := range columnRatios {
		widths[i] = usable * r / total
	}
	return widths
}

// renderPDF produces the printable expense report: centered title, date
// window caption, the expense table with a shaded header repeated on every
// page, and a bold total line re-derived from the rendered rows.
func renderPDF(expenses []*domain.Expense, filters *domain.ExpenseFilters) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFontData("sans", fontRegular); err != nil {
		return nil, err
	}
	if err := pdf.AddTTFFontData("sans-bold", fontBold); err != nil {
		return nil, err
	}

	pdf.AddPage()
	pdf.SetTextColor(0, 0, 0)
	y := pageMarginY

	if err := pdf.SetFont("sans-bold", "", 20); err != nil {
		return nil, err
	}
	if err := writeCentered(pdf, "Expense Report", y); err != nil {
		return nil, err
	}
	y += 36

	if err := pdf.SetFont("sans", "", 12); err != nil {
		return nil, err
	}
	if err := writeCentered(pdf, DateRangeCaption(filters), y); err != nil {
		return nil, err
	}
	y += 32

	widths := columnWidths()
	var err error
	y, err = writeTableHeader(pdf, widths, y)
	if err != nil {
		return nil, err
	}

	// The printed total is re-summed from the rows actually emitted so it can
	// never diverge from the table above it.
	total := decimal.Zero
	for _, e := range expenses {
		if y+tableRowH > pageHeight-pageMarginY {
			pdf.AddPage()
			y = pageMarginY
			if y, err = writeTableHeader(pdf, widths, y); err != nil {
				return nil, err
			}
		}

		if err := pdf.SetFont("sans", "", 10); err != nil {
			return nil, err
		}
		cells := [5]string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			currencyMark + e.Amount.String(),
			e.Date.Format(dateLayout),
			e.CategoryName,
		}
		if err := writeTableRow(pdf, widths, y, cells, false); err != nil {
			return nil, err
		}
		y += tableRowH
		total = total.Add(e.Amount)
	}

	y += 20
	if y > pageHeight-pageMarginY {
		pdf.AddPage()
		y = pageMarginY
	}

	if err := pdf.SetFont("sans-bold", "", 12); err != nil {
		return nil, err
	}
	totalLine := "Total: " + currencyMark + total.StringFixed(2)
	w, err := pdf.MeasureTextWidth(totalLine)
	if err != nil {
		return nil, err
	}
	pdf.SetX(pageWidth - pageMarginX - w)
	pdf.SetY(y)
	if err := pdf.Cell(nil, totalLine); err != nil {
		return nil, err
	}

	return pdf.GetBytesPdf(), nil
}

func writeTableHeader(pdf *gopdf.GoPdf, widths [5]float64, y float64) (float64, error) {
	if err := pdf.SetFont("sans-bold", "", 10); err != nil {
		return y, err
	}
	pdf.SetFillColor(211, 211, 211)

	x := pageMarginX
	for _, w := range widths {
		pdf.RectFromUpperLeftWithStyle(x, y, w, tableRowH, "F")
		x += w
	}

	var cells [5]string
	copy(cells[:], columnHeaders)
	if err := writeTableRow(pdf, widths, y, cells, true); err != nil {
		return y, err
	}
	return y + tableRowH, nil
}

func writeTableRow(pdf *gopdf.GoPdf, widths [5]float64, y float64, cells [5]string, centered bool) error {
	x := pageMarginX
	for i, text := range cells {
		text, err := truncateToWidth(pdf, text, widths[i]-2*cellPadding)
		if err != nil {
			return err
		}
		offset := cellPadding
		if centered {
			w, err := pdf.MeasureTextWidth(text)
			if err != nil {
				return err
			}
			offset = (widths[i] - w) / 2
		}
		pdf.SetX(x + offset)
		pdf.SetY(y + 5)
		if err := pdf.Cell(nil, text); err != nil {
			return err
		}
		x += widths[i]
	}
	return nil
}

func writeCentered(pdf *gopdf.GoPdf, text string, y float64) error {
	w, err := pdf.MeasureTextWidth(text)
	if err != nil {
		return err
	}
	pdf.SetX((pageWidth - w) / 2)
	pdf.SetY(y)
	return pdf.Cell(nil, text)
}

// truncateToWidth shortens text with an ellipsis until it fits the column.
func truncateToWidth(pdf *gopdf.GoPdf, text string, maxWidth float64) (string, error) {
	w, err := pdf.MeasureTextWidth(text)
	if err != nil {
		return "", err
	}
	if w <= maxWidth {
		return text, nil
	}

	runes := []rune(text)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		w, err = pdf.MeasureTextWidth(candidate)
		if err != nil {
			return "", err
		}
		if w <= maxWidth {
			return candidate, nil
		}
	}
	return "…", nil
}
