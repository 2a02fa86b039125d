package documents

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cotizador_taller/internal/domain/entities"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// QuoteDocument is what the printable quote shows.
type QuoteDocument struct {
	LineName      string
	MilestoneName string
	ServiceType   entities.ServiceType
	IssuedAt      time.Time
	Result        entities.QuoteResult
}

// WriteQuotePDF renders doc as a one-page A4 service order.
func WriteQuotePDF(w io.Writer, doc QuoteDocument) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	// Core fonts are cp1252; accented names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, tr("Cotización de mantenimiento"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("%s · %s", doc.LineName, doc.MilestoneName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Servicio: %s   Fecha: %s", serviceLabel(doc.ServiceType), doc.IssuedAt.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	col1 := contentW * 0.55
	col2 := contentW * 0.15
	col3 := contentW * 0.30

	section := func(title string, items []entities.LineItem, qty func(entities.LineItem) string) {
		if len(items) == 0 {
			return
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(col1, 6, tr(title), "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "Total", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, it := range items {
			pdf.CellFormat(col1, 5, tr(truncate(it.Name, 60)), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, qty(it), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, FormatMoney(it.Total), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	partQty := func(it entities.LineItem) string { return it.Quantity.String() }
	hours := func(it entities.LineItem) string { return it.Hours.String() + " h" }
	none := func(entities.LineItem) string { return "" }

	section("Repuestos", doc.Result.MainParts(), partQty)
	section("Aditivos", doc.Result.AdditiveParts(), partQty)
	section("Mano de obra", doc.Result.MergedLabor, hours)
	section("Insumos y adicionales", doc.Result.MergedSupplies, none)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	t := doc.Result.Totals
	row := func(label string, v decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(col1+col2, 6, tr(label), "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, FormatMoney(v), "", 1, "R", false, 0, "")
	}
	row("Repuestos", t.Parts, false)
	row("Mano de obra", t.Labor, false)
	row("Insumos", t.Supplies, false)
	row("Subtotal", t.Subtotal, false)
	row("IVA 19%", t.TaxValue, false)
	row("TOTAL", t.Total, true)

	return pdf.Output(w)
}

// FormatMoney rounds to whole pesos and groups thousands with dots.
func FormatMoney(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}

func serviceLabel(st entities.ServiceType) string {
	switch st {
	case entities.ServiceTypeTaxi:
		return "Taxi"
	case entities.ServiceTypePublico:
		return "Público"
	default:
		return "Particular"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
