package documents

import (
	"fmt"
	"time"

	"cotizador_taller/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var partsExportHeaders = []string{"Referencia", "Nombre", "Línea", "Categoría", "Precio"}

// PartsWorkbook lays the parts catalog out one part per row, labelled with its
// line name. Parts whose line is gone are listed under their raw line id.
func PartsWorkbook(parts []entities.Part, lines []entities.VehicleLine, now time.Time) (*excelize.File, string, error) {
	lineNames := make(map[string]string, len(lines))
	for _, l := range lines {
		lineNames[l.ID] = l.Name
	}

	f := excelize.NewFile()
	sheet := "Repuestos"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	for i, h := range partsExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for i, p := range parts {
		row := i + 2
		line := lineNames[p.LineID]
		if line == "" {
			line = p.LineID
		}
		price, _ := p.Price.Float64()
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Reference)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(p.Category))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), price)
	}

	colWidths := []float64{16, 36, 20, 12, 14}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("repuestos_%s.xlsx", now.Format("20060102"))
	return f, filename, nil
}
