package documents

import (
	"bytes"
	"testing"
	"time"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "$ 0",
		"999":       "$ 999",
		"1000":      "$ 1.000",
		"223125":    "$ 223.125",
		"35624.5":   "$ 35.625",
		"1234567.4": "$ 1.234.567",
		"-1500":     "-$ 1.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestWriteQuotePDF(t *testing.T) {
	item := func(name string, kind entities.ItemKind, cat entities.PartCategory, total int64) entities.LineItem {
		return entities.LineItem{ID: name, Name: name, Kind: kind, Category: cat, Quantity: decimal.NewFromInt(1), Hours: decimal.NewFromInt(1), Price: decimal.NewFromInt(total), Total: decimal.NewFromInt(total)}
	}
	doc := QuoteDocument{
		LineName:      "HB20",
		MilestoneName: "Mantenimiento 10.000 KM",
		ServiceType:   entities.ServiceTypeParticular,
		IssuedAt:      time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		Result: entities.QuoteResult{
			MergedParts: []entities.LineItem{
				item("Filtro de aceite", entities.ItemKindPart, entities.PartCategoryMain, 30000),
				item("Líquido de frenos", entities.ItemKindPart, entities.PartCategoryAdditive, 30420),
			},
			MergedLabor:    []entities.LineItem{item("Alineación y Balanceo", entities.ItemKindLabor, "", 85000)},
			MergedSupplies: []entities.LineItem{item("Insumos / Materiales", entities.ItemKindSupply, "", 25000)},
			Totals:         entities.QuoteTotals{Total: decimal.NewFromInt(202700)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteQuotePDF(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPartsWorkbook(t *testing.T) {
	parts := []entities.Part{
		{ID: "p1", Reference: "26300-35505", Name: "Filtro de aceite", Price: decimal.NewFromInt(30000), LineID: "l_hb20k", Category: entities.PartCategoryMain},
		{ID: "p2", Reference: "00232", Name: "Aditivo", Price: decimal.NewFromInt(18000), LineID: "l_gone", Category: entities.PartCategoryAdditive},
	}
	lines := []entities.VehicleLine{{ID: "l_hb20k", Name: "HB20"}}

	f, name, err := PartsWorkbook(parts, lines, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "repuestos_20240601.xlsx", name)

	rows, err := f.GetRows("Repuestos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Referencia", "Nombre", "Línea", "Categoría", "Precio"}, rows[0])
	assert.Equal(t, "HB20", rows[1][2])
	assert.Equal(t, "l_gone", rows[2][2])
	assert.Equal(t, "30000", rows[1][4])

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	_, err = excelize.OpenReader(&buf)
	require.NoError(t, err)
}
