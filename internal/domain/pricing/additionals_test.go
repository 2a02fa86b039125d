package pricing

import (
	"testing"

	"cotizador_taller/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestAdditionalRules_Order(t *testing.T) {
	names := make([]string, 0, len(AdditionalRules))
	for _, r := range AdditionalRules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"alignment", "synchronization", "labor", "part"}, names)
}

func TestResolveAdditional(t *testing.T) {
	hb20 := &entities.VehicleLine{ID: "l_hb20k", Name: "HB20"}
	parts := []entities.Part{
		{ID: "pY", Reference: "00232-19054", Name: "Aditivo limpia inyectores", Price: dec("18000"), LineID: "l_hb20k", Category: entities.PartCategoryAdditive},
		{ID: "pT", Reference: "43000-1", Name: "Filtro de transmisión", Price: dec("52000"), LineID: "l_venue", Category: entities.PartCategoryMain},
		{ID: "pK", Reference: "56820-1", Name: "Kit alineación dirección", Price: dec("64000"), LineID: "l_hb20k", Category: entities.PartCategoryMain},
	}
	noAlignment := []entities.LaborActivity{
		{ID: "la1", Description: "Cambio de Aceite y Filtros", Hours: dec("0.5")},
	}
	unaccented := []entities.LaborActivity{
		{ID: "lx", Description: "Sincronizacion de motor", Hours: dec("2")},
	}

	tests := []struct {
		name     string
		query    string
		line     *entities.VehicleLine
		labor    []entities.LaborActivity
		wantRule string
		wantID   string
		wantKind entities.ItemKind
		wantCost string
	}{
		{"alignment matches folded description", "ALINEACION", hb20, laborCatalog(), "alignment", "la3", entities.ItemKindLabor, "85000"},
		{"alignment without alignment labor falls through to the line part", "Alineación", hb20, noAlignment, "part", "pK", entities.ItemKindPart, "64000"},
		{"synchronization matches the accented description", "sincronizacion", hb20, laborCatalog(), "synchronization", "la4", entities.ItemKindLabor, "212500"},
		{"unaccented synchronization labor is left to the generic labor rule", "sincronización", hb20, unaccented, "labor", "lx", entities.ItemKindLabor, "170000"},
		{"generic labor takes the first match in catalog order", "frenos", hb20, laborCatalog(), "labor", "la2", entities.ItemKindLabor, "127500"},
		{"line part", "aditivo", hb20, laborCatalog(), "part", "pY", entities.ItemKindPart, "18000"},
		{"part of another line is unknown", "filtro de transmision", hb20, laborCatalog(), "unknown", "filtro de transmision", entities.ItemKindUnknown, "0"},
		{"no line means no part search", "aditivo", nil, laborCatalog(), "unknown", "aditivo", entities.ItemKindUnknown, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, rule := ResolveAdditional(tt.query, tt.line, tt.labor, parts, dec("85000"))

			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantID, item.ID)
			assert.Equal(t, tt.wantKind, item.Kind)
			assert.True(t, item.Additional)
			assertDec(t, tt.wantCost, item.Total, "total")
			if tt.wantKind == entities.ItemKindPart {
				assertDec(t, "1", item.Quantity, "quantity")
				assert.Empty(t, item.Category)
			}
		})
	}
}
