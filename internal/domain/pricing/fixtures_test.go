package pricing

import (
	"fmt"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// mileageMilestones returns 5k..100k every 5k, plus an oil service and a
// yearly time milestone.
func mileageMilestones() []entities.Milestone {
	ids := map[int]string{
		10000: "m2", 20000: "m3", 30000: "m5", 40000: "m6", 50000: "m7",
		60000: "m8", 70000: "m9", 80000: "m10", 90000: "m11", 100000: "m12", 5000: "m1",
	}
	out := make([]entities.Milestone, 0, 22)
	for km := 5000; km <= 100000; km += 5000 {
		id, ok := ids[km]
		if !ok {
			id = fmt.Sprintf("m_%dk", km/1000)
		}
		out = append(out, entities.Milestone{ID: id, Name: fmt.Sprintf("Mantenimiento %d KM", km), Type: entities.MilestoneTypeMileage, Interval: km})
	}
	out = append(out,
		entities.Milestone{ID: "m_oil", Name: "Cambio de Aceite", Type: entities.MilestoneTypeService, Interval: 0},
		entities.Milestone{ID: "m4", Name: "Revisión Anual", Type: entities.MilestoneTypeTime, Interval: 12},
	)
	return out
}

func intervalsOf(ms []entities.Milestone) []int {
	out := make([]int, 0, len(ms))
	for _, m := range ms {
		if m.Type == entities.MilestoneTypeMileage {
			out = append(out, m.Interval)
		}
	}
	return out
}

func laborCatalog() []entities.LaborActivity {
	return []entities.LaborActivity{
		{ID: "la1", Description: "Cambio de Aceite y Filtros", Hours: dec("0.5")},
		{ID: "la2", Description: "Revisión General (Frenos, Suspensión)", Hours: dec("1.5")},
		{ID: "la3", Description: "Alineación y Balanceo", Hours: dec("1.0")},
		{ID: "la4", Description: "Sincronización", Hours: dec("2.5")},
		{ID: "la5", Description: "Mantenimiento Frenos", Hours: dec("1.2")},
	}
}
