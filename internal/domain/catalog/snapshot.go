package catalog

import (
	"encoding/json"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time view of every pricing collection.
type Snapshot struct {
	Brands      []entities.Brand
	Lines       []entities.VehicleLine
	Parts       []entities.Part
	Labor       []entities.LaborActivity
	Supplies    []entities.Supply
	CrossSell   []entities.CrossSellItem
	LaborRate   decimal.Decimal
	Definitions map[string]entities.RecipeDefinition
}

// DecodeSnapshot builds a snapshot from raw documents. A missing or
// malformed collection decodes as empty; the paths that failed are returned
// so the caller can log them.
func DecodeSnapshot(docs map[Path]json.RawMessage) (Snapshot, []Path) {
	var failed []Path
	note := func(p Path, err error) {
		if err != nil {
			failed = append(failed, p)
		}
	}

	s := Snapshot{Definitions: map[string]entities.RecipeDefinition{}}
	var err error

	if s.Brands, err = DecodeBrands(docs[PathBrands]); err != nil {
		s.Brands = []entities.Brand{}
	}
	note(PathBrands, err)
	if s.Lines, err = DecodeVehicleLines(docs[PathVehicleLines]); err != nil {
		s.Lines = []entities.VehicleLine{}
	}
	note(PathVehicleLines, err)
	if s.Parts, err = DecodeParts(docs[PathParts]); err != nil {
		s.Parts = []entities.Part{}
	}
	note(PathParts, err)
	if s.Labor, err = DecodeLaborActivities(docs[PathLaborActivities]); err != nil {
		s.Labor = []entities.LaborActivity{}
	}
	note(PathLaborActivities, err)
	if s.Supplies, err = DecodeSupplies(docs[PathSupplies]); err != nil {
		s.Supplies = []entities.Supply{}
	}
	note(PathSupplies, err)
	if s.CrossSell, err = DecodeCrossSellItems(docs[PathCrossSellItems]); err != nil {
		s.CrossSell = []entities.CrossSellItem{}
	}
	note(PathCrossSellItems, err)
	if s.LaborRate, err = DecodeLaborRate(docs[PathGlobalLaborRate]); err != nil {
		s.LaborRate = decimal.Zero
	}
	note(PathGlobalLaborRate, err)
	defs, err := DecodeDefinitions(docs[PathMaintenanceDefinitions])
	if err == nil {
		s.Definitions = defs
	}
	note(PathMaintenanceDefinitions, err)

	return s, failed
}

// Line returns the line with the given id, or nil.
func (s Snapshot) Line(id string) *entities.VehicleLine {
	for i := range s.Lines {
		if s.Lines[i].ID == id {
			l := s.Lines[i]
			return &l
		}
	}
	return nil
}

// LiveParts excludes parts whose line no longer exists.
func (s Snapshot) LiveParts() []entities.Part {
	lines := make(map[string]struct{}, len(s.Lines))
	for _, l := range s.Lines {
		lines[l.ID] = struct{}{}
	}
	out := make([]entities.Part, 0, len(s.Parts))
	for _, p := range s.Parts {
		if _, ok := lines[p.LineID]; ok {
			out = append(out, p)
		}
	}
	return out
}
