package pricing

import (
	"strings"

	"cotizador_taller/internal/domain/entities"
)

// Suggestion is a catalog entry the advisor can add as an additional by name.
type Suggestion struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Kind entities.ItemKind `json:"type"`
}

const routineMarker = "rutina de mantenimiento"

// coveredByRoutine are labor descriptions already included in a maintenance routine.
var coveredByRoutine = []string{
	"cambio de aceite",
	routineMarker,
	"mantenimiento de frenos",
}

// Suggest lists labor and line parts that are not in the base recipe, labor
// first. When the recipe already has a maintenance routine, labor the routine
// covers is not offered.
func Suggest(line *entities.VehicleLine, res entities.QuoteResult, labor []entities.LaborActivity, parts []entities.Part) []Suggestion {
	out := make([]Suggestion, 0)
	if line == nil {
		return out
	}

	usedLabor := make(map[string]struct{}, len(res.CurrentLabor))
	hasRoutine := false
	for _, l := range res.CurrentLabor {
		usedLabor[l.ID] = struct{}{}
		if strings.Contains(strings.ToLower(l.Name), routineMarker) {
			hasRoutine = true
		}
	}
	usedParts := make(map[string]struct{}, len(res.CurrentParts))
	for _, p := range res.CurrentParts {
		usedParts[p.ID] = struct{}{}
	}

	for _, l := range labor {
		if _, used := usedLabor[l.ID]; used {
			continue
		}
		if hasRoutine && routineCovers(l.Description) {
			continue
		}
		out = append(out, Suggestion{ID: l.ID, Name: l.Description, Kind: entities.ItemKindLabor})
	}
	for _, p := range parts {
		if p.LineID != line.ID {
			continue
		}
		if _, used := usedParts[p.ID]; used {
			continue
		}
		out = append(out, Suggestion{ID: p.ID, Name: p.Name, Kind: entities.ItemKindPart})
	}
	return out
}

func routineCovers(description string) bool {
	d := strings.ToLower(description)
	for _, s := range coveredByRoutine {
		if strings.Contains(d, s) {
			return true
		}
	}
	return false
}

// VehicleImageURL picks the picture shown for a line. Gran i10 and Staria
// have per-service-type artwork; other lines use their configured image.
func VehicleImageURL(line *entities.VehicleLine, serviceType entities.ServiceType) string {
	if line == nil {
		return ""
	}
	name := strings.ToUpper(line.Name)
	switch {
	case strings.Contains(name, granI10Marker):
		if serviceType == entities.ServiceTypeTaxi {
			return "/vehicles/gran_i10_taxi.png"
		}
		return "/vehicles/gran_i10.png"
	case strings.Contains(name, stariaMarker):
		if serviceType == entities.ServiceTypePublico {
			return "/vehicles/staria.png"
		}
		return "/vehicles/staria_particular.png"
	}
	return line.ImageURL
}
