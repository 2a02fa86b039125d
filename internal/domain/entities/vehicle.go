package entities

// Brand is a vehicle manufacturer offered by the workshop.
type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultServiceInterval is the mileage cadence used when a line has none configured.
const DefaultServiceInterval = 10000

// VehicleLine groups a vehicle model/trim (e.g. "TUCSON NX4").
//
// Domain notes:
//   - ServiceInterval (5000 or 10000 km) drives the milestone cadence of lines
//     without special-cased behavior.
//   - Deleting a line deletes every Part referencing it.
type VehicleLine struct {
	ID              string `json:"id"`
	BrandID         int64  `json:"brandId"`
	Name            string `json:"name"`
	ImageURL        string `json:"imageUrl"`
	ServiceInterval int    `json:"serviceInterval,omitempty"`
}

// EffectiveServiceInterval returns the configured interval or the 10k default.
func (l VehicleLine) EffectiveServiceInterval() int {
	if l.ServiceInterval <= 0 {
		return DefaultServiceInterval
	}
	return l.ServiceInterval
}
