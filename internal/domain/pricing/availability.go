package pricing

import (
	"strings"

	"cotizador_taller/internal/domain/entities"
)

const (
	granI10Marker = "GRAN I10"
	stariaMarker  = "STARIA"

	// Fleet plans (taxi, public transport) run every 5000 km up to 100000 km.
	fleetInterval = 5000
	fleetCeiling  = 100000
	// Private plans on special lines run every 10000 km.
	privateInterval = 10000
)

// lineRule decides availability for lines that need special handling.
// handled=false means the line's service type has no special rule and the
// regular mileage cadence applies.
type lineRule struct {
	marker string
	byType map[entities.ServiceType]func(interval int) bool
}

var lineRules = []lineRule{
	{
		marker: granI10Marker,
		byType: map[entities.ServiceType]func(int) bool{
			entities.ServiceTypeTaxi:       fleetCadence,
			entities.ServiceTypeParticular: privateCadence,
		},
	},
	{
		marker: stariaMarker,
		byType: map[entities.ServiceType]func(int) bool{
			entities.ServiceTypeParticular: privateCadence,
			entities.ServiceTypePublico:    fleetCadence,
		},
	},
}

func fleetCadence(interval int) bool {
	return interval > 0 && interval <= fleetCeiling && interval%fleetInterval == 0
}

func privateCadence(interval int) bool {
	return interval > 0 && interval%privateInterval == 0
}

// AvailableMilestones returns the milestones offered for line under the given
// service type, in catalog order, followed by the synthetic custom milestone.
// A nil line yields an empty list.
func AvailableMilestones(line *entities.VehicleLine, all []entities.Milestone, serviceType entities.ServiceType) []entities.Milestone {
	if line == nil {
		return []entities.Milestone{}
	}

	name := strings.ToUpper(line.Name)
	var special *lineRule
	for i := range lineRules {
		if strings.Contains(name, lineRules[i].marker) {
			special = &lineRules[i]
			break
		}
	}
	interval := line.EffectiveServiceInterval()

	out := make([]entities.Milestone, 0, len(all)+1)
	for _, m := range all {
		if milestoneAvailable(m, special, serviceType, interval) {
			out = append(out, m)
		}
	}
	return append(out, entities.CustomMilestone())
}

func milestoneAvailable(m entities.Milestone, special *lineRule, serviceType entities.ServiceType, serviceInterval int) bool {
	if m.Type == entities.MilestoneTypeService || m.Type == entities.MilestoneTypeTime {
		return true
	}
	if special != nil {
		if accept, ok := special.byType[serviceType]; ok {
			return accept(m.Interval)
		}
	}
	if m.Type == entities.MilestoneTypeMileage {
		return m.Interval > 0 && m.Interval%serviceInterval == 0
	}
	return false
}
