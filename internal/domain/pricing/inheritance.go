package pricing

import (
	"sort"

	"cotizador_taller/internal/domain/entities"
)

// Master milestone ids. Satellites share the master's recipe.
const (
	Master10k = "m2"
	Master20k = "m3"
)

// canonicalMilestones maps satellite milestones to the master whose recipe
// they reuse: 30k/70k/90k price like 10k, 40k/60k/80k price like 20k.
var canonicalMilestones = map[string]string{
	"m5":  Master10k,
	"m9":  Master10k,
	"m11": Master10k,
	"m6":  Master20k,
	"m8":  Master20k,
	"m10": Master20k,
}

// CanonicalMilestoneID returns the id under which a milestone's recipe is stored.
func CanonicalMilestoneID(milestoneID string) string {
	if master, ok := canonicalMilestones[milestoneID]; ok {
		return master
	}
	return milestoneID
}

// SharedMilestones lists every milestone id whose recipe is stored under the
// same key as milestoneID, master first.
func SharedMilestones(milestoneID string) []string {
	canonical := CanonicalMilestoneID(milestoneID)
	satellites := make([]string, 0)
	for satellite, master := range canonicalMilestones {
		if master == canonical {
			satellites = append(satellites, satellite)
		}
	}
	sort.Slice(satellites, func(i, j int) bool { return milestoneOrder(satellites[i]) < milestoneOrder(satellites[j]) })
	return append([]string{canonical}, satellites...)
}

// DefinitionKey is the store key of a (line, milestone) recipe.
func DefinitionKey(lineID, milestoneID string) string {
	return lineID + "_" + CanonicalMilestoneID(milestoneID)
}

// Definitions is the recipe collection keyed by DefinitionKey.
type Definitions map[string]entities.RecipeDefinition

// Resolve returns the recipe for a line and milestone. The custom milestone
// and unknown keys yield the empty recipe.
func (d Definitions) Resolve(lineID, milestoneID string) entities.RecipeDefinition {
	if milestoneID == entities.CustomMilestoneID {
		return entities.EmptyRecipe()
	}
	def, ok := d[DefinitionKey(lineID, milestoneID)]
	if !ok {
		return entities.EmptyRecipe()
	}
	return normalizeRecipe(def)
}

// Save stores def under the canonical key, so saving a satellite overwrites
// its master and every sibling. The receiver is modified in place.
func (d Definitions) Save(lineID, milestoneID string, def entities.RecipeDefinition) {
	d[DefinitionKey(lineID, milestoneID)] = normalizeRecipe(def)
}

func normalizeRecipe(def entities.RecipeDefinition) entities.RecipeDefinition {
	out := entities.EmptyRecipe()
	out.LaborIDs = append(out.LaborIDs, def.LaborIDs...)
	out.SupplyIDs = append(out.SupplyIDs, def.SupplyIDs...)
	out.Parts = append(out.Parts, def.Parts...)
	return out
}

// milestoneOrder sorts "m5" before "m11".
func milestoneOrder(id string) int {
	n := 0
	for _, r := range id {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}
