package pricing

import (
	"testing"

	"cotizador_taller/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMilestoneID(t *testing.T) {
	tests := map[string]string{
		"m5": "m2", "m9": "m2", "m11": "m2",
		"m6": "m3", "m8": "m3", "m10": "m3",
		"m2": "m2", "m3": "m3", "m7": "m7", "m_oil": "m_oil", "custom": "custom",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalMilestoneID(in), in)
	}
}

func TestDefinitions_SaveSatelliteAliasesMaster(t *testing.T) {
	defs := Definitions{}
	recipe := entities.RecipeDefinition{
		LaborIDs:  []string{"la1", "la2"},
		SupplyIDs: []string{"s1"},
		Parts:     []entities.RecipePart{{ID: "p_l1_a", Quantity: dec("4")}},
	}

	defs.Save("l1", "m5", recipe)

	assert.Contains(t, defs, "l1_m2")
	assert.NotContains(t, defs, "l1_m5")
	assert.Equal(t, defs.Resolve("l1", "m5"), defs.Resolve("l1", "m9"))
	assert.Equal(t, defs.Resolve("l1", "m2"), defs.Resolve("l1", "m11"))
	assert.Equal(t, []string{"la1", "la2"}, defs.Resolve("l1", "m9").LaborIDs)
	assert.Equal(t, entities.EmptyRecipe(), defs.Resolve("l2", "m9"), "other lines are untouched")
}

func TestDefinitions_CustomBypassesStorage(t *testing.T) {
	defs := Definitions{"l1_custom": {LaborIDs: []string{"la1"}}}
	assert.Equal(t, entities.EmptyRecipe(), defs.Resolve("l1", entities.CustomMilestoneID))

	var nilDefs Definitions
	assert.Equal(t, entities.EmptyRecipe(), nilDefs.Resolve("l1", entities.CustomMilestoneID))
	assert.Equal(t, entities.EmptyRecipe(), nilDefs.Resolve("l1", "m2"))
}

func TestDefinitions_ResolveFillsMissingLists(t *testing.T) {
	defs := Definitions{"l1_m3": {LaborIDs: []string{"la4"}}}
	got := defs.Resolve("l1", "m8")
	assert.Equal(t, []string{"la4"}, got.LaborIDs)
	assert.NotNil(t, got.SupplyIDs)
	assert.NotNil(t, got.Parts)
}

func TestSharedMilestones(t *testing.T) {
	assert.Equal(t, []string{"m2", "m5", "m9", "m11"}, SharedMilestones("m9"))
	assert.Equal(t, []string{"m3", "m6", "m8", "m10"}, SharedMilestones("m3"))
	assert.Equal(t, []string{"m7"}, SharedMilestones("m7"))
}
