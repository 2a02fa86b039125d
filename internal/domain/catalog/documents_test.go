package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"cotizador_taller/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeParts_Lenient(t *testing.T) {
	raw := json.RawMessage(`[
		{"id":"p1","reference":"26300-35505","name":"Filtro de aceite","price":30000,"lineId":"l_hb20k","category":"main"},
		{"id":"p2","reference":12345,"name":"Aditivo","price":"15000","lineId":"l_hb20k","category":"additive"},
		{"id":"p3","name":"Sin precio","lineId":"l_venue"},
		"not an object",
		null
	]`)

	parts, err := DecodeParts(raw)
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.True(t, parts[0].Price.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, "12345", parts[1].Reference)
	assert.True(t, parts[1].Price.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, entities.PartCategoryAdditive, parts[1].Category)
	assert.True(t, parts[2].Price.IsZero())
	assert.Equal(t, entities.PartCategoryMain, parts[2].Category)
}

func TestDecodeList_IndexKeyedObject(t *testing.T) {
	raw := json.RawMessage(`{"10":{"id":"c"},"2":{"id":"b"},"0":{"id":"a"}}`)
	items, err := DecodeSupplies(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestDecodeList_Malformed(t *testing.T) {
	_, err := DecodeParts(json.RawMessage(`"oops"`))
	assert.ErrorIs(t, err, ErrMalformedDocument)

	parts, err := DecodeParts(nil)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestDefinitions_RoundTripKeepsNumbersBare(t *testing.T) {
	defs := map[string]entities.RecipeDefinition{
		"l_hb20k_m2": {
			LaborIDs:  []string{"la1"},
			SupplyIDs: []string{"s1"},
			Parts:     []entities.RecipePart{{ID: "p1", Quantity: decimal.NewFromInt(4)}},
		},
	}
	raw, err := EncodeDefinitions(defs)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":4`)

	back, err := DecodeDefinitions(raw)
	require.NoError(t, err)
	require.Contains(t, back, "l_hb20k_m2")
	assert.Equal(t, []string{"la1"}, back["l_hb20k_m2"].LaborIDs)
	assert.True(t, back["l_hb20k_m2"].Parts[0].Quantity.Equal(decimal.NewFromInt(4)))
}

func TestDecodeDefinitions_MissingListsAreEmpty(t *testing.T) {
	back, err := DecodeDefinitions(json.RawMessage(`{"l1_m1":{"parts":[{"id":"p1","quantity":"abc"}]}}`))
	require.NoError(t, err)
	def := back["l1_m1"]
	assert.NotNil(t, def.LaborIDs)
	assert.NotNil(t, def.SupplyIDs)
	assert.True(t, def.Parts[0].Quantity.IsZero())
}

func TestLaborRate(t *testing.T) {
	rate, err := DecodeLaborRate(json.RawMessage(`85000`))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(85000)))

	rate, err = DecodeLaborRate(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.True(t, rate.IsZero())

	raw, err := EncodeLaborRate(decimal.NewFromInt(90000))
	require.NoError(t, err)
	assert.Equal(t, "90000", string(raw))
}

func TestIssues_DateAndDefaultStatus(t *testing.T) {
	date := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := EncodeIssues([]entities.IssueReport{{ID: "issue_1", Description: "x", Email: "a@b.co", Date: date, Status: entities.IssueStatusOpen}})
	require.NoError(t, err)

	back, err := DecodeIssues(raw)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].Date.Equal(date))

	back, err = DecodeIssues(json.RawMessage(`[{"id":"issue_2","description":"y"}]`))
	require.NoError(t, err)
	assert.Equal(t, entities.IssueStatusOpen, back[0].Status)
}

func TestDecodeSnapshot_ReportsFailedPaths(t *testing.T) {
	snap, failed := DecodeSnapshot(map[Path]json.RawMessage{
		PathVehicleLines:    json.RawMessage(`[{"id":"l1","brandId":1,"name":"HB20"}]`),
		PathParts:           json.RawMessage(`[{"id":"p1","lineId":"l1"},{"id":"p2","lineId":"gone"}]`),
		PathLaborActivities: json.RawMessage(`42`),
	})

	assert.Equal(t, []Path{PathLaborActivities}, failed)
	assert.Empty(t, snap.Labor)
	assert.NotNil(t, snap.Definitions)
	require.NotNil(t, snap.Line("l1"))
	assert.Nil(t, snap.Line("nope"))
	live := snap.LiveParts()
	require.Len(t, live, 1)
	assert.Equal(t, "p1", live[0].ID)
}
