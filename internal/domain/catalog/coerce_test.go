package catalog

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNum(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"json number", json.Number("30000"), "30000"},
		{"fractional json number", json.Number("0.5"), "0.5"},
		{"float", 1.5, "1.5"},
		{"nan", math.NaN(), "0"},
		{"inf", math.Inf(1), "0"},
		{"numeric string", " 4 ", "4"},
		{"garbage string", "four", "0"},
		{"empty string", "", "0"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"object", map[string]any{"a": 1}, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Num(tt.in).Equal(decimal.RequireFromString(tt.want)), "got %s", Num(tt.in))
		})
	}
}

func TestStr(t *testing.T) {
	assert.Equal(t, "12", Str(json.Number("12")))
	assert.Equal(t, "p1", Str("p1"))
	assert.Equal(t, "", Str(nil))
	assert.Equal(t, "1700000000000", Str(float64(1700000000000)))
}
