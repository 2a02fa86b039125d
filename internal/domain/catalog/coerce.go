package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Num coerces a loosely typed document value to a decimal. Anything absent,
// non-numeric, NaN or infinite becomes zero, so stored documents written by
// older clients never leak garbage into totals.
func Num(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case json.Number:
		return parseNumber(string(n))
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		return parseNumber(n)
	case bool:
		if n {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// Int coerces v and truncates toward zero.
func Int(v any) int64 {
	return Num(v).IntPart()
}

// Str renders ids that may have been stored as numbers.
func Str(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return ""
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Encode writes a decimal as a bare JSON number.
func Encode(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func parseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
