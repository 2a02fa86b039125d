package response

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// number renders a decimal as a bare JSON number.
func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
