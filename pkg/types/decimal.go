package types

import "github.com/shopspring/decimal"

// Money values travel as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
