package numeric

import (
	"github.com/shopspring/decimal"
)

// Decimal is the Field adapter for github.com/shopspring/decimal values.
//
// Division rounds to decimal.DivisionPrecision digits; exact-mode allocation
// folds the resulting discrepancy back into one slot.
type Decimal struct{}

var _ Field[decimal.Decimal] = Decimal{}

func (Decimal) Name() string                             { return "decimal" }
func (Decimal) Zero() decimal.Decimal                    { return decimal.Zero }
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (Decimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (Decimal) Quo(a, b decimal.Decimal) decimal.Decimal { return a.Div(b) }

// FromFloat converts a finite f using the shortest decimal representation.
func (Decimal) FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// Finite always reports true: decimals have no infinities.
func (Decimal) Finite(decimal.Decimal) bool { return true }
