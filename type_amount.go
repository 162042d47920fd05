package orbtrade

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// unitCode is the code under which the exchange's unit of account is
// registered in the go-money currency table. The code itself never shows up
// in output, only the grapheme (the configured unit label) does.
const unitCode = "ORB"

// DefaultUnit is the display label used when no unit is configured.
const DefaultUnit = "Exalted Orb"

func init() { RegisterUnit(DefaultUnit) }

// RegisterUnit sets the display label for the unit of account.
// All amounts formatted after the call use the new label.
func RegisterUnit(label string) {
	money.AddCurrency(unitCode, label, "1 $", ".", ",", 2)
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount is a value expressed in the exchange's unit of account: a unit
// price, a leg total, or a net profit.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// currency returns the registered unit of account.
func (a Amount) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, unitCode).Currency()
}

// String formats the amount with the configured unit label, e.g.
// "180.50 Exalted Orb".
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but prefixes positive amounts with '+'.
func (a Amount) SignedString() string {
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsPositive() bool         { return a.value.IsPositive() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Mul scales the amount by an item count.
func (a Amount) Mul(n int64) Amount {
	return Amount{value: a.value.Mul(decimal.NewFromInt(n))}
}
