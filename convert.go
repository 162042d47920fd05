package orbtrade

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Conversion is the result of converting a quantity of one item into
// another, going through the unit of account.
type Conversion struct {
	From      string
	To        string
	Quantity  decimal.Decimal // how many of From were converted
	Result    decimal.Decimal // how many of To they are worth
	Rate      decimal.Decimal // how many of To for one From
	UnitValue Amount          // value of the converted quantity in the unit of account
}

// Convert computes how many of item 'to' a given quantity of item 'from'
// is worth: quantity * price(from) / price(to).
//
// Unlike the profit calculator, conversion is a direct question with a
// single numeric answer, so bad input is an error here rather than a
// silent zero: the quantity must be positive, both items must be priced,
// and the target price must be non-zero.
func (s *Store) Convert(from, to string, quantity decimal.Decimal) (Conversion, error) {
	if !quantity.IsPositive() {
		return Conversion{}, fmt.Errorf("quantity must be positive, got %s", quantity)
	}
	fromPrice, ok := s.GetPrice(from)
	if !ok {
		return Conversion{}, fmt.Errorf("unknown item %q", from)
	}
	toPrice, ok := s.GetPrice(to)
	if !ok {
		return Conversion{}, fmt.Errorf("unknown item %q", to)
	}
	if toPrice.IsZero() {
		return Conversion{}, fmt.Errorf("item %q has no value, nothing to convert into", to)
	}

	unitValue := quantity.Mul(fromPrice.Decimal())
	return Conversion{
		From:      from,
		To:        to,
		Quantity:  quantity,
		Result:    unitValue.Div(toPrice.Decimal()),
		Rate:      fromPrice.Decimal().Div(toPrice.Decimal()),
		UnitValue: A(unitValue),
	}, nil
}
