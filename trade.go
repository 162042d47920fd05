package orbtrade

import "strconv"

// Status qualifies the outcome of a computed trade.
type Status int

const (
	Neutral Status = iota
	Profit
	Loss
)

func (s Status) String() string {
	switch s {
	case Profit:
		return "profit"
	case Loss:
		return "loss"
	default:
		return "neutral"
	}
}

// statusOf derives the tri-state outcome from the sign of the net amount.
func statusOf(net Amount) Status {
	switch {
	case net.IsPositive():
		return Profit
	case net.IsNegative():
		return Loss
	default:
		return Neutral
	}
}

// Leg is one side of a hypothetical exchange: the item being sold or
// bought, and how many of it.
//
// Quantity is kept as the raw text the user supplied; it is only
// interpreted when a total is computed. Unparsable or non-positive
// quantities make the leg total zero, they are never an error.
type Leg struct {
	Item     string
	Quantity string
}

// selected reports whether an item has been picked for this leg.
func (l Leg) selected() bool { return l.Item != "" }

// Result is the outcome of a trade computation.
type Result struct {
	SellTotal Amount
	BuyTotal  Amount
	Net       Amount
	Status    Status
}

// Calculator evaluates the profit or loss of exchanging one priced item
// for another. Prices are read from the store at computation time, so a
// result always reflects the current catalog.
//
// The calculator never returns an error: a missing price or a bad quantity
// degrades the affected leg to a zero total. The only non-numeric outcome
// is the "nothing selected" state, reported by the second return value of
// Compute.
type Calculator struct {
	store *Store
	sell  Leg
	buy   Leg
}

// NewCalculator returns a calculator with no selection and quantity 1 on
// both legs.
func NewCalculator(store *Store) *Calculator {
	c := &Calculator{store: store}
	c.Reset()
	return c
}

// SelectSell records the item to sell. The selection is recorded even when
// the catalog has no price for it; the leg then computes to zero.
func (c *Calculator) SelectSell(name string) { c.sell.Item = name }

// SelectBuy records the item to buy, with the same unknown-price behavior
// as SelectSell.
func (c *Calculator) SelectBuy(name string) { c.buy.Item = name }

// SetSellQuantity stores the raw quantity text for the sell leg.
func (c *Calculator) SetSellQuantity(raw string) { c.sell.Quantity = raw }

// SetBuyQuantity stores the raw quantity text for the buy leg.
func (c *Calculator) SetBuyQuantity(raw string) { c.buy.Quantity = raw }

// Sell returns the current sell leg.
func (c *Calculator) Sell() Leg { return c.sell }

// Buy returns the current buy leg.
func (c *Calculator) Buy() Leg { return c.buy }

// Reset clears both legs back to no selection and quantity 1.
func (c *Calculator) Reset() {
	c.sell = Leg{Quantity: "1"}
	c.buy = Leg{Quantity: "1"}
}

// Compute evaluates both legs against current prices.
//
// When neither leg has an item selected there is nothing to compute and
// Compute returns ok=false, the state an interactive caller maps to a
// "select items" prompt. As soon as one leg has a selection the result is
// numeric, even if every total is zero: a selected item with a zero
// quantity or an unknown price yields a Neutral zero result, not the
// no-selection state.
func (c *Calculator) Compute() (res Result, ok bool) {
	if !c.sell.selected() && !c.buy.selected() {
		return Result{}, false
	}
	res.SellTotal = c.legTotal(c.sell)
	res.BuyTotal = c.legTotal(c.buy)
	res.Net = res.SellTotal.Sub(res.BuyTotal)
	res.Status = statusOf(res.Net)
	return res, true
}

// Refresh re-evaluates the trade after the catalog changed. Selections and
// quantities are untouched; only prices are re-read.
func (c *Calculator) Refresh() (Result, bool) {
	return c.Compute()
}

// legTotal computes the total value of one leg.
func (c *Calculator) legTotal(l Leg) Amount {
	if !l.selected() {
		return Amount{}
	}
	price, ok := c.store.GetPrice(l.Item)
	return legTotal(price, ok, l.Quantity)
}

// legTotal is the pure computation behind a leg total: price times
// quantity, or zero when the price is unknown or the quantity does not
// parse as a positive integer.
func legTotal(price Amount, hasPrice bool, rawQuantity string) Amount {
	if !hasPrice {
		return Amount{}
	}
	qty, err := strconv.ParseInt(rawQuantity, 10, 64)
	if err != nil || qty <= 0 {
		return Amount{}
	}
	return price.Mul(qty)
}
