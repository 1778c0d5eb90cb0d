// Package engine implements a continuous double-auction matching core
// for a single instrument: a price-time priority order book, an
// aggressor matching loop with partial fills, and per-call trade
// consolidation.
package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder reports an order rejected before it touched the book.
var ErrInvalidOrder = errors.New("invalid order")

// Engine matches incoming orders against a resident order book.
//
// Processing is strictly sequential: the engine performs no locking and
// callers submitting from multiple goroutines must serialize access
// (one dispatching goroutine per instrument).
type Engine struct {
	seq  uint64 // logical intake clock, one tick per accepted order
	bids *bookSide
	asks *bookSide
}

func New() *Engine {
	return &Engine{
		bids: newBookSide(Buy),
		asks: newBookSide(Sell),
	}
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// ProcessOrder matches the order against the opposite side of the book
// while a price cross exists and quantity remains, rests any remainder
// on the order's own side, and returns the call's executions
// consolidated by (party, direction, price).
//
// The order's Seq is assigned from the engine clock; any caller value
// is discarded. Orders with non-positive quantity or an unknown side
// are rejected with ErrInvalidOrder and leave the book untouched.
func (e *Engine) ProcessOrder(o Order) ([]Trade, error) {
	if o.Side != Buy && o.Side != Sell {
		return nil, fmt.Errorf("%w: unknown side %d", ErrInvalidOrder, o.Side)
	}
	if o.Qty <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidOrder, o.Qty)
	}

	o.Seq = e.seq
	e.seq++

	own, opp := e.bids, e.asks
	aggressorDir, restingDir := Bought, Sold
	if o.Side == Sell {
		own, opp = e.asks, e.bids
		aggressorDir, restingDir = Sold, Bought
	}

	var legs []Trade
	for o.Qty > 0 {
		maker := opp.peekBest()
		if maker == nil {
			break
		}
		// The book is sorted, so the first non-crossing price ends the
		// loop: no deeper level can cross either.
		if (o.Price-maker.Price)*int64(o.Side) < 0 {
			break
		}
		// Execution is always at the resting order's price, and both
		// sides are reduced by exactly the matched quantity.
		match := min(o.Qty, maker.Qty)
		legs = append(legs,
			Trade{Party: o.Party, Direction: aggressorDir, Qty: match, Price: maker.Price},
			Trade{Party: maker.Party, Direction: restingDir, Qty: match, Price: maker.Price},
		)
		o.Qty -= match
		opp.fillBest(match)
	}

	if o.Qty > 0 {
		rest := o
		own.add(&rest)
	}
	return consolidate(legs), nil
}

// BuyOrders returns a snapshot of the resting buy side in priority
// order: highest price first, ties by earliest arrival.
func (e *Engine) BuyOrders() []Order { return e.bids.orders() }

// SellOrders returns a snapshot of the resting sell side in priority
// order: lowest price first, ties by earliest arrival.
func (e *Engine) SellOrders() []Order { return e.asks.orders() }

// BidLevels aggregates resting buy quantity per price, best bid first.
func (e *Engine) BidLevels() []PriceLevel { return e.bids.priceLevels() }

// AskLevels aggregates resting sell quantity per price, best ask first.
func (e *Engine) AskLevels() []PriceLevel { return e.asks.priceLevels() }

// BestBid returns the highest resting buy price, if any.
func (e *Engine) BestBid() (int64, bool) {
	o := e.bids.peekBest()
	if o == nil {
		return 0, false
	}
	return o.Price, true
}

// BestAsk returns the lowest resting sell price, if any.
func (e *Engine) BestAsk() (int64, bool) {
	o := e.asks.peekBest()
	if o == nil {
		return 0, false
	}
	return o.Price, true
}
