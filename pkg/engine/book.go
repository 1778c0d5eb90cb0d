package engine

import (
	"container/heap"
	"sort"
)

// PriceLevel aggregates the resting quantity at one price.
type PriceLevel struct {
	Price int64
	Qty   int64 // total qty at this price level
}

// bookSide holds the resting orders of one side in strict price-time
// priority: a heap tracks the best price (O(1) peek) and each price
// level is a FIFO queue, so ties at a price always fill in arrival
// order.
type bookSide struct {
	side   Side
	best   *priceHeap
	levels map[int64][]*Order // price -> FIFO slice
}

func newBookSide(side Side) *bookSide {
	h := &priceHeap{side: side}
	heap.Init(h)
	return &bookSide{
		side:   side,
		best:   h,
		levels: make(map[int64][]*Order),
	}
}

func (b *bookSide) add(o *Order) {
	if len(b.levels[o.Price]) == 0 {
		// New price level - add to heap
		heap.Push(b.best, o.Price)
	}
	b.levels[o.Price] = append(b.levels[o.Price], o)
}

// peekBest returns the highest-priority resting order without removing
// it, or nil when the side is empty.
func (b *bookSide) peekBest() *Order {
	for b.best.Len() > 0 {
		p := b.best.Peek()
		level := b.levels[p]
		if len(level) == 0 {
			// Stale price level left behind by a full fill
			delete(b.levels, p)
			heap.Pop(b.best)
			continue
		}
		return level[0]
	}
	return nil
}

// fillBest reduces the best order's remaining quantity by qty and
// unlinks it once fully consumed. The caller guarantees the side is
// non-empty and qty <= the best order's quantity, so an order never
// rests at zero.
func (b *bookSide) fillBest(qty int64) {
	o := b.peekBest()
	o.Qty -= qty
	if o.Qty > 0 {
		return
	}
	p := o.Price
	b.levels[p] = b.levels[p][1:]
	if len(b.levels[p]) == 0 {
		delete(b.levels, p)
		b.removeFromHeap(p)
	}
}

// removeFromHeap drops a price level from the heap (O(N) worst case,
// but the removed level is almost always on top).
func (b *bookSide) removeFromHeap(price int64) {
	for i := 0; i < b.best.Len(); i++ {
		if b.best.prices[i] == price {
			heap.Remove(b.best, i)
			return
		}
	}
}

// sortedPrices returns the side's occupied prices best-first.
func (b *bookSide) sortedPrices() []int64 {
	prices := make([]int64, 0, len(b.levels))
	for p, level := range b.levels {
		if len(level) == 0 {
			continue
		}
		prices = append(prices, p)
	}
	sort.Slice(prices, func(i, j int) bool {
		if b.side == Buy {
			return prices[i] > prices[j]
		}
		return prices[i] < prices[j]
	})
	return prices
}

// orders returns copies of every resting order in price-time priority
// order. Callers get a snapshot; mutating it cannot touch book state.
func (b *bookSide) orders() []Order {
	var out []Order
	for _, p := range b.sortedPrices() {
		for _, o := range b.levels[p] {
			out = append(out, *o)
		}
	}
	return out
}

// priceLevels aggregates resting quantity per price, best level first.
func (b *bookSide) priceLevels() []PriceLevel {
	var out []PriceLevel
	for _, p := range b.sortedPrices() {
		var total int64
		for _, o := range b.levels[p] {
			total += o.Qty
		}
		out = append(out, PriceLevel{Price: p, Qty: total})
	}
	return out
}
