package engine

import "sort"

// legKey identifies a consolidation group. Keying a map by the struct
// gives component-wise equality; no hand-rolled hash combining.
type legKey struct {
	party string
	dir   Direction
	price int64
}

// consolidate merges the raw legs of one matching call: legs sharing
// (party, direction, price) are summed into a single Trade, and the
// result is sorted ascending by party, then direction, then price so
// output is deterministic.
func consolidate(legs []Trade) []Trade {
	if len(legs) == 0 {
		return nil
	}

	sums := make(map[legKey]int64, len(legs))
	for _, l := range legs {
		sums[legKey{l.Party, l.Direction, l.Price}] += l.Qty
	}

	out := make([]Trade, 0, len(sums))
	for k, qty := range sums {
		out = append(out, Trade{Party: k.party, Direction: k.dir, Qty: qty, Price: k.price})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Party != out[j].Party {
			return out[i].Party < out[j].Party
		}
		if out[i].Direction != out[j].Direction {
			return out[i].Direction < out[j].Direction
		}
		return out[i].Price < out[j].Price
	})
	return out
}
