package engine

// priceHeap tracks the price levels of one book side with the best
// price on top: highest first for the buy side, lowest first for the
// sell side. Use container/heap to manipulate it (Init, Push, Pop,
// Remove).
type priceHeap struct {
	prices []int64
	side   Side
}

func (h *priceHeap) Len() int { return len(h.prices) }

func (h *priceHeap) Less(i, j int) bool {
	if h.side == Buy {
		return h.prices[i] > h.prices[j]
	}
	return h.prices[i] < h.prices[j]
}

func (h *priceHeap) Swap(i, j int) { h.prices[i], h.prices[j] = h.prices[j], h.prices[i] }

func (h *priceHeap) Push(x interface{}) {
	h.prices = append(h.prices, x.(int64))
}

func (h *priceHeap) Pop() interface{} {
	old := h.prices
	n := len(old)
	x := old[n-1]
	h.prices = old[0 : n-1]
	return x
}

// Peek returns the top price without removing it.
func (h *priceHeap) Peek() int64 {
	if len(h.prices) == 0 {
		return 0
	}
	return h.prices[0]
}
