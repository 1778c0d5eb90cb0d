package feed

import (
	"fmt"
	"math/rand"

	"github.com/quantarc/tickmatch/pkg/engine"
)

// Generator creates random orders for load testing and the CLI's
// simulation mode. A fixed seed gives a reproducible order stream.
type Generator struct {
	parties []string
	rng     *rand.Rand
}

const (
	genBasePrice = 50000
	genSpread    = 2500 // prices drawn from base ± spread
	genMaxQty    = 100
)

// NewGenerator creates a generator over numParties simulated traders.
func NewGenerator(numParties int, seed int64) *Generator {
	parties := make([]string, numParties)
	for i := range parties {
		parties[i] = fmt.Sprintf("trader_%d", i+1)
	}
	return &Generator{
		parties: parties,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Next produces a random order: 50/50 buy/sell, price in the band
// around the base, quantity in [1, genMaxQty].
func (g *Generator) Next() engine.Order {
	side := engine.Buy
	if g.rng.Intn(2) == 1 {
		side = engine.Sell
	}
	return engine.Order{
		Party: g.parties[g.rng.Intn(len(g.parties))],
		Side:  side,
		Price: genBasePrice + g.rng.Int63n(2*genSpread+1) - genSpread,
		Qty:   1 + g.rng.Int63n(genMaxQty),
	}
}
