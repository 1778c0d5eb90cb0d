package engine

import (
	"fmt"
	"math/rand"
	"testing"
)

// BenchmarkProcessOrderCrossing measures matching against a pre-filled
// book with realistic depth: aggressors cross at mid and always fill.
func BenchmarkProcessOrderCrossing(b *testing.B) {
	e := New()

	// 100 price levels per side
	for i := 0; i < 100; i++ {
		e.ProcessOrder(Order{
			Party: fmt.Sprintf("bid-%d", i),
			Side:  Buy,
			Price: int64(1000 - i),
			Qty:   100,
		})
		e.ProcessOrder(Order{
			Party: fmt.Sprintf("ask-%d", i),
			Side:  Sell,
			Price: int64(1100 + i),
			Qty:   100,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		side := Buy
		if i%2 == 0 {
			side = Sell
		}
		e.ProcessOrder(Order{
			Party: "bench",
			Side:  side,
			Price: 1050,
			Qty:   10,
		})
	}
}

// BenchmarkProcessOrderResting measures pure insertion: orders that
// never cross and always rest.
func BenchmarkProcessOrderResting(b *testing.B) {
	e := New()
	rng := rand.New(rand.NewSource(12345))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.ProcessOrder(Order{
			Party: "bench",
			Side:  Buy,
			Price: 100 + rng.Int63n(200),
			Qty:   1 + rng.Int63n(99),
		})
	}
}

// BenchmarkRealisticWorkload mixes resting limit orders with crossing
// aggressors the way live flow does: 70% crossing, 30% resting.
func BenchmarkRealisticWorkload(b *testing.B) {
	e := New()
	rng := rand.New(rand.NewSource(54321))

	// 200 levels of initial depth per side
	for i := 0; i < 200; i++ {
		e.ProcessOrder(Order{
			Party: fmt.Sprintf("init-bid-%d", i),
			Side:  Buy,
			Price: int64(10000 - i*10),
			Qty:   1000,
		})
		e.ProcessOrder(Order{
			Party: fmt.Sprintf("init-ask-%d", i),
			Side:  Sell,
			Price: int64(11000 + i*10),
			Qty:   1000,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if rng.Float64() < 0.7 {
			// Crossing aggressor
			side := Buy
			price := int64(11000)
			if rng.Float64() < 0.5 {
				side = Sell
				price = 10000
			}
			e.ProcessOrder(Order{
				Party: "taker",
				Side:  side,
				Price: price,
				Qty:   int64(10 + rng.Intn(90)),
			})
		} else {
			// Resting limit order away from the spread
			side := Buy
			price := int64(9900 - rng.Intn(100))
			if rng.Float64() < 0.5 {
				side = Sell
				price = int64(11100 + rng.Intn(100))
			}
			e.ProcessOrder(Order{
				Party: "maker",
				Side:  side,
				Price: price,
				Qty:   int64(10 + rng.Intn(90)),
			})
		}
	}
}
