package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolidateGroupsAndSorts(t *testing.T) {
	tests := []struct {
		name string
		legs []Trade
		want []Trade
	}{
		{
			name: "empty input",
			legs: nil,
			want: nil,
		},
		{
			name: "single pair passes through sorted",
			legs: []Trade{
				{Party: "T2", Direction: Bought, Qty: 3, Price: 100},
				{Party: "T1", Direction: Sold, Qty: 3, Price: 100},
			},
			want: []Trade{
				{Party: "T1", Direction: Sold, Qty: 3, Price: 100},
				{Party: "T2", Direction: Bought, Qty: 3, Price: 100},
			},
		},
		{
			name: "same key sums quantities",
			legs: []Trade{
				{Party: "T1", Direction: Sold, Qty: 3, Price: 100},
				{Party: "T1", Direction: Sold, Qty: 2, Price: 100},
				{Party: "T2", Direction: Bought, Qty: 5, Price: 100},
			},
			want: []Trade{
				{Party: "T1", Direction: Sold, Qty: 5, Price: 100},
				{Party: "T2", Direction: Bought, Qty: 5, Price: 100},
			},
		},
		{
			name: "differing price stays split",
			legs: []Trade{
				{Party: "T3", Direction: Bought, Qty: 5, Price: 100},
				{Party: "T3", Direction: Bought, Qty: 3, Price: 90},
			},
			want: []Trade{
				{Party: "T3", Direction: Bought, Qty: 3, Price: 90},
				{Party: "T3", Direction: Bought, Qty: 5, Price: 100},
			},
		},
		{
			name: "bought sorts before sold for one party",
			legs: []Trade{
				{Party: "T1", Direction: Sold, Qty: 1, Price: 50},
				{Party: "T1", Direction: Bought, Qty: 1, Price: 50},
			},
			want: []Trade{
				{Party: "T1", Direction: Bought, Qty: 1, Price: 50},
				{Party: "T1", Direction: Sold, Qty: 1, Price: 50},
			},
		},
		{
			name: "structurally similar keys never collide",
			legs: []Trade{
				{Party: "T1", Direction: Bought, Qty: 1, Price: 100},
				{Party: "T1", Direction: Sold, Qty: 2, Price: 100},
				{Party: "T1", Direction: Bought, Qty: 4, Price: 200},
				{Party: "T1", Direction: Sold, Qty: 8, Price: 200},
			},
			want: []Trade{
				{Party: "T1", Direction: Bought, Qty: 1, Price: 100},
				{Party: "T1", Direction: Bought, Qty: 4, Price: 200},
				{Party: "T1", Direction: Sold, Qty: 2, Price: 100},
				{Party: "T1", Direction: Sold, Qty: 8, Price: 200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, consolidate(tt.legs))
		})
	}
}
