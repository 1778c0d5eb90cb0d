// Package feed is the glue between the matching core and the outside
// world: it parses the text line protocol into orders, renders trade
// reports, and runs an interactive console session. The core never
// sees raw input; malformed lines are rejected here.
package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantarc/tickmatch/pkg/engine"
)

// Usage is the hint printed after a rejected input line.
const Usage = "Please enter in <trader id> <B/S> <quantity> <price> format"

// ParseOrder tokenizes one protocol line of the form
//
//	<party> <B|S> <quantity> <price>
//
// into an Order. Sequence assignment is the engine's job; the parser
// leaves it zero.
func ParseOrder(line string) (engine.Order, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return engine.Order{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	var side engine.Side
	switch fields[1] {
	case "B":
		side = engine.Buy
	case "S":
		side = engine.Sell
	default:
		return engine.Order{}, fmt.Errorf("unknown side %q", fields[1])
	}

	qty, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return engine.Order{}, fmt.Errorf("bad quantity %q", fields[2])
	}
	price, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return engine.Order{}, fmt.Errorf("bad price %q", fields[3])
	}

	return engine.Order{Party: fields[0], Side: side, Qty: qty, Price: price}, nil
}

// FormatTrades renders consolidated trades as
// "<party><sign><qty>@<price>" space-joined in their given order, e.g.
// "T1+2@60 T4-2@60".
func FormatTrades(trades []engine.Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Party)
		b.WriteByte(t.Direction.Sign())
		b.WriteString(strconv.FormatInt(t.Qty, 10))
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(t.Price, 10))
	}
	return b.String()
}
