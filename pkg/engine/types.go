package engine

type Side int8

const (
	Buy  Side = 1
	Sell Side = -1
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// Opposite returns the side a new order matches against.
func (s Side) Opposite() Side { return -s }

// Direction tags one leg of an execution. Bought sorts before Sold,
// matching the '+' / '-' signs of the text rendering.
type Direction int8

const (
	Bought Direction = iota
	Sold
)

// Sign is the rendering character for the leg: '+' for Bought, '-' for Sold.
func (d Direction) Sign() byte {
	if d == Bought {
		return '+'
	}
	return '-'
}

// Order is a limit order for the single traded instrument.
//
// Party is an opaque trader identifier and is not unique across orders.
// Seq is the engine's logical intake timestamp used for time priority;
// it is assigned by ProcessOrder and any caller-supplied value is
// discarded.
type Order struct {
	Party string
	Side  Side
	Qty   int64 // remaining unfilled quantity, > 0 while resting
	Price int64 // integer ticks
	Seq   uint64
}

// Trade is one consolidated leg of an execution as reported to a
// participant. A single cross always produces a Bought leg and a Sold
// leg with equal quantity and price.
type Trade struct {
	Party     string
	Direction Direction
	Qty       int64
	Price     int64
}
