package feed

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/quantarc/tickmatch/pkg/engine"
)

// Stats counts what a session saw.
type Stats struct {
	Orders   uint64 // accepted by the engine
	Trades   uint64 // consolidated trades reported
	Rejected uint64 // lines refused by parser or engine
}

// Session drives one engine from a line-oriented input stream and
// writes trade summaries to an output stream. Logs go to the logger,
// never to the protocol output.
type Session struct {
	eng *engine.Engine
	in  io.Reader
	out io.Writer
	log *zap.SugaredLogger
}

// NewSession wires a session. A nil logger disables logging.
func NewSession(eng *engine.Engine, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{eng: eng, in: in, out: out, log: logger.Sugar()}
}

// Run consumes input until EOF. Blank lines are skipped; malformed
// lines get the usage message and leave engine state untouched.
func (s *Session) Run() (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		order, err := ParseOrder(line)
		if err == nil {
			var trades []engine.Trade
			trades, err = s.eng.ProcessOrder(order)
			if err == nil {
				stats.Orders++
				if len(trades) > 0 {
					fmt.Fprintln(s.out, FormatTrades(trades))
					stats.Trades += uint64(len(trades))
				}
				s.log.Debugw("order_processed",
					"party", order.Party,
					"side", order.Side.String(),
					"qty", order.Qty,
					"price", order.Price,
					"trades", len(trades),
				)
				continue
			}
		}

		stats.Rejected++
		s.log.Warnw("line_rejected", "line", line, "err", err)
		fmt.Fprintf(s.out, "Wrong input format: %s\n", line)
		fmt.Fprintln(s.out, Usage)
	}
	return stats, sc.Err()
}
