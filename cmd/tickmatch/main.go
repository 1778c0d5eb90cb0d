package main

import (
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/quantarc/tickmatch/params"
	"github.com/quantarc/tickmatch/pkg/engine"
	"github.com/quantarc/tickmatch/pkg/feed"
	"github.com/quantarc/tickmatch/pkg/util"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("")

	var logger *zap.Logger
	var err error
	if cfg.Log.File != "" {
		logger, err = util.NewLoggerWithFile(cfg.Log.File, cfg.Log.Level)
	} else {
		logger, err = util.NewLogger(cfg.Log.Level)
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if cfg.Sim.Orders > 0 {
		runSim(cfg.Sim, sugar)
	}

	sess := feed.NewSession(engine.New(), os.Stdin, os.Stdout, logger)
	stats, err := sess.Run()
	if err != nil {
		sugar.Fatalw("session_failed", "err", err)
	}
	sugar.Infow("session_complete",
		"orders", stats.Orders,
		"trades", stats.Trades,
		"rejected", stats.Rejected,
	)
}

// runSim pushes a reproducible random order stream through a throwaway
// engine and logs the resulting book shape. Useful as a smoke test of
// a build without typing orders by hand.
func runSim(cfg params.Sim, sugar *zap.SugaredLogger) {
	eng := engine.New()
	gen := feed.NewGenerator(cfg.Parties, cfg.Seed)

	start := time.Now()
	var trades int
	for i := 0; i < cfg.Orders; i++ {
		out, err := eng.ProcessOrder(gen.Next())
		if err != nil {
			continue
		}
		trades += len(out)
	}

	bestBid, _ := eng.BestBid()
	bestAsk, _ := eng.BestAsk()
	sugar.Infow("simulation_complete",
		"orders", cfg.Orders,
		"trades", trades,
		"elapsed", time.Since(start),
		"best_bid", bestBid,
		"best_ask", bestAsk,
		"bid_levels", len(eng.BidLevels()),
		"ask_levels", len(eng.AskLevels()),
	)
}
