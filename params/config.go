package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Log struct {
	File  string // when set, logs are teed to this file as well
	Level string // zap level name: debug, info, warn, error
}

type Sim struct {
	// Orders > 0 runs a random-order simulation through a fresh engine
	// before the interactive session starts.
	Orders  int
	Parties int
	Seed    int64
}

type Config struct {
	Log Log
	Sim Sim
}

func Default() Config {
	return Config{
		Log: Log{
			File:  "",
			Level: "info",
		},
		Sim: Sim{
			Orders:  0,
			Parties: 8,
			Seed:    1,
		},
	}
}

// LoadFromEnv loads configuration from .env file (if exists) and environment variables
// Priority: ENV > .env file > defaults
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	// Try to load .env file (optional - won't fail if not exists)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	if f := os.Getenv("TICKMATCH_LOG_FILE"); f != "" {
		cfg.Log.File = f
	}
	if lvl := os.Getenv("TICKMATCH_LOG_LEVEL"); lvl != "" {
		cfg.Log.Level = lvl
	}

	if n := os.Getenv("TICKMATCH_SIM_ORDERS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil {
			cfg.Sim.Orders = v
		}
	}
	if n := os.Getenv("TICKMATCH_SIM_PARTIES"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			cfg.Sim.Parties = v
		}
	}
	if n := os.Getenv("TICKMATCH_SIM_SEED"); n != "" {
		if v, err := strconv.ParseInt(n, 10, 64); err == nil {
			cfg.Sim.Seed = v
		}
	}

	return cfg
}
