package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/henkberendsen/PRINCE/internal/prince"
	"github.com/henkberendsen/PRINCE/internal/square"
)

var (
	dashrounds int
	dashkey0   uint64
	dashkey1   uint64
	dashcap    int
	dashconfig string
	dashtrace  string
	dashsource string
)

func init() {
	flag.IntVar(&dashrounds, "rounds", 4, "round-reduced PRINCE variant to attack (4 or 5)")
	flag.Uint64Var(&dashkey0, "k0", 0, "k0 half of the oracle key (demo mode only)")
	flag.Uint64Var(&dashkey1, "k1", 0, "k1 half of the oracle key (demo mode only)")
	flag.IntVar(&dashcap, "max-base-values", 0, "per-phase base-value budget (0 = unbounded)")
	flag.StringVar(&dashconfig, "config", "", "optional YAML config file (overrides flag defaults)")
	flag.StringVar(&dashtrace, "trace", "", "write a compressed oracle-call trace to this path")
	flag.StringVar(&dashsource, "source", "counter", "base-value source: counter, siphash, or chacha20")
}

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "princesquare: ", log.LstdFlags)

	cfg, err := loadConfig(dashconfig)
	if err != nil {
		logger.Fatalf("loading config: %v", err)
	}
	cfg.applyFlagOverrides()

	logCPUFeatures(logger)

	runID := uuid.New()
	logger.Printf("run %s: starting attack against %d-round PRINCE", runID, cfg.Rounds)

	src, err := cfg.buildSource()
	if err != nil {
		logger.Fatalf("run %s: building base-value source: %v", runID, err)
	}

	secret := prince.Key{K0: cfg.K0, K1: cfg.K1}
	oracle := square.Oracle(func(pt uint64) uint64 {
		ct, err := prince.Encrypt(secret, pt, cfg.Rounds)
		if err != nil {
			logger.Fatalf("run %s: oracle encryption failed: %v", runID, err)
		}
		return ct
	})

	var trace *square.Trace
	if cfg.TracePath != "" {
		trace = &square.Trace{}
		oracle = trace.Wrap(oracle)
	}

	opts := square.Options{Source: src, MaxBaseValues: cfg.MaxBaseValues}

	start := time.Now()
	recovered, diag, err := square.RecoverKey(oracle, cfg.Rounds, opts)
	elapsed := time.Since(start)

	if trace != nil {
		f, err := os.Create(cfg.TracePath)
		if err != nil {
			logger.Fatalf("run %s: creating trace file: %v", runID, err)
		}
		if err := trace.WriteCompressed(f); err != nil {
			f.Close()
			logger.Fatalf("run %s: writing trace: %v", runID, err)
		}
		f.Close()
		logger.Printf("run %s: trace fingerprint %x written to %s", runID, trace.Fingerprint(), cfg.TracePath)
	}

	if err != nil {
		logger.Fatalf("run %s: attack did not converge after %v: %v", runID, elapsed, err)
	}

	logger.Printf("run %s: recovered key in %v (sbox ops %d, base values %v)",
		runID, elapsed, diag.SBoxOperations, diag.BaseValuesTried)
	fmt.Printf("k0=%#016x k1=%#016x\n", recovered.K0, recovered.K1)

	if recovered != secret {
		logger.Fatalf("run %s: recovered key does not match the oracle key", runID)
	}
}
