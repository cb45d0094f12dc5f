package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"ising-mc/internal/ising"
)

func main() {
	sizes := flag.String("sizes", "8,16,32", "comma-separated lattice side lengths")
	tMin := flag.Float64("tmin", 0.5, "lowest reduced temperature T/Tc")
	tMax := flag.Float64("tmax", 1.5, "highest reduced temperature T/Tc")
	tCount := flag.Int("tcount", 21, "number of temperature grid points")
	steps := flag.Int("steps", 200000, "Metropolis trials per run")
	field := flag.Float64("field", 0, "external field H")
	coupling := flag.Float64("coupling", 1, "nearest-neighbor coupling J")
	seed := flag.Int64("seed", 1337, "base seed; each run derives its own stream")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent runs")
	flag.Parse()

	parsedSizes, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("invalid -sizes: %v", err)
	}

	cfg := ising.SweepConfig{
		Sizes:        parsedSizes,
		ReducedTemps: ising.ReducedTempGrid(*tMin, *tMax, *tCount),
		Steps:        *steps,
		H:            *field,
		J:            *coupling,
		Seed:         *seed,
		Workers:      *workers,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	total := len(cfg.Sizes) * len(cfg.ReducedTemps)
	fmt.Printf("Sweeping %d points (%d sizes x %d temperatures, %d steps, %d workers)\n",
		total, len(cfg.Sizes), len(cfg.ReducedTemps), cfg.Steps, cfg.Workers)

	start := time.Now()
	points, err := ising.RunSweep(ctx, cfg)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n%4s  %6s  %8s  %8s  %10s\n", "N", "T/Tc", "T", "|m|", "chi")
	for _, p := range points {
		fmt.Printf("%4d  %6.3f  %8.4f  %8.4f  %10.6f\n", p.N, p.ReducedT, p.T, p.MeanAbsM, p.Chi)
	}

	fmt.Printf("\nSusceptibility peaks (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, n := range cfg.Sizes {
		peak := peakFor(points, n)
		fmt.Printf("  N=%-4d chi=%.6f at T/Tc=%.3f (T=%.4f)\n", n, peak.Chi, peak.ReducedT, peak.T)
	}
}

// peakFor returns the sweep point with the largest susceptibility for the
// given lattice size, a finite-size estimate of the critical temperature.
func peakFor(points []ising.SweepPoint, n int) ising.SweepPoint {
	var best ising.SweepPoint
	found := false
	for _, p := range points {
		if p.N != n {
			continue
		}
		if !found || p.Chi > best.Chi {
			best = p
			found = true
		}
	}
	return best
}

func parseSizes(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("lattice size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return sizes, nil
}
