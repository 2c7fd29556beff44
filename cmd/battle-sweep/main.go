// Command battle-sweep evaluates conquest-rule parameter combinations
// headlessly and reports which ones produce decisive battles. Results are
// ranked on stdout and persisted as a parquet batch.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"territory/internal/sims/empire"
	"territory/internal/store"
)

type paramSet struct {
	decayScaleMin   float64
	decayScaleMax   float64
	friendlySupport int
	conquestMulMin  float64
	conquestMulMax  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("decay=%.2f..%.2f support=%d mul=%.2f..%.2f",
		p.decayScaleMin, p.decayScaleMax, p.friendlySupport, p.conquestMulMin, p.conquestMulMax)
}

type runResult struct {
	params paramSet

	dominationTick int64
	winnerID       uint16
	survivors      int
	leadShare      float64
	claimed        int
}

func main() {
	cfg := empire.DefaultConfig()
	cfg.Width = 128
	cfg.Height = 128
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 2000, "ticks to simulate per candidate")
	sweepWorkers := flag.Int("sweep-workers", runtime.NumCPU(), "parallel candidate evaluations")
	outDir := flag.String("out-dir", "data/sweeps", "directory for parquet results (empty disables)")
	flag.Parse()

	// Candidates step single threaded; parallelism comes from evaluating
	// many candidates at once.
	cfg.Params.Workers = 1

	decayRanges := [][2]float64{{0.03, 0.09}, {0.05, 0.13}, {0.08, 0.2}}
	supports := []int{1, 2, 3}
	mulRanges := [][2]float64{{0.9, 1.01}, {0.97, 1.03}, {0.98, 1.08}}

	var candidates []paramSet
	for _, d := range decayRanges {
		for _, s := range supports {
			for _, m := range mulRanges {
				candidates = append(candidates, paramSet{
					decayScaleMin:   d[0],
					decayScaleMax:   d[1],
					friendlySupport: s,
					conquestMulMin:  m[0],
					conquestMulMax:  m[1],
				})
			}
		}
	}

	log.Printf("sweeping %d candidates, %d steps each on %dx%d", len(candidates), *steps, cfg.Width, cfg.Height)
	start := time.Now()

	jobs := make(chan paramSet)
	results := make([]runResult, 0, len(candidates))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < *sweepWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				res := evaluate(cfg, p, *steps)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}
	for _, p := range candidates {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(a, b int) bool {
		ra, rb := results[a], results[b]
		if (ra.dominationTick >= 0) != (rb.dominationTick >= 0) {
			return ra.dominationTick >= 0
		}
		if ra.dominationTick != rb.dominationTick {
			return ra.dominationTick < rb.dominationTick
		}
		return ra.leadShare > rb.leadShare
	})

	fmt.Printf("sweep finished in %s\n", time.Since(start).Round(time.Millisecond))
	for i, r := range results {
		if i >= 20 {
			break
		}
		if r.dominationTick >= 0 {
			fmt.Printf("%2d. %s  dominated at tick %d by empire %d\n", i+1, r.params, r.dominationTick, r.winnerID)
			continue
		}
		fmt.Printf("%2d. %s  contested: %d survivors, lead share %.2f, %d cells claimed\n",
			i+1, r.params, r.survivors, r.leadShare, r.claimed)
	}

	if *outDir == "" {
		return
	}
	rows := make([]store.RunRow, len(results))
	for i, r := range results {
		rows[i] = store.RunRow{
			Seed:            cfg.Seed,
			Width:           int32(cfg.Width),
			Height:          int32(cfg.Height),
			Boundary:        cfg.Boundary.String(),
			Empires:         int32(cfg.Empires),
			Steps:           int32(*steps),
			MaxTroops:       int32(cfg.Params.MaxTroops),
			DecayPeriodMin:  int32(cfg.Params.DecayPeriodMin),
			DecayPeriodMax:  int32(cfg.Params.DecayPeriodMax),
			DecayScaleMin:   r.params.decayScaleMin,
			DecayScaleMax:   r.params.decayScaleMax,
			ConquestMulMin:  r.params.conquestMulMin,
			ConquestMulMax:  r.params.conquestMulMax,
			FriendlySupport: int32(r.params.friendlySupport),
			DominationTick:  r.dominationTick,
			WinnerID:        int32(r.winnerID),
			Survivors:       int32(r.survivors),
			LeadShare:       float32(r.leadShare),
			ClaimedCells:    int32(r.claimed),
		}
	}
	path, err := store.WriteRunsParquetAtomic(*outDir, rows)
	if err != nil {
		log.Fatalf("write sweep results: %v", err)
	}
	log.Printf("results written to %s", path)
}

// evaluate runs one candidate to completion and summarizes the outcome.
func evaluate(cfg empire.Config, p paramSet, steps int) runResult {
	cfg.Params.DecayScaleMin = p.decayScaleMin
	cfg.Params.DecayScaleMax = p.decayScaleMax
	cfg.Params.FriendlySupport = p.friendlySupport
	cfg.Params.ConquestMulMin = p.conquestMulMin
	cfg.Params.ConquestMulMax = p.conquestMulMax

	world := empire.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	res := runResult{params: p, dominationTick: -1}
	for i := 0; i < steps; i++ {
		world.Step()
		if i%16 != 0 {
			continue
		}
		if winner, ok := world.Winner(); ok {
			res.dominationTick = int64(world.Tick())
			res.winnerID = winner.ID
			break
		}
	}

	standings := world.Standings()
	var total uint64
	for _, s := range standings {
		if s.Cells > 0 {
			res.survivors++
			res.claimed += s.Cells
		}
		total += s.Troops
	}
	if res.winnerID == 0 && len(standings) > 0 && total > 0 {
		res.leadShare = float64(standings[0].Troops) / float64(total)
	}
	if res.winnerID != 0 {
		res.leadShare = 1
	}
	return res
}
