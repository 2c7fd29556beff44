package empire

import (
	"runtime"
	"sync"

	"territory/internal/core"
	pcore "territory/pkg/core"
)

// contender is one empire present in a cell's neighborhood: how many
// neighbors it holds and one uniformly sampled representative of them.
type contender struct {
	owner uint16
	count int
	rep   Cell
}

// Step advances the world by one generation.
//
// Every cell transition reads the current buffer only and writes its own
// slot in the next buffer, so the row range can be partitioned across
// workers with no locking. The buffers swap after all workers join; readers
// between Step calls always observe a complete generation.
func (w *World) Step() {
	if w.bounds.Len() == 0 {
		return
	}

	workers := w.cfg.Params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > w.bounds.H {
		workers = w.bounds.H
	}
	w.ensureWorkerRNGs(workers)

	rowsPerWorker := (w.bounds.H + workers - 1) / workers
	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		y0 := k * rowsPerWorker
		y1 := y0 + rowsPerWorker
		if y1 > w.bounds.H {
			y1 = w.bounds.H
		}
		if y0 >= y1 {
			break
		}
		wg.Add(1)
		go func(y0, y1 int, rng *pcore.RNG) {
			defer wg.Done()
			w.stepRows(y0, y1, rng)
		}(y0, y1, w.workerRNGs[k])
	}
	wg.Wait()

	w.cur, w.next = w.next, w.cur
	w.tick++
}

func (w *World) ensureWorkerRNGs(workers int) {
	for len(w.workerRNGs) < workers {
		stream := uint64(len(w.workerRNGs)) + 1
		w.workerRNGs = append(w.workerRNGs, pcore.NewRNGStream(w.seed, stream))
	}
}

func (w *World) stepRows(y0, y1 int, rng *pcore.RNG) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w.bounds.W; x++ {
			i := w.bounds.Index(x, y)
			w.next[i] = w.transition(x, y, i, rng)
		}
	}
}

// transition applies the conquest rule to the cell at (x, y) with linear
// index i, reading neighbors from the current generation.
func (w *World) transition(x, y, i int, rng *pcore.RNG) Cell {
	p := &w.cfg.Params
	cell := w.cur[i]

	var nIdx [8]int
	w.neighborIndexes(x, y, &nIdx)

	friendlies := 0
	if cell.Owner != 0 {
		for _, ni := range nIdx {
			if ni >= 0 && w.cur[ni].Owner == cell.Owner {
				friendlies++
			}
		}
	}

	// Attrition fires on a pseudo-periodic subset of (tick, index) pairs.
	// Friendly cover scales the retained share, so isolated territory
	// collapses while a packed interior barely feels it.
	period := uint64(rng.IntRange(p.DecayPeriodMin, p.DecayPeriodMax))
	if period > 0 && (w.tick+uint64(i))%period == 0 {
		scale := rng.FloatRange(p.DecayScaleMin, p.DecayScaleMax) * float64(friendlies)
		cell.Troops = w.clampTroops(float64(cell.Troops) * scale)
	}

	// Group neighbors by empire. Each empire gets a neighbor count and one
	// representative sampled uniformly from its neighbors (reservoir of
	// size one), keeping the per-cell cost at most 8 comparisons.
	var contenders [8]contender
	n := 0
	for _, ni := range nIdx {
		if ni < 0 {
			continue
		}
		nb := w.cur[ni]
		if nb.Owner == 0 {
			continue
		}
		found := false
		for c := 0; c < n; c++ {
			if contenders[c].owner == nb.Owner {
				contenders[c].count++
				if rng.IntN(contenders[c].count) == 0 {
					contenders[c].rep = nb
				}
				found = true
				break
			}
		}
		if !found {
			contenders[n] = contender{owner: nb.Owner, count: 1, rep: nb}
			n++
		}
	}

	// Most-represented empire contends first; equal counts contend in
	// random order (shuffle before a stable sort). At most one rule fires
	// per cell per generation.
	rng.Shuffle(n, func(a, b int) {
		contenders[a], contenders[b] = contenders[b], contenders[a]
	})
	sortByCountDesc(contenders[:n])

	for c := 0; c < n; c++ {
		cont := &contenders[c]
		if cont.owner == cell.Owner && cont.rep.Troops > cell.Troops {
			// Reinforce in place from the stronger garrison.
			cell.Troops = w.scaledTroops(cont.rep.Troops, rng)
			break
		}
		if friendlies < p.FriendlySupport || cont.rep.Troops > cell.Troops {
			cell.Owner = cont.owner
			cell.Troops = w.scaledTroops(cont.rep.Troops, rng)
			break
		}
	}

	if cell.Owner == 0 {
		cell.Troops = 0
	}
	if cell.Troops == 0 {
		cell.Owner = 0
	}
	return cell
}

// scaledTroops jitters a captured or reinforcing garrison by the configured
// multiplier range and clamps it to the troop ceiling.
func (w *World) scaledTroops(troops uint16, rng *pcore.RNG) uint16 {
	mul := rng.FloatRange(w.cfg.Params.ConquestMulMin, w.cfg.Params.ConquestMulMax)
	return w.clampTroops(float64(troops) * mul)
}

func (w *World) clampTroops(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	max := float64(w.cfg.Params.MaxTroops)
	if v >= max {
		return w.cfg.Params.MaxTroops
	}
	return uint16(v)
}

// sortByCountDesc is a stable insertion sort over at most 8 contenders,
// avoiding sort.SliceStable allocations on the hot path.
func sortByCountDesc(cs []contender) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0 && cs[j].count > cs[j-1].count; j-- {
			cs[j], cs[j-1] = cs[j-1], cs[j]
		}
	}
}

func init() {
	core.Register("empire", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
