package empire

import "sort"

// Standing aggregates one empire's holdings for UI and tooling.
type Standing struct {
	Empire Empire
	Cells  int
	Troops uint64
}

// Standings returns per-empire cell counts and troop totals, strongest
// first. Pure read over the current generation.
func (w *World) Standings() []Standing {
	byID := make(map[uint16]*Standing, len(w.empires))
	out := make([]Standing, len(w.empires))
	for i, e := range w.empires {
		out[i] = Standing{Empire: e}
		byID[e.ID] = &out[i]
	}
	for _, c := range w.cur {
		if c.Owner == 0 {
			continue
		}
		if s, ok := byID[c.Owner]; ok {
			s.Cells++
			s.Troops += uint64(c.Troops)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Troops > out[b].Troops })
	return out
}

// Winner reports the empire holding every claimed cell, if there is one and
// it holds at least one cell.
func (w *World) Winner() (Empire, bool) {
	var owner uint16
	for _, c := range w.cur {
		if c.Owner == 0 {
			continue
		}
		if owner == 0 {
			owner = c.Owner
			continue
		}
		if c.Owner != owner {
			return Empire{}, false
		}
	}
	if owner == 0 {
		return Empire{}, false
	}
	return w.EmpireByID(owner)
}

// TroopMask fills dst with each cell's troop strength normalized to [0, 1].
// dst must have width*height entries.
func (w *World) TroopMask(dst []float32) {
	if len(dst) != len(w.cur) {
		return
	}
	max := float32(w.cfg.Params.MaxTroops)
	if max == 0 {
		max = 1
	}
	for i, c := range w.cur {
		dst[i] = float32(c.Troops) / max
	}
}

// FrontierMask fills dst with 1 for owned cells that border a different
// empire, 0 elsewhere. Shares the engine's neighbor lookup so the frontier
// agrees with the boundary policy.
func (w *World) FrontierMask(dst []float32) {
	if len(dst) != len(w.cur) {
		return
	}
	var nIdx [8]int
	for y := 0; y < w.bounds.H; y++ {
		for x := 0; x < w.bounds.W; x++ {
			i := w.bounds.Index(x, y)
			dst[i] = 0
			owner := w.cur[i].Owner
			if owner == 0 {
				continue
			}
			w.neighborIndexes(x, y, &nIdx)
			for _, ni := range nIdx {
				if ni >= 0 && w.cur[ni].Owner != 0 && w.cur[ni].Owner != owner {
					dst[i] = 1
					break
				}
			}
		}
	}
}
