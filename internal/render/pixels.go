package render

import (
	"image/color"

	"territory/internal/sims/empire"
)

// BrightnessFloor keeps thinly garrisoned territory visible instead of
// fading it into the background.
const BrightnessFloor = 0.15

// Palette maps empire ids to display colors.
type Palette map[uint16]color.RGBA

// NewPalette builds a lookup from the world's empire registry.
func NewPalette(empires []empire.Empire) Palette {
	p := make(Palette, len(empires))
	for _, e := range empires {
		p[e.ID] = e.Color
	}
	return p
}

// FillEmpireRGBA converts cells into RGBA pixels in buf. Owned cells take
// their empire's color scaled by troop strength (floored so weak cells stay
// visible); unclaimed cells take the background tone. Cells owned by an
// unknown empire render as background, which cannot happen through the
// world's own mutation paths.
func FillEmpireRGBA(buf []byte, cells []empire.Cell, palette Palette, maxTroops uint16, background color.RGBA) {
	max := float64(maxTroops)
	if max <= 0 {
		max = 1
	}
	for i, c := range cells {
		base := i * 4
		col, ok := palette[c.Owner]
		if c.Owner == 0 || !ok {
			buf[base+0] = background.R
			buf[base+1] = background.G
			buf[base+2] = background.B
			buf[base+3] = background.A
			continue
		}
		intensity := float64(c.Troops) / max
		if intensity < BrightnessFloor {
			intensity = BrightnessFloor
		}
		if intensity > 1 {
			intensity = 1
		}
		buf[base+0] = uint8(float64(col.R) * intensity)
		buf[base+1] = uint8(float64(col.G) * intensity)
		buf[base+2] = uint8(float64(col.B) * intensity)
		buf[base+3] = col.A
	}
}
