//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"territory/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type troopMaskProvider interface {
	TroopMask(dst []float32)
}

type frontierMaskProvider interface {
	FrontierMask(dst []float32)
}

// Overlay draws optional debugging visuals on top of the battlefield:
// a troop-strength heatmap and a frontier highlight.
type Overlay struct {
	sim   core.Sim
	scale int

	showTroops   bool
	showFrontier bool

	mask    []float32
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTroops = !o.showTroops
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFrontier = !o.showFrontier
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		o.mask = make([]float32, total)
	}

	if o.showTroops {
		if provider, ok := o.sim.(troopMaskProvider); ok {
			provider.TroopMask(o.mask)
			o.drawMask(screen, color.RGBA{R: 240, G: 240, B: 255})
		}
	}
	if o.showFrontier {
		if provider, ok := o.sim.(frontierMaskProvider); ok {
			provider.FrontierMask(o.mask)
			o.drawMask(screen, color.RGBA{R: 255, G: 80, B: 80})
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, tint color.RGBA) {
	const (
		maxAlpha  = 140.0
		glowBase  = 0.35
		glowRange = 0.65
	)

	for i, v := range o.mask {
		base := i * 4
		intensity := float64(v)
		if intensity <= 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		if intensity > 1 {
			intensity = 1
		}
		glow := glowBase + glowRange*math.Sqrt(intensity)
		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = uint8(math.Round(maxAlpha * intensity))
	}
	o.maskImg.ReplacePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
