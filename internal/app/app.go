//go:build ebiten

package app

import (
	"image/color"
	"time"

	"territory/internal/render"
	"territory/internal/sims/empire"
	"territory/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the empire world to the ebiten.Game interface.
type Game struct {
	world   *empire.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	background color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	selected int
}

// New constructs a Game for the provided world.
func New(world *empire.World, scale int, hudWidth int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:      world,
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(world, scale),
		hud:        ui.NewHUD(world, hudWidth),
		background: color.RGBA{A: 255},
		scale:      scale,
		hudWidth:   hudWidth,
		seed:       seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		// Randomize without forgetting the run seed; R still returns to it.
		g.world.Reset(time.Now().UnixNano())
		g.tickOnce = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.world.AddEmpire(g.world.RandomColor())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if n := len(g.world.Empires()); n > 0 {
			g.selected = (g.selected + 1) % n
		}
	}

	g.handlePainting()

	g.overlay.Update()
	g.hud.Update(g.world.Size().W * g.scale)

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePainting writes cells under the cursor while a mouse button is
// held: left paints the selected empire at full strength, right erases.
func (g *Game) handlePainting() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	scale := g.scale
	if scale <= 0 {
		scale = 1
	}
	x, y := mx/scale, my/scale
	size := g.world.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	if right {
		// Erase wins when both buttons are held.
		_ = g.world.Set(x, y, empire.Cell{})
		return
	}
	empires := g.world.Empires()
	if len(empires) == 0 {
		return
	}
	if g.selected >= len(empires) {
		g.selected = 0
	}
	_ = g.world.Set(x, y, empire.Cell{
		Owner:  empires[g.selected].ID,
		Troops: g.world.MaxTroops(),
	})
}

// Draw renders the current generation, the overlay layers and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.world.Size()
	if pw, ph := g.painter.Size(); pw != size.W || ph != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	palette := render.NewPalette(g.world.Empires())
	g.painter.Blit(screen, g.world.Snapshot(), palette, g.world.MaxTroops(), g.background, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size: battlefield plus HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
