//go:build ebiten

package app

import (
	"math"
	"time"

	"surface-graph/internal/graph"
	"surface-graph/internal/render"
	"surface-graph/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth       = 220
	resolutionStep = 10
	orbitSpeed     = math.Pi / 2 // radians per second while an arrow key is held
)

// View configures the on-screen viewport.
type View struct {
	Width, Height int
	Scale         int
	PointSize     int
	TPS           int
}

// Game adapts a Graph to the ebiten.Game interface.
type Game struct {
	graph   *graph.Graph
	painter *render.PointPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	camera  render.Camera
	view    View

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided graph.
func New(g *graph.Graph, view View, seed int64) *Game {
	if view.Scale <= 0 {
		view.Scale = 1
	}
	if view.TPS <= 0 {
		view.TPS = 60
	}
	return &Game{
		graph:   g,
		painter: render.NewPointPainter(view.Width, view.Height),
		hud:     ui.NewHUD(g, hudWidth),
		overlay: ui.NewOverlay(),
		camera:  render.DefaultCamera(),
		view:    view,
		seed:    seed,
	}
}

// Reset rewinds the graph with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.graph.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the graph.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if err := g.graph.NextFunction(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.graph.SetIntParameter("resolution", g.graph.Resolution()+resolutionStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.graph.SetIntParameter("resolution", g.graph.Resolution()-resolutionStep)
	}

	dt := 1 / float64(g.view.TPS)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camera.Yaw -= orbitSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camera.Yaw += orbitSpeed * dt
	}

	g.hud.Update()
	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		return g.graph.Step(dt)
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.graph.Points(), g.camera, g.view.PointSize, g.view.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.Width*g.view.Scale, g.view.Height*g.view.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Width*g.view.Scale + g.hud.Width(), g.view.Height * g.view.Scale
}
