//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"surface-graph/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	lineHeight     = 15
	headerBaseline = 12
)

var (
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedColor = color.RGBA{R: 255, G: 210, B: 90, A: 255}
)

// HUD renders the parameter panel to the right of the graph view.
type HUD struct {
	sim    core.Sim
	panel  *ControlPanel
	width  int
	image  *ebiten.Image
	height int
	title  string
}

// NewHUD constructs a HUD for the provided sim and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, panel: NewControlPanel(sim), width: width, title: buildTitle(sim)}
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles control selection (Tab, Shift+Tab) and adjustment (-, +).
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			h.panel.Select(-1)
		} else {
			h.panel.Select(1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		h.panel.Adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		h.panel.Adjust(1)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.image == nil || h.height != height {
		h.image = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.image.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.image, h.title, face, panelPadding, y, titleColor)
	y += lineHeight + 4

	for _, line := range h.panel.Lines() {
		clr := textColor
		if !strings.HasPrefix(line, " ") {
			clr = dimColor
		}
		text.Draw(h.image, line, face, panelPadding, y, clr)
		y += lineHeight
	}

	y += lineHeight / 2
	text.Draw(h.image, "Controls (Tab, -, +)", face, panelPadding, y, dimColor)
	y += lineHeight
	for i, ctrl := range h.panel.Controls() {
		clr := textColor
		marker := "  "
		if i == h.panel.Selected() {
			clr = selectedColor
			marker = "> "
		}
		text.Draw(h.image, marker+ctrl.Label, face, panelPadding, y, clr)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.image, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	return fmt.Sprintf("%s controls", sim.Name())
}
