//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"Space  pause / resume",
	"N      single step",
	"F      next function",
	"Up/Dn  resolution +/- 10",
	"Lt/Rt  orbit camera",
	"R      reset   S  reseed",
	"H      toggle help",
	"Q/Esc  quit",
}

// Overlay draws the key help on top of the graph view.
type Overlay struct {
	visible bool
	backing *ebiten.Image
}

// NewOverlay constructs an overlay that starts hidden.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles visibility with H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the help box in the top-left corner when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	w := 7*26 + 2*panelPadding
	h := len(helpLines)*lineHeight + 2*panelPadding
	if o.backing == nil {
		o.backing = ebiten.NewImage(w, h)
		o.backing.Fill(color.RGBA{A: 180})
	}
	screen.DrawImage(o.backing, nil)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range helpLines {
		text.Draw(screen, line, face, panelPadding, y, textColor)
		y += lineHeight
	}
}
