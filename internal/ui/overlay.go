//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"territory-ca/internal/core"
	"territory-ca/internal/sims/territory"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type censusProvider interface {
	Tick() int
	Years() int
	Census() []territory.FactionCensus
	Palette() []color.RGBA
}

const (
	lineHeight   = 14
	panelPadding = 6
	swatchSize   = 9

	paramPanelWidth = 300
)

var (
	textColor    = color.RGBA{R: 230, G: 230, B: 235, A: 255}
	panelColor   = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	capitalColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Overlay draws the tick counter, faction standings, capitals and the
// parameter list on top of the board.
type Overlay struct {
	sim   core.Sim
	scale int

	showStats    bool
	showCapitals bool
	showParams   bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showStats: true, showCapitals: true}
}

// Update toggles overlay layers: 1 standings, 2 capitals, 3 parameters.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCapitals = !o.showCapitals
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showParams = !o.showParams
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(censusProvider)
	if !ok {
		return
	}
	census := provider.Census()
	if o.showCapitals {
		o.drawCapitals(screen, census)
	}
	if o.showStats {
		o.drawStats(screen, provider, census)
	}
	if o.showParams {
		if params, ok := o.sim.(core.ParameterProvider); ok {
			o.drawParams(screen, params.Parameters())
		}
	}
}

func (o *Overlay) drawCapitals(screen *ebiten.Image, census []territory.FactionCensus) {
	s := float32(o.scale)
	for _, fc := range census {
		if !fc.HasCapital {
			continue
		}
		x := float32(fc.Capital.X)*s + s/4
		y := float32(fc.Capital.Y)*s + s/4
		vector.StrokeRect(screen, x, y, s/2, s/2, 1, capitalColor, false)
	}
}

func (o *Overlay) drawStats(screen *ebiten.Image, provider censusProvider, census []territory.FactionCensus) {
	face := basicfont.Face7x13
	palette := provider.Palette()
	size := o.sim.Size()
	area := size.W * size.H

	lines := 1 + len(census)
	vector.DrawFilledRect(screen, 0, 0, 220, float32(lines*lineHeight+2*panelPadding), panelColor, false)

	y := panelPadding + lineHeight - 3
	text.Draw(screen, fmt.Sprintf("Tick %d  Year %d", provider.Tick(), provider.Years()), face, panelPadding, y, textColor)
	for _, fc := range census {
		y += lineHeight
		if int(fc.Faction) < len(palette) {
			vector.DrawFilledRect(screen, panelPadding, float32(y-swatchSize), swatchSize, swatchSize, palette[fc.Faction], false)
		}
		share := 0.0
		if area > 0 {
			share = 100 * float64(fc.Owned) / float64(area)
		}
		text.Draw(screen, fmt.Sprintf("%d: %5d tiles %5.1f%%", fc.Faction, fc.Owned, share), face, panelPadding+swatchSize+4, y, textColor)
	}
}

func (o *Overlay) drawParams(screen *ebiten.Image, snap core.ParameterSnapshot) {
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	x := bounds.Dx() - paramPanelWidth
	count := 0
	for _, group := range snap.Groups {
		count += 1 + len(group.Params)
	}
	vector.DrawFilledRect(screen, float32(x), 0, paramPanelWidth, float32(count*lineHeight+2*panelPadding), panelColor, false)

	y := panelPadding + lineHeight - 3
	for _, group := range snap.Groups {
		label := group.Name
		if group.Summary != "" {
			label += " (" + group.Summary + ")"
		}
		text.Draw(screen, label, face, x+panelPadding, y, textColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(screen, fmt.Sprintf("  %s: %s", p.Label, p.Value), face, x+panelPadding, y, textColor)
			y += lineHeight
		}
	}
}
