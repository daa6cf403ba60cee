//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the status block and parameter controls to the right of the
// simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image
	title string

	status      Status
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

// NewHUD constructs a HUD for sim with a panel width in screen pixels.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: strings.ToUpper(sim.Name())}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls())
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width is the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes status and control values and handles clicks on the +/-
// buttons. It reports whether the click landed on the panel.
func (h *HUD) Update(offsetX int, status Status) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = offsetX
	h.status = status
	layoutControls(h.controls, h.width, h.controlsTop())
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for i := range h.controls {
			h.controls[i].refresh(snap)
		}
	}
	return h.handleInput()
}

func (h *HUD) controlsTop() int {
	return panelPadding + headerBaseline + (len(h.status.Lines())+1)*statusLine
}

func (h *HUD) handleInput() bool {
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pointInRect(px, my, state.minusRect):
			h.adjust(state, -1)
		case pointInRect(px, my, state.plusRect):
			h.adjust(state, 1)
		}
	}
	return true
}

func (h *HUD) adjust(state *controlState, direction int) {
	v, ok := state.next(direction)
	if !ok {
		return
	}
	accepted := false
	switch state.control.Type {
	case core.ParamTypeInt:
		accepted = h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, int(v))
	case core.ParamTypeFloat:
		accepted = h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, v)
	}
	if accepted {
		state.set(v)
	}
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, textBright)
	for _, line := range h.status.Lines() {
		y += statusLine
		text.Draw(h.panel, line, face, panelPadding, y, textDim)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, textBright)

		valueColor := textBright
		if !state.hasValue {
			valueColor = textDim
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDown := state.next(-1)
		_, canUp := state.next(1)
		h.drawButton(state.minusRect, "-", canDown)
		h.drawButton(state.plusRect, "+", canUp)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
