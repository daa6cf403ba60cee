//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Toolbox is implemented by sims that accept pointer tools and may ask the
// host to slow its tick cadence.
type Toolbox interface {
	Tools() []string
	Apply(tool string, x, y int) error
	CadenceMultiplier() int
}

type populationSource interface {
	Tick() uint64
	Counts() map[string]int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	tools   Toolbox
	rgba    core.RGBAPainter
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep
	log     *slog.Logger
	observe StepObserver

	toolNames []string
	tool      int

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for sim, ticking at tps simulation steps per second.
func New(sim core.Sim, scale, tps int, seed int64, log *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if log == nil {
		log = slog.Default()
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		timer:   core.NewFixedStep(tps),
		log:     log,
		scale:   scale,
		seed:    seed,
	}
	g.tools, _ = sim.(Toolbox)
	g.rgba, _ = sim.(core.RGBAPainter)
	if g.tools != nil {
		g.toolNames = g.tools.Tools()
	}
	if src, ok := sim.(ui.LayerSource); ok {
		g.overlay = ui.NewOverlay(src, size.W, size.H, scale)
	}
	return g
}

// OnStep registers fn to run after every tick.
func (g *Game) OnStep(fn StepObserver) { g.observe = fn }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) currentTool() string {
	if len(g.toolNames) == 0 {
		return ""
	}
	return g.toolNames[g.tool]
}

// Update handles per-frame input and advances the simulation on its own
// fixed-step clock.
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
	g.overlay.Update()

	size := g.sim.Size()
	onPanel := g.hud.Update(size.W*g.scale, g.status())
	if !onPanel {
		g.handlePointer()
	}

	multiplier := 1
	if g.tools != nil {
		multiplier = g.tools.CadenceMultiplier()
	}
	g.timer.SetMultiplier(multiplier)

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		start := time.Now()
		g.sim.Step()
		if g.observe != nil {
			g.observe(time.Since(start))
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePointer() {
	if len(g.toolNames) == 0 {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.tool = (g.tool + 1) % len(g.toolNames)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		n := len(g.toolNames)
		if wy > 0 {
			g.tool = (g.tool + n - 1) % n
		} else {
			g.tool = (g.tool + 1) % n
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 {
		return
	}
	tool := g.currentTool()
	if err := g.tools.Apply(tool, mx/g.scale, my/g.scale); err != nil {
		g.log.Debug("tool rejected", "tool", tool, "error", err)
	}
}

func (g *Game) status() ui.Status {
	st := ui.Status{Tool: g.currentTool(), Paused: g.paused, Cadence: 1}
	if g.tools != nil {
		st.Cadence = g.tools.CadenceMultiplier()
	}
	if src, ok := g.sim.(populationSource); ok {
		st.Tick = src.Tick()
		st.Counts = src.Counts()
	}
	return st
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.rgba != nil {
		g.painter.BlitRGBA(screen, g.rgba, g.scale)
	} else {
		g.painter.BlitPalette(screen, g.sim.Cells(), grayscale, g.scale, 1)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
