package ui

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strconv"

	"mad-sand/internal/core"
)

// Status is what the HUD reports above the parameter controls.
type Status struct {
	Tool    string
	Tick    uint64
	Cadence int
	Paused  bool
	Counts  map[string]int
}

// Lines renders the status block, one entry per panel row. Materials with no
// live cells are left out.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("tool  %s", s.Tool),
		fmt.Sprintf("tick  %d (%s)", s.Tick, state),
	}
	if s.Cadence > 1 {
		lines = append(lines, fmt.Sprintf("slow  x%d", s.Cadence))
	}
	kinds := make([]string, 0, len(s.Counts))
	for k, n := range s.Counts {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("%-6s %d", k, s.Counts[k]))
	}
	return lines
}

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refresh reads the control's current value out of snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Find(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

// next returns the value one step in direction and whether that differs from
// the current value once clamped.
func (s *controlState) next(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		target := int(math.Round(s.control.Clamp(float64(s.intValue + direction*step))))
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.control.Clamp(s.floatValue + float64(direction)*step)
		return target, math.Abs(target-s.floatValue) >= 1e-9
	default:
		return 0, false
	}
}

// set records v as the control's value after a setter accepted it.
func (s *controlState) set(v float64) {
	switch s.control.Type {
	case core.ParamTypeInt:
		s.intValue = int(math.Round(v))
		s.floatValue = float64(s.intValue)
		s.value = strconv.Itoa(s.intValue)
	case core.ParamTypeFloat:
		s.floatValue = v
		s.value = formatFloat(s.control, v)
	}
}

func layoutControls(states []controlState, width, top int) {
	for i := range states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = rowTop
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

const (
	panelPadding   = 12
	lineHeight     = 30
	statusLine     = 15
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
)
