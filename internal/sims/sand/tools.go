package sand

import "fmt"

// Tool names beyond the material kinds.
const (
	ToolEmpty   = "empty"
	ToolExamine = "examine"
)

// Tools lists what a pointer can apply, in picker order: every material, then
// the examine and empty tools.
func (w *World) Tools() []string {
	out := make([]string, 0, kindCount+2)
	for _, k := range Kinds() {
		out = append(out, k.String())
	}
	return append(out, ToolExamine, ToolEmpty)
}

// Apply uses tool at (x, y). Materials and "empty" are queued for the next
// tick; "examine" reads the grid immediately.
func (w *World) Apply(tool string, x, y int) error {
	p := Point{X: x, Y: y}
	if !w.grid.InBounds(x, y) {
		return fmt.Errorf("%s at %s: %w", tool, p, ErrOutOfBounds)
	}
	switch tool {
	case ToolEmpty:
		w.Queue(Request{Op: OpErase, Pos: p})
		return nil
	case ToolExamine:
		w.Examine(p)
		return nil
	}
	k, err := ParseKind(tool)
	if err != nil {
		return err
	}
	w.Queue(Request{Op: OpSpawn, Kind: k, Pos: p})
	return nil
}
