package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"cellular/pkg/coord"
)

// ErrUnknownPattern is returned when a pattern name is not in the catalog.
var ErrUnknownPattern = errors.New("life: unknown pattern")

var catalog = map[string]string{
	"block":       "#N Block\nx = 2, y = 2\n2o$2o!",
	"blinker":     "#N Blinker\nx = 3, y = 1\n3o!",
	"glider":      "#N Glider\nx = 3, y = 3\nbob$2bo$3o!",
	"r-pentomino": "#N R-pentomino\nx = 3, y = 3\nb2o$2ob$bo!",
	"acorn":       "#N Acorn\nx = 7, y = 3\nbo5b$3bo3b$2o2b3o!",
	"gosper-gun": `#N Gosper glider gun
x = 36, y = 9, rule = B3/S23
24bo11b$22bobo11b$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o14b$2o8bo
3bob2o4bobo11b$10bo5bo7bo11b$11bo3bo20b$12b2o22b!`,
}

// PatternNames lists the built-in patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern decodes a built-in pattern by name.
func LookupPattern(name string) (Pattern, error) {
	src, ok := catalog[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	p, err := DecodeRLE(src)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	return p, nil
}

// Stamp sets every cell of p alive with its top-left corner at at.
func Stamp(w *World, p Pattern, at coord.Vec) {
	for _, c := range p.Cells {
		w.SetCell(at.Add(c), true)
	}
}

// StampCentered places p so that its centre lands on at.
func StampCentered(w *World, p Pattern, at coord.Vec) {
	Stamp(w, p, at.Sub(coord.New(p.W, p.H).Div(coord.Splat(2))))
}
