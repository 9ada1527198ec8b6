package ui

import (
	"fmt"

	"cellular/internal/view"
	"cellular/pkg/core"
)

// StatusLines formats the simulation status for display.
func StatusLines(name string, stats core.Stats, state core.RunState, cam *view.Camera) []string {
	return []string{
		fmt.Sprintf("%s  %s  gen %d  pop %d  chunks %d", name, state, stats.Generation, stats.Population, stats.Chunks),
		fmt.Sprintf("origin (%d,%d)  view %dx%d", cam.Origin.X, cam.Origin.Y, cam.Cols, cam.Rows),
	}
}
