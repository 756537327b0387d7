package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws runtime counters at the top-right of the screen: frames per
// second, and heap allocation when ShowMemAlloc is set. Text is recomputed only
// every updateInterval frames.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an Overlay with both counters hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the enabled counters. Call after the simulation frame has been
// drawn so the counters sit on top.
func (o *Overlay) Draw() {
	o.frameCount++
	update := (o.frameCount % updateInterval) == 0
	if o.ShowFPS && o.lastFpsText == "" {
		update = true
	}
	if o.ShowMemAlloc && o.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if o.lastFpsText != "" {
			w := rl.MeasureText(o.lastFpsText, fontSize)
			rl.DrawText(o.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.lastMemStats)
			mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		if o.lastMemText != "" {
			w := rl.MeasureText(o.lastMemText, fontSize)
			rl.DrawText(o.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
		}
	}
}
