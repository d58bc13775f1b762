// SPDX-License-Identifier: EPL-2.0

package visualizer

import "github.com/ik5/audwave/utils"

// PointerDown starts a drag at x (surface pixels) and seeks there.
func (v *Visualizer) PointerDown(x float64) {
	v.mtx.Lock()
	v.dragging = true
	f := v.fraction(x)
	v.mtx.Unlock()

	v.seek(f)
}

// PointerMove seeks to x while a drag is active.
func (v *Visualizer) PointerMove(x float64) {
	v.mtx.Lock()
	dragging := v.dragging
	f := v.fraction(x)
	v.mtx.Unlock()

	if dragging {
		v.seek(f)
	}
}

// PointerUp ends the drag.
func (v *Visualizer) PointerUp(float64) {
	v.mtx.Lock()
	v.dragging = false
	v.mtx.Unlock()
}

// Dragging reports whether a drag is active.
func (v *Visualizer) Dragging() bool {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.dragging
}

// fraction must be called with v.mtx held.
func (v *Visualizer) fraction(x float64) float64 {
	b := v.surface.Bounds()
	if b.Dx() <= 0 {
		return 0
	}
	return utils.Clamp((x-float64(b.Min.X))/float64(b.Dx()), 0, 1)
}

// seek runs the callback outside the lock so it may call back into v.
func (v *Visualizer) seek(f float64) {
	if v.onSeek != nil {
		v.onSeek(f)
	}
}
