// Package animation advances a mover along a control path frame by frame.
package animation

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/interp"
	"github.com/Faultbox/parashape/pkg/math"
)

// State is the per-mover animation state. It is owned by the caller and
// threaded through Step; the driver keeps no history.
type State struct {
	// Elapsed is the path time in control-point units.
	Elapsed float32
}

// Driver moves along Path at Speed control points per second.
type Driver struct {
	Path    interp.Path
	Speed   float32
	Enabled bool
}

// NewDriver returns an enabled driver moving one control point per second.
func NewDriver(path interp.Path) *Driver {
	return &Driver{Path: path, Speed: 1, Enabled: true}
}

// Step advances state by dt and returns the new state with the position at
// it. When the driver is disabled the elapsed time is frozen and the
// position is the path position at that time.
func (d *Driver) Step(state State, dt time.Duration) (State, math.Vec3) {
	if d.Enabled {
		state.Elapsed += d.Speed * float32(dt.Seconds())
		// keep Elapsed small so float32 keeps sub-segment precision
		if n := float32(d.Path.Len()); n > 0 && (state.Elapsed >= n || state.Elapsed < 0) {
			state.Elapsed -= n * math32.Floor(state.Elapsed/n)
		}
	}
	return state, d.Path.At(state.Elapsed)
}

// Position returns the path position for state without advancing it.
func (d *Driver) Position(state State) math.Vec3 {
	return d.Path.At(state.Elapsed)
}

// ToggleMode switches between linear and Catmull-Rom blending and returns
// the active mode. A switch the path has too few points for is refused.
func (d *Driver) ToggleMode() interp.Mode {
	prev := d.Path.Mode
	if prev == interp.LinearMode {
		d.Path.Mode = interp.CatmullRomMode
	} else {
		d.Path.Mode = interp.LinearMode
	}
	if d.Path.Validate() != nil {
		d.Path.Mode = prev
	}
	return d.Path.Mode
}

// AdjustTension adds delta to the path tension, clamped to [0,1].
func (d *Driver) AdjustTension(delta float32) float32 {
	d.Path.Tension = min(max(d.Path.Tension+delta, 0), 1)
	return d.Path.Tension
}
