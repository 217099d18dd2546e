package interp

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/parashape/pkg/math"
)

// ErrTooFewPoints is returned when a path cannot be evaluated in its mode.
var ErrTooFewPoints = errors.New("interp: too few control points")

// Mode selects how a Path blends between control points.
type Mode int

const (
	CatmullRomMode Mode = iota
	LinearMode
)

func (m Mode) String() string {
	switch m {
	case LinearMode:
		return "linear"
	case CatmullRomMode:
		return "catmull-rom"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MinPoints returns the smallest path length the mode can evaluate.
func (m Mode) MinPoints() int {
	if m == LinearMode {
		return 2
	}
	return 4
}

// Path is a closed loop of control points. One unit of elapsed time moves
// from one control point to the next; the last point blends back into the
// first.
type Path struct {
	Points  []math.Vec3
	Tension float32
	Mode    Mode
}

// NewPath returns a Catmull-Rom path with the default tension.
func NewPath(points []math.Vec3) Path {
	return Path{Points: points, Tension: DefaultTension, Mode: CatmullRomMode}
}

// Validate reports whether the path has enough points for its mode.
func (p Path) Validate() error {
	if need := p.Mode.MinPoints(); len(p.Points) < need {
		return fmt.Errorf("%w: %s needs %d, have %d", ErrTooFewPoints, p.Mode, need, len(p.Points))
	}
	return nil
}

// Len returns the number of control points, which is also the period of At.
func (p Path) Len() int {
	return len(p.Points)
}

// Segment returns the control point indices (i-1, i, i+1, i+2) wrapped into
// the path. i itself may be any integer.
func (p Path) Segment(i int) [4]int {
	n := len(p.Points)
	return [4]int{wrap(i-1, n), wrap(i, n), wrap(i+1, n), wrap(i+2, n)}
}

// At returns the position at the given elapsed time. The integer part picks
// the segment (modulo the path length, negative values included) and the
// fractional part is the blend factor within it.
//
// At panics on a path that fails Validate.
func (p Path) At(elapsed float32) math.Vec3 {
	n := len(p.Points)
	if n < p.Mode.MinPoints() {
		panic(p.Validate())
	}

	floor := math32.Floor(elapsed)
	x := elapsed - floor
	i := wrap(int(floor), n)

	seg := p.Segment(i)
	if p.Mode == LinearMode {
		return Lerp(p.Points[seg[1]], p.Points[seg[2]], x)
	}
	return CatmullRom(p.Points[seg[0]], p.Points[seg[1]], p.Points[seg[2]], p.Points[seg[3]], p.Tension, x)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
