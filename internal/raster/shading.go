package raster

import (
	"fmt"
	"strings"

	"github.com/Faultbox/parashape/pkg/math"
)

// Shading selects how pixels are colored. The modes mirror the viewer's
// debug programs.
type Shading int

const (
	ShadeFallback Shading = iota
	ShadeDiffuse
	ShadeNormal
	ShadeTangent
	ShadeBinormal
	ShadeTexCoords
)

var shadingNames = [...]string{"fallback", "diffuse", "normal", "tangent", "binormal", "texcoords"}

func (s Shading) String() string {
	if s < 0 || int(s) >= len(shadingNames) {
		return fmt.Sprintf("Shading(%d)", int(s))
	}
	return shadingNames[s]
}

// ParseShading parses a mode name.
func ParseShading(name string) (Shading, error) {
	for i, n := range shadingNames {
		if strings.EqualFold(n, name) {
			return Shading(i), nil
		}
	}
	return 0, fmt.Errorf("raster: unknown shading %q (want one of %s)", name, strings.Join(shadingNames[:], ", "))
}

// Light is a directional light in view space.
type Light struct {
	Dir     math.Vec3 // toward the light, unit length
	Ambient float32
	Color   math.Vec3 // surface albedo, 0..1
}

// DefaultLight lights from the upper left, slightly behind the viewer.
func DefaultLight() Light {
	return Light{
		Dir:     math.Vec3{X: -0.4, Y: 0.6, Z: 0.7}.Normalize(),
		Ambient: 0.2,
		Color:   math.Vec3{X: 0.78, Y: 0.8, Z: 0.85},
	}
}

// fragment is one interpolated surface sample.
type fragment struct {
	normal   math.Vec3 // view space
	tangent  math.Vec3 // model space
	binormal math.Vec3 // model space
	modelN   math.Vec3 // model space
	uv       math.Vec2
}

func (s Shading) color(f fragment, l *Light) (r, g, b uint8) {
	switch s {
	case ShadeDiffuse:
		// double-sided: open shapes are visible from behind
		d := f.normal.Normalize().Dot(l.Dir)
		if d < 0 {
			d = -d
		}
		k := l.Ambient + (1-l.Ambient)*d
		return unit8(l.Color.X * k), unit8(l.Color.Y * k), unit8(l.Color.Z * k)
	case ShadeNormal:
		return vectorColor(f.modelN)
	case ShadeTangent:
		return vectorColor(f.tangent)
	case ShadeBinormal:
		return vectorColor(f.binormal)
	case ShadeTexCoords:
		return unit8(f.uv.X), unit8(f.uv.Y), 0
	default:
		return 255, 0, 255
	}
}

// vectorColor maps a direction from [-1,1] to [0,255] per channel.
func vectorColor(v math.Vec3) (uint8, uint8, uint8) {
	v = v.Normalize()
	return unit8(0.5*v.X + 0.5), unit8(0.5*v.Y + 0.5), unit8(0.5*v.Z + 0.5)
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
