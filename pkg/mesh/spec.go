package mesh

import "fmt"

// Kind names a generator.
type Kind string

// Generator kinds accepted by Generate.
const (
	KindQuad       Kind = "quad"
	KindSphere     Kind = "sphere"
	KindTorus      Kind = "torus"
	KindCircleRing Kind = "circle_ring"
	KindSpaceship  Kind = "spaceship"
)

// Kinds lists every generator kind.
var Kinds = []Kind{KindQuad, KindSphere, KindTorus, KindCircleRing, KindSpaceship}

// Spec is a serializable generator call. Only the fields the kind uses are
// read: quad uses Width, Height, SplitU, SplitV; sphere uses Radius, SplitU
// (longitude), SplitV (latitude); torus uses MajorRadius, MinorRadius,
// SplitU, SplitV; circle_ring uses Radius, SpreadLength, SplitU (circle),
// SplitV (spread).
type Spec struct {
	Kind         Kind    `yaml:"kind"`
	Width        float32 `yaml:"width,omitempty"`
	Height       float32 `yaml:"height,omitempty"`
	Radius       float32 `yaml:"radius,omitempty"`
	MajorRadius  float32 `yaml:"major_radius,omitempty"`
	MinorRadius  float32 `yaml:"minor_radius,omitempty"`
	SpreadLength float32 `yaml:"spread_length,omitempty"`
	SplitU       int     `yaml:"split_u,omitempty"`
	SplitV       int     `yaml:"split_v,omitempty"`
}

// Generate runs the generator named by spec.Kind.
func Generate(spec Spec) (*Mesh, error) {
	switch spec.Kind {
	case KindQuad:
		return Quad(spec.Width, spec.Height, spec.SplitU, spec.SplitV)
	case KindSphere:
		return Sphere(spec.Radius, spec.SplitU, spec.SplitV)
	case KindTorus:
		return Torus(spec.MajorRadius, spec.MinorRadius, spec.SplitU, spec.SplitV)
	case KindCircleRing:
		return CircleRing(spec.Radius, spec.SpreadLength, spec.SplitU, spec.SplitV)
	case KindSpaceship:
		return Spaceship(), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidParameter, spec.Kind)
	}
}

func (s Spec) String() string {
	switch s.Kind {
	case KindQuad:
		return fmt.Sprintf("quad(%gx%g, %d, %d)", s.Width, s.Height, s.SplitU, s.SplitV)
	case KindSphere:
		return fmt.Sprintf("sphere(r=%g, %d, %d)", s.Radius, s.SplitU, s.SplitV)
	case KindTorus:
		return fmt.Sprintf("torus(R=%g, r=%g, %d, %d)", s.MajorRadius, s.MinorRadius, s.SplitU, s.SplitV)
	case KindCircleRing:
		return fmt.Sprintf("circle_ring(r=%g, spread=%g, %d, %d)", s.Radius, s.SpreadLength, s.SplitU, s.SplitV)
	default:
		return string(s.Kind)
	}
}
