package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Faultbox/parashape/pkg/mesh"
)

// defaultSpecs are the shapes generated when no shape flag is given.
var defaultSpecs = map[mesh.Kind]mesh.Spec{
	mesh.KindQuad:       {Kind: mesh.KindQuad, Width: 1, Height: 1},
	mesh.KindSphere:     {Kind: mesh.KindSphere, Radius: 1, SplitU: 30, SplitV: 20},
	mesh.KindTorus:      {Kind: mesh.KindTorus, MajorRadius: 1, MinorRadius: 0.25, SplitU: 40, SplitV: 20},
	mesh.KindCircleRing: {Kind: mesh.KindCircleRing, Radius: 0.5, SpreadLength: 0.05, SplitU: 40, SplitV: 4},
	mesh.KindSpaceship:  {Kind: mesh.KindSpaceship},
}

// shapeFlags binds the shape flags of one command.
type shapeFlags struct {
	fs   *flag.FlagSet
	spec mesh.Spec
}

func newShapeFlags(name string, stderr io.Writer) *shapeFlags {
	sf := &shapeFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	sf.fs.SetOutput(stderr)

	s := &sf.spec
	float32Var(sf.fs, &s.Width, "width", "quad width")
	float32Var(sf.fs, &s.Height, "height", "quad height")
	float32Var(sf.fs, &s.Radius, "radius", "sphere or ring radius")
	float32Var(sf.fs, &s.MajorRadius, "major", "torus major radius")
	float32Var(sf.fs, &s.MinorRadius, "minor", "torus minor radius")
	float32Var(sf.fs, &s.SpreadLength, "spread", "ring spread length")
	sf.fs.IntVar(&s.SplitU, "su", 0, "first split count")
	sf.fs.IntVar(&s.SplitV, "sv", 0, "second split count")
	return sf
}

// parse reads "<kind> [flags]". Flags that are not given keep the kind's
// default.
func (sf *shapeFlags) parse(args []string) (mesh.Spec, error) {
	if len(args) < 1 || args[0] == "" || args[0][0] == '-' {
		return mesh.Spec{}, fmt.Errorf("%s: missing shape kind: %w", sf.fs.Name(), errUsage)
	}
	kind := mesh.Kind(args[0])
	def, ok := defaultSpecs[kind]
	if !ok {
		return mesh.Spec{}, fmt.Errorf("%w: unknown kind %q", mesh.ErrInvalidParameter, kind)
	}

	if err := sf.fs.Parse(args[1:]); err != nil {
		return mesh.Spec{}, err
	}

	parsed := sf.spec
	spec := def
	sf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			spec.Width = parsed.Width
		case "height":
			spec.Height = parsed.Height
		case "radius":
			spec.Radius = parsed.Radius
		case "major":
			spec.MajorRadius = parsed.MajorRadius
		case "minor":
			spec.MinorRadius = parsed.MinorRadius
		case "spread":
			spec.SpreadLength = parsed.SpreadLength
		case "su":
			spec.SplitU = parsed.SplitU
		case "sv":
			spec.SplitV = parsed.SplitV
		}
	})
	return spec, nil
}

// float32Value adapts a float32 to flag.Value.
type float32Value struct{ p *float32 }

func (v float32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return fmt.Sprint(*v.p)
}

func (v float32Value) Set(s string) error {
	var f float32
	if _, err := fmt.Sscan(s, &f); err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*v.p = f
	return nil
}

func float32Var(fs *flag.FlagSet, p *float32, name, usage string) {
	fs.Var(float32Value{p}, name, usage)
}
