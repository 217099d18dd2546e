// Package config handles viewer and tool configuration loading and management.
package config

import (
	"github.com/Faultbox/parashape/pkg/interp"
	"github.com/Faultbox/parashape/pkg/math"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Scene     SceneConfig     `yaml:"scene"`
	Animation AnimationConfig `yaml:"animation"`
	Preview   PreviewConfig   `yaml:"preview"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Title       string  `yaml:"title"`
	VSync       bool    `yaml:"vsync"`
	FOV         float32 `yaml:"fov"`          // vertical, degrees
	CullMode    string  `yaml:"cull_mode"`    // disabled, back or front
	PolygonMode string  `yaml:"polygon_mode"` // fill, line or point
}

// ShapeConfig places one generated mesh in the scene.
type ShapeConfig struct {
	Name      string    `yaml:"name"`
	Mesh      mesh.Spec `yaml:",inline"`
	Position  math.Vec3 `yaml:"position"`
	Wireframe bool      `yaml:"wireframe,omitempty"`
}

// SceneConfig lists the shapes to build.
type SceneConfig struct {
	Shapes []ShapeConfig `yaml:"shapes"`
	// Mover names the shape that follows the animation path.
	Mover string `yaml:"mover"`
	// ControlPointRadius is the radius of the spheres marking control points.
	ControlPointRadius float32 `yaml:"control_point_radius"`
}

// AnimationConfig holds the control path and its playback settings.
type AnimationConfig struct {
	ControlPoints []math.Vec3 `yaml:"control_points"`
	Tension       float32     `yaml:"tension"`
	Linear        bool        `yaml:"linear"`
	Speed         float32     `yaml:"speed"` // control points per second
	Enabled       bool        `yaml:"enabled"`
	ShowPoints    bool        `yaml:"show_points"`
}

// Path returns the configured control path. Tension is clamped to [0,1].
func (a AnimationConfig) Path() interp.Path {
	p := interp.NewPath(a.ControlPoints)
	p.Tension = min(max(a.Tension, 0), 1)
	if a.Linear {
		p.Mode = interp.LinearMode
	}
	return p
}

// PreviewConfig holds CPU preview settings.
type PreviewConfig struct {
	Size        int `yaml:"size"`        // output edge length in pixels
	Supersample int `yaml:"supersample"` // render scale before downsampling
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Shape returns the shape with the given name.
func (s SceneConfig) Shape(name string) (ShapeConfig, bool) {
	for _, sh := range s.Shapes {
		if sh.Name == name {
			return sh, true
		}
	}
	return ShapeConfig{}, false
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:       1280,
			Height:      720,
			Title:       "parashape",
			VSync:       true,
			FOV:         60,
			CullMode:    "disabled",
			PolygonMode: "fill",
		},
		Scene: SceneConfig{
			Shapes: []ShapeConfig{
				{Name: "ring", Mesh: mesh.Spec{Kind: mesh.KindCircleRing, Radius: 0.5, SpreadLength: 0.05, SplitU: 40, SplitV: 4}},
				{Name: "sphere", Mesh: mesh.Spec{Kind: mesh.KindSphere, Radius: 0.5, SplitU: 30, SplitV: 20}, Position: math.Vec3{X: 4}},
				{Name: "torus", Mesh: mesh.Spec{Kind: mesh.KindTorus, MajorRadius: 1, MinorRadius: 0.25, SplitU: 40, SplitV: 20}, Position: math.Vec3{X: -4}},
				{Name: "floor", Mesh: mesh.Spec{Kind: mesh.KindQuad, Width: 10, Height: 10, SplitU: 4, SplitV: 4}, Position: math.Vec3{X: -5, Y: -4, Z: -5}},
				{Name: "ship", Mesh: mesh.Spec{Kind: mesh.KindSpaceship}, Position: math.Vec3{Y: 3}},
			},
			Mover:              "ring",
			ControlPointRadius: 0.1,
		},
		Animation: AnimationConfig{
			ControlPoints: []math.Vec3{
				{X: 0, Y: 0, Z: 0},
				{X: 1, Y: 1.8, Z: 1},
				{X: 2, Y: 1.2, Z: 2},
				{X: 3, Y: 3, Z: 3},
				{X: 3, Y: 0, Z: 3},
				{X: -2, Y: -1, Z: 3},
				{X: -3, Y: -3, Z: -3},
				{X: -2, Y: -1.2, Z: -2},
				{X: -1, Y: -1.8, Z: -1},
			},
			Tension:    interp.DefaultTension,
			Speed:      1,
			Enabled:    true,
			ShowPoints: true,
		},
		Preview: PreviewConfig{
			Size:        512,
			Supersample: 2,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
