package main

import (
	"fmt"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/animation"
	"github.com/Faultbox/parashape/internal/config"
	"github.com/Faultbox/parashape/internal/engine/camera"
	"github.com/Faultbox/parashape/internal/engine/gpu"
	"github.com/Faultbox/parashape/internal/engine/input"
	"github.com/Faultbox/parashape/internal/engine/pipeline"
	"github.com/Faultbox/parashape/internal/engine/renderer"
	"github.com/Faultbox/parashape/internal/engine/scene"
	"github.com/Faultbox/parashape/internal/engine/shader"
	"github.com/Faultbox/parashape/internal/engine/shaders"
	"github.com/Faultbox/parashape/internal/engine/window"
	"github.com/Faultbox/parashape/internal/logger"
	"github.com/Faultbox/parashape/pkg/math"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// shaderDir is read on reload when the viewer runs from a source checkout.
const shaderDir = "internal/engine/shaders"

const tensionStep = 0.1

var palette = []math.Vec3{
	{X: 0.9, Y: 0.45, Z: 0.2},
	{X: 0.3, Y: 0.6, Z: 0.9},
	{X: 0.4, Y: 0.8, Z: 0.4},
	{X: 0.75, Y: 0.75, Z: 0.75},
	{X: 0.8, Y: 0.5, Z: 0.9},
}

var controlPointColor = math.Vec3{X: 1, Y: 0.85, Z: 0.1}

type viewer struct {
	cfg    *config.Config
	log    *zap.Logger
	win    *window.Window
	rend   *renderer.Renderer
	in     *input.Input
	cam    *camera.OrbitCamera
	prog   *shader.Program
	scene  *scene.Scene
	driver *animation.Driver
	state  animation.State

	mover         *scene.Node
	controlPoints []*scene.Node
	geometries    []*gpu.Geometry
}

func newViewer(cfg *config.Config) (*viewer, error) {
	v := &viewer{cfg: cfg, log: logger.Named("viewer"), in: input.New()}

	driver := animation.NewDriver(cfg.Animation.Path())
	if err := driver.Path.Validate(); err != nil {
		return nil, fmt.Errorf("animation path: %w", err)
	}
	if cfg.Animation.Speed > 0 {
		driver.Speed = cfg.Animation.Speed
	}
	driver.Enabled = cfg.Animation.Enabled
	v.driver = driver

	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, err
	}
	v.win = win

	if err := v.setup(); err != nil {
		v.destroy()
		return nil, err
	}
	return v, nil
}

// setup runs with a current GL context.
func (v *viewer) setup() error {
	rend, err := renderer.New(v.win.DrawableSize())
	if err != nil {
		return err
	}
	v.rend = rend

	source := shaders.Embedded("shape")
	if fi, err := os.Stat(shaderDir); err == nil && fi.IsDir() {
		source = shaders.Dir(shaderDir, "shape")
		v.log.Info("shaders reload from disk", zap.String("dir", shaderDir))
	}
	prog, err := shader.NewProgram("shape", source)
	if err != nil {
		return err
	}
	v.prog = prog

	cull, err := pipeline.ParseCullMode(v.cfg.Window.CullMode)
	if err != nil {
		return err
	}
	polygon, err := pipeline.ParsePolygonMode(v.cfg.Window.PolygonMode)
	if err != nil {
		return err
	}
	v.rend.SetCullMode(cull)

	v.scene = scene.New(prog)
	v.scene.Polygon = polygon
	v.scene.ApplyPolygonMode = v.rend.SetPolygonMode

	bounds, err := v.buildShapes()
	if err != nil {
		return err
	}
	if err := v.buildControlPoints(&bounds); err != nil {
		return err
	}

	v.cam = camera.NewOrbitCamera()
	if v.cfg.Window.FOV > 0 {
		v.cam.FovY = v.cfg.Window.FOV * math32.Pi / 180
	}
	v.cam.FitToBounds(bounds)

	v.updateTitle()
	return nil
}

// buildShapes generates and uploads every configured shape and returns the
// bounds of the placed scene.
func (v *viewer) buildShapes() (mesh.Bounds, error) {
	var corners []math.Vec3
	for i, sc := range v.cfg.Scene.Shapes {
		m, err := mesh.Generate(sc.Mesh)
		if err != nil {
			return mesh.Bounds{}, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
		geo, err := gpu.Upload(m)
		if err != nil {
			return mesh.Bounds{}, fmt.Errorf("shape %q: %w", sc.Name, err)
		}
		v.geometries = append(v.geometries, geo)

		node := scene.NewNode(sc.Name, geo)
		node.Color = palette[i%len(palette)]
		node.Wireframe = sc.Wireframe
		node.SetTranslation(sc.Position)
		v.scene.Add(node)

		corners = append(corners, m.Bounds.Min.Add(sc.Position), m.Bounds.Max.Add(sc.Position))
		v.log.Debug("shape ready",
			zap.String("name", sc.Name),
			zap.Stringer("spec", sc.Mesh),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
		)
	}

	if v.cfg.Scene.Mover != "" {
		v.mover = v.scene.Find(v.cfg.Scene.Mover)
		if v.mover == nil {
			v.log.Warn("mover shape not found", zap.String("mover", v.cfg.Scene.Mover))
		}
	}
	return mesh.ComputeBounds(corners), nil
}

// buildControlPoints adds one marker sphere per control point. The markers
// share a single geometry.
func (v *viewer) buildControlPoints(bounds *mesh.Bounds) error {
	points := v.driver.Path.Points
	if len(points) == 0 {
		return nil
	}
	radius := v.cfg.Scene.ControlPointRadius
	if radius <= 0 {
		radius = 0.1
	}
	m, err := mesh.Sphere(radius, 10, 10)
	if err != nil {
		return fmt.Errorf("control point marker: %w", err)
	}
	geo, err := gpu.Upload(m)
	if err != nil {
		return fmt.Errorf("control point marker: %w", err)
	}
	v.geometries = append(v.geometries, geo)

	for i, p := range points {
		node := scene.NewNode(fmt.Sprintf("control-point-%d", i), geo)
		node.Color = controlPointColor
		node.Visible = v.cfg.Animation.ShowPoints
		node.SetTranslation(p)
		v.scene.Add(node)
		v.controlPoints = append(v.controlPoints, node)
	}

	all := append([]math.Vec3{bounds.Min, bounds.Max}, points...)
	*bounds = mesh.ComputeBounds(all)
	return nil
}

func (v *viewer) run() {
	last := time.Now()
	for {
		if v.in.Update() {
			return
		}
		for _, ev := range v.in.Events() {
			if v.handleEvent(ev) {
				return
			}
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		var pos math.Vec3
		v.state, pos = v.driver.Step(v.state, dt)
		if v.mover != nil {
			v.mover.SetTranslation(pos)
		}

		v.rend.Begin()
		v.scene.Render(v.cam.ViewProjection(v.rend.Aspect()))
		v.win.SwapBuffers()
	}
}

// handleEvent applies one input event and reports whether to quit.
func (v *viewer) handleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventWindowResize:
		v.rend.Resize(v.win.DrawableSize())
	case input.EventMouseDrag:
		v.cam.HandleDrag(float32(ev.DX), float32(ev.DY))
	case input.EventMouseWheel:
		v.cam.HandleZoom(ev.Wheel)
	case input.EventKeyDown:
		return v.handleKey(ev.Key)
	}
	return false
}

func (v *viewer) handleKey(key sdl.Keycode) bool {
	switch key {
	case sdl.K_ESCAPE:
		return true
	case sdl.K_l:
		mode := v.driver.ToggleMode()
		v.log.Info("interpolation", zap.Stringer("mode", mode))
	case sdl.K_SPACE:
		v.driver.Enabled = !v.driver.Enabled
		v.log.Info("animation", zap.Bool("enabled", v.driver.Enabled))
	case sdl.K_c:
		show := len(v.controlPoints) > 0 && !v.controlPoints[0].Visible
		for _, n := range v.controlPoints {
			n.Visible = show
		}
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		v.log.Info("tension", zap.Float32("value", v.driver.AdjustTension(tensionStep)))
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		v.log.Info("tension", zap.Float32("value", v.driver.AdjustTension(-tensionStep)))
	case sdl.K_b:
		mode := v.rend.CullMode().Next()
		v.rend.SetCullMode(mode)
		v.log.Info("culling", zap.Stringer("mode", mode))
	case sdl.K_p:
		v.scene.Polygon = v.scene.Polygon.Next()
		v.log.Info("polygon mode", zap.Stringer("mode", v.scene.Polygon))
	case sdl.K_r:
		if err := v.prog.Reload(); err != nil {
			v.log.Error("shader reload failed", zap.Error(err))
		} else {
			v.log.Info("shaders reloaded")
		}
	default:
		if key >= sdl.K_1 && key <= sdl.K_6 {
			if mode, ok := scene.ShadingModeFromIndex(int(key - sdl.K_1)); ok {
				v.scene.Mode = mode
				v.log.Info("shading", zap.Stringer("mode", mode))
			}
		}
	}
	v.updateTitle()
	return false
}

func (v *viewer) updateTitle() {
	p := v.driver.Path
	state := "running"
	if !v.driver.Enabled {
		state = "paused"
	}
	v.win.SetTitle(fmt.Sprintf("%s - %s, tension %.1f, %s, cull %s, %s, %s",
		v.cfg.Window.Title, p.Mode, p.Tension, v.scene.Mode, v.rend.CullMode(), v.scene.Polygon, state))
}

func (v *viewer) destroy() {
	for _, g := range v.geometries {
		g.Destroy()
	}
	v.geometries = nil
	if v.prog != nil {
		v.prog.Destroy()
		v.prog = nil
	}
	if v.win != nil {
		v.win.Close()
		v.win = nil
	}
}
