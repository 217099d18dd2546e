// Package renderer owns global OpenGL state for the viewer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/engine/pipeline"
	"github.com/Faultbox/parashape/internal/logger"
	"github.com/Faultbox/parashape/pkg/math"
)

// Renderer handles frame setup and viewport state.
type Renderer struct {
	width, height int
	clear         math.Vec3
	cull          pipeline.CullMode
	polygon       pipeline.PolygonMode
}

// New loads the GL function pointers and sets the default state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	r := &Renderer{clear: math.Vec3{X: 0.1, Y: 0.1, Z: 0.15}}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.FrontFace(gl.CCW)
	gl.Disable(gl.CULL_FACE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.PointSize(3)

	r.Resize(width, height)
	return r, nil
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport width over height.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// SetCullMode enables culling of back or front faces, or disables it.
func (r *Renderer) SetCullMode(mode pipeline.CullMode) {
	if mode == r.cull {
		return
	}
	r.cull = mode
	switch mode {
	case pipeline.CullBack:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	case pipeline.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Disable(gl.CULL_FACE)
	}
}

// CullMode returns the active cull mode.
func (r *Renderer) CullMode() pipeline.CullMode {
	return r.cull
}

// SetPolygonMode switches triangle rasterization between fill, lines and
// points.
func (r *Renderer) SetPolygonMode(mode pipeline.PolygonMode) {
	if mode == r.polygon {
		return
	}
	r.polygon = mode
	glMode := uint32(gl.FILL)
	switch mode {
	case pipeline.PolygonLine:
		glMode = gl.LINE
	case pipeline.PolygonPoint:
		glMode = gl.POINT
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, glMode)
}

// PolygonMode returns the active polygon mode.
func (r *Renderer) PolygonMode() pipeline.PolygonMode {
	return r.polygon
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.ClearColor(r.clear.X, r.clear.Y, r.clear.Z, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
