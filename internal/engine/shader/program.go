package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/parashape/internal/engine/shaders"
	"github.com/Faultbox/parashape/pkg/math"
)

// Program is a linked program that can be rebuilt from its source.
type Program struct {
	Name string

	id       uint32
	source   shaders.Source
	uniforms map[string]int32
}

// NewProgram loads and links a program.
func NewProgram(name string, source shaders.Source) (*Program, error) {
	p := &Program{Name: name, source: source}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Reload recompiles the program from its source. On failure the previous
// program stays in use.
func (p *Program) Reload() error {
	vert, frag, err := p.source()
	if err != nil {
		return err
	}
	id, err := CompileProgram(vert, frag)
	if err != nil {
		return fmt.Errorf("program %s: %w", p.Name, err)
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	p.id = id
	p.uniforms = make(map[string]int32)
	return nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the cached location of a uniform.
func (p *Program) Uniform(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		loc = GetUniform(p.id, name)
		p.uniforms[name] = loc
	}
	return loc
}

// SetMat4 sets a mat4 uniform on the bound program.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// SetVec3 sets a vec3 uniform on the bound program.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// SetInt sets an int uniform on the bound program.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// Destroy deletes the program.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
