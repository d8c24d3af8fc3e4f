package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/gfx"
)

type programGL struct {
	id uint32
}

func (p *programGL) Use() { gl.UseProgram(p.id) }

func (p *programGL) Attrib(name string) (gfx.Attrib, error) {
	loc := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return nil, fmt.Errorf("attribute %q: %w", name, gfx.ErrBindingNotFound)
	}
	return &attribGL{name: name, loc: uint32(loc)}, nil
}

func (p *programGL) Uniform(name string) (gfx.Uniform, error) {
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return nil, fmt.Errorf("uniform %q: %w", name, gfx.ErrBindingNotFound)
	}
	return &uniformGL{name: name, loc: loc}, nil
}

func (p *programGL) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

type attribGL struct {
	name string
	loc  uint32
}

func (a *attribGL) Name() string     { return a.name }
func (a *attribGL) Location() uint32 { return a.loc }
func (a *attribGL) Enable()          { gl.EnableVertexAttribArray(a.loc) }
func (a *attribGL) Disable()         { gl.DisableVertexAttribArray(a.loc) }

type uniformGL struct {
	name string
	loc  int32
}

func (u *uniformGL) Name() string         { return u.name }
func (u *uniformGL) SetMat4(m mgl32.Mat4) { gl.UniformMatrix4fv(u.loc, 1, false, &m[0]) }
func (u *uniformGL) SetMat3(m mgl32.Mat3) { gl.UniformMatrix3fv(u.loc, 1, false, &m[0]) }
func (u *uniformGL) SetVec3(v mgl32.Vec3) { gl.Uniform3f(u.loc, v[0], v[1], v[2]) }
func (u *uniformGL) SetFloat(f float32)   { gl.Uniform1f(u.loc, f) }
func (u *uniformGL) SetInt(i int32)       { gl.Uniform1i(u.loc, i) }

// --- Shader utilities ---

// cstr null-terminates GLSL text for gl.Strs.
func cstr(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(cstr(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader compile error: %s", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}

func shaderKind(shaderType uint32) string {
	if shaderType == gl.FRAGMENT_SHADER {
		return "fragment"
	}
	return "vertex"
}
