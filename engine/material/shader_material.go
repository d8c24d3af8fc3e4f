package material

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grove3d/engine/camera"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/light"
)

// ShaderMaterial renders with a user-supplied GLSL program. The program must
// declare the attribute position and the uniforms view, transform and scale;
// normal and tex_coord are required only when requested with WithNormals
// and WithUVs.
type ShaderMaterial struct {
	name    string
	dev     gfx.Device
	program gfx.Program

	position, normal, texCoord gfx.Attrib
	view, transform, scale     gfx.Uniform
	// passes, if set, limits drawing to these pass indices.
	passes map[int]bool
}

var _ Material = (*ShaderMaterial)(nil)

type ShaderOption func(*shaderConfig)

type shaderConfig struct {
	normals bool
	uvs     bool
	passes  []int
}

// WithNormals binds the mesh normals to the normal attribute.
func WithNormals() ShaderOption { return func(c *shaderConfig) { c.normals = true } }

// WithUVs binds the mesh texture coordinates to the tex_coord attribute.
func WithUVs() ShaderOption { return func(c *shaderConfig) { c.uvs = true } }

// WithPasses restricts the material to the listed passes; other passes are
// skipped without touching GPU state.
func WithPasses(passes ...int) ShaderOption {
	return func(c *shaderConfig) { c.passes = append(c.passes, passes...) }
}

func NewShaderMaterial(dev gfx.Device, name, vertexSrc, fragmentSrc string, opts ...ShaderOption) (*ShaderMaterial, error) {
	var cfg shaderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := compile(dev, name, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	m := &ShaderMaterial{
		name:      name,
		dev:       dev,
		position:  b.attrib("position"),
		view:      b.uniform("view"),
		transform: b.uniform("transform"),
		scale:     b.uniform("scale"),
	}
	if cfg.normals {
		m.normal = b.attrib("normal")
	}
	if cfg.uvs {
		m.texCoord = b.attrib("tex_coord")
	}
	if len(cfg.passes) > 0 {
		m.passes = make(map[int]bool, len(cfg.passes))
		for _, p := range cfg.passes {
			m.passes[p] = true
		}
	}
	if m.program, err = b.done(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ShaderMaterial) Name() string { return m.name }

func (m *ShaderMaterial) Render(pass int, transform geom.Isometry, scale mgl32.Vec3, cam camera.Camera, _ light.Light, _ *gfx.ObjectData, mesh gfx.Mesh) {
	if m.passes != nil && !m.passes[pass] {
		return
	}
	m.program.Use()
	m.position.Enable()
	if m.normal != nil {
		m.normal.Enable()
	}
	if m.texCoord != nil {
		m.texCoord.Enable()
	}

	cam.Upload(pass, m.view)
	m.transform.SetMat4(transform.Mat4())
	m.scale.SetMat3(geom.ScaleMat3(scale))

	mesh.BindCoords(m.position)
	if m.normal != nil {
		mesh.BindNormals(m.normal)
	}
	if m.texCoord != nil {
		mesh.BindUVs(m.texCoord)
	}
	mesh.BindFaces()

	m.dev.DrawTriangles(mesh.NumPoints())

	mesh.Unbind()
	m.position.Disable()
	if m.normal != nil {
		m.normal.Disable()
	}
	if m.texCoord != nil {
		m.texCoord.Disable()
	}
}

func (m *ShaderMaterial) Release() { m.program.Delete() }
