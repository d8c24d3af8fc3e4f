package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/geom"
	"github.com/hubastard/grove3d/engine/gfx"
	"go.uber.org/zap"
)

// DeviceGL implements core.Renderer (and so gfx.Device) on an OpenGL context
// made current by the platform window.
type DeviceGL struct {
	win   core.Window
	log   *zap.Logger
	vao   uint32
	white *textureGL
	mode  gfx.PolygonMode

	vendor, renderer, version string
}

var _ core.Renderer = (*DeviceGL)(nil)

func NewDeviceGL(win core.Window, cfg core.Config, log *zap.Logger) (*DeviceGL, error) {
	if log == nil {
		log = zap.NewNop()
	}
	d := &DeviceGL{win: win, log: log.Named("gl")}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DeviceGL) Init() error {
	d.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	d.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	d.version = gl.GoStr(gl.GetString(gl.VERSION))
	d.log.Info("context ready",
		zap.String("vendor", d.vendor),
		zap.String("renderer", d.renderer),
		zap.String("version", d.version))

	// One VAO for the whole context: meshes re-point attributes on every bind.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	white, err := d.NewTexture(gfx.TextureDesc{
		Width: 1, Height: 1,
		Format:    gfx.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return fmt.Errorf("white texture: %w", err)
	}
	d.white = white.(*textureGL)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	return nil
}

func (d *DeviceGL) Shutdown() {
	if d.white != nil {
		d.white.Delete()
		d.white = nil
	}
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *DeviceGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *DeviceGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *DeviceGL) GPUVendor() string   { return d.vendor }
func (d *DeviceGL) GPURenderer() string { return d.renderer }
func (d *DeviceGL) GPUVersion() string  { return d.version }

func (d *DeviceGL) NewProgram(vertexSrc, fragmentSrc string) (gfx.Program, error) {
	id, err := makeProgram(vertexSrc, fragmentSrc)
	if err != nil {
		d.log.Error("shader program", zap.Error(err))
		return nil, err
	}
	return &programGL{id: id}, nil
}

func (d *DeviceGL) NewMesh(data geom.MeshData) (gfx.Mesh, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return newMeshGL(data.Complete()), nil
}

func (d *DeviceGL) WhiteTexture() gfx.Texture { return d.white }

func (d *DeviceGL) BindTexture(unit int, t gfx.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	if t == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, t.(*textureGL).id)
}

func (d *DeviceGL) SetPolygonMode(mode gfx.PolygonMode) {
	if mode == d.mode {
		return
	}
	switch mode {
	case gfx.PolygonLine:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	case gfx.PolygonPoint:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.POINT)
	default:
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	d.mode = mode
}

func (d *DeviceGL) SetCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

func (d *DeviceGL) SetLineWidth(w float32) { gl.LineWidth(w) }
func (d *DeviceGL) SetPointSize(s float32) { gl.PointSize(s) }

func (d *DeviceGL) DrawTriangles(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}
