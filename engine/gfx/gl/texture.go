package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/grove3d/engine/gfx"
)

type textureGL struct {
	id   uint32
	w, h int
}

func (d *DeviceGL) NewTexture(desc gfx.TextureDesc) (gfx.Texture, error) {
	if desc.Format != gfx.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 || len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("texture %dx%d with %d bytes", desc.Width, desc.Height, len(desc.Pixels))
	}
	t := &textureGL{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *textureGL) Size() (int, int) { return t.w, t.h }

func (t *textureGL) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func filter(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
