package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/gfx/gfxtest"
	"github.com/hubastard/grove3d/engine/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVert = `#version 120
attribute vec3 position;
attribute vec3 normal;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
varying vec3 n;
void main() {
    n = normal;
    gl_Position = view * transform * mat4(scale) * vec4(position, 1.0);
}
`

const testFrag = `#version 120
varying vec3 n;
void main() { gl_FragColor = vec4(n, 1.0); }
`

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoadShaderPair(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shaders", "glow.vert"), []byte(testVert))
	writeFile(t, filepath.Join(root, "shaders", "glow.frag"), []byte(testFrag))

	vs, fs, err := LoadShaderPair(root, "glow")
	require.NoError(t, err)
	assert.Equal(t, testVert, vs)
	assert.Equal(t, testFrag, fs)

	_, _, err = LoadShaderPair(root, "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadShaderEmpty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shaders", "empty.vert"), nil)
	_, err := LoadShader(root, "empty.vert")
	assert.Error(t, err)
}

func TestLoadPNGFlipsRows(t *testing.T) {
	root := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	path := filepath.Join(root, "textures", "strip.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	w, h, pix, err := LoadPNG(root, "strip.png")
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []byte{0, 0, 255, 255, 255, 0, 0, 255}, pix)

	tex, err := LoadTexture(gfxtest.NewDevice(), root, "strip.png")
	require.NoError(t, err)
	tw, th := tex.Size()
	assert.Equal(t, [2]int{1, 2}, [2]int{tw, th})
}

func TestRegisterShaderMaterials(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shaders", "glow.vert"), []byte(testVert))
	writeFile(t, filepath.Join(root, "shaders", "glow.frag"), []byte(testFrag))

	dev := gfxtest.NewDevice()
	mgr := material.NewManager(dev)
	require.NoError(t, RegisterShaderMaterials(dev, mgr, root, []core.CustomShader{{Name: "glow", Normals: true}}))

	h, ok := mgr.Get("glow")
	require.True(t, ok)
	sm, ok := h.Material().(*material.ShaderMaterial)
	require.True(t, ok)
	assert.Equal(t, "glow", sm.Name())
}

func TestRegisterShaderMaterialsMissingBinding(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "shaders", "glow.vert"), []byte(testVert))
	writeFile(t, filepath.Join(root, "shaders", "glow.frag"), []byte(testFrag))

	dev := gfxtest.NewDevice()
	mgr := material.NewManager(dev)
	err := RegisterShaderMaterials(dev, mgr, root, []core.CustomShader{{Name: "glow", UVs: true}})
	require.Error(t, err)

	var be *material.BindingError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "tex_coord", be.Name)
	assert.True(t, errors.Is(err, gfx.ErrBindingNotFound))
	_, ok := mgr.Get("glow")
	assert.False(t, ok)
}

func TestShippedShadersRegister(t *testing.T) {
	dev := gfxtest.NewDevice()
	mgr := material.NewManager(dev)
	root := filepath.Join("..", "..", "assets")

	require.NoError(t, RegisterShaderMaterials(dev, mgr, root, []core.CustomShader{{Name: "depth"}}))
	_, ok := mgr.Get("depth")
	assert.True(t, ok)
}
