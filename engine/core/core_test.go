package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/grove3d/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeyA, Down: true})
	in.Handle(EventMouseButton{Button: MouseLeft, Down: true})
	in.Handle(EventMouseMove{X: 1, Y: 2})
	assert.True(t, in.IsKeyDown(KeyA))
	assert.False(t, in.IsKeyDown(KeyD))
	assert.True(t, in.IsButtonDown(MouseLeft))
	x, y := in.Mouse()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)

	in.Handle(EventKey{Key: KeyA, Down: false})
	assert.False(t, in.IsKeyDown(KeyA))
}

func TestLayerStack(t *testing.T) {
	var ls LayerStack
	a, b := &swallowLayer{}, &swallowLayer{}
	ls.Push(a)
	ls.Push(b)
	assert.Equal(t, 2, ls.Len())

	var order []Layer
	ls.ForEachReverse(func(l Layer) bool { order = append(order, l); return false })
	assert.Equal(t, []Layer{b, a}, order)

	l, ok := ls.Pop()
	assert.True(t, ok)
	assert.Same(t, b, l)
	ls.Pop()
	_, ok = ls.Pop()
	assert.False(t, ok)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
width = 800
clear_color = [0.0, 0.0, 0.0, 1.0]

[log]
level = "debug"

[materials]
initial = "normals"

[[materials.custom]]
name = "normal-color"
normals = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 720, cfg.Height, "default kept")
	assert.Equal(t, colors.Black, cfg.ClearColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.Equal(t, "normals", cfg.Materials.Initial)
	require.Len(t, cfg.Materials.Custom, 1)
	assert.Equal(t, CustomShader{Name: "normal-color", Normals: true}, cfg.Materials.Custom[0])
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "bogus = 1\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "width = 0\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[gl]\nmajor = 3\nminor = 3\ncore_profile = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "core_profile")
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Development: true})
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestShippedConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "..", "grove3d.toml"))
	require.NoError(t, err)
	assert.Equal(t, "object", cfg.Materials.Initial)
	require.Len(t, cfg.Materials.Custom, 1)
	assert.Equal(t, "depth", cfg.Materials.Custom[0].Name)
	assert.False(t, cfg.GL.CoreProfile)
}
