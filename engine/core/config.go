package core

import (
	"fmt"
	"os"

	"github.com/hubastard/grove3d/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`

	GL        GLConfig        `toml:"gl"`
	Log       LogConfig       `toml:"log"`
	Assets    AssetsConfig    `toml:"assets"`
	Materials MaterialsConfig `toml:"materials"`
}

// GLConfig selects the requested context. The built-in materials are
// GLSL 1.20 and use wide lines, neither of which a core profile accepts, so
// Validate rejects CoreProfile.
type GLConfig struct {
	Major       int  `toml:"major"`
	Minor       int  `toml:"minor"`
	CoreProfile bool `toml:"core_profile"`
}

type LogConfig struct {
	Level       string `toml:"level"` // debug | info | warn | error
	Development bool   `toml:"development"`
}

type AssetsConfig struct {
	Root string `toml:"root"`
}

// MaterialsConfig lists user shader materials loaded at startup from
// <assets root>/shaders/<name>.vert and .frag.
type MaterialsConfig struct {
	Initial string         `toml:"initial"`
	Custom  []CustomShader `toml:"custom"`
}

type CustomShader struct {
	Name    string `toml:"name"`
	Normals bool   `toml:"normals"`
	UVs     bool   `toml:"uvs"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "grove3d",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.Slate,
		GL:         GLConfig{Major: 2, Minor: 1},
		Log:        LogConfig{Level: "info"},
		Assets:     AssetsConfig{Root: "assets"},
		Materials:  MaterialsConfig{Initial: "object"},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys absent from the
// file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings the engine cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.GL.CoreProfile {
		return fmt.Errorf("gl.core_profile: built-in materials need a compatibility context for GLSL 1.20")
	}
	return nil
}
