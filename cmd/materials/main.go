package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hubastard/grove3d/engine/core"
	glbackend "github.com/hubastard/grove3d/engine/gfx/gl"
	"github.com/hubastard/grove3d/engine/platform"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "grove3d.toml", "TOML config file; defaults are used if it does not exist")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = core.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}
	cfg.Title = "grove3d: materials"

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, cfg core.Config, log *zap.Logger) (core.Renderer, error) {
		return glbackend.NewDeviceGL(w, cfg, log)
	}

	err = core.Run(&App{}, cfg, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
