package assets

import (
	"fmt"

	"github.com/hubastard/grove3d/engine/core"
	"github.com/hubastard/grove3d/engine/gfx"
	"github.com/hubastard/grove3d/engine/material"
)

// RegisterShaderMaterials builds every custom shader material listed in the
// config and adds it to mgr, stopping at the first failure.
func RegisterShaderMaterials(dev gfx.Device, mgr *material.Manager, root string, shaders []core.CustomShader) error {
	for _, cs := range shaders {
		vs, fs, err := LoadShaderPair(root, cs.Name)
		if err != nil {
			return err
		}
		var opts []material.ShaderOption
		if cs.Normals {
			opts = append(opts, material.WithNormals())
		}
		if cs.UVs {
			opts = append(opts, material.WithUVs())
		}
		m, err := material.NewShaderMaterial(dev, cs.Name, vs, fs, opts...)
		if err != nil {
			return fmt.Errorf("register %q: %w", cs.Name, err)
		}
		mgr.AddMaterial(m, cs.Name)
	}
	return nil
}
