package material

import (
	"errors"
	"fmt"

	"github.com/hubastard/grove3d/engine/gfx"
)

// BindingError reports an attribute or uniform a material requires but its
// compiled program does not expose.
type BindingError struct {
	Material string
	Kind     string // "attribute" | "uniform"
	Name     string
	Err      error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("material %q: %s %q not found in shader program", e.Material, e.Kind, e.Name)
}

func (e *BindingError) Unwrap() error { return e.Err }

// binder resolves the bindings of one program and collects every miss so
// the constructor reports them all at once.
type binder struct {
	material string
	prog     gfx.Program
	errs     []error
}

func compile(dev gfx.Device, material, vertexSrc, fragmentSrc string) (*binder, error) {
	prog, err := dev.NewProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", material, err)
	}
	prog.Use()
	return &binder{material: material, prog: prog}, nil
}

func (b *binder) attrib(name string) gfx.Attrib {
	a, err := b.prog.Attrib(name)
	if err != nil {
		b.errs = append(b.errs, &BindingError{Material: b.material, Kind: "attribute", Name: name, Err: err})
	}
	return a
}

func (b *binder) uniform(name string) gfx.Uniform {
	u, err := b.prog.Uniform(name)
	if err != nil {
		b.errs = append(b.errs, &BindingError{Material: b.material, Kind: "uniform", Name: name, Err: err})
	}
	return u
}

// done returns the linked program, or deletes it and returns the joined
// binding errors.
func (b *binder) done() (gfx.Program, error) {
	if len(b.errs) > 0 {
		b.prog.Delete()
		return nil, errors.Join(b.errs...)
	}
	return b.prog, nil
}
