package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hubastard/grove3d/engine/gfx"
)

// LoadPNG returns width, height, and tightly packed RGBA8 pixels from
// <root>/textures/<relPath>, flipped vertically to match OpenGL's
// bottom-left origin.
func LoadPNG(root, relPath string) (w, h int, rgba []byte, err error) {
	path := filepath.Join(root, "textures", relPath)
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode png %q: %w", path, err)
	}

	src := imageToRGBA(img)
	w, h = src.Bounds().Dx(), src.Bounds().Dy()
	rowLen := w * 4
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		dst := (h - 1 - y) * rowLen
		copy(out[dst:dst+rowLen], src.Pix[y*src.Stride:y*src.Stride+rowLen])
	}
	return w, h, out, nil
}

// LoadTexture loads a PNG and uploads it with linear filtering and repeat wrapping.
func LoadTexture(dev gfx.Device, root, relPath string) (gfx.Texture, error) {
	w, h, pix, err := LoadPNG(root, relPath)
	if err != nil {
		return nil, err
	}
	return dev.NewTexture(gfx.TextureDesc{
		Width: w, Height: h,
		Format:    gfx.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "linear", MagFilter: "linear",
		WrapU: "repeat", WrapV: "repeat",
	})
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
