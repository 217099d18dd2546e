// Package preview produces WebP thumbnails of meshes.
package preview

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"

	"github.com/Faultbox/parashape/internal/raster"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// Options controls a preview.
type Options struct {
	Size        int // output edge in pixels
	Supersample int // render scale factor before downsampling, 1 disables
	Raster      raster.Options
}

// DefaultOptions returns a diffuse preview of the given size rendered at
// twice the resolution.
func DefaultOptions(size int) Options {
	return Options{Size: size, Supersample: 2, Raster: raster.DefaultOptions(size)}
}

// Render rasterizes m at Size×Supersample and scales the result down to
// Size.
func Render(m *mesh.Mesh, opts Options) (*image.NRGBA, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("preview: size %d must be positive", opts.Size)
	}
	ss := max(opts.Supersample, 1)

	ro := opts.Raster
	ro.Size = opts.Size * ss
	ro.Margin = max(ro.Margin, 1) * ss

	img, err := raster.Render(m, ro)
	if err != nil {
		return nil, err
	}
	return Downsample(img, opts.Size), nil
}

// Downsample scales img to targetSize×targetSize with Catmull-Rom filtering
// on premultiplied alpha, so transparent borders do not darken edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	// image.RGBA is premultiplied; draw converts on the way in
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	draw.Draw(out, out.Bounds(), dst, image.Point{}, draw.Src)
	return out
}

// Encode writes img as lossless WebP.
func Encode(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("preview: encode webp: %w", err)
	}
	return nil
}

// WriteFile renders m and writes the WebP to path, creating parent
// directories.
func WriteFile(path string, m *mesh.Mesh, opts Options) error {
	img, err := Render(m, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
