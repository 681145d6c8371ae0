package renderer

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image converts the frame to 8-bit RGBA, clamping each channel to [0, 1]
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.At(x, y).RGBA())
		}
	}
	return img
}

// DownsampledImage averages each 2x2 block into one pixel, halving both
// dimensions. A trailing odd row or column is dropped.
func (f *Frame) DownsampledImage() *image.RGBA {
	width, height := f.Width/2, f.Height/2
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := 2*x, 2*y
			sum := f.At(sx, sy).
				Add(f.At(sx+1, sy)).
				Add(f.At(sx, sy+1)).
				Add(f.At(sx+1, sy+1))
			img.SetRGBA(x, y, sum.Multiply(0.25).RGBA())
		}
	}
	return img
}

// Save writes the frame as a PNG file
func (f *Frame) Save(path string) error {
	if err := gg.SavePNG(path, f.Image()); err != nil {
		return fmt.Errorf("save frame to %s: %w", path, err)
	}
	return nil
}

// SaveDownsampled writes the half-resolution frame as a PNG file
func (f *Frame) SaveDownsampled(path string) error {
	if err := gg.SavePNG(path, f.DownsampledImage()); err != nil {
		return fmt.Errorf("save downsampled frame to %s: %w", path, err)
	}
	return nil
}

// EncodePNG streams the frame, optionally downsampled, as PNG
func (f *Frame) EncodePNG(w io.Writer, downsample bool) error {
	img := f.Image()
	if downsample {
		img = f.DownsampledImage()
	}
	if err := gg.NewContextForRGBA(img).EncodePNG(w); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// Pixels returns a copy of the linear color buffer in row-major order
func (f *Frame) Pixels() []core.Color {
	pixels := make([]core.Color, len(f.buffer))
	copy(pixels, f.buffer)
	return pixels
}
