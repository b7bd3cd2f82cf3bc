package filestorage

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// Decoders for the accepted upload formats
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// JPEGQuality is used for every resized image
const JPEGQuality = 85

// FitWithin returns the size of a w×h image scaled down to fit maxW×maxH,
// preserving aspect ratio. A bound <= 0 is ignored. Images are never
// upscaled.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		if s := float64(maxH) / float64(h); s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return w, h
	}

	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// ResizeToJPEG decodes a JPEG, PNG or WebP image, scales it down to fit the
// bounds and writes it to dst as JPEG.
func ResizeToJPEG(dst io.Writer, src io.Reader, maxW, maxH int) error {
	img, _, err := image.Decode(src)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := FitWithin(bounds.Dx(), bounds.Dy(), maxW, maxH)

	// Transparent areas become white once flattened to JPEG
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	if w == bounds.Dx() && h == bounds.Dy() {
		draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), img, bounds, draw.Over, nil)
	}

	if err := jpeg.Encode(dst, canvas, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
