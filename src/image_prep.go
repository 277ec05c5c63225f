package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Prepare an arbitrary raster for transmission.
 *
 * Description:	Decodes PNG or JPEG, composites any alpha over white,
 *		scales to the mode's native geometry preserving aspect
 *		ratio with white letterbox bars, and converts to the
 *		unit-range pixel field the encoder consumes.  B&W
 *		modes get a single Rec.601 luma channel.
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// LoadImageFile decodes a PNG or JPEG file.
func LoadImageFile(fname string) (image.Image, error) {
	var f, err = os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("image: open %s: %w", fname, err)
	}
	defer f.Close()

	var img, _, decodeErr = image.Decode(f)
	if decodeErr != nil {
		return nil, fmt.Errorf("image: decode %s: %w", fname, decodeErr)
	}
	return img, nil
}

// PrepareImage resizes src to the mode's native geometry and returns
// the pixel field the encoder consumes.
func PrepareImage(src image.Image, mode *Mode) *Image {
	var framed = letterbox(src, mode.Width, mode.Height)
	if mode.Grayscale() {
		return toGray(framed)
	}
	return toRGB(framed)
}

// letterbox scales src into a width x height white frame, preserving
// aspect ratio and centering.
func letterbox(src image.Image, width, height int) *image.RGBA {
	var dst = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	var sb = src.Bounds()
	var sw, sh = sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return dst
	}

	var scale = float64(width) / float64(sw)
	if s := float64(height) / float64(sh); s < scale {
		scale = s
	}
	var dw = int(float64(sw) * scale)
	var dh = int(float64(sh) * scale)
	var x0 = (width - dw) / 2
	var y0 = (height - dh) / 2

	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+dw, y0+dh), src, sb, draw.Over, nil)
	return dst
}

// toRGB converts, compositing any remaining alpha over white.
func toRGB(src *image.RGBA) *Image {
	var b = src.Bounds()
	var out = NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.SetRGB(x, y, pixelOverWhite(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return out
}

func toGray(src *image.RGBA) *Image {
	var b = src.Bounds()
	var out = NewGrayImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			var r, g, bl = pixelOverWhite(src.At(b.Min.X+x, b.Min.Y+y))
			out.SetLuma(x, y, 0.299*r+0.587*g+0.114*bl)
		}
	}
	return out
}

// pixelOverWhite returns unit-range RGB with alpha composited over a
// white background.  RGBA() is premultiplied, so the white term is
// just the uncovered remainder.
func pixelOverWhite(c color.Color) (r, g, b float64) {
	var cr, cg, cb, ca = c.RGBA()
	var rem = 1.0 - float64(ca)/65535.0
	r = float64(cr)/65535.0 + rem
	g = float64(cg)/65535.0 + rem
	b = float64(cb)/65535.0 + rem
	return clamp01(r), clamp01(g), clamp01(b)
}
