package assets

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// ErrInvalidSheet is returned for an empty path, a nil image or a non-positive grid.
var ErrInvalidSheet = errors.New("invalid sprite sheet arguments")

var placeholderColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// SliceSheet cuts img into a columns x rows grid, left to right then top to
// bottom. Each frame is scaled by scale and then mirrored horizontally when
// flip is set.
func SliceSheet(img image.Image, columns, rows int, flip bool, scale float64) ([]image.Image, error) {
	if img == nil || columns <= 0 || rows <= 0 || scale <= 0 {
		return nil, ErrInvalidSheet
	}
	b := img.Bounds()
	fw := b.Dx() / columns
	fh := b.Dy() / rows
	sw := int(float64(fw) * scale)
	sh := int(float64(fh) * scale)
	if fw <= 0 || fh <= 0 || sw <= 0 || sh <= 0 {
		return nil, ErrInvalidSheet
	}

	frames := make([]image.Image, 0, columns*rows)
	for row := range rows {
		for col := range columns {
			x := b.Min.X + col*fw
			y := b.Min.Y + row*fh
			src := image.Rect(x, y, x+fw, y+fh)
			dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
			if flip {
				kx := float64(sw) / float64(fw)
				ky := float64(sh) / float64(fh)
				s2d := f64.Aff3{
					-kx, 0, float64(sw) + kx*float64(x),
					0, ky, -ky * float64(y),
				}
				draw.NearestNeighbor.Transform(dst, s2d, img, src, draw.Src, nil)
			} else {
				draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
			}
			frames = append(frames, dst)
		}
	}
	return frames, nil
}

// Resize scales img to w x h with nearest-neighbor sampling. Non-positive
// sizes or a matching size return img unchanged.
func Resize(img image.Image, w, h int) image.Image {
	if img == nil || w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Placeholder returns n solid magenta frames of w x h.
func Placeholder(w, h, n int) []image.Image {
	if w <= 0 || h <= 0 || n <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderColor}, image.Point{}, draw.Src)
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = img
	}
	return frames
}
