package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/milk9111/catchme/component"
)

// gradientSheet returns a w x h image where every pixel encodes its x and y.
func gradientSheet(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 0xff})
		}
	}
	return img
}

func redAt(img image.Image, x, y int) uint8 {
	r, _, _, _ := img.At(x, y).RGBA()
	return uint8(r >> 8)
}

func greenAt(img image.Image, x, y int) uint8 {
	_, g, _, _ := img.At(x, y).RGBA()
	return uint8(g >> 8)
}

func TestSliceSheetOrderAndSize(t *testing.T) {
	frames, err := SliceSheet(gradientSheet(8, 4), 4, 2, false, 1)
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(frames) != 8 {
		t.Fatalf("frames = %d, want 8", len(frames))
	}
	// Frame 5 is row 1, column 1: origin (2, 2) in the sheet.
	f := frames[5]
	if f.Bounds().Dx() != 2 || f.Bounds().Dy() != 2 {
		t.Fatalf("frame size = %v", f.Bounds())
	}
	if redAt(f, 0, 0) != 2 || greenAt(f, 0, 0) != 2 {
		t.Fatalf("frame 5 origin = (%d,%d), want (2,2)", redAt(f, 0, 0), greenAt(f, 0, 0))
	}
}

func TestSliceSheetScaleAndFlip(t *testing.T) {
	cases := []struct {
		name    string
		flip    bool
		scale   float64
		wantW   int
		leftRed uint8
	}{
		{"scale2", false, 2, 8, 0},
		{"flip", true, 1, 4, 3},
		{"flip_scale2", true, 2, 8, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			frames, err := SliceSheet(gradientSheet(4, 4), 1, 1, c.flip, c.scale)
			if err != nil {
				t.Fatalf("slice: %v", err)
			}
			f := frames[0]
			if f.Bounds().Dx() != c.wantW || f.Bounds().Dy() != c.wantW {
				t.Fatalf("size = %v, want %dx%d", f.Bounds(), c.wantW, c.wantW)
			}
			if got := redAt(f, 0, 0); got != c.leftRed {
				t.Fatalf("left column comes from x=%d, want %d", got, c.leftRed)
			}
			if got := greenAt(f, 0, c.wantW-1); got != 3 {
				t.Fatalf("bottom row comes from y=%d, want 3", got)
			}
		})
	}
}

func TestSliceSheetInvalid(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		cols int
		rows int
	}{
		{"nil", nil, 1, 1},
		{"zero_cols", gradientSheet(4, 4), 0, 1},
		{"negative_rows", gradientSheet(4, 4), 1, -1},
		{"grid_larger_than_image", gradientSheet(2, 2), 4, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := SliceSheet(c.img, c.cols, c.rows, false, 1); !errors.Is(err, ErrInvalidSheet) {
				t.Fatalf("err = %v, want ErrInvalidSheet", err)
			}
		})
	}
}

func TestResizeAndPlaceholder(t *testing.T) {
	img := Resize(gradientSheet(4, 4), 8, 2)
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 2 {
		t.Fatalf("resize = %v", img.Bounds())
	}
	src := gradientSheet(3, 3)
	if Resize(src, 0, 5) != image.Image(src) {
		t.Fatalf("non-positive size should return the input")
	}
	ph := Placeholder(10, 12, 3)
	if len(ph) != 3 || ph[2].Bounds().Dx() != 10 || redAt(ph[0], 5, 5) != 0xff {
		t.Fatalf("placeholder = %v", ph)
	}
	if Placeholder(0, 1, 1) != nil {
		t.Fatalf("empty placeholder should be nil")
	}
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testLoader(t *testing.T) *Loader {
	fsys := fstest.MapFS{
		"images/hero/run.png": {Data: encodePNG(t, gradientSheet(12, 4))},
		"images/tiles.png":    {Data: encodePNG(t, gradientSheet(8, 8))},
	}
	return NewLoaderWith(fsys, func(img image.Image) component.Frame { return img })
}

func TestLoaderFramesCaches(t *testing.T) {
	l := testLoader(t)
	seq, err := l.Frames("hero/run.png", 3, 1, true, 2)
	if err != nil {
		t.Fatalf("frames: %v", err)
	}
	if len(seq) != 3 {
		t.Fatalf("len = %d", len(seq))
	}
	if w, h := seq.Size(); w != 8 || h != 8 {
		t.Fatalf("size = %dx%d, want 8x8", w, h)
	}
	again, _ := l.Frames("assets/hero/run.png", 3, 1, true, 2)
	if len(again) != 3 {
		t.Fatalf("prefixed path should resolve")
	}
	cached, _ := l.Frames("hero/run.png", 3, 1, true, 2)
	if cached[0] != seq[0] {
		t.Fatalf("second call should hit the cache")
	}
	if _, err := l.Frames("", 1, 1, false, 1); !errors.Is(err, ErrInvalidSheet) {
		t.Fatalf("empty path err = %v", err)
	}
}

func TestLoaderFallbacks(t *testing.T) {
	l := testLoader(t)
	seq := l.FramesOr("missing.png", 4, 1, false, 2, 64, 64)
	if len(seq) != 4 {
		t.Fatalf("placeholder frames = %d, want 4", len(seq))
	}
	if w, _ := seq.Size(); w != 64 {
		t.Fatalf("placeholder width = %d", w)
	}
	if _, err := l.Image("missing.png", 0, 0); err == nil {
		t.Fatalf("missing image should fail")
	}
}

func TestLoaderTile(t *testing.T) {
	l := testLoader(t)
	tile, err := l.Tile("tiles.png", 8, 8, 9, 144, 48)
	if err != nil {
		t.Fatalf("tile: %v", err)
	}
	if tile.Bounds().Dx() != 144 || tile.Bounds().Dy() != 48 {
		t.Fatalf("tile size = %v", tile.Bounds())
	}
	img := tile.(image.Image)
	if redAt(img, 0, 0) != 1 || greenAt(img, 0, 0) != 1 {
		t.Fatalf("tile 9 should start at (1,1)")
	}
	if _, err := l.Tile("tiles.png", 8, 8, 64, 10, 10); !errors.Is(err, ErrInvalidSheet) {
		t.Fatalf("out of range tile err = %v", err)
	}
}
