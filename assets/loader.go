package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/catchme/component"
)

const (
	ImageDir = "images"
	SoundDir = "sounds"
)

type sheetKey struct {
	path    string
	columns int
	rows    int
	flip    bool
	scale   float64
}

// Loader slices and caches sprite sheets read from an asset tree.
type Loader struct {
	fsys   fs.FS
	wrap   func(image.Image) component.Frame
	sheets map[sheetKey]component.Sequence
	images map[string]component.Frame
}

// NewLoader returns a loader that uploads frames as *ebiten.Image.
func NewLoader(fsys fs.FS) *Loader {
	return NewLoaderWith(fsys, func(img image.Image) component.Frame {
		return ebiten.NewImageFromImage(img)
	})
}

// NewLoaderWith returns a loader that converts decoded frames with wrap.
func NewLoaderWith(fsys fs.FS, wrap func(image.Image) component.Frame) *Loader {
	return &Loader{
		fsys:   fsys,
		wrap:   wrap,
		sheets: map[sheetKey]component.Sequence{},
		images: map[string]component.Frame{},
	}
}

// Frames returns the frames of the sheet at path (relative to the image dir).
func (l *Loader) Frames(p string, columns, rows int, flip bool, scale float64) (component.Sequence, error) {
	if l == nil || p == "" || columns <= 0 || rows <= 0 {
		return nil, ErrInvalidSheet
	}
	key := sheetKey{path: p, columns: columns, rows: rows, flip: flip, scale: scale}
	if seq, ok := l.sheets[key]; ok {
		return seq, nil
	}
	img, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	frames, err := SliceSheet(img, columns, rows, flip, scale)
	if err != nil {
		return nil, fmt.Errorf("slice %s: %w", p, err)
	}
	seq := l.sequence(frames)
	l.sheets[key] = seq
	return seq, nil
}

// FramesOr is Frames with missing art replaced by placeholder frames of w x h.
func (l *Loader) FramesOr(p string, columns, rows int, flip bool, scale float64, w, h int) component.Sequence {
	seq, err := l.Frames(p, columns, rows, flip, scale)
	if err == nil {
		return seq
	}
	log.Warn("sprite sheet unavailable, using placeholder", "path", p, "err", err)
	return l.Placeholder(w, h, max(columns*rows, 1))
}

// Image returns a single image, resized to w x h when both are positive.
func (l *Loader) Image(p string, w, h int) (component.Frame, error) {
	if l == nil || p == "" {
		return nil, ErrInvalidSheet
	}
	key := fmt.Sprintf("%s@%dx%d", p, w, h)
	if img, ok := l.images[key]; ok {
		return img, nil
	}
	img, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	frame := l.wrap(Resize(img, w, h))
	l.images[key] = frame
	return frame, nil
}

// Tile returns cell index of a columns x rows sheet, resized to w x h.
func (l *Loader) Tile(p string, columns, rows, index, w, h int) (component.Frame, error) {
	if l == nil || p == "" {
		return nil, ErrInvalidSheet
	}
	key := fmt.Sprintf("%s#%d/%dx%d@%dx%d", p, index, columns, rows, w, h)
	if img, ok := l.images[key]; ok {
		return img, nil
	}
	img, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	frames, err := SliceSheet(img, columns, rows, false, 1)
	if err != nil {
		return nil, fmt.Errorf("slice %s: %w", p, err)
	}
	if index < 0 || index >= len(frames) {
		return nil, fmt.Errorf("tile %d of %s: %w", index, p, ErrInvalidSheet)
	}
	frame := l.wrap(Resize(frames[index], w, h))
	l.images[key] = frame
	return frame, nil
}

// Placeholder returns n wrapped placeholder frames of w x h.
func (l *Loader) Placeholder(w, h, n int) component.Sequence {
	return l.sequence(Placeholder(w, h, n))
}

func (l *Loader) decode(p string) (image.Image, error) {
	b, err := fs.ReadFile(l.fsys, imagePath(p))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}
	return img, nil
}

func (l *Loader) sequence(frames []image.Image) component.Sequence {
	seq := make(component.Sequence, len(frames))
	for i, f := range frames {
		seq[i] = l.wrap(f)
	}
	return seq
}

func imagePath(p string) string {
	return path.Join(ImageDir, cleanAssetPath(p))
}

func soundPath(p string) string {
	return path.Join(SoundDir, cleanAssetPath(p))
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		s = after
	}
	return strings.TrimPrefix(s, "/")
}
