// sheetview plays one sprite sheet the way the game slices and animates it,
// for checking column counts, scale and flip before wiring a sheet into a
// level file.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/catchme/assets"
	"github.com/milk9111/catchme/common"
	"github.com/milk9111/catchme/component"
)

const viewSize = 512

var (
	flagAssets  string
	flagColumns int
	flagRows    int
	flagScale   float64
	flagFlip    bool
	flagRate    int
)

type viewer struct {
	path  string
	anim  *component.Animation
	clock *common.Clock
	pause bool
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.pause = !v.pause
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.anim.Seek(v.anim.Frame() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.anim.Seek(v.anim.Frame() - 1)
	}
	delta := v.clock.Tick()
	if !v.pause {
		v.anim.Update(delta)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if img, ok := v.anim.Current().(*ebiten.Image); ok {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64((viewSize-b.Dx())/2), float64((viewSize-b.Dy())/2))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nframe %d/%d  rate %dms\nspace: pause  left/right: step",
		v.path, v.anim.Frame()+1, v.anim.Len(), flagRate))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

var rootCmd = &cobra.Command{
	Use:   "sheetview <sheet>",
	Short: "Preview a sprite sheet as the game animates it",
	Long: `Slice a sheet from the images directory and play it at a frame rate.

Examples:
  sheetview Varios/Cositas/Main\ Characters/Ninja\ Frog/Idle.png --columns 11
  sheetview Varios/Cositas/Traps/Saw/On.png --columns 8 --scale 1 --rate 30`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	loader := assets.NewLoader(os.DirFS(flagAssets))
	seq, err := loader.Frames(args[0], flagColumns, flagRows, flagFlip, flagScale)
	if err != nil {
		return err
	}
	w, h := seq.Size()
	log.Info("sheet loaded", "path", args[0], "frames", len(seq), "size", fmt.Sprintf("%dx%d", w, h))

	v := &viewer{
		path:  args[0],
		anim:  component.NewAnimation(args[0], seq, flagRate),
		clock: common.NewClock(common.FPS),
	}
	ebiten.SetTPS(common.FPS)
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheetview - " + args[0])
	return ebiten.RunGame(v)
}

func main() {
	f := rootCmd.Flags()
	f.StringVar(&flagAssets, "assets", "assets", "Directory holding images/")
	f.IntVar(&flagColumns, "columns", 1, "Frames per row")
	f.IntVar(&flagRows, "rows", 1, "Rows of frames")
	f.Float64Var(&flagScale, "scale", 2, "Scale applied to every frame")
	f.BoolVar(&flagFlip, "flip", false, "Mirror frames horizontally")
	f.IntVar(&flagRate, "rate", 35, "Milliseconds per frame")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
