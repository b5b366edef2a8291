package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/catchme/ranking"
)

var controlLines = []string{
	"Left / A, Right / D: walk",
	"Up / W: jump",
	"Space: shoot (after a special fruit)",
	"Esc: pause",
	"Tab: show collision boxes",
}

// NewMainMenuUI builds the title screen: play, controls and exit.
func NewMainMenuUI(g *Game) *ebitenui.UI {
	return newMenuUI(g.spec.Title, nil,
		menuButton{"Play", g.startRun},
		menuButton{"Controls", func() { g.enter(screenControls) }},
		menuButton{"Exit", func() { g.quit = true }},
	)
}

func NewControlsUI(g *Game) *ebitenui.UI {
	return newMenuUI("Controls", controlLines,
		menuButton{"Back", func() { g.enter(screenMain) }},
	)
}

func NewGameOverUI(g *Game) *ebitenui.UI {
	return newMenuUI("Game over", []string{"Try again?"},
		menuButton{"Yes", g.startRun},
		menuButton{"No", func() { g.enter(screenMain) }},
	)
}

func NewPlayAgainUI(g *Game) *ebitenui.UI {
	return newMenuUI("Play again?", nil,
		menuButton{"Yes", g.startRun},
		menuButton{"No", func() { g.enter(screenMain) }},
	)
}

// winnerUI asks for a name after the last level and saves the run.
type winnerUI struct {
	ui      *ebitenui.UI
	summary *widget.Text
	input   *widget.TextInput
}

func newWinnerUI(g *Game) *winnerUI {
	face := uiFace()
	w := &winnerUI{}

	panel := newPanel(face, "You win!")
	w.summary = newLabel(face, "")
	panel.AddChild(w.summary)
	panel.AddChild(newLabel(face, "Type your name and press Enter"))

	w.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(400, 50),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 255}),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     white,
			Disabled: color.Gray{Y: 128},
			Caret:    white,
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			g.submitRanking(args.InputText)
		}),
	)
	panel.AddChild(w.input)
	panel.AddChild(newButton(face, menuButton{"Save", func() { g.submitRanking(w.input.GetText()) }}))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	w.ui = &ebitenui.UI{Container: root}
	return w
}

// open clears the name field and shows the finished run.
func (w *winnerUI) open(seconds, score int) {
	w.summary.Label = fmt.Sprintf("Time %s    Score %d", ranking.FormatGameTime(seconds), score)
	w.input.SetText("")
	w.input.Focus(true)
}
