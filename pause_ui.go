package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/catchme/common"
)

var (
	white   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelBg = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	btnOver = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
)

// menuButton is one labelled action of a menu panel.
type menuButton struct {
	label   string
	onClick func()
}

// uiFace returns a text face built from the basic font so the menus need
// no font files.
func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

// newPanel returns a centered vertical panel holding title and the widgets
// added to it later.
func newPanel(face *ebtext.Face, title string) *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.Width/3, common.Height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(newLabel(face, title))
	return panel
}

func newLabel(face *ebtext.Face, s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func newButton(face *ebtext.Face, b menuButton) *widget.Button {
	idle := imageui.NewNineSliceColor(btnIdle)
	over := imageui.NewNineSliceColor(btnOver)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: over, Pressed: over}),
		widget.ButtonOpts.Text(b.label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(240, 40),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if b.onClick != nil {
				b.onClick()
			}
		}),
	)
}

// newMenuUI builds a centered panel with a title, optional lines of text
// and one button per action.
func newMenuUI(title string, lines []string, buttons ...menuButton) *ebitenui.UI {
	face := uiFace()
	panel := newPanel(face, title)
	for _, l := range lines {
		panel.AddChild(newLabel(face, l))
	}
	for _, b := range buttons {
		panel.AddChild(newButton(face, b))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the pause menu: resume, music on, music off and home.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Pause", nil,
		menuButton{"Resume", func() { g.paused = false }},
		menuButton{"Music on", func() { g.sound.musicOn() }},
		menuButton{"Music off", func() { g.sound.musicOff() }},
		menuButton{"Home", func() { g.enter(screenMain) }},
	)
}
