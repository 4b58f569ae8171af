package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/deadzone/common"
	"github.com/milk9111/deadzone/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	healthBoxWidth  = 220
	healthBoxHeight = 22
	healthBoxMargin = 20
	crosshairSize   = 6
)

// HUDUI draws the status line, the player health box, the crosshair and the
// game-over overlay from the HUD component.
type HUDUI struct {
	status   *widget.Text
	statusUI *ebitenui.UI
	overUI   *ebitenui.UI
	gameOver bool
}

func NewHUDUI() *HUDUI {
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	status := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)
	statusPanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Left: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	statusPanel.AddChild(status)
	statusRoot := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	statusRoot.AddChild(statusPanel)

	title := widget.NewText(
		widget.TextOpts.Text("GAME OVER", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Press R to Restart", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	overPanel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	overPanel.AddChild(title)
	overPanel.AddChild(hint)
	overRoot := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 204})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	overRoot.AddChild(overPanel)

	return &HUDUI{
		status:   status,
		statusUI: &ebitenui.UI{Container: statusRoot},
		overUI:   &ebitenui.UI{Container: overRoot},
	}
}

// Update copies the HUD projection into the widgets.
func (h *HUDUI) Update(hud *component.HUD) {
	if h == nil || hud == nil {
		return
	}
	h.status.Label = hud.Status
	h.gameOver = hud.GameOver
	h.statusUI.Update()
	if h.gameOver {
		h.overUI.Update()
	}
}

func (h *HUDUI) Draw(screen *ebiten.Image, hud *component.HUD) {
	if h == nil || hud == nil {
		return
	}
	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())

	h.statusUI.Draw(screen)

	x := float32(healthBoxMargin)
	y := height - healthBoxMargin - healthBoxHeight
	fill := float32(common.Clamp(hud.HealthFill, 0, 1))
	vector.FillRect(screen, x, y, healthBoxWidth*fill, healthBoxHeight, colornames.Lime, false)
	vector.StrokeRect(screen, x, y, healthBoxWidth, healthBoxHeight, 2, colornames.White, false)

	if hud.Crosshair {
		vector.FillRect(screen, width/2-crosshairSize/2, height/2-crosshairSize/2, crosshairSize, crosshairSize, colornames.White, false)
	}

	if h.gameOver {
		h.overUI.Draw(screen)
	}
}
