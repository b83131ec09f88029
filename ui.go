package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// uiInput is the per-frame input snapshot the panel is rebuilt against.
type uiInput struct {
	cursorX, cursorY int
	pressed          bool // left button held
	clicked          bool // left button released this frame
	wheelY           float64
}

func readInput() uiInput {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return uiInput{
		cursorX: x,
		cursorY: y,
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		clicked: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		wheelY:  wy,
	}
}

type drawKind int

const (
	drawRect drawKind = iota
	drawFrame
	drawText
)

type drawCmd struct {
	kind       drawKind
	x, y, w, h float32
	clr        color.RGBA
	text       string
	clip       bool // clipped to the panel content area when replayed
}

// uiContext rebuilds a scrollable panel of widgets every frame. Widget
// logic runs while the frame's command list is recorded; replay paints
// the list onto the screen afterwards.
type uiContext struct {
	x, y, w, h int // outer panel bounds
	title      string

	in      uiInput
	elapsed float64
	dt      float64

	cmds     []drawCmd
	rowY     int // layout cursor in content space
	scroll   float64
	contentH int // content height measured by the previous build
	widgetN  int
	hover    map[int]float64
}

func makeUIContext(title string, x, y, w, h int) uiContext {
	return uiContext{
		title: title,
		x:     x, y: y, w: w, h: h,
		hover: map[int]float64{},
	}
}

// updateTime feeds the running elapsed total and the per-frame delta into
// the panel, which uses them to pace its animations.
func (u *uiContext) updateTime(elapsed, dt float64) {
	u.elapsed = elapsed
	u.dt = dt
}

func (u *uiContext) begin(in uiInput) {
	u.in = in
	u.cmds = u.cmds[:0]
	u.widgetN = 0
	u.rowY = CONTENT_PAD

	if in.wheelY != 0 && u.cursorOverPanel() {
		u.scroll -= in.wheelY * WHEEL_STEP
	}
	maxScroll := math.Max(0, float64(u.contentH-(u.h-TITLE_HEIGHT)))
	u.scroll = math.Min(math.Max(u.scroll, 0), maxScroll)

	u.rect(u.x, u.y, u.w, u.h, palette.panel, false)
	u.rect(u.x, u.y, u.w, TITLE_HEIGHT, palette.title, false)
	u.frame(u.x, u.y, u.w, u.h, palette.panelBorder, false)
	u.text(u.x+ROW_PADDING, u.y+3, u.title, false)
}

func (u *uiContext) end() {
	u.contentH = u.rowY + CONTENT_PAD
	innerH := u.h - TITLE_HEIGHT
	if u.contentH > innerH {
		thumbH := innerH * innerH / u.contentH
		maxScroll := float64(u.contentH - innerH)
		thumbY := u.y + TITLE_HEIGHT + int(u.scroll/maxScroll*float64(innerH-thumbH))
		u.rect(u.x+u.w-5, thumbY, 3, thumbH, palette.panelBorder, true)
	}
}

func (u *uiContext) label(text string) {
	rx, ry, visible := u.nextRow()
	if visible {
		u.text(rx, ry, text, true)
	}
}

// button returns true when the left button is released over it.
func (u *uiContext) button(text string) bool {
	id := u.widgetN
	u.widgetN++
	rx, ry, visible := u.nextRow()
	w := len(text)*CHAR_WIDTH + 2*ROW_PADDING
	h := ROW_HEIGHT - 4
	hovered := visible && u.cursorIn(rx, ry, w, h)

	t := u.hover[id]
	if hovered {
		t = math.Min(1, t+u.dt*HOVER_FADE)
	} else {
		t = math.Max(0, t-u.dt*HOVER_FADE)
	}
	u.hover[id] = t

	if visible {
		fill := lerpColor(palette.widget, palette.widgetHover, t)
		if hovered && u.in.pressed {
			fill = palette.widgetActive
		}
		u.rect(rx, ry, w, h, fill, true)
		u.frame(rx, ry, w, h, palette.panelBorder, true)
		u.text(rx+ROW_PADDING, ry+(h-TEXT_HEIGHT)/2, text, true)
	}
	return hovered && u.in.clicked
}

func (u *uiContext) checkbox(checked *bool, label string) {
	rx, ry, visible := u.nextRow()
	box := ROW_HEIGHT - 8
	w := box + ROW_PADDING + len(label)*CHAR_WIDTH
	if visible && u.cursorIn(rx, ry, w, ROW_HEIGHT-4) && u.in.clicked {
		*checked = !*checked
	}
	if visible {
		u.rect(rx, ry+2, box, box, palette.widget, true)
		u.frame(rx, ry+2, box, box, palette.panelBorder, true)
		if *checked {
			u.rect(rx+3, ry+5, box-6, box-6, accentAt(u.elapsed), true)
		}
		u.text(rx+box+ROW_PADDING, ry, label, true)
	}
}

// nextRow advances the layout cursor and reports the row's screen
// position and whether any of it lands inside the content area.
func (u *uiContext) nextRow() (rx, ry int, visible bool) {
	rx = u.x + ROW_PADDING
	ry = u.y + TITLE_HEIGHT + u.rowY - int(u.scroll)
	visible = ry+ROW_HEIGHT > u.y+TITLE_HEIGHT && ry < u.y+u.h
	u.rowY += ROW_HEIGHT
	return rx, ry, visible
}

func (u *uiContext) cursorOverPanel() bool {
	cx, cy := u.in.cursorX, u.in.cursorY
	return cx >= u.x && cx < u.x+u.w && cy >= u.y && cy < u.y+u.h
}

// cursorIn hit-tests a rect, rejecting cursors outside the content area
// so widgets scrolled under the title bar stay inert.
func (u *uiContext) cursorIn(x, y, w, h int) bool {
	cx, cy := u.in.cursorX, u.in.cursorY
	if cx < u.x || cx >= u.x+u.w || cy < u.y+TITLE_HEIGHT || cy >= u.y+u.h {
		return false
	}
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}

func (u *uiContext) rect(x, y, w, h int, clr color.RGBA, clip bool) {
	u.cmds = append(u.cmds, drawCmd{kind: drawRect, x: float32(x), y: float32(y), w: float32(w), h: float32(h), clr: clr, clip: clip})
}

func (u *uiContext) frame(x, y, w, h int, clr color.RGBA, clip bool) {
	u.cmds = append(u.cmds, drawCmd{kind: drawFrame, x: float32(x), y: float32(y), w: float32(w), h: float32(h), clr: clr, clip: clip})
}

func (u *uiContext) text(x, y int, s string, clip bool) {
	u.cmds = append(u.cmds, drawCmd{kind: drawText, x: float32(x), y: float32(y), text: s, clip: clip})
}

// replay paints the frame's command list. Clipped commands draw through a
// sub-image of the content area, which shares the screen's coordinates.
func (u *uiContext) replay(screen *ebiten.Image) {
	inner := image.Rect(u.x, u.y+TITLE_HEIGHT, u.x+u.w, u.y+u.h)
	clipped := screen.SubImage(inner).(*ebiten.Image)
	for _, c := range u.cmds {
		dst := screen
		if c.clip {
			dst = clipped
		}
		switch c.kind {
		case drawRect:
			vector.DrawFilledRect(dst, c.x, c.y, c.w, c.h, c.clr, false)
		case drawFrame:
			vector.StrokeRect(dst, c.x+0.5, c.y+0.5, c.w-1, c.h-1, 1, c.clr, false)
		case drawText:
			ebitenutil.DebugPrintAt(dst, c.text, int(c.x), int(c.y))
		}
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), 255}
}
