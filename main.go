package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/crazy3lf/colorconv"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	INITIAL_WIDTH  = 800
	INITIAL_HEIGHT = 600
	PANEL_X        = 40
	PANEL_Y        = 40
	PANEL_WIDTH    = 320
	PANEL_HEIGHT   = 360
	TITLE_HEIGHT   = 22
	ROW_HEIGHT     = 20
	ROW_PADDING    = 8
	CONTENT_PAD    = 4
	CHAR_WIDTH     = 6
	TEXT_HEIGHT    = 16
	WELCOME_ROWS   = 15
	BASE_HUE       = 215.0
	WHEEL_STEP     = 24.0
	HOVER_FADE     = 10.0
	ACCENT_SPEED   = 12.0
	PALETTE_SIZE   = 360
)

var (
	palette     = makePalette(BASE_HUE)
	accentTable = [PALETTE_SIZE]color.RGBA{}
)

type theme struct {
	background   color.RGBA
	panel        color.RGBA
	panelBorder  color.RGBA
	title        color.RGBA
	widget       color.RGBA
	widgetHover  color.RGBA
	widgetActive color.RGBA
}

func makePalette(hue float64) theme {
	shade := func(h, s, v float64) color.RGBA {
		r, g, b, _ := colorconv.HSVToRGB(math.Mod(h, 360), s, v)
		return color.RGBA{r, g, b, 255}
	}
	return theme{
		background:   shade(hue, 0.25, 0.10),
		panel:        shade(hue, 0.20, 0.16),
		panelBorder:  shade(hue, 0.15, 0.45),
		title:        shade(hue, 0.45, 0.28),
		widget:       shade(hue, 0.30, 0.30),
		widgetHover:  shade(hue, 0.45, 0.42),
		widgetActive: shade(hue+20, 0.55, 0.55),
	}
}

func genAccentTable() {
	for i := range accentTable {
		r, g, b, _ := colorconv.HSVToRGB(float64(i), 0.7, 0.85)
		accentTable[i] = color.RGBA{r, g, b, 255}
	}
}

// accentAt cycles slowly through the accent table as elapsed time grows.
func accentAt(elapsed float64) color.RGBA {
	i := int(math.Mod(elapsed*ACCENT_SPEED, PALETTE_SIZE))
	if i < 0 {
		i += PALETTE_SIZE
	}
	return accentTable[i]
}

func main() {
	fmt.Println("Program started")
	genAccentTable()
	app := newApp()
	fmt.Println("Panel set up, running...")
	ebiten.SetWindowSize(INITIAL_WIDTH, INITIAL_HEIGHT)
	ebiten.SetWindowTitle("settings-demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
