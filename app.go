package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App drives the frame loop: pace the timer, snapshot input, rebuild the
// settings panel, then replay its draw commands in Draw.
type App struct {
	timer       frameTimer
	ui          uiContext
	runningTime float64
	checked     bool
}

func newApp() *App {
	return &App{
		timer: makeFrameTimer(),
		ui:    makeUIContext("Settings", PANEL_X, PANEL_Y, PANEL_WIDTH, PANEL_HEIGHT),
	}
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	a.step(readInput())
	return nil
}

// step runs one frame of panel logic against an input snapshot. Split out
// from Update so tests can drive frames without a display.
func (a *App) step(in uiInput) {
	a.timer.start()
	dt := a.timer.delta()
	a.runningTime += dt

	a.ui.updateTime(a.runningTime, dt)
	a.ui.begin(in)
	for i := 0; i < WELCOME_ROWS; i++ {
		a.ui.label("Welcome!")
	}
	a.ui.label("Welcomeeeeeeeeeeeeeeeeeeeeeeeeeeeee!")
	if a.ui.button("Press me") {
		log.Println("you pressed me!")
	}
	a.ui.checkbox(&a.checked, "checkbox1")
	a.ui.end()
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(palette.background)
	a.ui.replay(screen)
	debugInfo := ""
	debugInfo += fmt.Sprintf("FPS: %0.4g\n", ebiten.ActualFPS())
	debugInfo += fmt.Sprintf("Frame delta: %0.4f s\n", a.timer.delta())
	debugInfo += fmt.Sprintf("Running: %0.1f s\n", a.runningTime)
	ebitenutil.DebugPrint(screen, debugInfo)
	a.timer.stop()
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
