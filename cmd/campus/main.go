// cmd/campus/main.go
package main

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hexpod-campus/internal/app"
	"go-hexpod-campus/internal/config"
	"go-hexpod-campus/internal/state"
)

func main() {
	settings, err := config.LoadSettings("settings.yaml")
	if err != nil {
		log.Fatal(err)
	}

	campus, err := app.NewApp(settings)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(int32(settings.ScreenWidth), int32(settings.ScreenHeight), "Hexpod Campus")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // ESC is an in-app action, not quit

	sm := state.NewMachine()
	sm.SetState(state.NewOrbitState(sm, campus))

	background := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, config.BackgroundColor.A)
	lastUpdate := time.Now()
	for !rl.WindowShouldClose() {
		now := time.Now()
		deltaTime := now.Sub(lastUpdate).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdate = now

		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(background)
		sm.Draw()
		rl.EndDrawing()
	}
}
