// cmd/game/main.go
package main

import (
	"log"

	"night-guard/internal/app"
	"night-guard/internal/audio"
	"night-guard/internal/config"
	"night-guard/internal/event"
	"night-guard/internal/input"
	"night-guard/internal/state"
	"night-guard/internal/utils"
	"night-guard/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rng := utils.NewPRNGService(config.Seed)
	log.Printf("Seed: %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	cues := audio.NewCuePlayer()
	if err := cues.Initialize(); err != nil {
		// не фатально, играем без звука
		log.Printf("Audio initialization failed: %v", err)
	}
	defer cues.Cleanup()
	cues.Subscribe(dispatcher)

	face, err := render.NewFontFace(config.FontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(rng, dispatcher)
	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, game, input.NewMapper(nil), face))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)
	// RunGame возвращает nil, когда Update вернул ebiten.Termination
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
	log.Printf("Bye. Final score: %d", game.Score())
}
