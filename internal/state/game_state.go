// internal/state/game_state.go
package state

import (
	"night-guard/internal/app"
	"night-guard/internal/component"
	"night-guard/internal/config"
	"night-guard/internal/input"
	"night-guard/internal/ui"
	"night-guard/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameState - состояние игры: ввод, тик сессии, отрисовка
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	input    *input.Mapper
	renderer *render.RoomRenderer
	power    *ui.PowerIndicator
	score    *ui.ScoreIndicator
	banner   *ui.Banner
}

func NewGameState(sm *StateMachine, game *app.Game, mapper *input.Mapper, face text.Face) *GameState {
	roomColors := &render.RoomColors{
		BackgroundColor: config.BackgroundColor,
		DoorOpenColor:   config.DoorOpenColor,
		DoorClosedColor: config.DoorClosedColor,
		DoorStrokeColor: config.DoorStrokeColor,
		DeskColor:       config.DeskColor,
		MonsterColor:    config.MonsterColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}

	return &GameState{
		sm:       sm,
		game:     game,
		input:    mapper,
		renderer: render.NewRoomRenderer(roomColors, config.ScreenWidth, config.ScreenHeight),
		power:    ui.NewPowerIndicator(config.HUDMarginX, config.PowerY, face),
		score:    ui.NewScoreIndicator(config.HUDMarginX, config.ScoreY, face),
		banner:   ui.NewBanner(face),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() error {
	cmds := g.input.Poll()
	if input.Has(cmds, component.CommandQuit) {
		return ebiten.Termination
	}
	if input.Has(cmds, component.CommandPause) && !g.game.IsGameOver() {
		g.sm.SetState(NewPauseState(g.sm, g, g.input))
		return nil
	}
	g.game.Tick(cmds)
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()

	g.renderer.Draw(screen, snap)
	g.banner.DrawTitle(screen)
	g.score.Draw(screen, snap.Score)
	g.power.Draw(screen, snap.Power)
	if snap.GameOver {
		g.banner.DrawGameOver(screen, snap.Reason)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
