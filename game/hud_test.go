package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenHUDTracksStats(t *testing.T) {
	cfg := quietConfig()
	hud := NewScreenHUD(cfg.Stats.MaxLives)
	s := NewSession(cfg, Dependencies{HUD: hud, Clock: NewStepClock(testEpoch)})

	assert.Equal(t, cfg.Stats.StartingLives, hud.LivesShown())
	assert.True(t, hud.Lives[0])

	s.Bus().Broadcast(Message{Action: ActionAddScore, Amount: 12})
	s.Bus().Send(ActionRemoveLife)
	assert.Equal(t, 12, hud.Score)
	assert.Equal(t, cfg.Stats.StartingLives-1, hud.LivesShown())
	assert.False(t, hud.Lives[cfg.Stats.StartingLives-1])

	s.Bus().Send(ActionAddLife)
	assert.Equal(t, cfg.Stats.StartingLives, hud.LivesShown())
}

func TestScreenHUDIgnoresOutOfRangeSlots(t *testing.T) {
	hud := NewScreenHUD(2)
	hud.ShowLife(0)
	hud.ShowLife(3)
	assert.Equal(t, 0, hud.LivesShown())

	hud.ShowLife(2)
	hud.GameOver(99)
	assert.True(t, hud.Over)
	assert.Equal(t, 99, hud.FinalScore)

	hud.Reset()
	assert.Equal(t, 0, hud.LivesShown())
	assert.False(t, hud.Over)
	assert.Equal(t, 0, hud.FinalScore)
}
