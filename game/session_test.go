package game

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionSpawnsPlayer(t *testing.T) {
	h := newHarness(t, quietConfig())
	require.NotNil(t, h.player())
	assert.Equal(t, 1, h.ctx.World.Len())
	assert.Equal(t, SessionRunning, h.session.State())

	p := h.player()
	assert.Equal(t, 720.0, p.Pos.X)
	assert.Equal(t, 700.0, p.Pos.Y)
	assert.Equal(t, 1, p.LaserLevel)
}

func TestSessionEscapeQuits(t *testing.T) {
	h := newHarness(t, quietConfig())
	h.step(3)
	h.keys[KeyEscape] = true
	h.step(1)

	assert.Equal(t, SessionQuit, h.session.State())
	assert.Equal(t, uint64(3), h.session.Ticks())
	assert.Empty(t, h.hud.gameOvers)
	assert.Equal(t, 0, h.ctx.World.Len())
	assert.Empty(t, h.stage.Visuals())

	h.step(5)
	assert.Equal(t, uint64(3), h.session.Ticks())
}

func TestSessionGameOverAfterLastLife(t *testing.T) {
	cfg := quietConfig()
	cfg.Stats.StartingLives = 1
	h := newHarness(t, cfg)
	p := h.player()
	h.ctx.Bus.Broadcast(Message{Action: ActionAddScore, Amount: 7})
	h.ctx.Factory.SpawnLaser(OriginEnemy, LaserRed, Position{X: p.Pos.X, Y: p.Pos.Y}, false)
	h.settle()

	h.step(1)
	assert.True(t, h.session.Stats().GameOverScheduled())
	assert.Equal(t, SessionRunning, h.session.State())

	h.step(1)
	assert.Equal(t, SessionOver, h.session.State())
	assert.Equal(t, []int{7}, h.hud.gameOvers)

	over := h.msgs[len(h.msgs)-1]
	assert.Equal(t, ActionGameOver, over.Action)
	assert.Equal(t, 7, over.Amount)

	snap := h.session.Snapshot()
	assert.True(t, snap.GameOver)
	assert.Equal(t, 7, snap.Score)
	assert.Equal(t, 0, snap.Lives)
}

func TestSessionSnapshotJSON(t *testing.T) {
	h := newHarness(t, quietConfig())
	h.ctx.Factory.SpawnMeteorite(MeteoriteWhite, MeteoriteSmall, Position{X: 300, Y: 300})
	h.step(1)

	data, err := json.Marshal(h.session.Snapshot())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(1), got["tick"])
	assert.Equal(t, float64(3), got["lives"])
	assert.Equal(t, false, got["game_over"])
	entities, ok := got["entities"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), entities["player"])
	assert.Equal(t, float64(1), entities["meteorite"])
}

func TestSessionSoak(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawner.EnemyIntensity = 120
	cfg.Spawner.MeteoriteIntensity = 120
	cfg.Collectable.SpawnerEnabled = true
	cfg.Collectable.SpawnerIntensity = 30

	for seed := int64(1); seed <= 5; seed++ {
		clock := NewStepClock(testEpoch)
		hud := &recordingHUD{}
		s := NewSession(cfg, Dependencies{
			Clock: clock,
			HUD:   hud,
			Rand:  rand.New(rand.NewSource(seed)),
		})
		s.Bus().Send(ActionPointerDown)

		lastScore := 0
		for i := 0; i < 3600 && s.State() == SessionRunning; i++ {
			clock.Advance(cfg.TickDuration())
			s.Tick()

			st := s.Stats()
			require.GreaterOrEqual(t, st.Lives, 0)
			require.LessOrEqual(t, st.Lives, cfg.Stats.MaxLives)
			require.GreaterOrEqual(t, st.Score, lastScore)
			lastScore = st.Score
			if s.State() == SessionRunning && !st.GameOverScheduled() {
				require.NotNil(t, s.World().Player(), "tick %d", i)
			}
		}
		assert.LessOrEqual(t, len(hud.gameOvers), 1)
	}
}
