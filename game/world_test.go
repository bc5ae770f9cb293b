package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe counts its updates and teardowns
type probe struct {
	Body
	updates   int
	teardowns int
	onUpdate  func(p *probe)
}

func newProbe(ctx *Context) *probe {
	return &probe{Body: newBody(ctx, Sprite{Kind: SpriteExplosion, Scale: 1}, Position{}, TagExplosion)}
}

func (p *probe) Update(time.Time) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate(p)
	}
}

func (p *probe) Finish() {
	if p.finish() {
		p.teardowns++
	}
}

func (p *probe) Kind() EntityKind { return KindExplosion }

func TestWorldSpawnIsPendingUntilSweep(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	p := newProbe(h.ctx)
	handle := w.Spawn(p)
	w.Update(h.clock.Now())
	assert.Equal(t, 0, p.updates)

	_, ok := w.Get(handle)
	assert.True(t, ok)

	w.Sweep()
	w.Update(h.clock.Now())
	assert.Equal(t, 1, p.updates)
}

func TestWorldSpawnDuringUpdateWaitsForNextTick(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	var child *probe
	parent := newProbe(h.ctx)
	parent.onUpdate = func(*probe) {
		if child == nil {
			child = newProbe(h.ctx)
			w.Spawn(child)
		}
	}
	w.Spawn(parent)
	w.Sweep()

	w.Update(h.clock.Now())
	require.NotNil(t, child)
	assert.Equal(t, 0, child.updates)

	w.Sweep()
	w.Update(h.clock.Now())
	assert.Equal(t, 1, child.updates)
}

func TestWorldFinishedEntityNeverUpdatesAgain(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	p := newProbe(h.ctx)
	w.Spawn(p)
	w.Sweep()
	w.Update(h.clock.Now())

	p.Finish()
	p.Finish()
	assert.Equal(t, 1, p.teardowns)
	assert.False(t, h.stage.Attached(p.Visual))

	w.Update(h.clock.Now())
	w.Sweep()
	w.Update(h.clock.Now())
	assert.Equal(t, 1, p.updates)
}

func TestWorldStaleHandleAfterReuse(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	first := newProbe(h.ctx)
	old := w.Spawn(first)
	w.Sweep()
	first.Finish()
	w.Sweep()

	_, ok := w.Get(old)
	assert.False(t, ok)

	second := newProbe(h.ctx)
	fresh := w.Spawn(second)
	assert.Equal(t, old.Index, fresh.Index)
	assert.NotEqual(t, old.Gen, fresh.Gen)

	_, ok = w.Get(old)
	assert.False(t, ok)
	got, ok := w.Get(fresh)
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestWorldPlayerIncludesPending(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	old := w.Player()
	require.NotNil(t, old)
	old.Finish()
	assert.Nil(t, w.Player())

	fresh := h.ctx.Factory.SpawnPlayer()
	assert.Same(t, fresh, w.Player())
}

func TestWorldClearFinishesEverything(t *testing.T) {
	h := newHarness(t, quietConfig())
	w := h.ctx.World

	probes := []*probe{newProbe(h.ctx), newProbe(h.ctx)}
	for _, p := range probes {
		w.Spawn(p)
	}
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 1, w.Count(KindPlayer))

	w.Clear()
	assert.Equal(t, 0, w.Len())
	for _, p := range probes {
		assert.Equal(t, 1, p.teardowns)
	}
	assert.Empty(t, h.stage.Visuals())
}
