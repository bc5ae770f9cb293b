package game

import "time"

// Collectable is a stationary pickup
type Collectable struct {
	Body

	Type CollectableType
}

// newCollectable creates a pickup at pos
func newCollectable(ctx *Context, t CollectableType, pos Position) *Collectable {
	return &Collectable{
		Body: newBody(ctx, Sprite{Kind: SpriteCollectable, Variant: int(t), Scale: 0.15}, pos, TagCollectable),
		Type: t,
	}
}

// Kind returns KindCollectable
func (c *Collectable) Kind() EntityKind {
	return KindCollectable
}

// Finish removes the pickup's visual
func (c *Collectable) Finish() {
	c.finish()
}

// Update grants the pickup once the player touches it
func (c *Collectable) Update(now time.Time) {
	if c.finished {
		return
	}
	player := c.ctx.World.Player()
	if player == nil || !collides(c.ctx.Scene, c.Visual, player.Visual) {
		return
	}
	if typeCfg := GetCollectableTypeConfig(c.Type); typeCfg.Valid {
		c.ctx.Bus.Send(typeCfg.Action)
	}
	c.ctx.Audio.Play(EffectPickup)
	c.Finish()
}
