package game

// VisualID identifies a visual owned by the scene
type VisualID uint64

// Tag classifies visuals for collision queries
type Tag int

const (
	TagNone Tag = iota
	TagPlayer
	TagPlayerLaser
	TagEnemyLaser
	TagEnemy
	TagMeteorite
	TagCollectable
	TagExplosion
	TagShield
	tagCount
)

// String returns the tag name
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagPlayerLaser:
		return "player-laser"
	case TagEnemyLaser:
		return "enemy-laser"
	case TagEnemy:
		return "enemy"
	case TagMeteorite:
		return "meteorite"
	case TagCollectable:
		return "collectable"
	case TagExplosion:
		return "explosion"
	case TagShield:
		return "shield"
	default:
		return "none"
	}
}

// SpriteKind selects the artwork for a visual
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteMeteorite
	SpriteLaser
	SpriteCollectable
	SpriteExplosion
	SpriteShield
)

// Sprite describes what to draw. Variant is kind specific: enemy color*4+variant,
// meteorite color, laser color or collectable type.
type Sprite struct {
	Kind    SpriteKind
	Variant int
	Scale   float64
}

// Scene is the rendering collaborator. The simulation creates, moves and removes
// visuals through it and asks it for bounds; it never draws.
type Scene interface {
	// CreateVisual adds a visual centered at pos
	CreateVisual(sprite Sprite, pos Position, tag Tag) VisualID

	// RemoveVisual detaches a visual, it reports false if it was already gone
	RemoveVisual(id VisualID) bool

	// Attached reports whether the visual is still in the scene
	Attached(id VisualID) bool

	// BoundsOf returns the visual's box, ok is false for a removed visual
	BoundsOf(id VisualID) (AABB, bool)

	// FindByTag returns the attached visuals with tag in creation order
	FindByTag(tag Tag) []VisualID

	// Footprint returns the width and height a sprite would occupy
	Footprint(sprite Sprite) (w, h float64)

	SetPosition(id VisualID, x, y float64)
	SetRotation(id VisualID, angle float64)
	SetAlpha(id VisualID, alpha float64)
	SetFrame(id VisualID, frame int)

	// Size returns the scene dimensions
	Size() (w, h float64)
}
