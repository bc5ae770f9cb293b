package game

import "image/color"

// EnemyColor is the enemy paint job, it also picks the laser color
type EnemyColor int

const (
	EnemyRed EnemyColor = iota
	EnemyPurple
	EnemyGreen
	EnemyOrange
	EnemyYellow
	enemyColorCount
)

// EnemyVariant is the enemy hull size, it decides the score
type EnemyVariant int

const (
	EnemySmall EnemyVariant = iota
	EnemyMedium
	EnemyLarge
	EnemyHuge
	enemyVariantCount
)

// EnemyVariantConfig holds configuration for each enemy variant
type EnemyVariantConfig struct {
	Variant EnemyVariant
	Name    string
	Score   int
}

// GetEnemyVariantConfig returns configuration for an enemy variant
func GetEnemyVariantConfig(variant EnemyVariant) EnemyVariantConfig {
	switch variant {
	case EnemySmall:
		return EnemyVariantConfig{Variant: variant, Name: "small", Score: 5}
	case EnemyMedium:
		return EnemyVariantConfig{Variant: variant, Name: "medium", Score: 10}
	case EnemyLarge:
		return EnemyVariantConfig{Variant: variant, Name: "large", Score: 20}
	case EnemyHuge:
		return EnemyVariantConfig{Variant: variant, Name: "huge", Score: 50}
	default:
		// Unknown variants are worth nothing
		return EnemyVariantConfig{Variant: variant, Name: "unknown"}
	}
}

// EnemyColorConfig holds configuration for each enemy color
type EnemyColorConfig struct {
	Color EnemyColor
	Laser LaserColor
	RGBA  color.RGBA
}

// GetEnemyColorConfig returns configuration for an enemy color
func GetEnemyColorConfig(c EnemyColor) EnemyColorConfig {
	switch c {
	case EnemyRed:
		return EnemyColorConfig{Color: c, Laser: LaserRed, RGBA: color.RGBA{220, 50, 50, 255}}
	case EnemyPurple:
		return EnemyColorConfig{Color: c, Laser: LaserPurple, RGBA: color.RGBA{160, 70, 220, 255}}
	case EnemyGreen:
		return EnemyColorConfig{Color: c, Laser: LaserGreen, RGBA: color.RGBA{60, 200, 90, 255}}
	case EnemyOrange:
		return EnemyColorConfig{Color: c, Laser: LaserOrange, RGBA: color.RGBA{255, 140, 30, 255}}
	case EnemyYellow:
		return EnemyColorConfig{Color: c, Laser: LaserYellow, RGBA: color.RGBA{240, 220, 40, 255}}
	default:
		return EnemyColorConfig{Color: c, Laser: LaserRed, RGBA: color.RGBA{255, 255, 255, 255}}
	}
}

// enemySprite packs color and variant into a sprite variant
func enemySprite(c EnemyColor, v EnemyVariant) Sprite {
	return Sprite{Kind: SpriteEnemy, Variant: int(c)*int(enemyVariantCount) + int(v), Scale: 0.7}
}

// EnemySpriteParts unpacks a sprite variant made by enemySprite
func EnemySpriteParts(variant int) (EnemyColor, EnemyVariant) {
	n := int(enemyVariantCount)
	return EnemyColor(variant / n), EnemyVariant(variant % n)
}

// MeteoriteColor is the rock tint
type MeteoriteColor int

const (
	MeteoriteWhite MeteoriteColor = iota
	MeteoriteGray
	meteoriteColorCount
)

// MeteoriteSize decides score, explosion scale and whether it shatters
type MeteoriteSize int

const (
	MeteoriteSmall MeteoriteSize = iota
	MeteoriteMedium
	MeteoriteLarge
	meteoriteSizeCount
)

// MeteoriteSizeConfig holds configuration for each meteorite size
type MeteoriteSizeConfig struct {
	Size           MeteoriteSize
	Name           string
	Score          int
	Scale          float64 // Visual scale
	ExplosionScale float64

	// Smaller is the size of shatter children, only valid when CanShatter
	Smaller    MeteoriteSize
	CanShatter bool
}

// GetMeteoriteSizeConfig returns configuration for a meteorite size
func GetMeteoriteSizeConfig(size MeteoriteSize) MeteoriteSizeConfig {
	switch size {
	case MeteoriteSmall:
		return MeteoriteSizeConfig{
			Size:           size,
			Name:           "small",
			Score:          1,
			Scale:          0.5,
			ExplosionScale: 0.3,
		}
	case MeteoriteMedium:
		return MeteoriteSizeConfig{
			Size:           size,
			Name:           "medium",
			Score:          2,
			Scale:          1,
			ExplosionScale: 0.45,
			Smaller:        MeteoriteSmall,
			CanShatter:     true,
		}
	case MeteoriteLarge:
		return MeteoriteSizeConfig{
			Size:           size,
			Name:           "large",
			Score:          3,
			Scale:          1.5,
			ExplosionScale: 0.75,
			Smaller:        MeteoriteMedium,
			CanShatter:     true,
		}
	default:
		// No score, no shatter, nominal visuals
		return MeteoriteSizeConfig{Size: size, Name: "unknown", Scale: 1, ExplosionScale: 1}
	}
}

// GetMeteoriteColor returns the draw color for a meteorite tint
func GetMeteoriteColor(c MeteoriteColor) color.RGBA {
	if c == MeteoriteGray {
		return color.RGBA{130, 130, 140, 255}
	}
	return color.RGBA{215, 210, 200, 255}
}

// CollectableType is what a pickup grants
type CollectableType int

const (
	CollectableLife CollectableType = iota
	CollectableLaser
	CollectableShield
	collectableTypeCount
)

// CollectableTypeConfig holds configuration for each collectable type
type CollectableTypeConfig struct {
	Type CollectableType
	Name string

	// Action broadcast on pickup
	Action Action
	Valid  bool
	RGBA   color.RGBA
}

// GetCollectableTypeConfig returns configuration for a collectable type
func GetCollectableTypeConfig(t CollectableType) CollectableTypeConfig {
	switch t {
	case CollectableLife:
		return CollectableTypeConfig{Type: t, Name: "life", Action: ActionAddLife, Valid: true, RGBA: color.RGBA{230, 60, 90, 255}}
	case CollectableLaser:
		return CollectableTypeConfig{Type: t, Name: "laser", Action: ActionIncreaseLaserLevel, Valid: true, RGBA: color.RGBA{70, 140, 255, 255}}
	case CollectableShield:
		return CollectableTypeConfig{Type: t, Name: "shield", Action: ActionShieldOn, Valid: true, RGBA: color.RGBA{90, 230, 230, 255}}
	default:
		return CollectableTypeConfig{Type: t, Name: "unknown", RGBA: color.RGBA{255, 255, 255, 255}}
	}
}

// CollectableWeight pairs a type with its draw weight
type CollectableWeight struct {
	Type   CollectableType
	Weight float64
}

// Weights returns the configured drop weights in draw order
func (c CollectableConfig) Weights() []CollectableWeight {
	return []CollectableWeight{
		{Type: CollectableLife, Weight: c.LifeWeight},
		{Type: CollectableLaser, Weight: c.LaserWeight},
		{Type: CollectableShield, Weight: c.ShieldWeight},
	}
}

// ChooseCollectable draws a type over the cumulative weights. u is uniform in [0,1).
// ok is false when no weight is positive.
func ChooseCollectable(weights []CollectableWeight, u float64) (CollectableType, bool) {
	total := 0.0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		return 0, false
	}
	cut := u * total
	acc := 0.0
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		acc += w.Weight
		if cut < acc {
			return w.Type, true
		}
	}
	return 0, false
}
