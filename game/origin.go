package game

import "image/color"

// LaserOrigin represents which side fired a laser
type LaserOrigin int

const (
	OriginPlayer LaserOrigin = iota
	OriginEnemy
)

// LaserColor is the bolt color
type LaserColor int

const (
	LaserBlue LaserColor = iota
	LaserRed
	LaserPurple
	LaserGreen
	LaserOrange
	LaserYellow
)

// OriginConfig holds configuration for each laser origin
type OriginConfig struct {
	Origin LaserOrigin
	Tag    Tag
	Speed  float64
}

// GetOriginConfig returns configuration for a laser origin
func GetOriginConfig(origin LaserOrigin, lasers LaserConfig) OriginConfig {
	switch origin {
	case OriginEnemy:
		return OriginConfig{Origin: origin, Tag: TagEnemyLaser, Speed: lasers.EnemySpeed}
	default:
		return OriginConfig{Origin: OriginPlayer, Tag: TagPlayerLaser, Speed: lasers.PlayerSpeed}
	}
}

// GetLaserColor returns the draw color for a laser
func GetLaserColor(c LaserColor) color.RGBA {
	switch c {
	case LaserRed:
		return color.RGBA{255, 70, 70, 255}
	case LaserPurple:
		return color.RGBA{190, 90, 255, 255}
	case LaserGreen:
		return color.RGBA{90, 255, 120, 255}
	case LaserOrange:
		return color.RGBA{255, 160, 50, 255}
	case LaserYellow:
		return color.RGBA{255, 240, 80, 255}
	default:
		return color.RGBA{80, 170, 255, 255} // Blue, the player's color
	}
}
