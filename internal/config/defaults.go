package config

import (
	_ "embed"
)

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultRocketConfig returns the default Retro Rocket configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Surface: RocketSurface{
			Width:           600,
			Height:          800,
			ReferenceWidth:  600,
			ReferenceHeight: 800,
		},
		Physics: RocketPhysics{
			Gravity: 0.05,
			Thrust:  -0.15,
		},
		Craft: RocketCraft{
			BodyWidth:  10,
			BodyHeight: 20,
		},
		Stars: RocketStars{
			Count:            50,
			MinSpeed:         0.1,
			SpeedRange:       0.5,
			ThrustMultiplier: 2,
		},
		Obstacles: RocketObstacles{
			SpawnInterval:      1.5,
			Margin:             20,
			AsteroidMinSize:    10,
			AsteroidSizeRange:  10,
			LaserWidthDivisor:  10,
			LaserHeight:        2,
			EnemyWidthDivisor:  20,
			EnemyHeightDivisor: 20,
			MinSpeed:           0.5,
			SpeedRange:         0.5,
			AsteroidThreshold:  0.5,
			LaserThreshold:     0.75,
		},
		Ground: RocketGround{
			Offset:      4,
			MarkSpacing: 2,
			MarkSize:    2,
		},
		Render: RocketRender{
			FlameFill:    0.5,
			AsteroidFill: 0.7,
		},
		Controls: RocketControls{
			KeyHoldMS: 180,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rocket":
		return defaultRocketYAML
	default:
		return nil
	}
}
