// Package config provides YAML-based configuration loading for Retro Rocket.
package config

// RocketConfig contains all configuration for the Retro Rocket game.
type RocketConfig struct {
	Surface   RocketSurface   `yaml:"surface"`
	Physics   RocketPhysics   `yaml:"physics"`
	Craft     RocketCraft     `yaml:"craft"`
	Stars     RocketStars     `yaml:"stars"`
	Obstacles RocketObstacles `yaml:"obstacles"`
	Ground    RocketGround    `yaml:"ground"`
	Render    RocketRender    `yaml:"render"`
	Controls  RocketControls  `yaml:"controls"`
}

// RocketSurface defines the default surface and the reference size that
// physics and sprites are scaled against.
type RocketSurface struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	ReferenceWidth  float64 `yaml:"reference_width"`  // Scale = width / reference_width
	ReferenceHeight float64 `yaml:"reference_height"` // Gravity and thrust scale by height / reference_height
}

// RocketPhysics defines per-tick accelerations at the reference height.
// They are added once per tick, not per second.
type RocketPhysics struct {
	Gravity float64 `yaml:"gravity"`
	Thrust  float64 `yaml:"thrust"` // Negative = upward
}

// RocketCraft defines the craft body in reference pixels.
type RocketCraft struct {
	BodyWidth  float64 `yaml:"body_width"`
	BodyHeight float64 `yaml:"body_height"`
}

// RocketStars defines the parallax star field.
type RocketStars struct {
	Count            int     `yaml:"count"`
	MinSpeed         float64 `yaml:"min_speed"`
	SpeedRange       float64 `yaml:"speed_range"`
	ThrustMultiplier float64 `yaml:"thrust_multiplier"`
}

// RocketObstacles defines obstacle generation.
type RocketObstacles struct {
	SpawnInterval      float64 `yaml:"spawn_interval"` // Seconds between spawns
	Margin             float64 `yaml:"margin"`         // Keep-out band at top and bottom
	AsteroidMinSize    int     `yaml:"asteroid_min_size"`
	AsteroidSizeRange  int     `yaml:"asteroid_size_range"`
	LaserWidthDivisor  float64 `yaml:"laser_width_divisor"`
	LaserHeight        float64 `yaml:"laser_height"`
	EnemyWidthDivisor  float64 `yaml:"enemy_width_divisor"`
	EnemyHeightDivisor float64 `yaml:"enemy_height_divisor"`
	MinSpeed           float64 `yaml:"min_speed"`
	SpeedRange         float64 `yaml:"speed_range"`
	AsteroidThreshold  float64 `yaml:"asteroid_threshold"` // r < this => asteroid
	LaserThreshold     float64 `yaml:"laser_threshold"`    // r < this => laser, else enemy
}

// RocketGround defines the ground line.
type RocketGround struct {
	Offset      int `yaml:"offset"`       // Distance from the bottom edge
	MarkSpacing int `yaml:"mark_spacing"` // Step between ground marks
	MarkSize    int `yaml:"mark_size"`
}

// RocketRender defines fill probabilities for the sparse sprite blocks.
type RocketRender struct {
	FlameFill    float64 `yaml:"flame_fill"`
	AsteroidFill float64 `yaml:"asteroid_fill"`
}

// RocketControls defines host input tuning.
type RocketControls struct {
	// KeyHoldMS keeps keyboard thrust active this long after the last key
	// event, bridging terminal key-repeat gaps.
	KeyHoldMS int `yaml:"key_hold_ms"`
}
