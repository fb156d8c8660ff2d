package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultAsteroidsYAML returns the embedded asteroids scene.
func DefaultAsteroidsYAML() []byte {
	return defaultAsteroidsYAML
}

// DefaultBounceYAML returns the embedded bounce scene.
func DefaultBounceYAML() []byte {
	return defaultBounceYAML
}

// LoadAsteroids loads the asteroids scene using the standard search order.
func LoadAsteroids(customPath string) (Scene, error) {
	return Load("asteroids", customPath, defaultAsteroidsYAML)
}

// LoadBounce loads the bounce scene using the standard search order.
func LoadBounce(customPath string) (Scene, error) {
	return Load("bounce", customPath, defaultBounceYAML)
}
