package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Step returns the fixed simulation time slice consumed by one tick.
func (c RuntimeConfig) Step() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// StepSeconds returns Step as fractional seconds for motion integration.
func (c RuntimeConfig) StepSeconds() float64 {
	return c.Step().Seconds()
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Science gathered this run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
