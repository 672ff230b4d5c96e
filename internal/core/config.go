package core

// RuntimeConfig contains host parameters passed to the simulation driver.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
	Scale    int   // Pixels per character column; rows are twice as tall
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Scale:    8,
	}
}

// PixelSize converts a character grid size to pixel space.
func (c RuntimeConfig) PixelSize(cols, rows int) (int, int) {
	scale := max(c.Scale, 1)
	return cols * scale, rows * scale * 2
}
