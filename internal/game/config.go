package game

import (
	"time"

	"github.com/samdwyer/monstertamer/internal/store"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible maps and encounters.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// FPS is how often the scene stack is updated and drawn. Defaults to 30.
	FPS int
	// SkipAnimations forces skip mode in every battle.
	SkipAnimations bool
	// TextSpeed overrides the saved text speed when non-empty.
	TextSpeed string
	// Muted silences the terminal bell used for sound effects.
	Muted bool
}

func (c Config) frameDuration() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// textDelay returns the override for battle text, or 0 to use the saved options.
func (c Config) textDelay() time.Duration {
	if c.TextSpeed == "" {
		return 0
	}
	return store.ParseTextSpeed(c.TextSpeed).Delay()
}
