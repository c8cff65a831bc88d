package store

import (
	"strings"
	"time"
)

// TextSpeed is how quickly the info pane reveals text.
type TextSpeed string

const (
	TextSpeedSlow TextSpeed = "SLOW"
	TextSpeedMid  TextSpeed = "MID"
	TextSpeedFast TextSpeed = "FAST"
)

// ParseTextSpeed reads a speed name, case-insensitively. Unknown names give TextSpeedMid.
func ParseTextSpeed(s string) TextSpeed {
	switch TextSpeed(strings.ToUpper(strings.TrimSpace(s))) {
	case TextSpeedSlow:
		return TextSpeedSlow
	case TextSpeedFast:
		return TextSpeedFast
	default:
		return TextSpeedMid
	}
}

// Delay returns the pause between revealed runes.
func (t TextSpeed) Delay() time.Duration {
	switch t {
	case TextSpeedSlow:
		return 60 * time.Millisecond
	case TextSpeedFast:
		return 15 * time.Millisecond
	default:
		return 30 * time.Millisecond
	}
}

// Options are the player's settings. They are read once when a battle starts.
type Options struct {
	SkipBattleAnimations bool      `json:"skipBattleAnimations"`
	TextSpeed            TextSpeed `json:"textSpeed"`
}

// DefaultOptions returns the settings for a fresh profile.
func DefaultOptions() *Options {
	return &Options{TextSpeed: TextSpeedMid}
}
