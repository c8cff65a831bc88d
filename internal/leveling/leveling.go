// Package leveling holds the experience curve, level-up growth and capture odds.
//
// Everything here is deterministic except for the draws taken from the
// supplied dice.Roller.
package leveling

import (
	"math"

	"github.com/samdwyer/monstertamer/internal/dice"
)

// MaxLevel is the level cap. No experience is gained past it.
const MaxLevel = 100

// Stats is the part of a monster the leveling rules read and write.
type Stats struct {
	Level     int
	Exp       int
	MaxHP     int
	CurrentHP int
	Attack    int
}

// StatChanges summarises the growth from one experience grant.
// The zero value means no level was gained.
type StatChanges struct {
	Level  int
	Health int
	Attack int
}

// LeveledUp reports whether at least one level was gained.
func (c StatChanges) LeveledUp() bool {
	return c.Level > 0
}

// TotalExpNeededForLevel returns the cumulative experience a monster has at the
// start of level. The curve is cubic and flat from MaxLevel on.
func TotalExpNeededForLevel(level int) int {
	if level >= MaxLevel {
		return MaxLevel * MaxLevel * MaxLevel
	}
	if level < 0 {
		return 0
	}
	return level * level * level
}

// ExpNeededForNextLevel returns how much more experience is required to reach
// the next level, or 0 at the cap.
func ExpNeededForNextLevel(level, exp int) int {
	if level >= MaxLevel {
		return 0
	}
	remaining := TotalExpNeededForLevel(level+1) - exp
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CalculateExpBarCurrentValue returns how full the experience bar is, in [0,1].
// It is 0 exactly at the level floor.
func CalculateExpBarCurrentValue(level, exp int) float64 {
	floor := TotalExpNeededForLevel(level)
	span := TotalExpNeededForLevel(level+1) - floor
	if span <= 0 {
		return 0
	}

	current := exp - floor
	if current <= 0 {
		return 0
	}
	if current >= span {
		return 1
	}
	return float64(current) / float64(span)
}

// CalculateExpGainedFromMonster returns the experience for defeating a monster
// of the given base yield and level. Party members that were not fighting get half.
func CalculateExpGainedFromMonster(baseExp, level int, isActive bool) int {
	share := 1.0
	if !isActive {
		share = 0.5
	}
	return int(math.Round(float64(baseExp*level) / 7 * share))
}

// HandleMonsterGainingExperience adds exp to s and applies every level-up it
// earns. Each level rolls +1..+2 attack and +5..+8 health (max and current).
// A monster at the cap is left untouched.
func HandleMonsterGainingExperience(s *Stats, exp int, roller dice.Roller) StatChanges {
	var changes StatChanges
	if s.Level >= MaxLevel || exp <= 0 {
		return changes
	}

	s.Exp += exp
	for s.Level < MaxLevel && s.Exp >= TotalExpNeededForLevel(s.Level+1) {
		s.Level++

		attack := 1 + roller.Between(0, 1)
		health := roller.Between(5, 8)

		s.Attack += attack
		s.MaxHP += health
		s.CurrentHP += health

		changes.Level++
		changes.Attack += attack
		changes.Health += health
	}
	return changes
}
