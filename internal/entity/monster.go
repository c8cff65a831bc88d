// Package entity provides the persisted monster records and their battle-side representation.
package entity

import (
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/leveling"
)

// Monster is the persisted record of a monster the player owns or meets.
type Monster struct {
	ID            string `json:"id"`        // Stable identity across battles
	MonsterID     int    `json:"monsterId"` // Species ID in the data tables
	Name          string `json:"name"`
	AssetKey      string `json:"assetKey"`
	CurrentLevel  int    `json:"currentLevel"`
	CurrentExp    int    `json:"currentExp"`
	MaxHP         int    `json:"maxHp"`
	CurrentHP     int    `json:"currentHp"`
	BaseAttack    int    `json:"baseAttack"`
	CurrentAttack int    `json:"currentAttack"`
	BaseExp       int    `json:"baseExp"`
	AttackIDs     []int  `json:"attackIds"`
}

// NewMonster creates a monster of the given species at level, with full health.
// Stats grow by 2 HP and 1 attack per level above 1.
func NewMonster(id string, species *gamedata.SpeciesDef, level int) *Monster {
	if level < 1 {
		level = 1
	}
	maxHP := species.MaxHP + 2*(level-1)
	attack := species.BaseAttack + (level - 1)

	attackIDs := make([]int, len(species.AttackIDs))
	copy(attackIDs, species.AttackIDs)

	return &Monster{
		ID:            id,
		MonsterID:     species.ID,
		Name:          species.Name,
		AssetKey:      species.AssetKey,
		CurrentLevel:  level,
		CurrentExp:    leveling.TotalExpNeededForLevel(level),
		MaxHP:         maxHP,
		CurrentHP:     maxHP,
		BaseAttack:    species.BaseAttack,
		CurrentAttack: attack,
		BaseExp:       species.BaseExp,
		AttackIDs:     attackIDs,
	}
}

// IsFainted returns true if the monster has no HP left.
func (m *Monster) IsFainted() bool { return m.CurrentHP <= 0 }

// SetCurrentHP sets HP, clamped to [0, MaxHP].
func (m *Monster) SetCurrentHP(hp int) {
	switch {
	case hp < 0:
		m.CurrentHP = 0
	case hp > m.MaxHP:
		m.CurrentHP = m.MaxHP
	default:
		m.CurrentHP = hp
	}
}

// TakeDamage reduces HP and returns actual damage taken.
func (m *Monster) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > m.CurrentHP {
		actual = m.CurrentHP
	}
	m.CurrentHP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (m *Monster) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if m.CurrentHP+actual > m.MaxHP {
		actual = m.MaxHP - m.CurrentHP
	}
	m.CurrentHP += actual
	return actual
}

// GainExperience adds exp and applies any level-ups.
func (m *Monster) GainExperience(exp int, roller dice.Roller) leveling.StatChanges {
	stats := leveling.Stats{
		Level:     m.CurrentLevel,
		Exp:       m.CurrentExp,
		MaxHP:     m.MaxHP,
		CurrentHP: m.CurrentHP,
		Attack:    m.CurrentAttack,
	}
	changes := leveling.HandleMonsterGainingExperience(&stats, exp, roller)

	m.CurrentLevel = stats.Level
	m.CurrentExp = stats.Exp
	m.MaxHP = stats.MaxHP
	m.CurrentAttack = stats.Attack
	m.SetCurrentHP(stats.CurrentHP)
	return changes
}

// HealthRatio returns CurrentHP/MaxHP in [0,1].
func (m *Monster) HealthRatio() float64 {
	if m.MaxHP <= 0 {
		return 0
	}
	return float64(m.CurrentHP) / float64(m.MaxHP)
}

// Clone returns a deep copy.
func (m *Monster) Clone() *Monster {
	c := *m
	c.AttackIDs = make([]int, len(m.AttackIDs))
	copy(c.AttackIDs, m.AttackIDs)
	return &c
}
