package entity

import (
	"math"
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/leveling"
)

// Side is which half of the battlefield a monster fights on.
type Side int

const (
	// SidePlayer is the bottom-left position, facing the enemy, with an exp bar.
	SidePlayer Side = iota
	// SideEnemy is the top-right position.
	SideEnemy
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

const (
	healthBarDuration  = time.Second
	expBarDuration     = 1500 * time.Millisecond
	appearDuration     = 1600 * time.Millisecond
	barAppearDuration  = 800 * time.Millisecond
	takeDamageDuration = 750 * time.Millisecond
	deathDuration      = 2000 * time.Millisecond
	catchDuration      = 500 * time.Millisecond

	// slideDistance is how far off screen a monster starts and ends, in cells.
	slideDistance      = 30
	takeDamageFlickers = 10
)

// Visual is the drawable state of a battle monster.
type Visual struct {
	Visible          bool
	OffsetX          int
	OffsetY          int
	Alpha            float64
	HealthBar        float64
	HealthBarVisible bool
	ExpBar           float64
}

// BattleMonsterConfig binds a battle monster to its record and timeline.
type BattleMonsterConfig struct {
	Record         *Monster
	Attacks        []*gamedata.AttackDef
	Side           Side
	Timeline       *anim.Timeline
	SkipAnimations bool
}

// BattleMonster is the battle-side view of a Monster record.
// It owns the monster's visual state and mutates only the record's numbers;
// it never drives the battle flow itself.
type BattleMonster struct {
	record  *Monster
	attacks []*gamedata.AttackDef
	side    Side
	tl      *anim.Timeline
	skip    bool

	healthBar *Bar
	expBar    *Bar

	visible bool
	offsetX float64
	offsetY float64
	alpha   float64
}

// NewBattleMonster creates the battle-side monster. It starts hidden until its appear animation plays.
func NewBattleMonster(cfg BattleMonsterConfig) *BattleMonster {
	bm := &BattleMonster{
		record:  cfg.Record,
		attacks: cfg.Attacks,
		side:    cfg.Side,
		tl:      cfg.Timeline,
		skip:    cfg.SkipAnimations,
		alpha:   1,
	}
	bm.healthBar = NewBar(cfg.Timeline, cfg.Record.HealthRatio())
	bm.healthBar.SetVisible(false)
	bm.expBar = NewBar(cfg.Timeline, leveling.CalculateExpBarCurrentValue(cfg.Record.CurrentLevel, cfg.Record.CurrentExp))
	bm.expBar.SetVisible(cfg.Side == SidePlayer)
	return bm
}

// =============================================================================
// Stats
// =============================================================================

// Record returns the underlying persisted record.
func (bm *BattleMonster) Record() *Monster { return bm.record }

// Side returns which side this monster fights on.
func (bm *BattleMonster) Side() Side { return bm.side }

// GetName returns the monster's name.
func (bm *BattleMonster) GetName() string { return bm.record.Name }

// GetLevel returns the current level.
func (bm *BattleMonster) GetLevel() int { return bm.record.CurrentLevel }

// GetHP returns current HP.
func (bm *BattleMonster) GetHP() int { return bm.record.CurrentHP }

// GetMaxHP returns maximum HP.
func (bm *BattleMonster) GetMaxHP() int { return bm.record.MaxHP }

// GetAttack returns the attack stat used for damage.
func (bm *BattleMonster) GetAttack() int { return bm.record.CurrentAttack }

// GetBaseExp returns the species experience yield.
func (bm *BattleMonster) GetBaseExp() int { return bm.record.BaseExp }

// GetAttacks returns the attack roster.
func (bm *BattleMonster) GetAttacks() []*gamedata.AttackDef { return bm.attacks }

// IsFainted returns true if the monster has no HP left.
func (bm *BattleMonster) IsFainted() bool { return bm.record.IsFainted() }

// Visual returns the drawable state.
func (bm *BattleMonster) Visual() Visual {
	return Visual{
		Visible:          bm.visible,
		OffsetX:          int(math.Round(bm.offsetX)),
		OffsetY:          int(math.Round(bm.offsetY)),
		Alpha:            bm.alpha,
		HealthBar:        bm.healthBar.Value(),
		HealthBarVisible: bm.healthBar.Visible(),
		ExpBar:           bm.expBar.Value(),
	}
}

// =============================================================================
// Mutations
// =============================================================================

// TakeDamage lowers HP (never below zero) and animates the health bar.
// onComplete runs once the bar has settled.
func (bm *BattleMonster) TakeDamage(amount int, onComplete func()) {
	bm.record.TakeDamage(amount)
	bm.healthBar.SetAnimated(bm.record.HealthRatio(), healthBarDuration, bm.skip, onComplete)
}

// UpdateMonsterHealth sets HP directly, e.g. after an item, without an animation chain.
func (bm *BattleMonster) UpdateMonsterHealth(hp int) {
	bm.record.SetCurrentHP(hp)
	bm.healthBar.Set(bm.record.HealthRatio())
}

// UpdateMonsterExp grants experience and jumps the bars to the result.
func (bm *BattleMonster) UpdateMonsterExp(exp int, roller dice.Roller) leveling.StatChanges {
	changes := bm.record.GainExperience(exp, roller)
	bm.expBar.Set(leveling.CalculateExpBarCurrentValue(bm.record.CurrentLevel, bm.record.CurrentExp))
	bm.healthBar.Set(bm.record.HealthRatio())
	return changes
}

// UpdateMonsterExpAnimated grants experience and animates the exp bar: it fills
// once per level gained, then grows to the new value. onComplete runs when the bar settles.
func (bm *BattleMonster) UpdateMonsterExpAnimated(exp int, roller dice.Roller, onComplete func()) leveling.StatChanges {
	changes := bm.record.GainExperience(exp, roller)
	target := leveling.CalculateExpBarCurrentValue(bm.record.CurrentLevel, bm.record.CurrentExp)

	seq := anim.NewSequence()
	for i := 0; i < changes.Level; i++ {
		seq.Then(func(done func()) {
			bm.expBar.SetAnimated(1, expBarDuration, bm.skip, func() {
				bm.expBar.Set(0)
				done()
			})
		})
	}
	seq.Then(func(done func()) {
		bm.expBar.SetAnimated(target, expBarDuration, bm.skip, done)
	})
	seq.Run(func() {
		bm.healthBar.Set(bm.record.HealthRatio())
		if onComplete != nil {
			onComplete()
		}
	})
	return changes
}

// PickRandomMove returns a uniformly chosen index into the attack roster, or -1 if it is empty.
func (bm *BattleMonster) PickRandomMove(roller dice.Roller) int {
	if len(bm.attacks) == 0 {
		return -1
	}
	return roller.Between(0, len(bm.attacks)-1)
}

// SwitchMonster replaces the monster in this position without leaving battle.
// The bars are reset to the new monster's values.
func (bm *BattleMonster) SwitchMonster(record *Monster, attacks []*gamedata.AttackDef) {
	bm.record = record
	bm.attacks = attacks
	bm.healthBar.Set(record.HealthRatio())
	bm.healthBar.SetVisible(false)
	bm.expBar.Set(leveling.CalculateExpBarCurrentValue(record.CurrentLevel, record.CurrentExp))
	bm.visible = false
	bm.alpha = 1
	bm.offsetX, bm.offsetY = 0, 0
}

// =============================================================================
// Animations
// =============================================================================

// PlayMonsterAppearAnimation slides the monster in from its side of the screen.
func (bm *BattleMonster) PlayMonsterAppearAnimation(onComplete func()) {
	start := float64(-slideDistance)
	if bm.side == SideEnemy {
		start = slideDistance
	}
	bm.visible = true
	bm.alpha = 1
	bm.offsetY = 0
	bm.tl.Tween(anim.TweenConfig{
		From:       start,
		To:         0,
		Duration:   appearDuration,
		Skip:       bm.skip,
		OnUpdate:   func(v float64) { bm.offsetX = v },
		OnComplete: onComplete,
	})
}

// PlayMonsterHealthBarAppearAnimation shows the health bar.
func (bm *BattleMonster) PlayMonsterHealthBarAppearAnimation(onComplete func()) {
	bm.healthBar.SetVisible(true)
	bm.tl.Tween(anim.TweenConfig{
		From:       0,
		To:         1,
		Duration:   barAppearDuration,
		Skip:       bm.skip,
		OnComplete: onComplete,
	})
}

// PlayTakeDamageAnimation flickers the monster.
func (bm *BattleMonster) PlayTakeDamageAnimation(onComplete func()) {
	bm.tl.Tween(anim.TweenConfig{
		From:     0,
		To:       takeDamageFlickers,
		Duration: takeDamageDuration,
		Skip:     bm.skip,
		OnUpdate: func(v float64) {
			if int(v)%2 == 0 {
				bm.alpha = 1
			} else {
				bm.alpha = 0
			}
		},
		OnComplete: func() {
			bm.alpha = 1
			if onComplete != nil {
				onComplete()
			}
		},
	})
}

// PlayDeathAnimation drops the monster out of view and hides it.
func (bm *BattleMonster) PlayDeathAnimation(onComplete func()) {
	bm.tl.Tween(anim.TweenConfig{
		From:     0,
		To:       slideDistance / 3,
		Duration: deathDuration,
		Skip:     bm.skip,
		OnUpdate: func(v float64) { bm.offsetY = v },
		OnComplete: func() {
			bm.visible = false
			bm.healthBar.SetVisible(false)
			if onComplete != nil {
				onComplete()
			}
		},
	})
}

// PlayCatchAnimation fades the monster into the ball.
func (bm *BattleMonster) PlayCatchAnimation(onComplete func()) {
	bm.fade(1, 0, onComplete)
}

// PlayCatchAnimationFailed fades the monster back out of the ball.
func (bm *BattleMonster) PlayCatchAnimationFailed(onComplete func()) {
	bm.fade(0, 1, onComplete)
}

func (bm *BattleMonster) fade(from, to float64, onComplete func()) {
	bm.tl.Tween(anim.TweenConfig{
		From:       from,
		To:         to,
		Duration:   catchDuration,
		Skip:       bm.skip,
		OnUpdate:   func(v float64) { bm.alpha = v },
		OnComplete: onComplete,
	})
}
