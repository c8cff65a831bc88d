// Package battle runs a wild monster battle as a state machine.
//
// Every phase is a state whose enter handler schedules animations and
// messages, and moves the machine on from their completion callbacks. The
// handlers return right away; the game loop drives everything through Update.
package battle

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/combat"
	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/errors"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
	"github.com/samdwyer/monstertamer/internal/leveling"
	"github.com/samdwyer/monstertamer/internal/menu"
	"github.com/samdwyer/monstertamer/internal/scene"
	"github.com/samdwyer/monstertamer/internal/statemachine"
	"github.com/samdwyer/monstertamer/internal/store"
	"github.com/samdwyer/monstertamer/internal/telemetry"
)

// Config configures a battle.
type Config struct {
	Manager  *scene.Manager
	Store    *store.DataStore
	Registry *gamedata.Registry
	// Roller defaults to a time-seeded random roller.
	Roller dice.Roller
	// Enemy is the wild monster's record.
	Enemy *entity.Monster

	// Animator defaults to flashing the target's panel.
	Animator AttackAnimator
	// Audio defaults to silence.
	Audio AudioPlayer

	// SkipAnimations skips animations even when the stored options do not.
	SkipAnimations bool
	// TextDelay overrides the stored text speed when positive.
	TextDelay time.Duration

	// OnFinished runs after the battle scene has stopped.
	OnFinished func(Result)
}

// bringOutReason says where BRING_OUT_MONSTER goes next.
type bringOutReason int

const (
	bringOutFirst bringOutReason = iota
	bringOutSwitch
	bringOutReplacement
)

// subScene is the sub-scene the battle is waiting on.
type subScene int

const (
	subNone subScene = iota
	subInventory
	subParty
)

// Battle is the battle scene.
type Battle struct {
	ctx       context.Context
	tracer    trace.Tracer
	state     trace.Span
	attacking trace.Span

	manager  *scene.Manager
	store    *store.DataStore
	registry *gamedata.Registry
	roller   dice.Roller
	resolver *combat.Resolver
	animator AttackAnimator
	audio    AudioPlayer

	tl      *anim.Timeline
	skip    bool
	machine *statemachine.Machine[State]
	menu    *menu.BattleMenu

	player *entity.BattleMonster
	enemy  *entity.BattleMonster
	ball   *entity.Ball

	activeIndex      int
	enemyAttackIndex int
	bringOut         bringOutReason
	waitingOn        subScene
	switchKnockedOut bool
	captured         bool
	lastCapture      leveling.CaptureResult
	caught           *Caught
	outcome          Outcome
	curtain          float64
	visited          []State
	finished         bool
	cancelled        bool

	onFinished func(Result)
}

// New builds a battle against cfg.Enemy and starts its intro.
func New(ctx context.Context, cfg Config) (*Battle, error) {
	if cfg.Manager == nil {
		return nil, errors.InvalidArgument("scene manager is required")
	}
	if cfg.Store == nil {
		return nil, errors.InvalidArgument("data store is required")
	}
	if cfg.Registry == nil {
		return nil, errors.InvalidArgument("registry is required")
	}
	if cfg.Enemy == nil {
		return nil, errors.InvalidArgument("enemy is required")
	}
	party := cfg.Store.Party()
	if err := party.Validate(); err != nil {
		return nil, errors.Wrap(err, "cannot start battle")
	}

	options := cfg.Store.Options()
	if options == nil {
		options = store.DefaultOptions()
	}
	textDelay := cfg.TextDelay
	if textDelay <= 0 {
		textDelay = options.TextSpeed.Delay()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(time.Now().UnixNano())
	}

	b := &Battle{
		ctx:              ctx,
		tracer:           telemetry.Tracer("battle"),
		manager:          cfg.Manager,
		store:            cfg.Store,
		registry:         cfg.Registry,
		roller:           roller,
		resolver:         combat.NewResolver(roller),
		audio:            cfg.Audio,
		tl:               anim.NewTimeline(),
		skip:             cfg.SkipAnimations || options.SkipBattleAnimations,
		enemyAttackIndex: -1,
		onFinished:       cfg.OnFinished,
	}
	b.animator = cfg.Animator
	if b.animator == nil {
		b.animator = NewFlashAnimator(b.tl)
	}
	if b.audio == nil {
		b.audio = silentAudio{}
	}

	// With nobody able to fight the battle still opens; PRE_BATTLE_INFO ends it.
	b.activeIndex = party.FirstHealthyIndex()
	if b.activeIndex < 0 {
		b.activeIndex = 0
	}
	active := party[b.activeIndex]

	b.player = entity.NewBattleMonster(entity.BattleMonsterConfig{
		Record:         active,
		Attacks:        b.registry.Attacks(active.AttackIDs),
		Side:           entity.SidePlayer,
		Timeline:       b.tl,
		SkipAnimations: b.skip,
	})
	b.enemy = entity.NewBattleMonster(entity.BattleMonsterConfig{
		Record:         cfg.Enemy,
		Attacks:        b.registry.Attacks(cfg.Enemy.AttackIDs),
		Side:           entity.SideEnemy,
		Timeline:       b.tl,
		SkipAnimations: b.skip,
	})
	b.ball = entity.NewBall(b.tl, b.skip)

	b.menu = menu.New(menu.Config{
		Timeline:        b.tl,
		SkipAnimations:  b.skip,
		TextDelay:       textDelay,
		OnOpenInventory: b.openInventory,
	})
	b.menu.SetMonster(b.player.GetName(), b.player.GetAttacks())

	b.machine = statemachine.New[State]("battle", statemachine.WithTransitionHook(b.onTransition))
	b.registerStates()

	_, span := b.tracer.Start(ctx, "battle.start",
		trace.WithAttributes(
			attribute.String("enemy.name", cfg.Enemy.Name),
			attribute.Int("enemy.level", cfg.Enemy.CurrentLevel),
			attribute.String("player.name", active.Name),
			attribute.Int("party.size", len(party)),
			attribute.Bool("battle.skip_animations", b.skip),
		),
	)
	span.End()
	log.Printf("battle: wild %s (lv %d) vs %s (lv %d), skip=%t",
		cfg.Enemy.Name, cfg.Enemy.CurrentLevel, active.Name, active.CurrentLevel, b.skip)

	b.machine.SetState(StateIntro)
	return b, nil
}

// Name implements scene.Scene.
func (b *Battle) Name() string { return "BATTLE" }

// Update advances the battle by one frame.
func (b *Battle) Update(dt time.Duration, action input.Action) {
	if b.ctx.Err() != nil {
		if !b.cancelled {
			b.cancelled = true
			b.tl.Clear()
			b.endSpans()
			log.Printf("battle: context done, dropping pending animations: %v", b.ctx.Err())
		}
		return
	}

	b.tl.Update(dt)
	b.machine.Update()

	if action != input.ActionNone {
		b.menu.HandlePlayerInput(action)
	}

	if b.currentState() == StatePlayerInput {
		b.checkIntents()
	}
}

// checkIntents takes the player's decision for the turn, checked in a fixed
// order: item, flee, switch, attack.
func (b *Battle) checkIntents() {
	switch {
	case b.menu.WasItemUsed():
		b.menu.HideMainBattleMenu()
		item := b.menu.UsedItem()
		if item.TypeKey == gamedata.ItemCapture {
			b.machine.SetState(StateCaptureItemUsed)
			return
		}
		b.machine.SetState(StateUsedItem)
	case b.menu.IsAttemptingToFlee():
		b.menu.HideMainBattleMenu()
		b.machine.SetState(StateFleeAttempt)
	case b.menu.IsAttemptingToSwitchMonsters():
		b.menu.HideMainBattleMenu()
		b.machine.SetState(StateSwitchMonster)
	default:
		if _, ok := b.menu.SelectedAttack(); ok {
			b.menu.HideMainBattleMenu()
			b.machine.SetState(StateEnemyInput)
		}
	}
}

// Resume implements scene.Scene. It receives the inventory or party selection.
// A missing or unexpected payload counts as no selection.
func (b *Battle) Resume(payload any) {
	waitingOn := b.waitingOn
	b.waitingOn = subNone

	switch result := payload.(type) {
	case scene.InventoryResult:
		b.resumeFromInventory(result)
		return
	case scene.PartyResult:
		b.resumeFromParty(result)
		return
	}

	switch waitingOn {
	case subInventory:
		b.resumeFromInventory(scene.InventoryResult{})
	case subParty:
		b.resumeFromParty(scene.PartyResult{})
	default:
		log.Printf("battle: resumed with unexpected payload %T", payload)
	}
}

func (b *Battle) openInventory() {
	b.waitingOn = subInventory
	b.manager.Launch(scene.NewInventoryScene(scene.InventoryConfig{
		Manager:  b.manager,
		Store:    b.store,
		Registry: b.registry,
		Resolver: b.resolver,
		Target:   b.player,
	}))
}

func (b *Battle) resumeFromInventory(result scene.InventoryResult) {
	if !result.WasItemUsed || result.Item == nil {
		b.menu.ShowMainBattleMenu()
		return
	}
	if result.Item.TypeKey == gamedata.ItemHeal {
		b.player.UpdateMonsterHealth(b.player.GetHP())
	}
	b.menu.SetItemUsed(result.Item)
}

func (b *Battle) openParty(knockedOut bool) {
	b.waitingOn = subParty
	b.switchKnockedOut = knockedOut
	b.manager.Launch(scene.NewPartyScene(scene.PartyConfig{
		Manager: b.manager,
		Party:   b.store.Party(),
		Request: scene.PartyRequest{
			ActiveBattleMonsterPartyIndex: b.activeIndex,
			ActiveMonsterKnockedOut:       knockedOut,
		},
	}))
}

func (b *Battle) resumeFromParty(result scene.PartyResult) {
	party := b.store.Party()
	index := -1
	if result.WasMonsterSelected && party.CanSwitchTo(result.SelectedMonsterIndex, b.activeIndex) {
		index = result.SelectedMonsterIndex
	}
	if index < 0 && b.switchKnockedOut {
		index = party.FirstHealthyBackup(b.activeIndex)
		log.Printf("battle: no replacement chosen, sending out party slot %d", index)
	}
	if index < 0 {
		b.machine.SetState(StatePlayerInput)
		return
	}

	b.bringOut = bringOutSwitch
	if b.switchKnockedOut {
		b.bringOut = bringOutReplacement
	}
	b.switchTo(index)
	b.machine.SetState(StateBringOutMonster)
}

func (b *Battle) switchTo(index int) {
	record := b.store.Party()[index]
	b.activeIndex = index
	b.player.SwitchMonster(record, b.registry.Attacks(record.AttackIDs))
	b.menu.SetMonster(record.Name, b.player.GetAttacks())
}

// endSpans ends the state span and any attack still in flight.
func (b *Battle) endSpans() {
	if b.attacking != nil {
		b.attacking.End()
		b.attacking = nil
	}
	if b.state != nil {
		b.state.End()
		b.state = nil
	}
}

// onTransition closes the previous state's span and opens one for the new state.
func (b *Battle) onTransition(from, to State) {
	if b.state != nil {
		b.state.End()
	}
	fromName := from.String()
	if len(b.visited) == 0 {
		fromName = "none"
	}
	_, b.state = b.tracer.Start(b.ctx, "battle.state",
		trace.WithAttributes(
			attribute.String("battle.state", to.String()),
			attribute.String("battle.from", fromName),
		),
	)
	b.visited = append(b.visited, to)
	log.Printf("battle: %s -> %s", fromName, to)
}

func (b *Battle) currentState() State {
	s, ok := b.machine.CurrentState()
	if !ok {
		return StateIntro
	}
	return s
}

// CurrentState returns the battle's phase.
func (b *Battle) CurrentState() State { return b.currentState() }

// Outcome returns how the battle ended, or OutcomeNone while it is running.
func (b *Battle) Outcome() Outcome { return b.outcome }

// Finished reports whether the battle scene has exited.
func (b *Battle) Finished() bool { return b.finished }

// Menu returns the battle menu, for input routing and drawing.
func (b *Battle) Menu() *menu.BattleMenu { return b.menu }

// Player returns the player's active battle monster.
func (b *Battle) Player() *entity.BattleMonster { return b.player }

// Enemy returns the wild monster.
func (b *Battle) Enemy() *entity.BattleMonster { return b.enemy }
