package battle

import (
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/combat"
	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/leveling"
	"github.com/samdwyer/monstertamer/internal/statemachine"
)

const (
	curtainDuration = time.Second
	bringOutPause   = 1200 * time.Millisecond
	attackPause     = 500 * time.Millisecond
)

func (b *Battle) registerStates() {
	states := map[State]func(){
		StateIntro:           b.enterIntro,
		StatePreBattleInfo:   b.enterPreBattleInfo,
		StateBringOutMonster: b.enterBringOutMonster,
		StatePlayerInput:     b.enterPlayerInput,
		StateEnemyInput:      b.enterEnemyInput,
		StateBattle:          b.enterBattle,
		StatePostAttackCheck: b.enterPostAttackCheck,
		StateFleeAttempt:     b.enterFleeAttempt,
		StateGainExperience:  b.enterGainExperience,
		StateSwitchMonster:   b.enterSwitchMonster,
		StateUsedItem:        b.enterUsedItem,
		StateCaptureItemUsed: b.enterCaptureItemUsed,
		StateCaughtMonster:   b.enterCaughtMonster,
		StateFinished:        b.enterFinished,
	}
	for name, onEnter := range states {
		b.machine.AddState(statemachine.State[State]{Name: name, OnEnter: onEnter})
	}
}

// then returns a callback that moves the machine to next.
func (b *Battle) then(next State) func() {
	return func() { b.machine.SetState(next) }
}

// say shows messages, waits for each to be acknowledged, then moves to next.
func (b *Battle) say(next State, messages ...string) {
	b.menu.UpdateInfoPaneMessagesAndWaitForInput(messages, b.then(next))
}

func (b *Battle) enterIntro() {
	b.curtain = 1
	b.tl.Tween(anim.TweenConfig{
		From:       1,
		To:         0,
		Duration:   curtainDuration,
		Skip:       b.skip,
		OnUpdate:   func(v float64) { b.curtain = v },
		OnComplete: b.then(StatePreBattleInfo),
	})
}

func (b *Battle) enterPreBattleInfo() {
	b.enemy.PlayMonsterAppearAnimation(func() {
		b.enemy.PlayMonsterHealthBarAppearAnimation(nil)
		b.menu.UpdateInfoPaneMessagesAndWaitForInput(
			[]string{fmt.Sprintf("A wild %s appeared!", b.enemy.GetName())},
			func() {
				if b.store.Party().FirstHealthyIndex() < 0 {
					b.outcome = OutcomeLost
					b.say(StateFinished, "You have no monsters able to fight!")
					return
				}
				b.machine.SetState(StateBringOutMonster)
			},
		)
	})
}

func (b *Battle) enterBringOutMonster() {
	reason := b.bringOut
	b.bringOut = bringOutFirst

	b.player.PlayMonsterAppearAnimation(func() {
		b.player.PlayMonsterHealthBarAppearAnimation(nil)
		b.menu.UpdateInfoPaneMessageNoInputRequired(fmt.Sprintf("Go %s!", b.player.GetName()), func() {
			anim.Delay(b.tl, bringOutPause, b.skip)(func() {
				// A voluntary switch uses up the player's turn.
				if reason == bringOutSwitch {
					b.machine.SetState(StateEnemyInput)
					return
				}
				b.machine.SetState(StatePlayerInput)
			})
		})
	})
}

func (b *Battle) enterPlayerInput() {
	b.menu.ShowMainBattleMenu()
}

func (b *Battle) enterEnemyInput() {
	b.enemyAttackIndex = b.enemy.PickRandomMove(b.roller)
	b.machine.SetState(StateBattle)
}

func (b *Battle) enterBattle() {
	// Items, flee attempts and switches use up the player's attack.
	if b.menu.WasItemUsed() || b.menu.IsAttemptingToFlee() || b.menu.IsAttemptingToSwitchMonsters() {
		b.enemyAttack(b.then(StatePostAttackCheck))
		return
	}

	if b.resolver.PlayerAttacksFirst() {
		b.playerAttack(func() {
			b.enemyAttack(b.then(StatePostAttackCheck))
		})
		return
	}
	b.enemyAttack(func() {
		b.playerAttack(b.then(StatePostAttackCheck))
	})
}

func (b *Battle) playerAttack(next func()) {
	if b.player.IsFainted() {
		next()
		return
	}
	index, ok := b.menu.SelectedAttack()
	attacks := b.player.GetAttacks()
	if !ok || index >= len(attacks) {
		log.Printf("battle: %s has no attack selected, skipping", b.player.GetName())
		next()
		return
	}
	b.attack(b.player, b.enemy, attacks[index], next)
}

func (b *Battle) enemyAttack(next func()) {
	if b.enemy.IsFainted() {
		next()
		return
	}
	attacks := b.enemy.GetAttacks()
	if b.enemyAttackIndex < 0 || b.enemyAttackIndex >= len(attacks) {
		log.Printf("battle: wild %s has no attack to use, skipping", b.enemy.GetName())
		next()
		return
	}
	b.attack(b.enemy, b.player, attacks[b.enemyAttackIndex], next)
}

// attack announces the move, plays it on target and applies the damage.
// next runs once the health bar has settled, or after the faint message.
func (b *Battle) attack(user, target *entity.BattleMonster, move *gamedata.AttackDef, next func()) {
	_, span := b.tracer.Start(b.ctx, "battle.attack",
		trace.WithAttributes(
			attribute.String("attack.user", user.GetName()),
			attribute.String("attack.side", user.Side().String()),
			attribute.String("attack.name", move.Name),
		),
	)

	result := b.resolver.Resolve(move, user, target)
	if !result.Success {
		span.SetAttributes(attribute.Bool("attack.success", false))
		span.End()
		log.Printf("battle: %s", result.Message)
		next()
		return
	}
	span.SetAttributes(attribute.Int("attack.damage", result.Damage))
	b.attacking = span

	b.menu.UpdateInfoPaneMessageNoInputRequired(result.Message, func() {
		anim.Delay(b.tl, attackPause, b.skip)(func() {
			b.audio.PlaySoundEffect(move.AudioKey)
			b.animator.PlayAttack(move.AnimationName, target.Side(), b.skip, func() {
				target.PlayTakeDamageAnimation(func() {
					target.TakeDamage(result.Damage, func() {
						span.SetAttributes(attribute.Int("target.hp", target.GetHP()))
						span.End()
						b.attacking = nil
						if target.IsFainted() {
							b.faint(target, next)
							return
						}
						next()
					})
				})
			})
		})
	})
}

func (b *Battle) faint(m *entity.BattleMonster, next func()) {
	message := fmt.Sprintf("%s fainted", m.GetName())
	if m.Side() == entity.SideEnemy {
		message = fmt.Sprintf("Wild %s fainted", m.GetName())
	}
	m.PlayDeathAnimation(func() {
		b.menu.UpdateInfoPaneMessagesAndWaitForInput([]string{message}, next)
	})
}

func (b *Battle) enterPostAttackCheck() {
	b.saveParty()

	switch {
	case b.captured, b.enemy.IsFainted():
		b.machine.SetState(StateGainExperience)
	case b.player.IsFainted():
		if !b.store.Party().HasHealthyBackup(b.activeIndex) {
			b.outcome = OutcomeLost
			b.say(StateFinished, "You have no more monsters, escaping to safety...")
			return
		}
		b.machine.SetState(StateSwitchMonster)
	default:
		b.machine.SetState(StatePlayerInput)
	}
}

func (b *Battle) enterFleeAttempt() {
	if b.resolver.FleeSucceeds() {
		b.outcome = OutcomeFled
		b.say(StateFinished, "You got away safely!")
		return
	}
	b.say(StateEnemyInput, "You failed to run away...")
}

func (b *Battle) enterGainExperience() {
	baseExp, level := b.enemy.GetBaseExp(), b.enemy.GetLevel()

	var (
		messages   []string
		barSettled = true
		onSettled  func()
	)
	for i, m := range b.store.Party() {
		if m.IsFainted() {
			continue
		}

		if i == b.activeIndex {
			exp := leveling.CalculateExpGainedFromMonster(baseExp, level, true)
			barSettled = false
			changes := b.player.UpdateMonsterExpAnimated(exp, b.roller, func() {
				barSettled = true
				if onSettled != nil {
					onSettled()
				}
			})
			// The active monster is always reported first.
			messages = append(gainMessages(m.Name, exp, m.CurrentLevel, changes), messages...)
			continue
		}

		exp := leveling.CalculateExpGainedFromMonster(baseExp, level, false)
		changes := m.GainExperience(exp, b.roller)
		messages = append(messages, gainMessages(m.Name, exp, m.CurrentLevel, changes)...)
	}

	next := StateFinished
	if b.captured {
		next = StateCaughtMonster
	} else {
		b.outcome = OutcomeWon
	}

	show := func() {
		if len(messages) == 0 {
			b.machine.SetState(next)
			return
		}
		b.say(next, messages...)
	}
	if barSettled {
		show()
		return
	}
	onSettled = show
}

func gainMessages(name string, exp, level int, changes leveling.StatChanges) []string {
	messages := []string{fmt.Sprintf("%s gained %d exp.", name, exp)}
	if changes.LeveledUp() {
		messages = append(messages, fmt.Sprintf("%s is now level %d! Attack increased by %d and health increased by %d.",
			name, level, changes.Attack, changes.Health))
	}
	return messages
}

func (b *Battle) enterSwitchMonster() {
	knockedOut := b.player.IsFainted()
	if !b.store.Party().HasHealthyBackup(b.activeIndex) {
		b.say(StatePlayerInput, "You have no other monsters able to fight in your party")
		return
	}
	b.openParty(knockedOut)
}

func (b *Battle) enterUsedItem() {
	item := b.menu.UsedItem()
	b.say(StateEnemyInput, combat.UsedItemMessage(item))
}

func (b *Battle) enterCaptureItemUsed() {
	item := b.menu.UsedItem()
	throw := b.resolver.ResolveItem(item, b.enemy)
	result := leveling.CalculateMonsterCaptureResults(b.enemy.GetHP(), b.enemy.GetMaxHP(), b.roller)
	shakes := leveling.ShakeCount(result)
	b.lastCapture = result
	log.Printf("battle: capture roll %d vs %d, captured=%t, shakes=%d",
		result.ActualCaptureValue, result.RequiredCaptureValue, result.WasCaptured, shakes)

	anim.NewSequence(
		func(done func()) { b.menu.UpdateInfoPaneMessageNoInputRequired(throw.Message, done) },
		b.ball.PlayThrowBallAnimation,
		b.enemy.PlayCatchAnimation,
		func(done func()) { b.ball.PlayShakeBallAnimation(shakes, done) },
	).Run(func() {
		if result.WasCaptured {
			b.captured = true
			b.say(StatePostAttackCheck, fmt.Sprintf("You caught %s!", b.enemy.GetName()))
			return
		}
		b.ball.Hide()
		b.enemy.PlayCatchAnimationFailed(func() {
			b.say(StateEnemyInput, fmt.Sprintf("The wild %s broke free!", b.enemy.GetName()))
		})
	})
}

func (b *Battle) enterCaughtMonster() {
	caught := b.enemy.Record().Clone()
	caught.ID = b.store.NewMonsterID()
	joined := b.store.AddMonster(caught)
	b.caught = &Caught{ID: caught.ID, Name: caught.Name, JoinedParty: joined}
	b.outcome = OutcomeCaught

	message := fmt.Sprintf("%s was added to your party", caught.Name)
	if !joined {
		message = fmt.Sprintf("Your party is full, %s was sent to the box", caught.Name)
	}
	b.say(StateFinished, message)
}

func (b *Battle) enterFinished() {
	b.menu.HideMainBattleMenu()
	if err := b.store.Save(b.ctx); err != nil {
		log.Printf("battle: failed to save after battle: %v", err)
	}

	_, span := b.tracer.Start(b.ctx, "battle.end",
		trace.WithAttributes(
			attribute.String("battle.outcome", b.outcome.String()),
			attribute.Int("battle.states_visited", len(b.visited)),
		),
	)
	span.End()
	b.endSpans()

	b.tl.Tween(anim.TweenConfig{
		From:       0,
		To:         1,
		Duration:   curtainDuration,
		Skip:       b.skip,
		OnUpdate:   func(v float64) { b.curtain = v },
		OnComplete: b.exit,
	})
}

// exit stops the battle scene and reports the result.
func (b *Battle) exit() {
	if b.finished {
		return
	}
	b.finished = true
	b.curtain = 1

	result := Result{Outcome: b.outcome, Caught: b.caught}
	log.Printf("battle: finished, outcome=%s", b.outcome)
	if b.manager.Current() == b {
		b.manager.Stop(result)
	}
	if b.onFinished != nil {
		b.onFinished(result)
	}
}

// saveParty writes HP back at the post-attack checkpoint.
func (b *Battle) saveParty() {
	if err := b.store.SaveParty(b.ctx); err != nil {
		log.Printf("battle: failed to save party: %v", err)
	}
}
