package battle

// State is a phase of the battle.
type State int

const (
	StateIntro State = iota
	StatePreBattleInfo
	StateBringOutMonster
	StatePlayerInput
	StateEnemyInput
	StateBattle
	StatePostAttackCheck
	StateFleeAttempt
	StateGainExperience
	StateSwitchMonster
	StateUsedItem
	StateCaptureItemUsed
	StateCaughtMonster
	StateFinished
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "INTRO"
	case StatePreBattleInfo:
		return "PRE_BATTLE_INFO"
	case StateBringOutMonster:
		return "BRING_OUT_MONSTER"
	case StatePlayerInput:
		return "PLAYER_INPUT"
	case StateEnemyInput:
		return "ENEMY_INPUT"
	case StateBattle:
		return "BATTLE"
	case StatePostAttackCheck:
		return "POST_ATTACK_CHECK"
	case StateFleeAttempt:
		return "FLEE_ATTEMPT"
	case StateGainExperience:
		return "GAIN_EXPERIENCE"
	case StateSwitchMonster:
		return "SWITCH_MONSTER"
	case StateUsedItem:
		return "USED_ITEM"
	case StateCaptureItemUsed:
		return "CAPTURE_ITEM_USED"
	case StateCaughtMonster:
		return "CAUGHT_MONSTER"
	case StateFinished:
		return "FINISHED"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	// OutcomeNone means the battle has not finished.
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeCaught
	OutcomeFled
	OutcomeLost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeCaught:
		return "caught"
	case OutcomeFled:
		return "fled"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Result is reported when the battle scene exits.
type Result struct {
	Outcome Outcome
	// Caught is set when Outcome is OutcomeCaught.
	Caught *Caught
}

// Caught describes a captured monster and where it went.
type Caught struct {
	ID          string
	Name        string
	JoinedParty bool
}
