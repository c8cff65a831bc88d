// Package menu implements the battle menu: the main command grid, the move
// grid, the player's intent for the turn and the info pane message queue.
package menu

import (
	"fmt"
	"time"

	"github.com/samdwyer/monstertamer/internal/anim"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/input"
)

// Menu identifies which part of the battle menu is active.
type Menu int

const (
	// MenuMain is the FIGHT / ITEM / SWITCH / FLEE grid.
	MenuMain Menu = iota
	// MenuMoveSelect is the grid of the active monster's moves.
	MenuMoveSelect
	// MenuItem is set once the player opens the bag.
	MenuItem
	// MenuSwitch is set once the player asks to switch monsters.
	MenuSwitch
	// MenuFlee is set once the player chooses to flee.
	MenuFlee
)

// String returns the menu name.
func (m Menu) String() string {
	switch m {
	case MenuMain:
		return "BATTLE_MAIN"
	case MenuMoveSelect:
		return "BATTLE_MOVE_SELECT"
	case MenuItem:
		return "BATTLE_ITEM"
	case MenuSwitch:
		return "BATTLE_SWITCH"
	case MenuFlee:
		return "BATTLE_FLEE"
	default:
		return "unknown"
	}
}

// MainOption is a cell of the main command grid.
//
//	FIGHT  SWITCH
//	ITEM   FLEE
type MainOption int

const (
	OptionFight MainOption = iota
	OptionSwitch
	OptionItem
	OptionFlee
)

// String returns the label shown in the grid.
func (o MainOption) String() string {
	switch o {
	case OptionFight:
		return "FIGHT"
	case OptionSwitch:
		return "SWITCH"
	case OptionItem:
		return "ITEM"
	case OptionFlee:
		return "FLEE"
	default:
		return "unknown"
	}
}

// MoveSlots is the size of the move grid.
//
//	MOVE_1  MOVE_2
//	MOVE_3  MOVE_4
const MoveSlots = 4

const (
	gridColumns        = 2
	defaultHistorySize = 50
	emptyMoveLabel     = "-"
)

// Config configures a BattleMenu.
type Config struct {
	Timeline       *anim.Timeline
	SkipAnimations bool
	// TextDelay is the pause between revealed runes.
	TextDelay   time.Duration
	HistorySize int
	// OnOpenInventory runs when ITEM is chosen from the main grid.
	OnOpenInventory func()
}

// BattleMenu is the battle's input router. Directional input moves the cursor
// of the active grid, OK commits, CANCEL backs out. Commits become intents the
// battle reads on its next decision point.
type BattleMenu struct {
	onOpenInventory func()

	activeMenu   Menu
	mainVisible  bool
	movesVisible bool
	mainCursor   MainOption
	moveCursor   int

	monsterName string
	attacks     []*gamedata.AttackDef

	// intents
	selectedAttack int
	fleeing        bool
	switching      bool
	itemUsed       bool
	usedItem       *gamedata.ItemDef

	pane *infoPane
}

// New creates a battle menu. It starts with every grid hidden.
func New(cfg Config) *BattleMenu {
	historySize := cfg.HistorySize
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	m := &BattleMenu{
		onOpenInventory: cfg.OnOpenInventory,
		selectedAttack:  -1,
	}
	m.pane = newInfoPane(cfg.Timeline, cfg.TextDelay, cfg.SkipAnimations, historySize)
	return m
}

// SetMonster updates the active monster the menu offers moves for.
func (m *BattleMenu) SetMonster(name string, attacks []*gamedata.AttackDef) {
	m.monsterName = name
	m.attacks = attacks
	m.moveCursor = 0
}

// ShowMainBattleMenu shows the command grid, prompts for the active monster and
// clears every intent from the previous turn.
func (m *BattleMenu) ShowMainBattleMenu() {
	m.pane.release()
	m.activeMenu = MenuMain
	m.mainVisible = true
	m.movesVisible = false
	m.mainCursor = OptionFight
	m.pane.setStatic(fmt.Sprintf("What should %s do next?", m.monsterName))
	m.clearIntents()
}

// HideMainBattleMenu hides both grids. Input is ignored until a grid is shown again.
func (m *BattleMenu) HideMainBattleMenu() {
	m.hideGrids()
}

// ShowMonsterAttackSubMenu switches to the move grid.
func (m *BattleMenu) ShowMonsterAttackSubMenu() {
	m.activeMenu = MenuMoveSelect
	m.mainVisible = false
	m.movesVisible = true
}

// HideMonsterAttackSubMenu hides the move grid and returns to the command grid.
func (m *BattleMenu) HideMonsterAttackSubMenu() {
	m.activeMenu = MenuMain
	m.movesVisible = false
	m.mainVisible = true
}

// ActiveMenu returns the active part of the menu.
func (m *BattleMenu) ActiveMenu() Menu { return m.activeMenu }

// SelectedAttack returns the chosen move index for this turn.
func (m *BattleMenu) SelectedAttack() (int, bool) {
	return m.selectedAttack, m.selectedAttack >= 0
}

// IsAttemptingToFlee reports whether FLEE was chosen this turn.
func (m *BattleMenu) IsAttemptingToFlee() bool { return m.fleeing }

// IsAttemptingToSwitchMonsters reports whether SWITCH was chosen this turn.
func (m *BattleMenu) IsAttemptingToSwitchMonsters() bool { return m.switching }

// WasItemUsed reports whether an item was used from the inventory this turn.
func (m *BattleMenu) WasItemUsed() bool { return m.itemUsed }

// UsedItem returns the item used this turn, or nil.
func (m *BattleMenu) UsedItem() *gamedata.ItemDef { return m.usedItem }

// SetItemUsed records the item the inventory returned with.
func (m *BattleMenu) SetItemUsed(item *gamedata.ItemDef) {
	m.itemUsed = item != nil
	m.usedItem = item
}

func (m *BattleMenu) clearIntents() {
	m.selectedAttack = -1
	m.fleeing = false
	m.switching = false
	m.itemUsed = false
	m.usedItem = nil
}

// HandlePlayerInput routes one action. The info pane gets first look: while a
// line is revealing OK is swallowed, and once it is complete OK or CANCEL
// advances the queue.
func (m *BattleMenu) HandlePlayerInput(action input.Action) {
	if m.pane.handle(action) {
		return
	}
	if !m.mainVisible && !m.movesVisible {
		return
	}

	if action == input.ActionCancel {
		if m.activeMenu != MenuMain {
			m.ShowMainBattleMenu()
		}
		return
	}

	if action == input.ActionOK {
		switch m.activeMenu {
		case MenuMain:
			m.handleMainOK()
		case MenuMoveSelect:
			m.handleMoveOK()
		}
		return
	}

	if action.IsDirection() {
		switch m.activeMenu {
		case MenuMain:
			m.mainCursor = MainOption(moveInGrid(int(m.mainCursor), action))
		case MenuMoveSelect:
			m.moveCursor = moveInGrid(m.moveCursor, action)
		}
	}
}

func (m *BattleMenu) handleMainOK() {
	switch m.mainCursor {
	case OptionFight:
		m.ShowMonsterAttackSubMenu()
	case OptionSwitch:
		m.activeMenu = MenuSwitch
		m.switching = true
	case OptionItem:
		m.activeMenu = MenuItem
		if m.onOpenInventory != nil {
			m.onOpenInventory()
		}
	case OptionFlee:
		m.activeMenu = MenuFlee
		m.fleeing = true
	}
}

func (m *BattleMenu) handleMoveOK() {
	if m.moveCursor >= len(m.attacks) || m.attacks[m.moveCursor] == nil {
		return
	}
	m.selectedAttack = m.moveCursor
	m.movesVisible = false
}

// moveInGrid applies a direction to an index in the 2x2 grid. Edges do not wrap.
func moveInGrid(index int, action input.Action) int {
	row, col := index/gridColumns, index%gridColumns
	switch action {
	case input.ActionUp:
		if row > 0 {
			row--
		}
	case input.ActionDown:
		if row < gridColumns-1 {
			row++
		}
	case input.ActionLeft:
		if col > 0 {
			col--
		}
	case input.ActionRight:
		if col < gridColumns-1 {
			col++
		}
	}
	return row*gridColumns + col
}

// UpdateInfoPaneMessagesAndWaitForInput shows messages one at a time, each
// needing OK or CANCEL once revealed. callback runs after the last is acknowledged.
// When animations are skipped the lines are recorded and callback runs immediately.
func (m *BattleMenu) UpdateInfoPaneMessagesAndWaitForInput(messages []string, callback func()) {
	m.hideGrids()
	m.pane.queueMessages(messages, callback)
}

// UpdateInfoPaneMessageNoInputRequired shows one message and runs callback as
// soon as it is fully revealed.
func (m *BattleMenu) UpdateInfoPaneMessageNoInputRequired(message string, callback func()) {
	m.hideGrids()
	m.pane.showMessage(message, callback)
}

func (m *BattleMenu) hideGrids() {
	m.mainVisible = false
	m.movesVisible = false
}

// View is what the renderer needs to draw the menu.
type View struct {
	ActiveMenu   Menu
	MainVisible  bool
	MovesVisible bool
	MainCursor   MainOption
	MoveCursor   int
	MoveLabels   [MoveSlots]string
	Text         string
	Waiting      bool
}

// View returns the current drawable state.
func (m *BattleMenu) View() View {
	v := View{
		ActiveMenu:   m.activeMenu,
		MainVisible:  m.mainVisible,
		MovesVisible: m.movesVisible,
		MainCursor:   m.mainCursor,
		MoveCursor:   m.moveCursor,
		Text:         m.pane.text(),
		Waiting:      m.pane.waiting,
	}
	for i := range v.MoveLabels {
		v.MoveLabels[i] = emptyMoveLabel
		if i < len(m.attacks) && m.attacks[i] != nil {
			v.MoveLabels[i] = m.attacks[i].Name
		}
	}
	return v
}

// History returns the most recent info pane lines, oldest first.
func (m *BattleMenu) History() []string {
	return m.pane.historyLines()
}

// Busy reports whether a message is revealing or waiting to be acknowledged.
func (m *BattleMenu) Busy() bool {
	return m.pane.locked
}
