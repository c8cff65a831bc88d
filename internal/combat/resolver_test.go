package combat

import (
	"testing"

	"github.com/samdwyer/monstertamer/internal/dice"
	"github.com/samdwyer/monstertamer/internal/gamedata"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	hp, maxHP int
	attack    int
}

func newMockCombatant(name string, hp, attack int) *mockCombatant {
	return &mockCombatant{name: name, hp: hp, maxHP: hp, attack: attack}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) GetAttack() int  { return m.attack }
func (m *mockCombatant) GetHP() int      { return m.hp }
func (m *mockCombatant) GetMaxHP() int   { return m.maxHP }
func (m *mockCombatant) IsFainted() bool { return m.hp <= 0 }

func TestResolveDamageIsAttackStat(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller())
	attacker := newMockCombatant("Iguanignite", 25, 5)
	target := newMockCombatant("Carnodusk", 25, 5)
	slash := &gamedata.AttackDef{ID: 1, Name: "Slash"}

	result := resolver.Resolve(slash, attacker, target)

	if !result.Success {
		t.Errorf("Expected success, got failure: %s", result.Message)
	}
	if result.Damage != 5 {
		t.Errorf("Expected 5 damage, got %d", result.Damage)
	}
	if result.Message != "Iguanignite used Slash" {
		t.Errorf("Unexpected message %q", result.Message)
	}
	// Resolving never touches the target
	if target.GetHP() != 25 {
		t.Errorf("Expected target HP 25, got %d", target.GetHP())
	}
}

func TestResolveNegativeAttackClampsToZero(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller())
	attacker := newMockCombatant("Weak", 10, -3)
	target := newMockCombatant("Tank", 50, 0)

	damage := resolver.CalculateDamage(&gamedata.AttackDef{Name: "Tackle"}, attacker, target)
	if damage != 0 {
		t.Errorf("Expected 0 damage, got %d", damage)
	}
}

func TestResolveInvalid(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller())
	attacker := newMockCombatant("A", 10, 5)
	target := newMockCombatant("B", 10, 5)

	if result := resolver.Resolve(nil, attacker, target); result.Success {
		t.Error("Expected nil attack to fail")
	}

	attacker.hp = 0
	if result := resolver.Resolve(&gamedata.AttackDef{Name: "Slash"}, attacker, target); result.Success {
		t.Error("Expected fainted attacker to fail")
	}
}

func TestPlayerAttacksFirst(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller(0, 1))

	if !resolver.PlayerAttacksFirst() {
		t.Error("Expected 0 to mean player first")
	}
	if resolver.PlayerAttacksFirst() {
		t.Error("Expected 1 to mean enemy first")
	}
}

func TestFleeSucceeds(t *testing.T) {
	tests := []struct {
		roll int
		want bool
	}{
		{1, false},
		{5, false},
		{6, true},
		{10, true},
	}

	for _, tt := range tests {
		resolver := NewResolver(dice.NewManualRoller(tt.roll))
		if got := resolver.FleeSucceeds(); got != tt.want {
			t.Errorf("roll %d: expected %v, got %v", tt.roll, tt.want, got)
		}
	}
}

func TestFleeRate(t *testing.T) {
	resolver := NewResolver(dice.NewRandomRoller(7))
	successes := 0
	for i := 0; i < 1000; i++ {
		if resolver.FleeSucceeds() {
			successes++
		}
	}
	if successes < 400 || successes > 600 {
		t.Errorf("Expected roughly half of flees to succeed, got %d/1000", successes)
	}
}

func TestResolveItemHeal(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller())
	potion := &gamedata.ItemDef{ID: 1, Name: "Potion", TypeKey: gamedata.ItemHeal, Value: 30}
	wounded := newMockCombatant("Iguanignite", 25, 5)
	wounded.hp = 10

	result := resolver.ResolveItem(potion, wounded)
	if !result.Success {
		t.Errorf("Expected success, got failure: %s", result.Message)
	}
	if result.Healing != 15 {
		t.Errorf("Expected healing capped at 15, got %d", result.Healing)
	}
	if result.Message != "You used the following item: Potion" {
		t.Errorf("Unexpected message %q", result.Message)
	}

	wounded.hp = 0
	if result := resolver.ResolveItem(potion, wounded); result.Success {
		t.Error("Expected healing a fainted monster to fail")
	}
}

func TestResolveItemCapture(t *testing.T) {
	resolver := NewResolver(dice.NewManualRoller())
	ball := &gamedata.ItemDef{ID: 2, Name: "Damaged Ball", TypeKey: gamedata.ItemCapture}

	result := resolver.ResolveItem(ball, newMockCombatant("Wild", 20, 4))
	if !result.Success || !result.Capture {
		t.Errorf("Expected capture result, got %+v", result)
	}

	if result := resolver.ResolveItem(&gamedata.ItemDef{TypeKey: "BOGUS"}, newMockCombatant("Wild", 20, 4)); result.Success {
		t.Error("Expected unknown item type to fail")
	}
}
