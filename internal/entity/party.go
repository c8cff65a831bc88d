package entity

import "github.com/samdwyer/monstertamer/internal/errors"

// MaxPartySize is the most monsters the player can carry.
const MaxPartySize = 6

// Party is the player's ordered list of monsters.
type Party []*Monster

// Validate checks the party size invariant.
func (p Party) Validate() error {
	if len(p) < 1 || len(p) > MaxPartySize {
		return errors.Validationf("party size %d outside [1,%d]", len(p), MaxPartySize).WithMeta("size", len(p))
	}
	for i, m := range p {
		if m == nil {
			return errors.Validationf("party slot %d is empty", i)
		}
	}
	return nil
}

// IsFull reports whether no more monsters fit.
func (p Party) IsFull() bool {
	return len(p) >= MaxPartySize
}

// FirstHealthyIndex returns the index of the first monster that can fight, or -1.
func (p Party) FirstHealthyIndex() int {
	for i, m := range p {
		if !m.IsFainted() {
			return i
		}
	}
	return -1
}

// HasHealthyBackup reports whether any monster other than the one at active can fight.
func (p Party) HasHealthyBackup(active int) bool {
	return p.FirstHealthyBackup(active) >= 0
}

// FirstHealthyBackup returns the index of the first healthy monster other than active, or -1.
func (p Party) FirstHealthyBackup(active int) int {
	for i, m := range p {
		if i != active && !m.IsFainted() {
			return i
		}
	}
	return -1
}

// CanSwitchTo reports whether index is a valid switch target while active is fighting.
func (p Party) CanSwitchTo(index, active int) bool {
	if index < 0 || index >= len(p) || index == active {
		return false
	}
	return !p[index].IsFainted()
}

// Clone returns a deep copy.
func (p Party) Clone() Party {
	out := make(Party, len(p))
	for i, m := range p {
		out[i] = m.Clone()
	}
	return out
}
