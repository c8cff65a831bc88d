package store

import (
	"github.com/samdwyer/monstertamer/internal/errors"
)

// InventoryEntry is a stack of one item.
type InventoryEntry struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// Inventory is the player's bag, in display order.
type Inventory []InventoryEntry

// Quantity returns how many of itemID the bag holds.
func (inv Inventory) Quantity(itemID int) int {
	for _, e := range inv {
		if e.ItemID == itemID {
			return e.Quantity
		}
	}
	return 0
}

// Add puts quantity of itemID in the bag, stacking with an existing entry.
func (inv Inventory) Add(itemID, quantity int) Inventory {
	if quantity <= 0 {
		return inv
	}
	for i := range inv {
		if inv[i].ItemID == itemID {
			inv[i].Quantity += quantity
			return inv
		}
	}
	return append(inv, InventoryEntry{ItemID: itemID, Quantity: quantity})
}

// Consume removes one of itemID. Empty stacks are dropped.
func (inv Inventory) Consume(itemID int) (Inventory, error) {
	for i := range inv {
		if inv[i].ItemID != itemID {
			continue
		}
		if inv[i].Quantity <= 0 {
			break
		}
		inv[i].Quantity--
		if inv[i].Quantity == 0 {
			return append(inv[:i:i], inv[i+1:]...), nil
		}
		return inv, nil
	}
	return inv, errors.NotFoundf("no item %d in inventory", itemID).WithMeta("item_id", itemID)
}

// Clone returns a copy.
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	return append(Inventory(nil), inv...)
}
