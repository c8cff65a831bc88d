package store

import (
	"context"
	"sync"

	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/errors"
)

// InMemoryRepository is an in-memory implementation of Repository.
// Useful for testing and for play without a Redis server.
type InMemoryRepository struct {
	mu        sync.RWMutex
	party     entity.Party
	inventory Inventory
	box       []*entity.Monster
	options   *Options
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// LoadParty returns a copy of the saved party.
func (r *InMemoryRepository) LoadParty(ctx context.Context) (entity.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.party == nil {
		return nil, errors.NotFoundf("party not found")
	}
	return r.party.Clone(), nil
}

// SaveParty stores a copy of party.
func (r *InMemoryRepository) SaveParty(ctx context.Context, party entity.Party) error {
	if err := party.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.party = party.Clone()
	return nil
}

// LoadInventory returns a copy of the saved inventory.
func (r *InMemoryRepository) LoadInventory(ctx context.Context) (Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.inventory == nil {
		return nil, errors.NotFoundf("inventory not found")
	}
	return r.inventory.Clone(), nil
}

// SaveInventory stores a copy of inventory.
func (r *InMemoryRepository) SaveInventory(ctx context.Context, inventory Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inventory = inventory.Clone()
	if r.inventory == nil {
		r.inventory = Inventory{}
	}
	return nil
}

// LoadBox returns a copy of the storage box.
func (r *InMemoryRepository) LoadBox(ctx context.Context) ([]*entity.Monster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.box == nil {
		return nil, errors.NotFoundf("box not found")
	}
	return entity.Party(r.box).Clone(), nil
}

// SaveBox stores a copy of box.
func (r *InMemoryRepository) SaveBox(ctx context.Context, box []*entity.Monster) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.box = entity.Party(box).Clone()
	return nil
}

// LoadOptions returns a copy of the saved options.
func (r *InMemoryRepository) LoadOptions(ctx context.Context) (*Options, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.options == nil {
		return nil, errors.NotFoundf("options not found")
	}
	opts := *r.options
	return &opts, nil
}

// SaveOptions stores a copy of options.
func (r *InMemoryRepository) SaveOptions(ctx context.Context, options *Options) error {
	if options == nil {
		return errors.InvalidArgument("options cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	opts := *options
	r.options = &opts
	return nil
}

var _ Repository = (*InMemoryRepository)(nil)
