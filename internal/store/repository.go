// Package store persists the player's party, inventory, storage box and options.
//
// The battle never talks to a Repository directly. It works against a DataStore,
// which loads everything once, hands out in-memory copies and writes back at
// explicit checkpoints.
package store

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=repository.go

import (
	"context"

	"github.com/samdwyer/monstertamer/internal/entity"
)

// Repository defines the interface for save data persistence.
// Load methods return a NotFound error when nothing has been saved yet.
type Repository interface {
	LoadParty(ctx context.Context) (entity.Party, error)
	SaveParty(ctx context.Context, party entity.Party) error

	LoadInventory(ctx context.Context) (Inventory, error)
	SaveInventory(ctx context.Context, inventory Inventory) error

	// The box holds captured monsters that did not fit in the party.
	LoadBox(ctx context.Context) ([]*entity.Monster, error)
	SaveBox(ctx context.Context, box []*entity.Monster) error

	LoadOptions(ctx context.Context) (*Options, error)
	SaveOptions(ctx context.Context, options *Options) error
}
