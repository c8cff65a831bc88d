package store

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/errors"
	"github.com/samdwyer/monstertamer/internal/gamedata"
	"github.com/samdwyer/monstertamer/internal/uuid"
)

const (
	defaultStarterMonsterID = 1
	defaultStarterLevel     = 5
	potionItemID            = 1
	ballItemID              = 2
	starterItemQuantity     = 10
)

// DataStoreConfig configures a DataStore.
type DataStoreConfig struct {
	Repository    Repository
	Registry      *gamedata.Registry
	UUIDGenerator uuid.Generator
	// Starter is the species and level a fresh profile begins with.
	StarterMonsterID int
	StarterLevel     int
}

// DataStore is the save data the game works with between checkpoints.
// It is not safe for concurrent use; the game loop owns it.
type DataStore struct {
	repo      Repository
	registry  *gamedata.Registry
	uuidGen   uuid.Generator
	starterID int
	starterLv int

	party     entity.Party
	inventory Inventory
	box       []*entity.Monster
	options   *Options
}

// NewDataStore creates a DataStore. Call Load before using it.
func NewDataStore(cfg DataStoreConfig) (*DataStore, error) {
	if cfg.Repository == nil {
		return nil, errors.InvalidArgument("repository is required")
	}
	if cfg.Registry == nil {
		return nil, errors.InvalidArgument("registry is required")
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	starterID := cfg.StarterMonsterID
	if starterID == 0 {
		starterID = defaultStarterMonsterID
	}
	starterLv := cfg.StarterLevel
	if starterLv == 0 {
		starterLv = defaultStarterLevel
	}

	return &DataStore{
		repo:      cfg.Repository,
		registry:  cfg.Registry,
		uuidGen:   uuidGen,
		starterID: starterID,
		starterLv: starterLv,
		options:   DefaultOptions(),
	}, nil
}

// Load reads every part of the save concurrently. Parts that have never been
// saved are seeded with new-game defaults.
func (ds *DataStore) Load(ctx context.Context) error {
	var (
		party     entity.Party
		inventory Inventory
		box       []*entity.Monster
		options   *Options
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := ds.repo.LoadParty(gctx)
		if errors.IsNotFound(err) {
			p, err = ds.defaultParty()
		}
		party = p
		return err
	})
	g.Go(func() error {
		inv, err := ds.repo.LoadInventory(gctx)
		if errors.IsNotFound(err) {
			inv, err = ds.defaultInventory(), nil
		}
		inventory = inv
		return err
	})
	g.Go(func() error {
		b, err := ds.repo.LoadBox(gctx)
		if errors.IsNotFound(err) {
			b, err = []*entity.Monster{}, nil
		}
		box = b
		return err
	})
	g.Go(func() error {
		o, err := ds.repo.LoadOptions(gctx)
		if errors.IsNotFound(err) {
			o, err = DefaultOptions(), nil
		}
		options = o
		return err
	})
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to load save data")
	}

	if err := party.Validate(); err != nil {
		return errors.Wrap(err, "saved party is invalid")
	}

	ds.party = party
	ds.inventory = inventory
	ds.box = box
	ds.options = options
	return nil
}

// Save writes every part of the save concurrently.
func (ds *DataStore) Save(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ds.repo.SaveParty(gctx, ds.party) })
	g.Go(func() error { return ds.repo.SaveInventory(gctx, ds.inventory) })
	g.Go(func() error { return ds.repo.SaveBox(gctx, ds.box) })
	g.Go(func() error { return ds.repo.SaveOptions(gctx, ds.options) })
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to save data")
	}
	return nil
}

// SaveParty writes only the party.
func (ds *DataStore) SaveParty(ctx context.Context) error {
	return ds.repo.SaveParty(ctx, ds.party)
}

// SaveInventory writes only the inventory.
func (ds *DataStore) SaveInventory(ctx context.Context) error {
	return ds.repo.SaveInventory(ctx, ds.inventory)
}

// Party returns the party. Records are shared with the caller; mutate them
// only at battle checkpoints.
func (ds *DataStore) Party() entity.Party { return ds.party }

// SetParty replaces the party.
func (ds *DataStore) SetParty(party entity.Party) { ds.party = party }

// Inventory returns the bag.
func (ds *DataStore) Inventory() Inventory { return ds.inventory }

// SetInventory replaces the bag.
func (ds *DataStore) SetInventory(inventory Inventory) { ds.inventory = inventory }

// ConsumeItem removes one of itemID from the bag.
func (ds *DataStore) ConsumeItem(itemID int) error {
	inv, err := ds.inventory.Consume(itemID)
	if err != nil {
		return err
	}
	ds.inventory = inv
	return nil
}

// Box returns the storage box.
func (ds *DataStore) Box() []*entity.Monster { return ds.box }

// AddMonster puts a new monster in the party, or in the box when the party is full.
// It reports whether the monster joined the party.
func (ds *DataStore) AddMonster(m *entity.Monster) bool {
	if !ds.party.IsFull() {
		ds.party = append(ds.party, m)
		return true
	}
	ds.box = append(ds.box, m)
	log.Printf("store: party full, sent %s (%s) to the box", m.Name, m.ID)
	return false
}

// Options returns the player's settings.
func (ds *DataStore) Options() *Options { return ds.options }

// SetOptions replaces the player's settings.
func (ds *DataStore) SetOptions(options *Options) {
	if options != nil {
		ds.options = options
	}
}

// NewMonsterID returns a fresh identity for a monster.
func (ds *DataStore) NewMonsterID() string {
	return ds.uuidGen.New()
}

func (ds *DataStore) defaultParty() (entity.Party, error) {
	species := ds.registry.Species(ds.starterID)
	if species == nil {
		return nil, errors.NotFoundf("starter species %d not found", ds.starterID).WithMeta("monster_id", ds.starterID)
	}
	return entity.Party{entity.NewMonster(ds.uuidGen.New(), species, ds.starterLv)}, nil
}

func (ds *DataStore) defaultInventory() Inventory {
	var inv Inventory
	for _, id := range []int{potionItemID, ballItemID} {
		if ds.registry.Item(id) != nil {
			inv = inv.Add(id, starterItemQuantity)
		}
	}
	if inv == nil {
		inv = Inventory{}
	}
	return inv
}
