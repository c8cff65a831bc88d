package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/samdwyer/monstertamer/internal/entity"
	"github.com/samdwyer/monstertamer/internal/errors"
)

const (
	// Key patterns, one JSON blob per profile and kind
	partyKey     = "monstertamer:%s:party"
	inventoryKey = "monstertamer:%s:inventory"
	boxKey       = "monstertamer:%s:box"
	optionsKey   = "monstertamer:%s:options"

	defaultProfile = "default"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client  redis.UniversalClient
	Profile string
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client  redis.UniversalClient
	profile string
}

// NewRedisRepository creates a new Redis-backed save data repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	return &redisRepository{
		client:  cfg.Client,
		profile: profile,
	}
}

// NewRedis creates a Redis-backed repository for profile
func NewRedis(client redis.UniversalClient, profile string) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:  client,
		Profile: profile,
	})
}

func (r *redisRepository) key(pattern string) string {
	return fmt.Sprintf(pattern, r.profile)
}

// LoadParty retrieves the saved party
func (r *redisRepository) LoadParty(ctx context.Context) (entity.Party, error) {
	var party entity.Party
	if err := r.get(ctx, r.key(partyKey), "party", &party); err != nil {
		return nil, err
	}
	return party, nil
}

// SaveParty stores the party
func (r *redisRepository) SaveParty(ctx context.Context, party entity.Party) error {
	if err := party.Validate(); err != nil {
		return err
	}
	return r.set(ctx, r.key(partyKey), "party", party)
}

// LoadInventory retrieves the saved inventory
func (r *redisRepository) LoadInventory(ctx context.Context) (Inventory, error) {
	var inventory Inventory
	if err := r.get(ctx, r.key(inventoryKey), "inventory", &inventory); err != nil {
		return nil, err
	}
	if inventory == nil {
		inventory = Inventory{}
	}
	return inventory, nil
}

// SaveInventory stores the inventory
func (r *redisRepository) SaveInventory(ctx context.Context, inventory Inventory) error {
	if inventory == nil {
		inventory = Inventory{}
	}
	return r.set(ctx, r.key(inventoryKey), "inventory", inventory)
}

// LoadBox retrieves the storage box
func (r *redisRepository) LoadBox(ctx context.Context) ([]*entity.Monster, error) {
	var box []*entity.Monster
	if err := r.get(ctx, r.key(boxKey), "box", &box); err != nil {
		return nil, err
	}
	if box == nil {
		box = []*entity.Monster{}
	}
	return box, nil
}

// SaveBox stores the storage box
func (r *redisRepository) SaveBox(ctx context.Context, box []*entity.Monster) error {
	if box == nil {
		box = []*entity.Monster{}
	}
	return r.set(ctx, r.key(boxKey), "box", box)
}

// LoadOptions retrieves the saved options
func (r *redisRepository) LoadOptions(ctx context.Context) (*Options, error) {
	var options Options
	if err := r.get(ctx, r.key(optionsKey), "options", &options); err != nil {
		return nil, err
	}
	return &options, nil
}

// SaveOptions stores the options
func (r *redisRepository) SaveOptions(ctx context.Context, options *Options) error {
	if options == nil {
		return errors.InvalidArgument("options cannot be nil")
	}
	return r.set(ctx, r.key(optionsKey), "options", options)
}

func (r *redisRepository) get(ctx context.Context, key, what string, out any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return errors.NotFoundf("%s not found", what).WithMeta("key", key)
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to get %s", what))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("failed to deserialize %s", what))
	}
	return nil
}

func (r *redisRepository) set(ctx context.Context, key, what string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("failed to serialize %s", what))
	}

	if err := r.client.Set(ctx, key, string(data), 0).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to save %s", what))
	}
	return nil
}
