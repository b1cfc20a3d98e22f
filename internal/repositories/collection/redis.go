package collection

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	redisclient "github.com/spiritwiki/loadout-api/internal/redis"
)

const (
	spiritKeyPrefix  = "myspirit:"
	ownerIndexPrefix = "myspirit:owner:"

	// Error messages
	errSpiritNil     = "collection spirit cannot be nil"
	errSpiritIDEmpty = "collection spirit ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis collection repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed collection repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	spirit := input.Spirit
	if spirit == nil {
		return nil, errors.InvalidArgument(errSpiritNil)
	}
	if spirit.ID == "" {
		return nil, errors.InvalidArgument(errSpiritIDEmpty)
	}
	if spirit.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := spiritKeyPrefix + spirit.ID

	// A record never moves between owners; stale indexes only appear
	// through deletes, which prune them inline.
	data, err := json.Marshal(spirit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal collection spirit")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, ownerIndexPrefix+spirit.OwnerID, spirit.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save collection spirit")
	}

	return &UpsertOutput{Spirit: spirit}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpiritIDEmpty)
	}

	result, err := r.client.Get(ctx, spiritKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("collection spirit with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get collection spirit")
	}

	var spirit game.CollectionSpirit
	if err := json.Unmarshal([]byte(result), &spirit); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal collection spirit")
	}

	return &GetOutput{Spirit: &spirit}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpiritIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spiritKeyPrefix+input.ID)
	pipe.SRem(ctx, ownerIndexPrefix+getOutput.Spirit.OwnerID, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection spirit")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := ownerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get collection spirits from index %s", indexKey)
	}

	spirits := make([]*game.CollectionSpirit, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "collection spirit not found, cleaning up index",
					"spirit_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get collection spirit %s", id)
		}
		spirits = append(spirits, getOutput.Spirit)
	}

	return &ListByOwnerOutput{Spirits: spirits}, nil
}
