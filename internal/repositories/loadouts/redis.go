package loadouts

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
	redisclient "github.com/spiritwiki/loadout-api/internal/redis"
)

const (
	loadoutKeyPrefix = "loadout:"
	ownerIndexPrefix = "loadout:owner:"

	// Error messages
	errLoadoutNil     = "loadout cannot be nil"
	errLoadoutIDEmpty = "loadout ID cannot be empty"
	errOwnerIDEmpty   = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis loadout repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed loadout repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	loadout := input.Loadout
	if loadout == nil {
		return nil, errors.InvalidArgument(errLoadoutNil)
	}
	if loadout.ID == "" {
		return nil, errors.InvalidArgument(errLoadoutIDEmpty)
	}
	if loadout.SkillBuild != nil || loadout.SpiritBuild != nil {
		return nil, errors.FailedPrecondition("loadout embeds builds; persist the storage flavor with build ID references")
	}

	key := loadoutKeyPrefix + loadout.ID

	var previousOwner string
	existing, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing loadout")
	}
	if err == nil {
		var old game.LoadoutData
		if unmarshalErr := json.Unmarshal([]byte(existing), &old); unmarshalErr == nil {
			previousOwner = old.OwnerID
			if loadout.CreatedAt == 0 {
				loadout.CreatedAt = old.CreatedAt
			}
		}
	}

	now := r.clock.Now().Unix()
	if loadout.CreatedAt == 0 {
		loadout.CreatedAt = now
	}
	loadout.UpdatedAt = now

	data, err := json.Marshal(loadout)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal loadout")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if previousOwner != "" && previousOwner != loadout.OwnerID {
		pipe.SRem(ctx, ownerIndexPrefix+previousOwner, loadout.ID)
	}
	if loadout.OwnerID != "" {
		pipe.SAdd(ctx, ownerIndexPrefix+loadout.OwnerID, loadout.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout")
	}

	return &SaveOutput{Loadout: loadout}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLoadoutIDEmpty)
	}

	result, err := r.client.Get(ctx, loadoutKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("loadout with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get loadout")
	}

	var loadout game.LoadoutData
	if err := json.Unmarshal([]byte(result), &loadout); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal loadout")
	}

	return &GetOutput{Loadout: &loadout}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLoadoutIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, loadoutKeyPrefix+input.ID)
	if getOutput.Loadout.OwnerID != "" {
		pipe.SRem(ctx, ownerIndexPrefix+getOutput.Loadout.OwnerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout")
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
		return nil, errors.Wrapf(err, "failed to get loadouts from index %s", indexKey)
	}

	loadouts := make([]*game.LoadoutData, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "loadout not found, cleaning up index",
					"loadout_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get loadout %s", id)
		}
		loadouts = append(loadouts, getOutput.Loadout)
	}

	return &ListByOwnerOutput{Loadouts: loadouts}, nil
}
