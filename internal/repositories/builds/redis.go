package builds

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
	skillBuildKeyPrefix    = "build:skill:"
	skillOwnerIndexPrefix  = "build:skill:owner:"
	spiritBuildKeyPrefix   = "build:spirit:"
	spiritOwnerIndexPrefix = "build:spirit:owner:"

	// Error messages
	errBuildNil     = "build cannot be nil"
	errBuildIDEmpty = "build ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis build repository.
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

// NewRedis creates a new Redis-backed build repository
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

func (r *redisRepository) SaveSkillBuild(ctx context.Context, input SaveSkillBuildInput) (*SaveSkillBuildOutput, error) {
	build := input.Build
	if build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := skillBuildKeyPrefix + build.ID

	// Load any existing record so a moved build leaves its old owner index.
	var previousOwner string
	existing, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing skill build")
	}
	if err == nil {
		var old game.SkillBuildData
		if unmarshalErr := json.Unmarshal([]byte(existing), &old); unmarshalErr == nil {
			previousOwner = old.OwnerID
			if build.CreatedAt == 0 {
				build.CreatedAt = old.CreatedAt
			}
		}
	}

	now := r.clock.Now().Unix()
	if build.CreatedAt == 0 {
		build.CreatedAt = now
	}
	build.UpdatedAt = now

	data, err := json.Marshal(build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skill build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if previousOwner != "" && previousOwner != build.OwnerID {
		pipe.SRem(ctx, skillOwnerIndexPrefix+previousOwner, build.ID)
	}
	if build.OwnerID != "" {
		pipe.SAdd(ctx, skillOwnerIndexPrefix+build.OwnerID, build.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save skill build")
	}

	return &SaveSkillBuildOutput{Build: build}, nil
}

func (r *redisRepository) GetSkillBuild(ctx context.Context, input GetSkillBuildInput) (*GetSkillBuildOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	result, err := r.client.Get(ctx, skillBuildKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("skill build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get skill build")
	}

	var build game.SkillBuildData
	if err := json.Unmarshal([]byte(result), &build); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal skill build")
	}

	return &GetSkillBuildOutput{Build: &build}, nil
}

func (r *redisRepository) DeleteSkillBuild(ctx context.Context, input DeleteSkillBuildInput) (*DeleteSkillBuildOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	getOutput, err := r.GetSkillBuild(ctx, GetSkillBuildInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, skillBuildKeyPrefix+input.ID)
	if getOutput.Build.OwnerID != "" {
		pipe.SRem(ctx, skillOwnerIndexPrefix+getOutput.Build.OwnerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete skill build")
	}

	return &DeleteSkillBuildOutput{}, nil
}

func (r *redisRepository) ListSkillBuildsByOwner(ctx context.Context, input ListSkillBuildsByOwnerInput) (*ListSkillBuildsByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := skillOwnerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get skill builds from index %s", indexKey)
	}

	builds := make([]*game.SkillBuildData, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.GetSkillBuild(ctx, GetSkillBuildInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "skill build not found, cleaning up index",
					"build_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get skill build %s", id)
		}
		builds = append(builds, getOutput.Build)
	}

	return &ListSkillBuildsByOwnerOutput{Builds: builds}, nil
}

func (r *redisRepository) SaveSpiritBuild(ctx context.Context, input SaveSpiritBuildInput) (*SaveSpiritBuildOutput, error) {
	build := input.Build
	if build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	key := spiritBuildKeyPrefix + build.ID

	var previousOwner string
	existing, err := r.client.Get(ctx, key).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check existing spirit build")
	}
	if err == nil {
		var old game.SpiritBuildData
		if unmarshalErr := json.Unmarshal([]byte(existing), &old); unmarshalErr == nil {
			previousOwner = old.OwnerID
			if build.CreatedAt == 0 {
				build.CreatedAt = old.CreatedAt
			}
		}
	}

	now := r.clock.Now().Unix()
	if build.CreatedAt == 0 {
		build.CreatedAt = now
	}
	build.UpdatedAt = now

	data, err := json.Marshal(build)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spirit build")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if previousOwner != "" && previousOwner != build.OwnerID {
		pipe.SRem(ctx, spiritOwnerIndexPrefix+previousOwner, build.ID)
	}
	if build.OwnerID != "" {
		pipe.SAdd(ctx, spiritOwnerIndexPrefix+build.OwnerID, build.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save spirit build")
	}

	return &SaveSpiritBuildOutput{Build: build}, nil
}

func (r *redisRepository) GetSpiritBuild(ctx context.Context, input GetSpiritBuildInput) (*GetSpiritBuildOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	result, err := r.client.Get(ctx, spiritBuildKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spirit build with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get spirit build")
	}

	var build game.SpiritBuildData
	if err := json.Unmarshal([]byte(result), &build); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spirit build")
	}

	return &GetSpiritBuildOutput{Build: &build}, nil
}

func (r *redisRepository) DeleteSpiritBuild(ctx context.Context, input DeleteSpiritBuildInput) (*DeleteSpiritBuildOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	getOutput, err := r.GetSpiritBuild(ctx, GetSpiritBuildInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spiritBuildKeyPrefix+input.ID)
	if getOutput.Build.OwnerID != "" {
		pipe.SRem(ctx, spiritOwnerIndexPrefix+getOutput.Build.OwnerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spirit build")
	}

	return &DeleteSpiritBuildOutput{}, nil
}

func (r *redisRepository) ListSpiritBuildsByOwner(ctx context.Context, input ListSpiritBuildsByOwnerInput) (*ListSpiritBuildsByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	indexKey := spiritOwnerIndexPrefix + input.OwnerID
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spirit builds from index %s", indexKey)
	}

	builds := make([]*game.SpiritBuildData, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.GetSpiritBuild(ctx, GetSpiritBuildInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "spirit build not found, cleaning up index",
					"build_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get spirit build %s", id)
		}
		builds = append(builds, getOutput.Build)
	}

	return &ListSpiritBuildsByOwnerOutput{Builds: builds}, nil
}
