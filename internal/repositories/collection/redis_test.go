package collection_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	redisclient "github.com/spiritwiki/loadout-api/internal/redis"
	"github.com/spiritwiki/loadout-api/internal/repositories/collection"
)

type CollectionRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      collection.Repository
	ctx       context.Context
}

func (s *CollectionRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	repo, err := collection.NewRedis(&collection.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *CollectionRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *CollectionRepositoryTestSuite) spirit(id, owner string) *game.CollectionSpirit {
	return &game.CollectionSpirit{
		ID:                    id,
		OwnerID:               owner,
		SpiritID:              101,
		Level:                 50,
		AwakeningLevel:        3,
		EvolutionLevel:        6,
		SkillEnhancementLevel: 2,
	}
}

func (s *CollectionRepositoryTestSuite) TestLifecycle() {
	_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: s.spirit("my-1", "user-1")})
	s.Require().NoError(err)
	s.True(s.miniRedis.Exists("myspirit:my-1"))

	getOut, err := s.repo.Get(s.ctx, collection.GetInput{ID: "my-1"})
	s.Require().NoError(err)
	s.Equal(int64(101), getOut.Spirit.SpiritID)
	s.Equal(int32(50), getOut.Spirit.Level)

	_, err = s.repo.Delete(s.ctx, collection.DeleteInput{ID: "my-1"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("myspirit:my-1"))

	members, err := s.miniRedis.SMembers("myspirit:owner:user-1")
	s.Require().NoError(err)
	s.NotContains(members, "my-1")

	_, err = s.repo.Get(s.ctx, collection.GetInput{ID: "my-1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CollectionRepositoryTestSuite) TestUpsertOverwrites() {
	_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: s.spirit("my-1", "user-1")})
	s.Require().NoError(err)

	leveled := s.spirit("my-1", "user-1")
	leveled.Level = 60
	_, err = s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: leveled})
	s.Require().NoError(err)

	getOut, err := s.repo.Get(s.ctx, collection.GetInput{ID: "my-1"})
	s.Require().NoError(err)
	s.Equal(int32(60), getOut.Spirit.Level)

	members, err := s.miniRedis.SMembers("myspirit:owner:user-1")
	s.Require().NoError(err)
	s.Len(members, 1)
}

func (s *CollectionRepositoryTestSuite) TestUpsertValidation() {
	_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, collection.UpsertInput{
		Spirit: &game.CollectionSpirit{OwnerID: "user-1"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, collection.UpsertInput{
		Spirit: &game.CollectionSpirit{ID: "my-1"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CollectionRepositoryTestSuite) TestListByOwner() {
	for _, id := range []string{"my-1", "my-2"} {
		_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: s.spirit(id, "user-1")})
		s.Require().NoError(err)
	}
	_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: s.spirit("my-3", "user-2")})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByOwner(s.ctx, collection.ListByOwnerInput{OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Len(listOut.Spirits, 2)

	ids := []string{listOut.Spirits[0].ID, listOut.Spirits[1].ID}
	s.ElementsMatch([]string{"my-1", "my-2"}, ids)
}

func (s *CollectionRepositoryTestSuite) TestListPrunesStaleIndexEntries() {
	for _, id := range []string{"my-live", "my-ghost"} {
		_, err := s.repo.Upsert(s.ctx, collection.UpsertInput{Spirit: s.spirit(id, "user-1")})
		s.Require().NoError(err)
	}

	s.miniRedis.Del("myspirit:my-ghost")

	listOut, err := s.repo.ListByOwner(s.ctx, collection.ListByOwnerInput{OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(listOut.Spirits, 1)
	s.Equal("my-live", listOut.Spirits[0].ID)

	members, err := s.miniRedis.SMembers("myspirit:owner:user-1")
	s.Require().NoError(err)
	s.NotContains(members, "my-ghost")
}

func TestCollectionRepositorySuite(t *testing.T) {
	suite.Run(t, new(CollectionRepositoryTestSuite))
}
