package loadouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
	redisclient "github.com/spiritwiki/loadout-api/internal/redis"
	"github.com/spiritwiki/loadout-api/internal/repositories/loadouts"
)

type LoadoutsRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	clock     *clock.Fixed
	repo      loadouts.Repository
	ctx       context.Context
}

func (s *LoadoutsRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})
	s.clock = clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	repo, err := loadouts.NewRedis(&loadouts.RedisConfig{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *LoadoutsRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *LoadoutsRepositoryTestSuite) loadoutData(id, owner string) *game.LoadoutData {
	return &game.LoadoutData{
		ID:            id,
		OwnerID:       owner,
		Name:          "Raid Setup",
		SkillBuildID:  "bld-skill-1",
		SpiritBuildID: "bld-spirit-1",
		Spirit:        "ember-fox",
	}
}

func (s *LoadoutsRepositoryTestSuite) TestLifecycle() {
	loadout := s.loadoutData("ld-1", "user-1")

	saveOut, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: loadout})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Unix(), saveOut.Loadout.CreatedAt)
	s.Equal(s.clock.Now().Unix(), saveOut.Loadout.UpdatedAt)
	s.True(s.miniRedis.Exists("loadout:ld-1"))

	getOut, err := s.repo.Get(s.ctx, loadouts.GetInput{ID: "ld-1"})
	s.Require().NoError(err)
	s.Equal("Raid Setup", getOut.Loadout.Name)
	s.Equal("bld-skill-1", getOut.Loadout.SkillBuildID)
	s.Nil(getOut.Loadout.SkillBuild)

	_, err = s.repo.Delete(s.ctx, loadouts.DeleteInput{ID: "ld-1"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("loadout:ld-1"))

	_, err = s.repo.Get(s.ctx, loadouts.GetInput{ID: "ld-1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *LoadoutsRepositoryTestSuite) TestSaveRejectsEmbeddedBuilds() {
	loadout := s.loadoutData("ld-1", "user-1")
	loadout.SkillBuildID = ""
	loadout.SkillBuild = &game.SkillBuildData{Name: "Boss Rotation"}

	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: loadout})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *LoadoutsRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, loadouts.SaveInput{
		Loadout: &game.LoadoutData{Name: "No ID"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoadoutsRepositoryTestSuite) TestSaveIsUpsertPreservingCreatedAt() {
	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData("ld-1", "user-1")})
	s.Require().NoError(err)
	created := s.clock.Now().Unix()

	s.clock.Advance(time.Hour)

	renamed := s.loadoutData("ld-1", "user-1")
	renamed.Name = "Speed Clear"
	saveOut, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: renamed})
	s.Require().NoError(err)

	s.Equal(created, saveOut.Loadout.CreatedAt)
	s.Equal(created+3600, saveOut.Loadout.UpdatedAt)

	getOut, err := s.repo.Get(s.ctx, loadouts.GetInput{ID: "ld-1"})
	s.Require().NoError(err)
	s.Equal("Speed Clear", getOut.Loadout.Name)
}

func (s *LoadoutsRepositoryTestSuite) TestSaveMovesOwnerIndex() {
	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData("ld-1", "user-1")})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData("ld-1", "user-2")})
	s.Require().NoError(err)

	oldMembers, err := s.client.SMembers(s.ctx, "loadout:owner:user-1").Result()
	s.Require().NoError(err)
	s.NotContains(oldMembers, "ld-1")

	newMembers, err := s.client.SMembers(s.ctx, "loadout:owner:user-2").Result()
	s.Require().NoError(err)
	s.Contains(newMembers, "ld-1")
}

func (s *LoadoutsRepositoryTestSuite) TestListByOwner() {
	for _, id := range []string{"ld-a", "ld-b"} {
		_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData(id, "user-1")})
		s.Require().NoError(err)
	}
	_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData("ld-c", "user-2")})
	s.Require().NoError(err)

	listOut, err := s.repo.ListByOwner(s.ctx, loadouts.ListByOwnerInput{OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Len(listOut.Loadouts, 2)

	ids := []string{listOut.Loadouts[0].ID, listOut.Loadouts[1].ID}
	s.ElementsMatch([]string{"ld-a", "ld-b"}, ids)
}

func (s *LoadoutsRepositoryTestSuite) TestListPrunesStaleIndexEntries() {
	for _, id := range []string{"ld-live", "ld-ghost"} {
		_, err := s.repo.Save(s.ctx, loadouts.SaveInput{Loadout: s.loadoutData(id, "user-1")})
		s.Require().NoError(err)
	}

	s.miniRedis.Del("loadout:ld-ghost")

	listOut, err := s.repo.ListByOwner(s.ctx, loadouts.ListByOwnerInput{OwnerID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(listOut.Loadouts, 1)
	s.Equal("ld-live", listOut.Loadouts[0].ID)

	members, err := s.miniRedis.SMembers("loadout:owner:user-1")
	s.Require().NoError(err)
	s.NotContains(members, "ld-ghost")
}

func TestLoadoutsRepositorySuite(t *testing.T) {
	suite.Run(t, new(LoadoutsRepositoryTestSuite))
}
