package serialization_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/services/serialization"
	"github.com/spiritwiki/loadout-api/internal/testutils"
)

type SpiritSerializationTestSuite struct {
	suite.Suite
	spirits   map[int64]*game.Spirit
	mySpirits map[string]*game.CollectionSpirit
}

func (s *SpiritSerializationTestSuite) SetupTest() {
	s.spirits = testutils.SampleSpirits()
	s.mySpirits = testutils.SampleMySpirits()
}

func (s *SpiritSerializationTestSuite) TestSerializeBaseSlot() {
	slot := game.SpiritSlot{
		Source:                game.SlotSourceBase,
		Spirit:                s.spirits[102],
		Level:                 30,
		AwakeningLevel:        2,
		EvolutionLevel:        5,
		SkillEnhancementLevel: 1,
	}

	data := serialization.SerializeSpiritSlot(slot)

	s.Require().NotNil(data.SpiritID)
	s.Equal(int64(102), *data.SpiritID)
	s.Equal(game.SlotSourceBase, data.Source)
	s.Empty(data.MySpiritID)
	s.Require().NotNil(data.Level)
	s.Equal(int32(30), *data.Level)
	s.Require().NotNil(data.EvolutionLevel)
	s.Equal(int32(5), *data.EvolutionLevel)
}

func (s *SpiritSerializationTestSuite) TestSerializeEmptySlot() {
	slot := game.SpiritSlot{
		Source:         game.SlotSourceBase,
		Level:          game.DefaultSpiritLevel,
		EvolutionLevel: game.DefaultEvolutionLevel,
	}

	data := serialization.SerializeSpiritSlot(slot)

	s.Nil(data.SpiritID)
	s.Require().NotNil(data.Level)
	s.Equal(int32(1), *data.Level)
}

func (s *SpiritSerializationTestSuite) TestSerializeCollectionSlotOmitsConfiguration() {
	slot := game.SpiritSlot{
		Source:     game.SlotSourceCollection,
		Spirit:     s.spirits[101],
		MySpiritID: "my-1",
		Level:      50,
	}

	data := serialization.SerializeSpiritSlot(slot)

	s.Equal(game.SlotSourceCollection, data.Source)
	s.Equal("my-1", data.MySpiritID)
	s.Require().NotNil(data.SpiritID)
	s.Equal(int64(101), *data.SpiritID)

	// The collection record owns the configuration.
	s.Nil(data.Level)
	s.Nil(data.AwakeningLevel)
	s.Nil(data.EvolutionLevel)
	s.Nil(data.SkillEnhancementLevel)
}

func (s *SpiritSerializationTestSuite) TestDeserializeAppliesDefaults() {
	data := game.SpiritSlotData{SpiritID: int64Ptr(101)}

	slot := serialization.DeserializeSpiritSlot(data, s.spirits, nil)

	s.Require().NotNil(slot.Spirit)
	s.Equal("Ember Fox", slot.Spirit.Name)
	s.Equal(game.SlotSourceBase, slot.Source)
	s.Equal(int32(1), slot.Level)
	s.Equal(int32(0), slot.AwakeningLevel)
	s.Equal(int32(4), slot.EvolutionLevel)
	s.Equal(int32(0), slot.SkillEnhancementLevel)
}

func (s *SpiritSerializationTestSuite) TestDeserializeToleratesMissingSpirit() {
	data := game.SpiritSlotData{
		SpiritID: int64Ptr(999999),
		Level:    int32Ptr(5),
	}

	slot := serialization.DeserializeSpiritSlot(data, s.spirits, nil)

	s.Nil(slot.Spirit)
	s.Equal(int32(5), slot.Level)
	s.Equal(int32(0), slot.AwakeningLevel)
	s.Equal(int32(4), slot.EvolutionLevel)
	s.Equal(int32(0), slot.SkillEnhancementLevel)
}

func (s *SpiritSerializationTestSuite) TestDeserializeEmptySlot() {
	data := game.SpiritSlotData{}

	slot := serialization.DeserializeSpiritSlot(data, s.spirits, nil)

	s.Nil(slot.Spirit)
	s.Equal(game.SlotSourceBase, slot.Source)
	s.Equal(int32(1), slot.Level)
	s.Equal(int32(4), slot.EvolutionLevel)
}

func (s *SpiritSerializationTestSuite) TestDeserializeCollectionSlotUsesRecord() {
	data := game.SpiritSlotData{
		Source:     game.SlotSourceCollection,
		MySpiritID: "my-1",
	}

	slot := serialization.DeserializeSpiritSlot(data, s.spirits, s.mySpirits)

	s.Require().NotNil(slot.Spirit)
	s.Equal(int64(101), slot.Spirit.ID)
	s.Equal("my-1", slot.MySpiritID)
	s.Equal(int32(50), slot.Level)
	s.Equal(int32(3), slot.AwakeningLevel)
	s.Equal(int32(6), slot.EvolutionLevel)
	s.Equal(int32(2), slot.SkillEnhancementLevel)
}

func (s *SpiritSerializationTestSuite) TestDeserializeCollectionSlotMissingRecord() {
	data := game.SpiritSlotData{
		Source:     game.SlotSourceCollection,
		SpiritID:   int64Ptr(205),
		MySpiritID: "my-gone",
	}

	slot := serialization.DeserializeSpiritSlot(data, s.spirits, s.mySpirits)

	// Falls back to whatever the slot itself carries.
	s.Require().NotNil(slot.Spirit)
	s.Equal(int64(205), slot.Spirit.ID)
	s.Equal(int32(1), slot.Level)
	s.Equal(int32(4), slot.EvolutionLevel)
}

func (s *SpiritSerializationTestSuite) TestBuildRoundTrip() {
	build := testutils.SampleSpiritBuild()

	data := serialization.SerializeSpiritBuild(build)
	restored := serialization.DeserializeSpiritBuild(data, s.spirits, s.mySpirits)

	s.Equal(build, restored)
}

func (s *SpiritSerializationTestSuite) TestSerializeAfterDeserializeIsStable() {
	data := &game.SpiritBuildData{
		ID:       "build-spirit-9",
		Name:     "Stable",
		MaxSlots: 3,
		Slots: []game.SpiritSlotData{
			{
				Source:                game.SlotSourceBase,
				SpiritID:              int64Ptr(102),
				Level:                 int32Ptr(30),
				AwakeningLevel:        int32Ptr(2),
				EvolutionLevel:        int32Ptr(5),
				SkillEnhancementLevel: int32Ptr(1),
			},
			{Source: game.SlotSourceCollection, SpiritID: int64Ptr(101), MySpiritID: "my-1"},
		},
	}

	once := serialization.DeserializeSpiritBuild(data, s.spirits, s.mySpirits)
	again := serialization.SerializeSpiritBuild(once)

	s.Equal(data, again)
}

func (s *SpiritSerializationTestSuite) TestSharingPromotesCollectionSlot() {
	build := testutils.SampleSpiritBuild()

	data := serialization.SerializeSpiritBuildForSharing(build, s.mySpirits)

	s.Require().Len(data.Slots, 3)
	promoted := data.Slots[1]
	s.Equal(game.SlotSourceBase, promoted.Source)
	s.Empty(promoted.MySpiritID)
	s.Require().NotNil(promoted.SpiritID)
	s.Equal(int64(101), *promoted.SpiritID)
	s.Require().NotNil(promoted.Level)
	s.Equal(int32(50), *promoted.Level)
	s.Require().NotNil(promoted.SkillEnhancementLevel)
	s.Equal(int32(2), *promoted.SkillEnhancementLevel)
}

func (s *SpiritSerializationTestSuite) TestSharingStripsIdentity() {
	build := testutils.SampleSpiritBuild()

	data := serialization.SerializeSpiritBuildForSharing(build, s.mySpirits)

	s.Empty(data.ID)
	s.Empty(data.OwnerID)
	s.Equal("Arena Trio", data.Name)
}

func (s *SpiritSerializationTestSuite) TestSharingMissingRecordKeepsSlotScalars() {
	slot := game.SpiritSlot{
		Source:                game.SlotSourceCollection,
		Spirit:                s.spirits[205],
		MySpiritID:            "my-gone",
		Level:                 12,
		AwakeningLevel:        1,
		EvolutionLevel:        4,
		SkillEnhancementLevel: 0,
	}

	data := serialization.SerializeSpiritSlotForSharing(slot, s.mySpirits)

	s.Equal(game.SlotSourceBase, data.Source)
	s.Empty(data.MySpiritID)
	s.Require().NotNil(data.SpiritID)
	s.Equal(int64(205), *data.SpiritID)
	s.Require().NotNil(data.Level)
	s.Equal(int32(12), *data.Level)
}

func (s *SpiritSerializationTestSuite) TestSharingPromotedSlotTakesIdentityFromRecord() {
	// Slot resolved against a stale spirit; the record points elsewhere.
	slot := game.SpiritSlot{
		Source:     game.SlotSourceCollection,
		Spirit:     s.spirits[205],
		MySpiritID: "my-1",
	}

	data := serialization.SerializeSpiritSlotForSharing(slot, s.mySpirits)

	s.Equal(game.SlotSourceBase, data.Source)
	s.Require().NotNil(data.SpiritID)
	s.Equal(int64(101), *data.SpiritID)
	s.Require().NotNil(data.Level)
	s.Equal(int32(50), *data.Level)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func int32Ptr(v int32) *int32 {
	return &v
}

func TestSpiritSerializationSuite(t *testing.T) {
	suite.Run(t, new(SpiritSerializationTestSuite))
}
