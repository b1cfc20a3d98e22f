package serialization_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/services/serialization"
	"github.com/spiritwiki/loadout-api/internal/testutils"
)

type SoulWeaponSerializationTestSuite struct {
	suite.Suite
	shapes map[string]*game.Shape
}

func (s *SoulWeaponSerializationTestSuite) SetupTest() {
	s.shapes = testutils.SampleShapes()
}

func (s *SoulWeaponSerializationTestSuite) TestSerializeReplacesShapeWithID() {
	build := testutils.SampleSoulWeaponBuild()

	data := serialization.SerializeSoulWeaponBuild(build)

	piece := data.Grid[0][0].Piece
	s.Require().NotNil(piece)
	s.Equal("t-shape", piece.ShapeID)
	s.Equal("legendary", piece.Rarity)
	s.Equal(int32(90), piece.Rotation)

	s.Require().Len(data.Inventory, 1)
	s.Equal("block", data.Inventory[0].ShapeID)
}

func (s *SoulWeaponSerializationTestSuite) TestSerializeStripsCatalogPayload() {
	build := testutils.SampleSoulWeaponBuild()

	resolved, err := json.Marshal(build)
	s.Require().NoError(err)
	serialized, err := json.Marshal(serialization.SerializeSoulWeaponBuild(build))
	s.Require().NoError(err)

	s.Less(len(serialized), len(resolved))
	s.NotContains(string(serialized), "T-Shape")
	s.NotContains(string(serialized), "pattern")
}

func (s *SoulWeaponSerializationTestSuite) TestSerializePreservesGridTopology() {
	build := testutils.SampleSoulWeaponBuild()

	data := serialization.SerializeSoulWeaponBuild(build)

	// Empty active cell and inactive cell both survive untouched.
	s.True(data.Grid[0][1].Active)
	s.Nil(data.Grid[0][1].Piece)
	s.False(data.Grid[1][1].Active)
	s.Nil(data.Grid[1][1].Piece)
}

func (s *SoulWeaponSerializationTestSuite) TestDeserializeUnknownShapeDegradesCell() {
	data := &game.SoulWeaponBuildData{
		Grid: [][]game.GridCellData{
			{
				{Active: true, Piece: &game.EngravingPieceData{ShapeID: "deleted-shape", Rarity: "epic"}},
				{Active: true, Piece: &game.EngravingPieceData{ShapeID: "block", Rarity: "rare"}},
			},
		},
	}

	build := serialization.DeserializeSoulWeaponBuild(data, s.shapes)

	s.False(build.Grid[0][0].Active)
	s.Nil(build.Grid[0][0].Piece)

	s.True(build.Grid[0][1].Active)
	s.Require().NotNil(build.Grid[0][1].Piece)
	s.Equal("Block", build.Grid[0][1].Piece.Shape.Name)
}

func (s *SoulWeaponSerializationTestSuite) TestDeserializeDropsUnknownInventoryPieces() {
	data := &game.SoulWeaponBuildData{
		Inventory: []game.EngravingPieceData{
			{ShapeID: "deleted-shape", InventoryIndex: 0},
			{ShapeID: "line", InventoryIndex: 1},
		},
	}

	build := serialization.DeserializeSoulWeaponBuild(data, s.shapes)

	s.Require().Len(build.Inventory, 1)
	s.Equal("Line", build.Inventory[0].Shape.Name)
}

func (s *SoulWeaponSerializationTestSuite) TestBuildRoundTrip() {
	build := testutils.SampleSoulWeaponBuild()

	data := serialization.SerializeSoulWeaponBuild(build)
	restored := serialization.DeserializeSoulWeaponBuild(data, s.shapes)

	s.Equal(build, restored)
}

func TestSoulWeaponSerializationSuite(t *testing.T) {
	suite.Run(t, new(SoulWeaponSerializationTestSuite))
}
