package testutils

import "github.com/spiritwiki/loadout-api/internal/entities/game"

// SampleSpirits returns a small spirit catalog keyed by ID.
func SampleSpirits() map[int64]*game.Spirit {
	return map[int64]*game.Spirit{
		101: {
			ID:     101,
			Name:   "Ember Fox",
			Type:   "fire",
			Rarity: 5,
			Skill: &game.SpiritSkill{
				Name:        "Flame Burst",
				Description: "Burns the front row.",
				Cooldown:    12,
			},
		},
		102: {
			ID:     102,
			Name:   "Gale Crane",
			Type:   "wind",
			Rarity: 4,
		},
		205: {
			ID:     205,
			Name:   "Tidal Koi",
			Type:   "water",
			Rarity: 3,
		},
	}
}

// SampleSkills returns a small skill catalog keyed by ID.
func SampleSkills() map[int64]*game.Skill {
	return map[int64]*game.Skill{
		5001: {
			ID:          5001,
			Name:        "Meteor Strike",
			Type:        "active",
			Description: "Calls down a meteor.",
			MaxLevel:    10,
		},
		5002: {
			ID:       5002,
			Name:     "Iron Will",
			Type:     "passive",
			MaxLevel: 5,
		},
		5003: {
			ID:       5003,
			Name:     "Shadow Step",
			Type:     "active",
			MaxLevel: 7,
		},
	}
}

// SampleShapes returns a small engraving shape catalog keyed by ID.
func SampleShapes() map[string]*game.Shape {
	return map[string]*game.Shape{
		"t-shape": {
			ID:   "t-shape",
			Name: "T-Shape",
			Pattern: [][]bool{
				{true, true, true},
				{false, true, false},
			},
			BaseStats: map[string]float64{"attack": 12},
		},
		"block": {
			ID:   "block",
			Name: "Block",
			Pattern: [][]bool{
				{true, true},
				{true, true},
			},
			BaseStats: map[string]float64{"defense": 8},
		},
		"line": {
			ID:   "line",
			Name: "Line",
			Pattern: [][]bool{
				{true, true, true, true},
			},
		},
	}
}

// SampleMySpirits returns two collection records for the sample owner.
func SampleMySpirits() map[string]*game.CollectionSpirit {
	return map[string]*game.CollectionSpirit{
		"my-1": {
			ID:                    "my-1",
			OwnerID:               "user-1",
			SpiritID:              101,
			Level:                 50,
			AwakeningLevel:        3,
			EvolutionLevel:        6,
			SkillEnhancementLevel: 2,
		},
		"my-2": {
			ID:                    "my-2",
			OwnerID:               "user-1",
			SpiritID:              205,
			Level:                 12,
			AwakeningLevel:        1,
			EvolutionLevel:        4,
			SkillEnhancementLevel: 0,
		},
	}
}

// SampleSpiritBuild returns a resolved spirit build exercising base,
// collection and empty slots. References point into SampleSpirits and
// SampleMySpirits.
func SampleSpiritBuild() *game.SpiritBuild {
	spirits := SampleSpirits()
	return &game.SpiritBuild{
		ID:       "build-spirit-1",
		OwnerID:  "user-1",
		Name:     "Arena Trio",
		MaxSlots: 3,
		Slots: []game.SpiritSlot{
			{
				Source:                game.SlotSourceBase,
				Spirit:                spirits[102],
				Level:                 30,
				AwakeningLevel:        2,
				EvolutionLevel:        5,
				SkillEnhancementLevel: 1,
			},
			{
				Source:                game.SlotSourceCollection,
				Spirit:                spirits[101],
				MySpiritID:            "my-1",
				Level:                 50,
				AwakeningLevel:        3,
				EvolutionLevel:        6,
				SkillEnhancementLevel: 2,
			},
			{
				Source:         game.SlotSourceBase,
				Level:          game.DefaultSpiritLevel,
				EvolutionLevel: game.DefaultEvolutionLevel,
			},
		},
	}
}

// SampleSkillBuild returns a resolved skill build with one empty slot.
// References point into SampleSkills.
func SampleSkillBuild() *game.SkillBuild {
	skills := SampleSkills()
	return &game.SkillBuild{
		ID:       "build-skill-1",
		OwnerID:  "user-1",
		Name:     "Boss Rotation",
		MaxSlots: 10,
		Slots: []game.SkillSlot{
			{Skill: skills[5001], Level: 8},
			{Skill: skills[5003], Level: 4},
			{Level: game.DefaultSkillLevel},
		},
	}
}

// SampleSoulWeaponBuild returns a resolved two-by-two engraving grid with
// one placed piece and one inventory piece. References point into
// SampleShapes.
func SampleSoulWeaponBuild() *game.SoulWeaponBuild {
	shapes := SampleShapes()
	return &game.SoulWeaponBuild{
		Grid: [][]game.GridCell{
			{
				{Active: true, Piece: &game.EngravingPiece{
					Shape:          shapes["t-shape"],
					Rarity:         "legendary",
					Level:          9,
					Rotation:       90,
					AnchorRow:      0,
					AnchorCol:      0,
					InventoryIndex: 2,
				}},
				{Active: true},
			},
			{
				{Active: true},
				{Active: false},
			},
		},
		Inventory: []game.EngravingPiece{
			{
				Shape:          shapes["block"],
				Rarity:         "rare",
				Level:          3,
				InventoryIndex: 0,
			},
		},
	}
}

// SampleLoadout returns a resolved loadout bundling the sample builds.
func SampleLoadout() *game.Loadout {
	return &game.Loadout{
		ID:               "loadout-1",
		OwnerID:          "user-1",
		Name:             "Raid Setup",
		SkillBuild:       SampleSkillBuild(),
		SpiritBuild:      SampleSpiritBuild(),
		SoulWeaponBuild:  SampleSoulWeaponBuild(),
		Spirit:           "ember-fox",
		SkillStone:       "ruby",
		PromotionAbility: "warlord",
		Familiar:         "pup",
	}
}
