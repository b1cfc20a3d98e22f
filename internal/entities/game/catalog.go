// Package game defines the loadout data model: immutable catalog records,
// slot and build types, and the loadout aggregate. Most types come in two
// forms, a resolved form holding full catalog records and a serialized
// *Data form holding only catalog IDs. The serialization service converts
// between them; repositories persist only the *Data forms.
package game

// Spirit is a catalog record for a summonable spirit character.
type Spirit struct {
	ID     int64        `json:"id"`
	Name   string       `json:"name"`
	Type   string       `json:"type"`
	Rarity int32        `json:"rarity"`
	Skill  *SpiritSkill `json:"skill,omitempty"`
}

// SpiritSkill describes the active skill attached to a spirit.
type SpiritSkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cooldown    int32  `json:"cooldown"`
}

// Skill is a catalog record for an equippable skill.
type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	MaxLevel    int32  `json:"maxLevel"`
}

// Shape is a catalog record for an engraving piece shape. Pattern is the
// occupancy grid relative to the anchor cell.
type Shape struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Pattern   [][]bool           `json:"pattern"`
	BaseStats map[string]float64 `json:"baseStats,omitempty"`
}

// CollectionSpirit is an owned spirit in a player's collection. Slots that
// reference a collection spirit take their configuration from this record
// rather than storing their own.
type CollectionSpirit struct {
	ID                    string `json:"id"`
	OwnerID               string `json:"ownerId,omitempty"`
	SpiritID              int64  `json:"spiritId"`
	Level                 int32  `json:"level"`
	AwakeningLevel        int32  `json:"awakeningLevel"`
	EvolutionLevel        int32  `json:"evolutionLevel"`
	SkillEnhancementLevel int32  `json:"skillEnhancementLevel"`
}
