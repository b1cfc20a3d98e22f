package game

// SlotSource marks where a spirit slot's configuration lives.
type SlotSource string

// Slot sources. Serialized slots without a source are treated as base.
const (
	SlotSourceBase       SlotSource = "base"
	SlotSourceCollection SlotSource = "collection"
)

// Defaults applied when a serialized slot omits a configuration value.
const (
	DefaultSpiritLevel           int32 = 1
	DefaultAwakeningLevel        int32 = 0
	DefaultEvolutionLevel        int32 = 4
	DefaultSkillEnhancementLevel int32 = 0
	DefaultSkillLevel            int32 = 1
)

// SpiritSlot is a resolved spirit build slot. Spirit is nil for an empty
// slot or when the catalog record could not be found.
type SpiritSlot struct {
	Source                SlotSource `json:"type"`
	Spirit                *Spirit    `json:"spirit"`
	MySpiritID            string     `json:"mySpiritId,omitempty"`
	Level                 int32      `json:"level"`
	AwakeningLevel        int32      `json:"awakeningLevel"`
	EvolutionLevel        int32      `json:"evolutionLevel"`
	SkillEnhancementLevel int32      `json:"skillEnhancementLevel"`
}

// SpiritSlotData is the serialized form of a spirit slot. SpiritID is null
// for an empty slot. Configuration scalars are pointers so that absent
// values (legacy payloads, collection slots) are distinguishable from zero;
// collection slots never store configuration of their own.
type SpiritSlotData struct {
	Source                SlotSource `json:"type,omitempty"`
	SpiritID              *int64     `json:"spiritId"`
	MySpiritID            string     `json:"mySpiritId,omitempty"`
	Level                 *int32     `json:"level,omitempty"`
	AwakeningLevel        *int32     `json:"awakeningLevel,omitempty"`
	EvolutionLevel        *int32     `json:"evolutionLevel,omitempty"`
	SkillEnhancementLevel *int32     `json:"skillEnhancementLevel,omitempty"`
}

// SkillSlot is a resolved skill build slot. Skill is nil for an empty slot
// or when the catalog record could not be found.
type SkillSlot struct {
	Skill *Skill `json:"skill"`
	Level int32  `json:"level"`
}

// SkillSlotData is the serialized form of a skill slot. SkillID is null for
// an empty slot. Name appears only in legacy payloads and is read as a
// lookup fallback; the serializer never writes it.
type SkillSlotData struct {
	SkillID *int64 `json:"skillId"`
	Name    string `json:"name,omitempty"`
	Level   *int32 `json:"level,omitempty"`
}
