package serialization

import (
	"log/slog"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// SerializeSpiritSlot strips a resolved spirit slot to its ID and
// configuration. Base slots carry their configuration inline; collection
// slots store only the reference, the configuration stays on the
// collection record.
func SerializeSpiritSlot(slot game.SpiritSlot) game.SpiritSlotData {
	data := game.SpiritSlotData{
		Source:     slot.Source,
		MySpiritID: slot.MySpiritID,
	}
	if slot.Spirit != nil {
		data.SpiritID = ptr(slot.Spirit.ID)
	}
	if slot.Source == game.SlotSourceCollection && slot.MySpiritID != "" {
		return data
	}

	data.Level = ptr(slot.Level)
	data.AwakeningLevel = ptr(slot.AwakeningLevel)
	data.EvolutionLevel = ptr(slot.EvolutionLevel)
	data.SkillEnhancementLevel = ptr(slot.SkillEnhancementLevel)
	return data
}

// SerializeSpiritSlotForSharing is SerializeSpiritSlot with collection
// slots promoted to base: the collection record's configuration is inlined
// and the collection reference dropped, since the recipient has no access
// to the sharer's collection.
func SerializeSpiritSlotForSharing(slot game.SpiritSlot, mySpirits map[string]*game.CollectionSpirit) game.SpiritSlotData {
	if slot.Source != game.SlotSourceCollection {
		return SerializeSpiritSlot(slot)
	}

	promoted := slot
	promoted.Source = game.SlotSourceBase
	promoted.MySpiritID = ""

	record, ok := mySpirits[slot.MySpiritID]
	if ok {
		promoted.Level = record.Level
		promoted.AwakeningLevel = record.AwakeningLevel
		promoted.EvolutionLevel = record.EvolutionLevel
		promoted.SkillEnhancementLevel = record.SkillEnhancementLevel
	} else {
		// The slot's resolved scalars were pulled from the record when it
		// still existed, so they are the best remaining source.
		slog.Warn("collection spirit not found, promoting slot configuration",
			"mySpiritId", slot.MySpiritID)
	}

	data := SerializeSpiritSlot(promoted)
	if ok {
		// Identity and configuration must come from the same source; the
		// record wins over whatever spirit the slot resolved against.
		data.SpiritID = ptr(record.SpiritID)
	}
	return data
}

// DeserializeSpiritSlot resolves a serialized spirit slot against the
// spirit catalog. Collection slots pull their configuration from the
// matching collection record. A spirit ID absent from the catalog leaves
// Spirit nil; the slot still renders.
func DeserializeSpiritSlot(data game.SpiritSlotData, spirits map[int64]*game.Spirit, mySpirits map[string]*game.CollectionSpirit) game.SpiritSlot {
	slot := game.SpiritSlot{
		Source:                data.Source,
		MySpiritID:            data.MySpiritID,
		Level:                 valueOr(data.Level, game.DefaultSpiritLevel),
		AwakeningLevel:        valueOr(data.AwakeningLevel, game.DefaultAwakeningLevel),
		EvolutionLevel:        valueOr(data.EvolutionLevel, game.DefaultEvolutionLevel),
		SkillEnhancementLevel: valueOr(data.SkillEnhancementLevel, game.DefaultSkillEnhancementLevel),
	}
	if slot.Source == "" {
		slot.Source = game.SlotSourceBase
	}

	spiritID := data.SpiritID
	if slot.Source == game.SlotSourceCollection {
		if record, ok := mySpirits[data.MySpiritID]; ok {
			spiritID = ptr(record.SpiritID)
			slot.Level = record.Level
			slot.AwakeningLevel = record.AwakeningLevel
			slot.EvolutionLevel = record.EvolutionLevel
			slot.SkillEnhancementLevel = record.SkillEnhancementLevel
		} else {
			slog.Warn("collection spirit not found, falling back to slot data",
				"mySpiritId", data.MySpiritID)
		}
	}

	if spiritID == nil {
		return slot
	}

	spirit, ok := spirits[*spiritID]
	if !ok {
		slog.Warn("spirit not found in catalog", "spiritId", *spiritID)
		return slot
	}

	slot.Spirit = spirit
	return slot
}

// SerializeSpiritBuild strips every slot of a spirit build, preserving the
// build-level fields unchanged.
func SerializeSpiritBuild(build *game.SpiritBuild) *game.SpiritBuildData {
	if build == nil {
		return nil
	}

	data := &game.SpiritBuildData{
		ID:        build.ID,
		OwnerID:   build.OwnerID,
		Name:      build.Name,
		MaxSlots:  build.MaxSlots,
		Slots:     make([]game.SpiritSlotData, 0, len(build.Slots)),
		CreatedAt: build.CreatedAt,
		UpdatedAt: build.UpdatedAt,
	}
	for _, slot := range build.Slots {
		data.Slots = append(data.Slots, SerializeSpiritSlot(slot))
	}
	return data
}

// SerializeSpiritBuildForSharing strips every slot with collection slots
// promoted to base, and drops the identity fields so the shared payload is
// self-contained and anonymous.
func SerializeSpiritBuildForSharing(build *game.SpiritBuild, mySpirits map[string]*game.CollectionSpirit) *game.SpiritBuildData {
	if build == nil {
		return nil
	}

	data := &game.SpiritBuildData{
		Name:     build.Name,
		MaxSlots: build.MaxSlots,
		Slots:    make([]game.SpiritSlotData, 0, len(build.Slots)),
	}
	for _, slot := range build.Slots {
		data.Slots = append(data.Slots, SerializeSpiritSlotForSharing(slot, mySpirits))
	}
	return data
}

// DeserializeSpiritBuild resolves every slot of a serialized spirit build.
func DeserializeSpiritBuild(data *game.SpiritBuildData, spirits map[int64]*game.Spirit, mySpirits map[string]*game.CollectionSpirit) *game.SpiritBuild {
	if data == nil {
		return nil
	}

	build := &game.SpiritBuild{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		MaxSlots:  data.MaxSlots,
		Slots:     make([]game.SpiritSlot, 0, len(data.Slots)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, slot := range data.Slots {
		build.Slots = append(build.Slots, DeserializeSpiritSlot(slot, spirits, mySpirits))
	}
	return build
}
