package serialization

import (
	"log/slog"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// SerializeSkillSlot strips a resolved skill slot to its ID and level.
func SerializeSkillSlot(slot game.SkillSlot) game.SkillSlotData {
	data := game.SkillSlotData{
		Level: ptr(slot.Level),
	}
	if slot.Skill != nil {
		data.SkillID = ptr(slot.Skill.ID)
	}
	return data
}

// DeserializeSkillSlot resolves a serialized skill slot against the skill
// catalog. Legacy payloads that stored a skill name instead of an ID are
// resolved by name. An unresolvable reference leaves Skill nil.
func DeserializeSkillSlot(data game.SkillSlotData, skills map[int64]*game.Skill) game.SkillSlot {
	slot := game.SkillSlot{
		Level: valueOr(data.Level, game.DefaultSkillLevel),
	}
	if data.SkillID == nil && data.Name == "" {
		return slot
	}

	if data.SkillID != nil {
		if skill, ok := skills[*data.SkillID]; ok {
			slot.Skill = skill
			return slot
		}
	}

	if data.Name != "" {
		for _, skill := range skills {
			if skill.Name == data.Name {
				slot.Skill = skill
				return slot
			}
		}
	}

	var skillID int64
	if data.SkillID != nil {
		skillID = *data.SkillID
	}
	slog.Warn("skill not found in catalog", "skillId", skillID, "name", data.Name)
	return slot
}

// SerializeSkillBuild strips every slot of a skill build, preserving the
// build-level fields unchanged.
func SerializeSkillBuild(build *game.SkillBuild) *game.SkillBuildData {
	if build == nil {
		return nil
	}

	data := &game.SkillBuildData{
		ID:        build.ID,
		OwnerID:   build.OwnerID,
		Name:      build.Name,
		MaxSlots:  build.MaxSlots,
		Slots:     make([]game.SkillSlotData, 0, len(build.Slots)),
		CreatedAt: build.CreatedAt,
		UpdatedAt: build.UpdatedAt,
	}
	for _, slot := range build.Slots {
		data.Slots = append(data.Slots, SerializeSkillSlot(slot))
	}
	return data
}

// SerializeSkillBuildForSharing is SerializeSkillBuild without the
// identity fields. Skill slots have no collection provenance, so the slots
// themselves serialize the same as the storage flavor.
func SerializeSkillBuildForSharing(build *game.SkillBuild) *game.SkillBuildData {
	if build == nil {
		return nil
	}

	data := &game.SkillBuildData{
		Name:     build.Name,
		MaxSlots: build.MaxSlots,
		Slots:    make([]game.SkillSlotData, 0, len(build.Slots)),
	}
	for _, slot := range build.Slots {
		data.Slots = append(data.Slots, SerializeSkillSlot(slot))
	}
	return data
}

// DeserializeSkillBuild resolves every slot of a serialized skill build.
func DeserializeSkillBuild(data *game.SkillBuildData, skills map[int64]*game.Skill) *game.SkillBuild {
	if data == nil {
		return nil
	}

	build := &game.SkillBuild{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		MaxSlots:  data.MaxSlots,
		Slots:     make([]game.SkillSlot, 0, len(data.Slots)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	for _, slot := range data.Slots {
		build.Slots = append(build.Slots, DeserializeSkillSlot(slot, skills))
	}
	return build
}
