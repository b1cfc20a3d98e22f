package serialization

import (
	"log/slog"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
)

// SerializeLoadoutForStorage emits the storage flavor of a loadout: skill
// and spirit builds are referenced by ID, the soul weapon build is
// serialized in place, flat selections pass through unchanged.
//
// Referencing an unpersisted build is a precondition failure. Persist the
// builds first, then the loadout.
func SerializeLoadoutForStorage(loadout *game.Loadout) (*game.LoadoutData, error) {
	if loadout == nil {
		return nil, errors.InvalidArgument("loadout is required")
	}

	data := &game.LoadoutData{
		ID:               loadout.ID,
		OwnerID:          loadout.OwnerID,
		Name:             loadout.Name,
		SoulWeaponBuild:  serializedSoulWeapon(loadout),
		SkillStoneBuild:  loadout.SkillStoneBuild,
		Spirit:           loadout.Spirit,
		SkillStone:       loadout.SkillStone,
		PromotionAbility: loadout.PromotionAbility,
		Familiar:         loadout.Familiar,
		CreatedAt:        loadout.CreatedAt,
		UpdatedAt:        loadout.UpdatedAt,
	}

	if loadout.SkillBuild != nil {
		if loadout.SkillBuild.ID == "" {
			return nil, errors.FailedPrecondition("skill build must be persisted before the loadout can reference it")
		}
		data.SkillBuildID = loadout.SkillBuild.ID
	}
	if loadout.SpiritBuild != nil {
		if loadout.SpiritBuild.ID == "" {
			return nil, errors.FailedPrecondition("spirit build must be persisted before the loadout can reference it")
		}
		data.SpiritBuildID = loadout.SpiritBuild.ID
	}

	return data, nil
}

// SerializeLoadoutForSharing emits the self-contained sharing flavor:
// skill and spirit builds are embedded fully serialized, collection spirit
// slots are promoted to base, and identity fields are dropped. The
// recipient needs nothing but the payload and the public catalogs.
func SerializeLoadoutForSharing(loadout *game.Loadout, mySpirits map[string]*game.CollectionSpirit) *game.LoadoutData {
	if loadout == nil {
		return nil
	}

	return &game.LoadoutData{
		Name:             loadout.Name,
		SkillBuild:       SerializeSkillBuildForSharing(loadout.SkillBuild),
		SpiritBuild:      SerializeSpiritBuildForSharing(loadout.SpiritBuild, mySpirits),
		SoulWeaponBuild:  serializedSoulWeapon(loadout),
		SkillStoneBuild:  loadout.SkillStoneBuild,
		Spirit:           loadout.Spirit,
		SkillStone:       loadout.SkillStone,
		PromotionAbility: loadout.PromotionAbility,
		Familiar:         loadout.Familiar,
	}
}

// DeserializeLoadoutInput carries a serialized loadout together with the
// catalog snapshots and candidate builds it resolves against.
type DeserializeLoadoutInput struct {
	Loadout   *game.LoadoutData
	Spirits   map[int64]*game.Spirit
	Skills    map[int64]*game.Skill
	Shapes    map[string]*game.Shape
	MySpirits map[string]*game.CollectionSpirit

	// Candidate builds for resolving storage-flavor ID references.
	SkillBuilds  []*game.SkillBuildData
	SpiritBuilds []*game.SpiritBuildData
}

// DeserializeLoadout resolves a serialized loadout of either flavor. Build
// ID references are looked up among the candidate builds; an ID that no
// longer resolves substitutes a placeholder build rather than failing, so
// the loadout as a whole always deserializes. Embedded builds are resolved
// directly. When the shape catalog is empty the soul weapon build is
// retained serialized instead of degrading every cell.
func DeserializeLoadout(input *DeserializeLoadoutInput) *game.Loadout {
	if input == nil || input.Loadout == nil {
		return nil
	}
	data := input.Loadout

	loadout := &game.Loadout{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Name:             data.Name,
		SkillStoneBuild:  data.SkillStoneBuild,
		Spirit:           data.Spirit,
		SkillStone:       data.SkillStone,
		PromotionAbility: data.PromotionAbility,
		Familiar:         data.Familiar,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	switch {
	case data.SkillBuildID != "":
		if found := findSkillBuild(input.SkillBuilds, data.SkillBuildID); found != nil {
			loadout.SkillBuild = DeserializeSkillBuild(found, input.Skills)
		} else {
			slog.Warn("skill build not found, substituting placeholder",
				"buildId", data.SkillBuildID)
			loadout.SkillBuild = game.NewMissingSkillBuild(data.SkillBuildID)
		}
	case data.SkillBuild != nil:
		loadout.SkillBuild = DeserializeSkillBuild(data.SkillBuild, input.Skills)
	}

	switch {
	case data.SpiritBuildID != "":
		if found := findSpiritBuild(input.SpiritBuilds, data.SpiritBuildID); found != nil {
			loadout.SpiritBuild = DeserializeSpiritBuild(found, input.Spirits, input.MySpirits)
		} else {
			slog.Warn("spirit build not found, substituting placeholder",
				"buildId", data.SpiritBuildID)
			loadout.SpiritBuild = game.NewMissingSpiritBuild(data.SpiritBuildID)
		}
	case data.SpiritBuild != nil:
		loadout.SpiritBuild = DeserializeSpiritBuild(data.SpiritBuild, input.Spirits, input.MySpirits)
	}

	if data.SoulWeaponBuild != nil {
		if len(input.Shapes) > 0 {
			loadout.SoulWeaponBuild = DeserializeSoulWeaponBuild(data.SoulWeaponBuild, input.Shapes)
		} else {
			loadout.SoulWeaponBuildData = data.SoulWeaponBuild
		}
	}

	return loadout
}

// serializedSoulWeapon picks whichever soul weapon form the loadout holds.
// A loadout resolved while the shape catalog was empty still carries the
// serialized form and passes it through untouched.
func serializedSoulWeapon(loadout *game.Loadout) *game.SoulWeaponBuildData {
	if loadout.SoulWeaponBuild != nil {
		return SerializeSoulWeaponBuild(loadout.SoulWeaponBuild)
	}
	return loadout.SoulWeaponBuildData
}

func findSkillBuild(builds []*game.SkillBuildData, id string) *game.SkillBuildData {
	for _, build := range builds {
		if build != nil && build.ID == id {
			return build
		}
	}
	return nil
}

func findSpiritBuild(builds []*game.SpiritBuildData, id string) *game.SpiritBuildData {
	for _, build := range builds {
		if build != nil && build.ID == id {
			return build
		}
	}
	return nil
}
