package game

import "encoding/json"

// Loadout is a resolved loadout: a named bundle of builds plus flat
// selections. SkillStoneBuild is carried opaquely; no component inspects
// it. SoulWeaponBuildData holds the untouched serialized form when the
// shapes catalog was unavailable at resolve time.
type Loadout struct {
	ID                  string               `json:"id,omitempty"`
	OwnerID             string               `json:"ownerId,omitempty"`
	Name                string               `json:"name"`
	SkillBuild          *SkillBuild          `json:"skillBuild,omitempty"`
	SpiritBuild         *SpiritBuild         `json:"spiritBuild,omitempty"`
	SoulWeaponBuild     *SoulWeaponBuild     `json:"soulWeaponBuild,omitempty"`
	SoulWeaponBuildData *SoulWeaponBuildData `json:"soulWeaponBuildData,omitempty"`
	SkillStoneBuild     json.RawMessage      `json:"skillStoneBuild,omitempty"`
	Spirit              string               `json:"spirit,omitempty"`
	SkillStone          string               `json:"skillStone,omitempty"`
	PromotionAbility    string               `json:"promotionAbility,omitempty"`
	Familiar            string               `json:"familiar,omitempty"`
	CreatedAt           int64                `json:"createdAt,omitempty"`
	UpdatedAt           int64                `json:"updatedAt,omitempty"`
}

// LoadoutData is the serialized form of a loadout. The storage flavor
// references skill and spirit builds by ID; the sharing flavor embeds them
// fully serialized. Exactly one of the two groups is populated per flavor.
// The soul weapon build is serialized in place in both flavors.
type LoadoutData struct {
	ID               string               `json:"id,omitempty"`
	OwnerID          string               `json:"ownerId,omitempty"`
	Name             string               `json:"name"`
	SkillBuildID     string               `json:"skillBuildId,omitempty"`
	SpiritBuildID    string               `json:"spiritBuildId,omitempty"`
	SkillBuild       *SkillBuildData      `json:"skillBuild,omitempty"`
	SpiritBuild      *SpiritBuildData     `json:"spiritBuild,omitempty"`
	SoulWeaponBuild  *SoulWeaponBuildData `json:"soulWeaponBuild,omitempty"`
	SkillStoneBuild  json.RawMessage      `json:"skillStoneBuild,omitempty"`
	Spirit           string               `json:"spirit,omitempty"`
	SkillStone       string               `json:"skillStone,omitempty"`
	PromotionAbility string               `json:"promotionAbility,omitempty"`
	Familiar         string               `json:"familiar,omitempty"`
	CreatedAt        int64                `json:"createdAt,omitempty"`
	UpdatedAt        int64                `json:"updatedAt,omitempty"`
}
