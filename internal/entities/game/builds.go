package game

// Build slot capacities and the placeholder name shown when a loadout
// references a build that no longer exists.
const (
	DefaultSkillBuildSlots  int32 = 10
	DefaultSpiritBuildSlots int32 = 3
	MissingBuildName              = "Deleted Build"
)

// SkillBuild is a resolved skill build. Missing marks a placeholder for a
// build whose stored record has been deleted.
type SkillBuild struct {
	ID        string      `json:"id,omitempty"`
	OwnerID   string      `json:"ownerId,omitempty"`
	Name      string      `json:"name"`
	MaxSlots  int32       `json:"maxSlots"`
	Slots     []SkillSlot `json:"slots"`
	Missing   bool        `json:"missing,omitempty"`
	CreatedAt int64       `json:"createdAt,omitempty"`
	UpdatedAt int64       `json:"updatedAt,omitempty"`
}

// SkillBuildData is the serialized form of a skill build. ID is assigned by
// the persistence layer and absent on ephemeral shared builds.
type SkillBuildData struct {
	ID        string          `json:"id,omitempty"`
	OwnerID   string          `json:"ownerId,omitempty"`
	Name      string          `json:"name"`
	MaxSlots  int32           `json:"maxSlots"`
	Slots     []SkillSlotData `json:"slots"`
	CreatedAt int64           `json:"createdAt,omitempty"`
	UpdatedAt int64           `json:"updatedAt,omitempty"`
}

// SpiritBuild is a resolved spirit build.
type SpiritBuild struct {
	ID        string       `json:"id,omitempty"`
	OwnerID   string       `json:"ownerId,omitempty"`
	Name      string       `json:"name"`
	MaxSlots  int32        `json:"maxSlots"`
	Slots     []SpiritSlot `json:"slots"`
	Missing   bool         `json:"missing,omitempty"`
	CreatedAt int64        `json:"createdAt,omitempty"`
	UpdatedAt int64        `json:"updatedAt,omitempty"`
}

// SpiritBuildData is the serialized form of a spirit build.
type SpiritBuildData struct {
	ID        string           `json:"id,omitempty"`
	OwnerID   string           `json:"ownerId,omitempty"`
	Name      string           `json:"name"`
	MaxSlots  int32            `json:"maxSlots"`
	Slots     []SpiritSlotData `json:"slots"`
	CreatedAt int64            `json:"createdAt,omitempty"`
	UpdatedAt int64            `json:"updatedAt,omitempty"`
}

// NewMissingSkillBuild returns the placeholder shown when a referenced
// skill build cannot be found.
func NewMissingSkillBuild(id string) *SkillBuild {
	return &SkillBuild{
		ID:       id,
		Name:     MissingBuildName,
		MaxSlots: DefaultSkillBuildSlots,
		Slots:    []SkillSlot{},
		Missing:  true,
	}
}

// NewMissingSpiritBuild returns the placeholder shown when a referenced
// spirit build cannot be found.
func NewMissingSpiritBuild(id string) *SpiritBuild {
	return &SpiritBuild{
		ID:       id,
		Name:     MissingBuildName,
		MaxSlots: DefaultSpiritBuildSlots,
		Slots:    []SpiritSlot{},
		Missing:  true,
	}
}
