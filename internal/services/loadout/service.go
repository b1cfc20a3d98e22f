// Package loadout defines the interface for loadout, build and collection
// operations
package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=loadoutmock github.com/spiritwiki/loadout-api/internal/services/loadout Service

import (
	"context"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// Service defines the interface for loadout operations
type Service interface {
	// Loadout lifecycle
	SaveLoadout(ctx context.Context, input *SaveLoadoutInput) (*SaveLoadoutOutput, error)
	GetLoadout(ctx context.Context, input *GetLoadoutInput) (*GetLoadoutOutput, error)
	ListLoadouts(ctx context.Context, input *ListLoadoutsInput) (*ListLoadoutsOutput, error)
	DeleteLoadout(ctx context.Context, input *DeleteLoadoutInput) (*DeleteLoadoutOutput, error)

	// Sharing
	ShareLoadout(ctx context.Context, input *ShareLoadoutInput) (*ShareLoadoutOutput, error)
	ResolveLoadout(ctx context.Context, input *ResolveLoadoutInput) (*ResolveLoadoutOutput, error)

	// Skill builds
	SaveSkillBuild(ctx context.Context, input *SaveSkillBuildInput) (*SaveSkillBuildOutput, error)
	GetSkillBuild(ctx context.Context, input *GetSkillBuildInput) (*GetSkillBuildOutput, error)
	ListSkillBuilds(ctx context.Context, input *ListSkillBuildsInput) (*ListSkillBuildsOutput, error)
	DeleteSkillBuild(ctx context.Context, input *DeleteSkillBuildInput) (*DeleteSkillBuildOutput, error)

	// Spirit builds
	SaveSpiritBuild(ctx context.Context, input *SaveSpiritBuildInput) (*SaveSpiritBuildOutput, error)
	GetSpiritBuild(ctx context.Context, input *GetSpiritBuildInput) (*GetSpiritBuildOutput, error)
	ListSpiritBuilds(ctx context.Context, input *ListSpiritBuildsInput) (*ListSpiritBuildsOutput, error)
	DeleteSpiritBuild(ctx context.Context, input *DeleteSpiritBuildInput) (*DeleteSpiritBuildOutput, error)

	// Spirit collection
	UpsertMySpirit(ctx context.Context, input *UpsertMySpiritInput) (*UpsertMySpiritOutput, error)
	ListMySpirits(ctx context.Context, input *ListMySpiritsInput) (*ListMySpiritsOutput, error)
	DeleteMySpirit(ctx context.Context, input *DeleteMySpiritInput) (*DeleteMySpiritOutput, error)
}

// Loadout lifecycle types

// SaveLoadoutInput defines the request for saving a loadout. Embedded
// builds that lack an ID are persisted and assigned one before the loadout
// is stored.
type SaveLoadoutInput struct {
	OwnerID string
	Loadout *game.Loadout
}

// SaveLoadoutOutput defines the response for saving a loadout
type SaveLoadoutOutput struct {
	Loadout *game.Loadout
}

// GetLoadoutInput defines the request for getting a loadout
type GetLoadoutInput struct {
	LoadoutID string
}

// GetLoadoutOutput defines the response for getting a loadout
type GetLoadoutOutput struct {
	Loadout *game.Loadout
}

// ListLoadoutsInput defines the request for listing an owner's loadouts
type ListLoadoutsInput struct {
	OwnerID string
}

// ListLoadoutsOutput defines the response for listing an owner's loadouts
type ListLoadoutsOutput struct {
	Loadouts []*game.Loadout
}

// DeleteLoadoutInput defines the request for deleting a loadout
type DeleteLoadoutInput struct {
	LoadoutID string
}

// DeleteLoadoutOutput defines the response for deleting a loadout
type DeleteLoadoutOutput struct {
	Message string
}

// Sharing types

// ShareLoadoutInput defines the request for building a share code
type ShareLoadoutInput struct {
	LoadoutID string
}

// ShareLoadoutOutput defines the response for building a share code. URL is
// populated when the service is configured with a share base URL.
type ShareLoadoutOutput struct {
	Payload string
	URL     string
}

// ResolveLoadoutInput defines the request for resolving an identifier that
// is either a persisted loadout ID or an encoded share payload
type ResolveLoadoutInput struct {
	Identifier string
}

// ResolveLoadoutOutput defines the response for resolving an identifier
type ResolveLoadoutOutput struct {
	Loadout *game.Loadout
}

// Skill build types

// SaveSkillBuildInput defines the request for saving a skill build
type SaveSkillBuildInput struct {
	OwnerID string
	Build   *game.SkillBuild
}

// SaveSkillBuildOutput defines the response for saving a skill build
type SaveSkillBuildOutput struct {
	Build *game.SkillBuild
}

// GetSkillBuildInput defines the request for getting a skill build
type GetSkillBuildInput struct {
	BuildID string
}

// GetSkillBuildOutput defines the response for getting a skill build
type GetSkillBuildOutput struct {
	Build *game.SkillBuild
}

// ListSkillBuildsInput defines the request for listing skill builds
type ListSkillBuildsInput struct {
	OwnerID string
}

// ListSkillBuildsOutput defines the response for listing skill builds
type ListSkillBuildsOutput struct {
	Builds []*game.SkillBuild
}

// DeleteSkillBuildInput defines the request for deleting a skill build
type DeleteSkillBuildInput struct {
	BuildID string
}

// DeleteSkillBuildOutput defines the response for deleting a skill build
type DeleteSkillBuildOutput struct {
	Message string
}

// Spirit build types

// SaveSpiritBuildInput defines the request for saving a spirit build
type SaveSpiritBuildInput struct {
	OwnerID string
	Build   *game.SpiritBuild
}

// SaveSpiritBuildOutput defines the response for saving a spirit build
type SaveSpiritBuildOutput struct {
	Build *game.SpiritBuild
}

// GetSpiritBuildInput defines the request for getting a spirit build
type GetSpiritBuildInput struct {
	BuildID string
}

// GetSpiritBuildOutput defines the response for getting a spirit build
type GetSpiritBuildOutput struct {
	Build *game.SpiritBuild
}

// ListSpiritBuildsInput defines the request for listing spirit builds
type ListSpiritBuildsInput struct {
	OwnerID string
}

// ListSpiritBuildsOutput defines the response for listing spirit builds
type ListSpiritBuildsOutput struct {
	Builds []*game.SpiritBuild
}

// DeleteSpiritBuildInput defines the request for deleting a spirit build
type DeleteSpiritBuildInput struct {
	BuildID string
}

// DeleteSpiritBuildOutput defines the response for deleting a spirit build
type DeleteSpiritBuildOutput struct {
	Message string
}

// Collection types

// UpsertMySpiritInput defines the request for upserting a collection spirit
type UpsertMySpiritInput struct {
	OwnerID string
	Spirit  *game.CollectionSpirit
}

// UpsertMySpiritOutput defines the response for upserting a collection spirit
type UpsertMySpiritOutput struct {
	Spirit *game.CollectionSpirit
}

// ListMySpiritsInput defines the request for listing collection spirits
type ListMySpiritsInput struct {
	OwnerID string
}

// ListMySpiritsOutput defines the response for listing collection spirits
type ListMySpiritsOutput struct {
	Spirits []*game.CollectionSpirit
}

// DeleteMySpiritInput defines the request for deleting a collection spirit
type DeleteMySpiritInput struct {
	MySpiritID string
}

// DeleteMySpiritOutput defines the response for deleting a collection spirit
type DeleteMySpiritOutput struct {
	Message string
}
