// Package builds provides the interface for skill and spirit build
// persistence. Builds are stored in their serialized form; resolving
// references happens above the repository.
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/spiritwiki/loadout-api/internal/repositories/builds Repository

import (
	"context"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// Repository defines the interface for build persistence.
type Repository interface {
	// SaveSkillBuild creates or replaces a skill build. The build must
	// carry an ID; the caller assigns one before saving.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	SaveSkillBuild(ctx context.Context, input SaveSkillBuildInput) (*SaveSkillBuildOutput, error)

	// GetSkillBuild retrieves a skill build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	GetSkillBuild(ctx context.Context, input GetSkillBuildInput) (*GetSkillBuildOutput, error)

	// DeleteSkillBuild deletes a skill build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	DeleteSkillBuild(ctx context.Context, input DeleteSkillBuildInput) (*DeleteSkillBuildOutput, error)

	// ListSkillBuildsByOwner retrieves all skill builds for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListSkillBuildsByOwner(ctx context.Context, input ListSkillBuildsByOwnerInput) (*ListSkillBuildsByOwnerOutput, error)

	// SaveSpiritBuild creates or replaces a spirit build. The build must
	// carry an ID; the caller assigns one before saving.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	SaveSpiritBuild(ctx context.Context, input SaveSpiritBuildInput) (*SaveSpiritBuildOutput, error)

	// GetSpiritBuild retrieves a spirit build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	GetSpiritBuild(ctx context.Context, input GetSpiritBuildInput) (*GetSpiritBuildOutput, error)

	// DeleteSpiritBuild deletes a spirit build by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the build doesn't exist
	// Returns errors.Internal for storage failures
	DeleteSpiritBuild(ctx context.Context, input DeleteSpiritBuildInput) (*DeleteSpiritBuildOutput, error)

	// ListSpiritBuildsByOwner retrieves all spirit builds for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListSpiritBuildsByOwner(ctx context.Context, input ListSpiritBuildsByOwnerInput) (*ListSpiritBuildsByOwnerOutput, error)
}

// SaveSkillBuildInput defines the input for saving a skill build
type SaveSkillBuildInput struct {
	Build *game.SkillBuildData
}

// SaveSkillBuildOutput defines the output for saving a skill build
type SaveSkillBuildOutput struct {
	Build *game.SkillBuildData
}

// GetSkillBuildInput defines the input for getting a skill build
type GetSkillBuildInput struct {
	ID string
}

// GetSkillBuildOutput defines the output for getting a skill build
type GetSkillBuildOutput struct {
	Build *game.SkillBuildData
}

// DeleteSkillBuildInput defines the input for deleting a skill build
type DeleteSkillBuildInput struct {
	ID string
}

// DeleteSkillBuildOutput defines the output for deleting a skill build
type DeleteSkillBuildOutput struct{}

// ListSkillBuildsByOwnerInput defines the input for listing skill builds
type ListSkillBuildsByOwnerInput struct {
	OwnerID string
}

// ListSkillBuildsByOwnerOutput defines the output for listing skill builds
type ListSkillBuildsByOwnerOutput struct {
	Builds []*game.SkillBuildData
}

// SaveSpiritBuildInput defines the input for saving a spirit build
type SaveSpiritBuildInput struct {
	Build *game.SpiritBuildData
}

// SaveSpiritBuildOutput defines the output for saving a spirit build
type SaveSpiritBuildOutput struct {
	Build *game.SpiritBuildData
}

// GetSpiritBuildInput defines the input for getting a spirit build
type GetSpiritBuildInput struct {
	ID string
}

// GetSpiritBuildOutput defines the output for getting a spirit build
type GetSpiritBuildOutput struct {
	Build *game.SpiritBuildData
}

// DeleteSpiritBuildInput defines the input for deleting a spirit build
type DeleteSpiritBuildInput struct {
	ID string
}

// DeleteSpiritBuildOutput defines the output for deleting a spirit build
type DeleteSpiritBuildOutput struct{}

// ListSpiritBuildsByOwnerInput defines the input for listing spirit builds
type ListSpiritBuildsByOwnerInput struct {
	OwnerID string
}

// ListSpiritBuildsByOwnerOutput defines the output for listing spirit builds
type ListSpiritBuildsByOwnerOutput struct {
	Builds []*game.SpiritBuildData
}
