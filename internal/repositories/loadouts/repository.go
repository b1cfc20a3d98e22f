// Package loadouts provides the interface for loadout persistence.
// Loadouts are stored in their storage-flavor serialized form: builds
// referenced by ID, never embedded.
package loadouts

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutsmock github.com/spiritwiki/loadout-api/internal/repositories/loadouts Repository

import (
	"context"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// Repository defines the interface for loadout persistence.
type Repository interface {
	// Save creates or replaces a loadout. The loadout must carry an ID and
	// must be storage flavor.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.FailedPrecondition for sharing-flavor payloads
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a loadout by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the loadout doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes a loadout by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the loadout doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all loadouts for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// SaveInput defines the input for saving a loadout
type SaveInput struct {
	Loadout *game.LoadoutData
}

// SaveOutput defines the output for saving a loadout
type SaveOutput struct {
	Loadout *game.LoadoutData
}

// GetInput defines the input for getting a loadout
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a loadout
type GetOutput struct {
	Loadout *game.LoadoutData
}

// DeleteInput defines the input for deleting a loadout
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a loadout
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing loadouts by owner
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing loadouts by owner
type ListByOwnerOutput struct {
	Loadouts []*game.LoadoutData
}
