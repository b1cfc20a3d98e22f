// Package collection provides the interface for "my spirits" persistence:
// the per-owner collection records that own a collection slot's
// configuration.
package collection

//go:generate mockgen -destination=mock/mock_repository.go -package=collectionmock github.com/spiritwiki/loadout-api/internal/repositories/collection Repository

import (
	"context"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// Repository defines the interface for collection spirit persistence.
type Repository interface {
	// Upsert creates or replaces a collection spirit. The record must
	// carry an ID and an owner.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Get retrieves a collection spirit by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes a collection spirit by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner retrieves all collection spirits for an owner
	// Returns errors.InvalidArgument for empty owner IDs
	// Returns errors.Internal for storage failures
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// UpsertInput defines the input for upserting a collection spirit
type UpsertInput struct {
	Spirit *game.CollectionSpirit
}

// UpsertOutput defines the output for upserting a collection spirit
type UpsertOutput struct {
	Spirit *game.CollectionSpirit
}

// GetInput defines the input for getting a collection spirit
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a collection spirit
type GetOutput struct {
	Spirit *game.CollectionSpirit
}

// DeleteInput defines the input for deleting a collection spirit
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a collection spirit
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing collection spirits
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing collection spirits
type ListByOwnerOutput struct {
	Spirits []*game.CollectionSpirit
}
