package loadout

import (
	"context"
	"fmt"

	"github.com/spiritwiki/loadout-api/internal/errors"
	collectionrepo "github.com/spiritwiki/loadout-api/internal/repositories/collection"
	"github.com/spiritwiki/loadout-api/internal/services/loadout"
)

// Collection methods

// UpsertMySpirit creates or replaces a collection spirit, assigning an ID
// when the record has none
func (o *Orchestrator) UpsertMySpirit(ctx context.Context, input *loadout.UpsertMySpiritInput) (*loadout.UpsertMySpiritOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Spirit == nil {
		vb.RequiredField("spirit")
	} else if input.Spirit.SpiritID == 0 {
		vb.RequiredField("spirit.spiritId")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	s := input.Spirit
	s.OwnerID = input.OwnerID
	if s.ID == "" {
		s.ID = o.mySpiritIDs.Generate()
	}

	if _, err := o.collectionRepo.Upsert(ctx, collectionrepo.UpsertInput{Spirit: s}); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert collection spirit").
			WithMeta("my_spirit_id", s.ID)
	}

	return &loadout.UpsertMySpiritOutput{Spirit: s}, nil
}

// ListMySpirits retrieves all collection spirits for an owner
func (o *Orchestrator) ListMySpirits(ctx context.Context, input *loadout.ListMySpiritsInput) (*loadout.ListMySpiritsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.collectionRepo.ListByOwner(ctx, collectionrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list collection spirits").
			WithMeta("owner_id", input.OwnerID)
	}

	return &loadout.ListMySpiritsOutput{Spirits: listed.Spirits}, nil
}

// DeleteMySpirit deletes a collection spirit by ID. Builds whose slots
// reference it resolve with default configuration afterwards.
func (o *Orchestrator) DeleteMySpirit(ctx context.Context, input *loadout.DeleteMySpiritInput) (*loadout.DeleteMySpiritOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("mySpiritID", input.MySpiritID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.collectionRepo.Delete(ctx, collectionrepo.DeleteInput{ID: input.MySpiritID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection spirit").
			WithMeta("my_spirit_id", input.MySpiritID)
	}

	return &loadout.DeleteMySpiritOutput{
		Message: fmt.Sprintf("collection spirit %s deleted", input.MySpiritID),
	}, nil
}
