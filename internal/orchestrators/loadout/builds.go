package loadout

import (
	"context"
	"fmt"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	buildsrepo "github.com/spiritwiki/loadout-api/internal/repositories/builds"
	"github.com/spiritwiki/loadout-api/internal/services/loadout"
	"github.com/spiritwiki/loadout-api/internal/services/serialization"
)

// Skill build methods

// SaveSkillBuild persists a skill build in serialized form, assigning an ID
// when the build has none
func (o *Orchestrator) SaveSkillBuild(ctx context.Context, input *loadout.SaveSkillBuildInput) (*loadout.SaveSkillBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Build == nil {
		vb.RequiredField("build")
	} else {
		errors.ValidateRequired("build.name", input.Build.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	b := input.Build
	now := o.clock.Now().Unix()

	b.OwnerID = input.OwnerID
	if b.ID == "" {
		b.ID = o.buildIDs.Generate()
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	data := serialization.SerializeSkillBuild(b)
	if _, err := o.buildRepo.SaveSkillBuild(ctx, buildsrepo.SaveSkillBuildInput{Build: data}); err != nil {
		return nil, errors.Wrapf(err, "failed to save skill build").
			WithMeta("build_id", b.ID)
	}

	return &loadout.SaveSkillBuildOutput{Build: b}, nil
}

// GetSkillBuild retrieves a skill build by ID, resolved against the skill
// catalog
func (o *Orchestrator) GetSkillBuild(ctx context.Context, input *loadout.GetSkillBuildInput) (*loadout.GetSkillBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", input.BuildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.buildRepo.GetSkillBuild(ctx, buildsrepo.GetSkillBuildInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get skill build").
			WithMeta("build_id", input.BuildID)
	}

	skills, err := o.gameData.ListSkills(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch skill catalog")
	}

	return &loadout.GetSkillBuildOutput{
		Build: serialization.DeserializeSkillBuild(got.Build, skills),
	}, nil
}

// ListSkillBuilds retrieves all skill builds for an owner, resolved
func (o *Orchestrator) ListSkillBuilds(ctx context.Context, input *loadout.ListSkillBuildsInput) (*loadout.ListSkillBuildsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.buildRepo.ListSkillBuildsByOwner(ctx, buildsrepo.ListSkillBuildsByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list skill builds").
			WithMeta("owner_id", input.OwnerID)
	}

	skills, err := o.gameData.ListSkills(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch skill catalog")
	}

	builds := make([]*game.SkillBuild, 0, len(listed.Builds))
	for _, data := range listed.Builds {
		builds = append(builds, serialization.DeserializeSkillBuild(data, skills))
	}

	return &loadout.ListSkillBuildsOutput{Builds: builds}, nil
}

// DeleteSkillBuild deletes a skill build by ID. Loadouts referencing it
// resolve to a placeholder build afterwards.
func (o *Orchestrator) DeleteSkillBuild(ctx context.Context, input *loadout.DeleteSkillBuildInput) (*loadout.DeleteSkillBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", input.BuildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.buildRepo.DeleteSkillBuild(ctx, buildsrepo.DeleteSkillBuildInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete skill build").
			WithMeta("build_id", input.BuildID)
	}

	return &loadout.DeleteSkillBuildOutput{
		Message: fmt.Sprintf("skill build %s deleted", input.BuildID),
	}, nil
}

// Spirit build methods

// SaveSpiritBuild persists a spirit build in serialized form, assigning an
// ID when the build has none
func (o *Orchestrator) SaveSpiritBuild(ctx context.Context, input *loadout.SaveSpiritBuildInput) (*loadout.SaveSpiritBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Build == nil {
		vb.RequiredField("build")
	} else {
		errors.ValidateRequired("build.name", input.Build.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	b := input.Build
	now := o.clock.Now().Unix()

	b.OwnerID = input.OwnerID
	if b.ID == "" {
		b.ID = o.buildIDs.Generate()
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	data := serialization.SerializeSpiritBuild(b)
	if _, err := o.buildRepo.SaveSpiritBuild(ctx, buildsrepo.SaveSpiritBuildInput{Build: data}); err != nil {
		return nil, errors.Wrapf(err, "failed to save spirit build").
			WithMeta("build_id", b.ID)
	}

	return &loadout.SaveSpiritBuildOutput{Build: b}, nil
}

// GetSpiritBuild retrieves a spirit build by ID, resolved against the
// spirit catalog and the owner's collection
func (o *Orchestrator) GetSpiritBuild(ctx context.Context, input *loadout.GetSpiritBuildInput) (*loadout.GetSpiritBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", input.BuildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.buildRepo.GetSpiritBuild(ctx, buildsrepo.GetSpiritBuildInput{ID: input.BuildID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spirit build").
			WithMeta("build_id", input.BuildID)
	}

	spirits, err := o.gameData.ListSpirits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch spirit catalog")
	}
	mySpirits := o.mySpiritsFor(ctx, got.Build.OwnerID)

	return &loadout.GetSpiritBuildOutput{
		Build: serialization.DeserializeSpiritBuild(got.Build, spirits, mySpirits),
	}, nil
}

// ListSpiritBuilds retrieves all spirit builds for an owner, resolved
func (o *Orchestrator) ListSpiritBuilds(ctx context.Context, input *loadout.ListSpiritBuildsInput) (*loadout.ListSpiritBuildsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.buildRepo.ListSpiritBuildsByOwner(ctx, buildsrepo.ListSpiritBuildsByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spirit builds").
			WithMeta("owner_id", input.OwnerID)
	}

	spirits, err := o.gameData.ListSpirits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch spirit catalog")
	}
	mySpirits := o.mySpiritsFor(ctx, input.OwnerID)

	builds := make([]*game.SpiritBuild, 0, len(listed.Builds))
	for _, data := range listed.Builds {
		builds = append(builds, serialization.DeserializeSpiritBuild(data, spirits, mySpirits))
	}

	return &loadout.ListSpiritBuildsOutput{Builds: builds}, nil
}

// DeleteSpiritBuild deletes a spirit build by ID
func (o *Orchestrator) DeleteSpiritBuild(ctx context.Context, input *loadout.DeleteSpiritBuildInput) (*loadout.DeleteSpiritBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("buildID", input.BuildID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.buildRepo.DeleteSpiritBuild(ctx, buildsrepo.DeleteSpiritBuildInput{ID: input.BuildID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spirit build").
			WithMeta("build_id", input.BuildID)
	}

	return &loadout.DeleteSpiritBuildOutput{
		Message: fmt.Sprintf("spirit build %s deleted", input.BuildID),
	}, nil
}
