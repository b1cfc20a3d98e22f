// Package loadout implements the loadout orchestrator: it composes the
// repositories, the game data client and the serialization service into the
// loadout.Service operations.
package loadout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spiritwiki/loadout-api/internal/clients/gamedata"
	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
	"github.com/spiritwiki/loadout-api/internal/pkg/idgen"
	buildsrepo "github.com/spiritwiki/loadout-api/internal/repositories/builds"
	collectionrepo "github.com/spiritwiki/loadout-api/internal/repositories/collection"
	loadoutsrepo "github.com/spiritwiki/loadout-api/internal/repositories/loadouts"
	"github.com/spiritwiki/loadout-api/internal/services/loadout"
	"github.com/spiritwiki/loadout-api/internal/services/serialization"
)

// Config holds the dependencies for the loadout orchestrator
type Config struct {
	LoadoutRepo    loadoutsrepo.Repository
	BuildRepo      buildsrepo.Repository
	CollectionRepo collectionrepo.Repository
	GameData       gamedata.Client

	// ShareBaseURL, when set, is used to build full share URLs in
	// ShareLoadout output. Optional.
	ShareBaseURL string

	// Optional; defaulted by Validate.
	LoadoutIDGenerator  idgen.Generator
	BuildIDGenerator    idgen.Generator
	MySpiritIDGenerator idgen.Generator
	Clock               clock.Clock
}

// Validate ensures all required dependencies are provided and applies
// defaults for the optional ones
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.LoadoutRepo == nil {
		vb.RequiredField("LoadoutRepo")
	}
	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.CollectionRepo == nil {
		vb.RequiredField("CollectionRepo")
	}
	if c.GameData == nil {
		vb.RequiredField("GameData")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.LoadoutIDGenerator == nil {
		c.LoadoutIDGenerator = idgen.NewPrefixedUUID("loadout")
	}
	if c.BuildIDGenerator == nil {
		c.BuildIDGenerator = idgen.NewPrefixedUUID("build")
	}
	if c.MySpiritIDGenerator == nil {
		c.MySpiritIDGenerator = idgen.NewPrefixedUUID("myspirit")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

// Orchestrator implements the loadout.Service interface
type Orchestrator struct {
	loadoutRepo    loadoutsrepo.Repository
	buildRepo      buildsrepo.Repository
	collectionRepo collectionrepo.Repository
	gameData       gamedata.Client
	shareBaseURL   string
	loadoutIDs     idgen.Generator
	buildIDs       idgen.Generator
	mySpiritIDs    idgen.Generator
	clock          clock.Clock
}

// New creates a new loadout orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		loadoutRepo:    cfg.LoadoutRepo,
		buildRepo:      cfg.BuildRepo,
		collectionRepo: cfg.CollectionRepo,
		gameData:       cfg.GameData,
		shareBaseURL:   cfg.ShareBaseURL,
		loadoutIDs:     cfg.LoadoutIDGenerator,
		buildIDs:       cfg.BuildIDGenerator,
		mySpiritIDs:    cfg.MySpiritIDGenerator,
		clock:          cfg.Clock,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ loadout.Service = (*Orchestrator)(nil)

// Loadout lifecycle methods

// SaveLoadout persists a loadout in storage flavor. Embedded skill and
// spirit builds that lack an ID are persisted first and assigned one, so
// the stored loadout only ever references builds by ID.
func (o *Orchestrator) SaveLoadout(ctx context.Context, input *loadout.SaveLoadoutInput) (*loadout.SaveLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if input.Loadout == nil {
		vb.RequiredField("loadout")
	} else {
		errors.ValidateRequired("loadout.name", input.Loadout.Name, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	l := input.Loadout
	now := o.clock.Now().Unix()

	l.OwnerID = input.OwnerID
	if l.ID == "" {
		l.ID = o.loadoutIDs.Generate()
		l.CreatedAt = now
	}
	l.UpdatedAt = now

	if err := o.persistChildBuilds(ctx, l); err != nil {
		return nil, err
	}

	data, err := serialization.SerializeLoadoutForStorage(l)
	if err != nil {
		return nil, err
	}

	if _, err := o.loadoutRepo.Save(ctx, loadoutsrepo.SaveInput{Loadout: data}); err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout").
			WithMeta("loadout_id", l.ID)
	}

	slog.InfoContext(ctx, "loadout saved",
		"loadoutId", l.ID,
		"ownerId", l.OwnerID)

	return &loadout.SaveLoadoutOutput{Loadout: l}, nil
}

// GetLoadout retrieves a loadout by ID and resolves it against the current
// catalogs, candidate builds and the owner's collection
func (o *Orchestrator) GetLoadout(ctx context.Context, input *loadout.GetLoadoutInput) (*loadout.GetLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("loadoutID", input.LoadoutID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.loadoutRepo.Get(ctx, loadoutsrepo.GetInput{ID: input.LoadoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loadout").
			WithMeta("loadout_id", input.LoadoutID)
	}

	resolved, err := o.resolveLoadoutData(ctx, got.Loadout)
	if err != nil {
		return nil, err
	}
	return &loadout.GetLoadoutOutput{Loadout: resolved}, nil
}

// ListLoadouts retrieves all loadouts for an owner, resolved
func (o *Orchestrator) ListLoadouts(ctx context.Context, input *loadout.ListLoadoutsInput) (*loadout.ListLoadoutsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ownerID", input.OwnerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	listed, err := o.loadoutRepo.ListByOwner(ctx, loadoutsrepo.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list loadouts").
			WithMeta("owner_id", input.OwnerID)
	}

	snap, err := o.catalogSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	mySpirits := o.mySpiritsFor(ctx, input.OwnerID)

	loadouts := make([]*game.Loadout, 0, len(listed.Loadouts))
	for _, data := range listed.Loadouts {
		loadouts = append(loadouts, o.resolveWithSnapshots(ctx, data, snap, mySpirits))
	}

	return &loadout.ListLoadoutsOutput{Loadouts: loadouts}, nil
}

// DeleteLoadout deletes a loadout by ID
func (o *Orchestrator) DeleteLoadout(ctx context.Context, input *loadout.DeleteLoadoutInput) (*loadout.DeleteLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("loadoutID", input.LoadoutID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.loadoutRepo.Delete(ctx, loadoutsrepo.DeleteInput{ID: input.LoadoutID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout").
			WithMeta("loadout_id", input.LoadoutID)
	}

	return &loadout.DeleteLoadoutOutput{
		Message: fmt.Sprintf("loadout %s deleted", input.LoadoutID),
	}, nil
}

// Sharing methods

// ShareLoadout renders a stored loadout as a self-contained share code
func (o *Orchestrator) ShareLoadout(ctx context.Context, input *loadout.ShareLoadoutInput) (*loadout.ShareLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("loadoutID", input.LoadoutID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.loadoutRepo.Get(ctx, loadoutsrepo.GetInput{ID: input.LoadoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get loadout").
			WithMeta("loadout_id", input.LoadoutID)
	}

	snap, err := o.catalogSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	mySpirits := o.mySpiritsFor(ctx, got.Loadout.OwnerID)

	resolved := o.resolveWithSnapshots(ctx, got.Loadout, snap, mySpirits)

	payload := serialization.EncodeLoadout(resolved, mySpirits)
	if payload == "" {
		return nil, errors.Internalf("failed to encode loadout %s for sharing", input.LoadoutID)
	}

	output := &loadout.ShareLoadoutOutput{Payload: payload}
	if o.shareBaseURL != "" {
		output.URL = fmt.Sprintf("%s?loadout=%s", o.shareBaseURL, payload)
	}
	return output, nil
}

// ResolveLoadout resolves an identifier that is either a persisted loadout
// ID or an encoded share payload. Share payloads resolve without any
// collection context; their collection slots were promoted at encode time.
func (o *Orchestrator) ResolveLoadout(ctx context.Context, input *loadout.ResolveLoadoutInput) (*loadout.ResolveLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("identifier", input.Identifier, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if serialization.IsLoadoutID(input.Identifier) {
		got, err := o.GetLoadout(ctx, &loadout.GetLoadoutInput{LoadoutID: input.Identifier})
		if err != nil {
			return nil, err
		}
		return &loadout.ResolveLoadoutOutput{Loadout: got.Loadout}, nil
	}

	data := serialization.DecodeLoadout(input.Identifier)
	if data == nil {
		return nil, errors.InvalidArgument("identifier is neither a loadout ID nor a decodable share payload")
	}

	resolved, err := o.resolveLoadoutData(ctx, data)
	if err != nil {
		return nil, err
	}
	return &loadout.ResolveLoadoutOutput{Loadout: resolved}, nil
}

// persistChildBuilds stores embedded skill and spirit builds that lack an
// ID, assigning one, so SerializeLoadoutForStorage can reference them.
func (o *Orchestrator) persistChildBuilds(ctx context.Context, l *game.Loadout) error {
	now := o.clock.Now().Unix()

	if b := l.SkillBuild; b != nil && b.ID == "" {
		b.ID = o.buildIDs.Generate()
		b.OwnerID = l.OwnerID
		b.CreatedAt = now
		b.UpdatedAt = now
		data := serialization.SerializeSkillBuild(b)
		if _, err := o.buildRepo.SaveSkillBuild(ctx, buildsrepo.SaveSkillBuildInput{Build: data}); err != nil {
			return errors.Wrapf(err, "failed to save embedded skill build").
				WithMeta("build_id", b.ID)
		}
	}

	if b := l.SpiritBuild; b != nil && b.ID == "" {
		b.ID = o.buildIDs.Generate()
		b.OwnerID = l.OwnerID
		b.CreatedAt = now
		b.UpdatedAt = now
		data := serialization.SerializeSpiritBuild(b)
		if _, err := o.buildRepo.SaveSpiritBuild(ctx, buildsrepo.SaveSpiritBuildInput{Build: data}); err != nil {
			return errors.Wrapf(err, "failed to save embedded spirit build").
				WithMeta("build_id", b.ID)
		}
	}

	return nil
}

// catalogSnapshots fetches the catalogs a loadout resolves against. Spirit
// and skill catalog failures propagate; a shape catalog failure degrades to
// a nil snapshot so the soul weapon build passes through serialized.
type catalogSnapshots struct {
	spirits map[int64]*game.Spirit
	skills  map[int64]*game.Skill
	shapes  map[string]*game.Shape
}

func (o *Orchestrator) catalogSnapshots(ctx context.Context) (*catalogSnapshots, error) {
	spirits, err := o.gameData.ListSpirits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch spirit catalog")
	}
	skills, err := o.gameData.ListSkills(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch skill catalog")
	}
	shapes, err := o.gameData.ListShapes(ctx)
	if err != nil {
		slog.WarnContext(ctx, "shape catalog unavailable, soul weapon builds will not be resolved",
			"error", err)
		shapes = nil
	}
	return &catalogSnapshots{spirits: spirits, skills: skills, shapes: shapes}, nil
}

// mySpiritsFor loads the owner's collection keyed by record ID. Collection
// slots degrade to defaults when it is unavailable, so failures only warn.
func (o *Orchestrator) mySpiritsFor(ctx context.Context, ownerID string) map[string]*game.CollectionSpirit {
	if ownerID == "" {
		return nil
	}

	listed, err := o.collectionRepo.ListByOwner(ctx, collectionrepo.ListByOwnerInput{OwnerID: ownerID})
	if err != nil {
		slog.WarnContext(ctx, "collection unavailable, collection slots will use defaults",
			"ownerId", ownerID,
			"error", err)
		return nil
	}

	mySpirits := make(map[string]*game.CollectionSpirit, len(listed.Spirits))
	for _, spirit := range listed.Spirits {
		mySpirits[spirit.ID] = spirit
	}
	return mySpirits
}

// resolveLoadoutData resolves one serialized loadout, fetching catalogs and
// the owner's collection itself.
func (o *Orchestrator) resolveLoadoutData(ctx context.Context, data *game.LoadoutData) (*game.Loadout, error) {
	snap, err := o.catalogSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	return o.resolveWithSnapshots(ctx, data, snap, o.mySpiritsFor(ctx, data.OwnerID)), nil
}

// resolveWithSnapshots resolves one serialized loadout against already
// fetched snapshots. Referenced builds that no longer exist become
// placeholders inside DeserializeLoadout; only storage failures reach the
// log here.
func (o *Orchestrator) resolveWithSnapshots(ctx context.Context, data *game.LoadoutData, snap *catalogSnapshots, mySpirits map[string]*game.CollectionSpirit) *game.Loadout {
	input := &serialization.DeserializeLoadoutInput{
		Loadout:   data,
		Spirits:   snap.spirits,
		Skills:    snap.skills,
		Shapes:    snap.shapes,
		MySpirits: mySpirits,
	}

	if data.SkillBuildID != "" {
		got, err := o.buildRepo.GetSkillBuild(ctx, buildsrepo.GetSkillBuildInput{ID: data.SkillBuildID})
		switch {
		case err == nil:
			input.SkillBuilds = []*game.SkillBuildData{got.Build}
		case !errors.IsNotFound(err):
			slog.ErrorContext(ctx, "failed to load referenced skill build",
				"buildId", data.SkillBuildID,
				"error", err)
		}
	}

	if data.SpiritBuildID != "" {
		got, err := o.buildRepo.GetSpiritBuild(ctx, buildsrepo.GetSpiritBuildInput{ID: data.SpiritBuildID})
		switch {
		case err == nil:
			input.SpiritBuilds = []*game.SpiritBuildData{got.Build}
		case !errors.IsNotFound(err):
			slog.ErrorContext(ctx, "failed to load referenced spirit build",
				"buildId", data.SpiritBuildID,
				"error", err)
		}
	}

	return serialization.DeserializeLoadout(input)
}
