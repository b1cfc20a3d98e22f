// Package gamedata is the client for the wiki's static game data files. It
// loads the spirit, skill and engraving shape catalogs that build
// deserialization resolves against.
package gamedata

//go:generate mockgen -destination=mock/mock_client.go -package=gamedatamock github.com/spiritwiki/loadout-api/internal/clients/gamedata Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
)

// Catalog file names under the data base URL.
const (
	spiritCharactersFile = "spirit-characters.json"
	skillsFile           = "skills.json"
	engravingShapesFile  = "engraving-shapes.json"
)

// Client defines the interface for game data catalog access.
type Client interface {
	// ListSpirits returns the spirit catalog keyed by spirit ID.
	ListSpirits(ctx context.Context) (map[int64]*game.Spirit, error)

	// ListSkills returns the skill catalog keyed by skill ID.
	ListSkills(ctx context.Context) (map[int64]*game.Skill, error)

	// ListShapes returns the engraving shape catalog keyed by shape ID.
	ListShapes(ctx context.Context) (map[string]*game.Shape, error)

	// ClearCache drops all cached catalogs so the next call refetches.
	ClearCache()
}

// Config contains configuration options for the game data client.
type Config struct {
	// BaseURL locates the static data files, e.g. https://cdn.example.com/data
	BaseURL string
	// HTTPClient overrides the default client built from HTTPTimeout.
	HTTPClient *http.Client
	// HTTPTimeout for catalog requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL bounds how long a fetched catalog is reused (optional,
	// defaults to 5 minutes)
	CacheTTL time.Duration
	// Clock is used for cache expiry. Defaults to the real clock.
	Clock clock.Clock
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type client struct {
	httpClient *http.Client
	baseURL    string
	ttl        time.Duration
	clock      clock.Clock

	mu        sync.Mutex
	spirits   map[int64]*game.Spirit
	spiritsAt time.Time
	skills    map[int64]*game.Skill
	skillsAt  time.Time
	shapes    map[string]*game.Shape
	shapesAt  time.Time
}

// New creates a new game data client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &client{
		httpClient: cfg.HTTPClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		ttl:        cfg.CacheTTL,
		clock:      cfg.Clock,
	}, nil
}

// spiritDocument is the wire shape of spirit-characters.json. The skill and
// shape files are flat arrays and decode straight into the entity slices.
type spiritDocument struct {
	Spirits []*game.Spirit `json:"spirits"`
}

func (c *client) ListSpirits(ctx context.Context) (map[int64]*game.Spirit, error) {
	c.mu.Lock()
	if c.fresh(c.spiritsAt) {
		spirits := c.spirits
		c.mu.Unlock()
		return spirits, nil
	}
	c.mu.Unlock()

	var doc spiritDocument
	if err := c.fetchJSON(ctx, spiritCharactersFile, &doc); err != nil {
		return nil, err
	}

	spirits := make(map[int64]*game.Spirit, len(doc.Spirits))
	for _, spirit := range doc.Spirits {
		if spirit == nil {
			slog.WarnContext(ctx, "null entry in spirit catalog, skipping")
			continue
		}
		spirits[spirit.ID] = spirit
	}

	c.mu.Lock()
	c.spirits = spirits
	c.spiritsAt = c.clock.Now()
	c.mu.Unlock()

	slog.DebugContext(ctx, "spirit catalog fetched", "count", len(spirits))
	return spirits, nil
}

func (c *client) ListSkills(ctx context.Context) (map[int64]*game.Skill, error) {
	c.mu.Lock()
	if c.fresh(c.skillsAt) {
		skills := c.skills
		c.mu.Unlock()
		return skills, nil
	}
	c.mu.Unlock()

	var list []*game.Skill
	if err := c.fetchJSON(ctx, skillsFile, &list); err != nil {
		return nil, err
	}

	skills := make(map[int64]*game.Skill, len(list))
	for _, skill := range list {
		if skill == nil {
			slog.WarnContext(ctx, "null entry in skill catalog, skipping")
			continue
		}
		skills[skill.ID] = skill
	}

	c.mu.Lock()
	c.skills = skills
	c.skillsAt = c.clock.Now()
	c.mu.Unlock()

	slog.DebugContext(ctx, "skill catalog fetched", "count", len(skills))
	return skills, nil
}

func (c *client) ListShapes(ctx context.Context) (map[string]*game.Shape, error) {
	c.mu.Lock()
	if c.fresh(c.shapesAt) {
		shapes := c.shapes
		c.mu.Unlock()
		return shapes, nil
	}
	c.mu.Unlock()

	var list []*game.Shape
	if err := c.fetchJSON(ctx, engravingShapesFile, &list); err != nil {
		return nil, err
	}

	shapes := make(map[string]*game.Shape, len(list))
	for _, shape := range list {
		if shape == nil {
			slog.WarnContext(ctx, "null entry in shape catalog, skipping")
			continue
		}
		shapes[shape.ID] = shape
	}

	c.mu.Lock()
	c.shapes = shapes
	c.shapesAt = c.clock.Now()
	c.mu.Unlock()

	slog.DebugContext(ctx, "shape catalog fetched", "count", len(shapes))
	return shapes, nil
}

func (c *client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spirits, c.spiritsAt = nil, time.Time{}
	c.skills, c.skillsAt = nil, time.Time{}
	c.shapes, c.shapesAt = nil, time.Time{}
}

// fresh reports whether a catalog fetched at the given time is still
// servable. Callers must hold c.mu.
func (c *client) fresh(fetchedAt time.Time) bool {
	return !fetchedAt.IsZero() && c.clock.Now().Sub(fetchedAt) < c.ttl
}

func (c *client) fetchJSON(ctx context.Context, file string, v any) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, file)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", file)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Unavailablef("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode %s", file)
	}
	return nil
}
