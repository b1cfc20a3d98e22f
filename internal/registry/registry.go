// Package registry fetches the wiki's static JSON data files and normalizes
// them into uniform records that list pages and lookups can share.
//
// Sources are registered with a SourceConfig describing where the file
// lives and how its collection is shaped. Fetched documents are flattened
// into Record values carrying the original item fields plus the synthetic
// _id, _index, _key and _source fields, and the result is cached per source.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultTTL         = 5 * time.Minute
)

// DisplayInfo is the rendered list representation of a record.
type DisplayInfo struct {
	Primary   string   `json:"primary"`
	Secondary string   `json:"secondary,omitempty"`
	Badges    []string `json:"badges,omitempty"`
}

// SourceInfo describes one registered source.
type SourceInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Config holds the registry dependencies.
type Config struct {
	// BaseURL prefixes relative source files.
	BaseURL string
	// HTTPClient is used for fetches. Defaults to a client with
	// HTTPTimeout applied.
	HTTPClient *http.Client
	// HTTPTimeout applies when HTTPClient is nil. Defaults to 30s.
	HTTPTimeout time.Duration
	// TTL bounds how long a cached fetch is served. Defaults to 5m.
	TTL time.Duration
	// Cache defaults to the in-process memory cache.
	Cache Cache
	// Clock defaults to the real clock.
	Clock clock.Clock
}

// Validate ensures the config is usable and applies defaults.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.TTL == 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if cfg.Cache == nil {
		cfg.Cache = NewMemoryCache()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// Registry normalizes remote data sources and caches the results.
type Registry struct {
	mu         sync.RWMutex
	sources    map[string]*SourceConfig
	httpClient *http.Client
	baseURL    string
	ttl        time.Duration
	cache      Cache
	clock      clock.Clock
}

// New creates a registry with no sources registered.
func New(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Registry{
		sources:    make(map[string]*SourceConfig),
		httpClient: cfg.HTTPClient,
		baseURL:    cfg.BaseURL,
		ttl:        cfg.TTL,
		cache:      cfg.Cache,
		clock:      cfg.Clock,
	}, nil
}

// Register adds or replaces a source. Replacing drops any cached data so
// the next fetch normalizes under the new config.
func (r *Registry) Register(key string, cfg *SourceConfig) error {
	if key == "" {
		return errors.InvalidArgument("source key is required")
	}
	if cfg == nil {
		return errors.InvalidArgument("source config is required")
	}
	if err := cfg.validate(key); err != nil {
		return err
	}

	r.mu.Lock()
	r.sources[key] = cfg
	r.mu.Unlock()

	r.cache.Delete(key)
	return nil
}

// Sources lists the registered sources sorted by key.
func (r *Registry) Sources() []SourceInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]SourceInfo, 0, len(r.sources))
	for key, cfg := range r.sources {
		infos = append(infos, SourceInfo{Key: key, Label: cfg.Label})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos
}

// FetchData returns the normalized records for a source, fetching the
// backing file when the cache is cold or expired.
//
// Concurrent fetches of the same cold source may each hit the network.
// Both write the same normalized result, so the duplicate work is
// tolerated instead of serialized.
func (r *Registry) FetchData(ctx context.Context, key string) ([]Record, error) {
	cfg, ok := r.source(key)
	if !ok {
		return nil, errors.NotFoundf("data source %q is not registered", key)
	}

	if entry, ok := r.cache.Get(key); ok && r.clock.Now().Sub(entry.FetchedAt) < r.ttl {
		return entry.Records, nil
	}

	url := r.resolveURL(cfg.File)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for data source %q", key)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch data source %q from %s", key, url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("failed to fetch data source %q from %s: status %d", key, url, resp.StatusCode)
	}

	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode data source %q", key)
	}

	records, err := normalizeDocument(key, cfg, doc)
	if err != nil {
		return nil, err
	}

	r.cache.Put(key, &Entry{Records: records, FetchedAt: r.clock.Now()})
	slog.DebugContext(ctx, "data source fetched",
		"source", key,
		"records", len(records))

	return records, nil
}

// FindItem locates one record by its _id. Identities are matched strictly
// first, then by string coercion so a numeric id finds a JSON number.
func (r *Registry) FindItem(ctx context.Context, key string, id any) (Record, error) {
	records, err := r.FetchData(ctx, key)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec[FieldID] == id {
			return rec, nil
		}
	}

	want := stringify(id)
	for _, rec := range records {
		if stringify(rec[FieldID]) == want {
			return rec, nil
		}
	}

	return nil, errors.NotFoundf("item %v not found in data source %q", id, key)
}

// SearchItems returns the records matching a query. Sources with a Filter
// use it; everything else falls back to a case-insensitive substring match
// over the configured search fields. An empty query matches every record.
func (r *Registry) SearchItems(ctx context.Context, key, query string) ([]Record, error) {
	cfg, ok := r.source(key)
	if !ok {
		return nil, errors.NotFoundf("data source %q is not registered", key)
	}

	records, err := r.FetchData(ctx, key)
	if err != nil {
		return nil, err
	}

	if cfg.Filter != nil {
		matched := make([]Record, 0, len(records))
		for _, rec := range records {
			if cfg.Filter(rec, query) {
				matched = append(matched, rec)
			}
		}
		return matched, nil
	}

	fields := cfg.SearchFields
	if len(fields) == 0 {
		fields = append(fields, cfg.Display.Primary)
		if cfg.Display.Secondary != "" {
			fields = append(fields, cfg.Display.Secondary)
		}
	}

	q := strings.ToLower(query)
	matched := make([]Record, 0, len(records))
	for _, rec := range records {
		for _, field := range fields {
			v, ok := rec.Get(field)
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(v)), q) {
				matched = append(matched, rec)
				break
			}
		}
	}
	return matched, nil
}

// GetDisplayInfo renders a record through the source's display config.
// Paths the record lacks render as empty rather than failing.
func (r *Registry) GetDisplayInfo(key string, item Record) (*DisplayInfo, error) {
	cfg, ok := r.source(key)
	if !ok {
		return nil, errors.NotFoundf("data source %q is not registered", key)
	}
	if item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}

	info := &DisplayInfo{
		Primary:   stringifyPath(item, cfg.Display.Primary),
		Secondary: stringifyPath(item, cfg.Display.Secondary),
	}
	for _, path := range cfg.Display.Badges {
		if v, ok := item.Get(path); ok && v != nil {
			info.Badges = append(info.Badges, stringify(v))
		}
	}
	return info, nil
}

// ClearCache drops the cached records for one source.
func (r *Registry) ClearCache(key string) {
	r.cache.Delete(key)
}

// ClearAll drops every cached source.
func (r *Registry) ClearAll() {
	r.cache.Flush()
}

func (r *Registry) source(key string) (*SourceConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.sources[key]
	return cfg, ok
}

func (r *Registry) resolveURL(file string) string {
	if strings.HasPrefix(file, "http://") || strings.HasPrefix(file, "https://") {
		return file
	}
	if r.baseURL == "" {
		return file
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.baseURL, "/"), strings.TrimPrefix(file, "/"))
}

func stringifyPath(item Record, path string) string {
	if path == "" {
		return ""
	}
	v, ok := item.Get(path)
	if !ok {
		return ""
	}
	return stringify(v)
}
