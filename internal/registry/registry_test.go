package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/errors"
	"github.com/spiritwiki/loadout-api/internal/pkg/clock"
	"github.com/spiritwiki/loadout-api/internal/registry"
)

const spiritsDoc = `{
	"spirits": [
		{"id": 101, "name": "Ember Fox", "type": "fire", "rarity": 5, "skill": {"name": "Flame Burst"}},
		{"id": 102, "name": "Gale Crane", "type": "wind", "rarity": 4, "skill": {"name": "Tail Wind"}},
		{"id": 205, "name": "Tidal Koi", "type": "water", "rarity": 3}
	]
}`

const shapesDoc = `{
	"t-shape": {"name": "T-Shape", "cells": 4},
	"l-shape": {"name": "L-Shape", "cells": 4},
	"block": {"name": "Block", "cells": 4}
}`

const tiersDoc = `["S", "A", "B"]`

type RegistryTestSuite struct {
	suite.Suite
	ctx      context.Context
	server   *httptest.Server
	registry *registry.Registry
	clock    *clock.Fixed

	mu       sync.Mutex
	requests map[string]int
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests = make(map[string]int)

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		s.mu.Unlock()

		switch r.URL.Path {
		case "/data/spirit-characters.json":
			_, _ = w.Write([]byte(spiritsDoc))
		case "/data/engraving-shapes.json":
			_, _ = w.Write([]byte(shapesDoc))
		case "/data/tiers.json":
			_, _ = w.Write([]byte(tiersDoc))
		case "/data/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	s.clock = clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	reg, err := registry.New(&registry.Config{
		BaseURL: s.server.URL + "/data",
		Clock:   s.clock,
	})
	s.Require().NoError(err)
	s.registry = reg

	s.Require().NoError(s.registry.Register("spirits", &registry.SourceConfig{
		File:    "spirit-characters.json",
		Label:   "Spirits",
		Path:    "spirits",
		IDField: "id",
		Display: registry.DisplayConfig{
			Primary:   "name",
			Secondary: "type",
			Badges:    []string{"rarity"},
		},
		SearchFields: []string{"name", "skill.name"},
	}))

	s.Require().NoError(s.registry.Register("shapes", &registry.SourceConfig{
		File:  "engraving-shapes.json",
		Label: "Engraving Shapes",
		Kind:  registry.KindObject,
		Display: registry.DisplayConfig{
			Primary: "name",
		},
	}))

	s.Require().NoError(s.registry.Register("tiers", &registry.SourceConfig{
		File:  "tiers.json",
		Label: "Tiers",
		Display: registry.DisplayConfig{
			Primary: "value",
		},
	}))
}

func (s *RegistryTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RegistryTestSuite) requestCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

func (s *RegistryTestSuite) TestFetchNormalizesArraySource() {
	records, err := s.registry.FetchData(s.ctx, "spirits")

	s.Require().NoError(err)
	s.Require().Len(records, 3)

	first := records[0]
	s.Equal(float64(101), first[registry.FieldID])
	s.Equal(0, first[registry.FieldIndex])
	s.Equal("spirits", first[registry.FieldSource])
	s.Equal("Ember Fox", first["name"])
	s.NotContains(first, registry.FieldKey)
}

func (s *RegistryTestSuite) TestFetchNormalizesObjectSource() {
	records, err := s.registry.FetchData(s.ctx, "shapes")

	s.Require().NoError(err)
	s.Require().Len(records, 3)

	// Entries come out in sorted key order.
	s.Equal("block", records[0][registry.FieldKey])
	s.Equal("l-shape", records[1][registry.FieldKey])
	s.Equal("t-shape", records[2][registry.FieldKey])

	// No IDField, so the entry key becomes the identity.
	s.Equal("block", records[0][registry.FieldID])
	s.Equal(0, records[0][registry.FieldIndex])
	s.Equal("Block", records[0]["name"])
}

func (s *RegistryTestSuite) TestFetchWrapsScalarItems() {
	records, err := s.registry.FetchData(s.ctx, "tiers")

	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("S", records[0]["value"])
	s.Equal(0, records[0][registry.FieldID])
}

func (s *RegistryTestSuite) TestFetchUnregisteredSource() {
	_, err := s.registry.FetchData(s.ctx, "runes")

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "runes")
}

func (s *RegistryTestSuite) TestFetchMissingPath() {
	s.Require().NoError(s.registry.Register("nested", &registry.SourceConfig{
		File:    "spirit-characters.json",
		Label:   "Nested",
		Path:    "data.items",
		Display: registry.DisplayConfig{Primary: "name"},
	}))

	_, err := s.registry.FetchData(s.ctx, "nested")

	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "data.items")
}

func (s *RegistryTestSuite) TestFetchServerError() {
	s.Require().NoError(s.registry.Register("broken", &registry.SourceConfig{
		File:    "broken.json",
		Label:   "Broken",
		Display: registry.DisplayConfig{Primary: "name"},
	}))

	_, err := s.registry.FetchData(s.ctx, "broken")

	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Contains(err.Error(), "status 500")
	s.Contains(err.Error(), "broken.json")
}

func (s *RegistryTestSuite) TestFetchCachesWithinTTL() {
	_, err := s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)
	_, err = s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)

	s.Equal(1, s.requestCount("/data/spirit-characters.json"))

	s.clock.Advance(6 * time.Minute)
	_, err = s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)

	s.Equal(2, s.requestCount("/data/spirit-characters.json"))
}

func (s *RegistryTestSuite) TestClearCacheForcesRefetch() {
	_, err := s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)

	s.registry.ClearCache("spirits")

	_, err = s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)
	s.Equal(2, s.requestCount("/data/spirit-characters.json"))
}

func (s *RegistryTestSuite) TestClearAllForcesRefetch() {
	_, err := s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)
	_, err = s.registry.FetchData(s.ctx, "shapes")
	s.Require().NoError(err)

	s.registry.ClearAll()

	_, err = s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)
	_, err = s.registry.FetchData(s.ctx, "shapes")
	s.Require().NoError(err)

	s.Equal(2, s.requestCount("/data/spirit-characters.json"))
	s.Equal(2, s.requestCount("/data/engraving-shapes.json"))
}

func (s *RegistryTestSuite) TestReRegisterDropsCache() {
	_, err := s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)

	s.Require().NoError(s.registry.Register("spirits", &registry.SourceConfig{
		File:    "spirit-characters.json",
		Label:   "Spirits v2",
		Path:    "spirits",
		IDField: "id",
		Display: registry.DisplayConfig{Primary: "name"},
	}))

	_, err = s.registry.FetchData(s.ctx, "spirits")
	s.Require().NoError(err)
	s.Equal(2, s.requestCount("/data/spirit-characters.json"))
}

func (s *RegistryTestSuite) TestFindItemMatchesNumericID() {
	// JSON numbers decode as float64; an int argument still matches.
	rec, err := s.registry.FindItem(s.ctx, "spirits", 101)

	s.Require().NoError(err)
	s.Equal("Ember Fox", rec["name"])
}

func (s *RegistryTestSuite) TestFindItemMatchesStringID() {
	rec, err := s.registry.FindItem(s.ctx, "shapes", "t-shape")

	s.Require().NoError(err)
	s.Equal("T-Shape", rec["name"])
}

func (s *RegistryTestSuite) TestFindItemNotFound() {
	_, err := s.registry.FindItem(s.ctx, "spirits", 999999)

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "999999")
}

func (s *RegistryTestSuite) TestSearchItemsMatchesSubstring() {
	records, err := s.registry.SearchItems(s.ctx, "spirits", "FOX")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("Ember Fox", records[0]["name"])
}

func (s *RegistryTestSuite) TestSearchItemsNestedField() {
	records, err := s.registry.SearchItems(s.ctx, "spirits", "tail wind")

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("Gale Crane", records[0]["name"])
}

func (s *RegistryTestSuite) TestSearchItemsEmptyQueryMatchesAll() {
	records, err := s.registry.SearchItems(s.ctx, "spirits", "")

	s.Require().NoError(err)
	s.Len(records, 3)
}

func (s *RegistryTestSuite) TestSearchItemsCustomFilter() {
	s.Require().NoError(s.registry.Register("rare-spirits", &registry.SourceConfig{
		File:    "spirit-characters.json",
		Label:   "Rare Spirits",
		Path:    "spirits",
		IDField: "id",
		Display: registry.DisplayConfig{Primary: "name"},
		Filter: func(item registry.Record, query string) bool {
			rarity, _ := item["rarity"].(float64)
			return rarity >= 4
		},
	}))

	records, err := s.registry.SearchItems(s.ctx, "rare-spirits", "anything")

	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal("Ember Fox", records[0]["name"])
	s.Equal("Gale Crane", records[1]["name"])
}

func (s *RegistryTestSuite) TestGetDisplayInfo() {
	rec, err := s.registry.FindItem(s.ctx, "spirits", 101)
	s.Require().NoError(err)

	info, err := s.registry.GetDisplayInfo("spirits", rec)

	s.Require().NoError(err)
	s.Equal("Ember Fox", info.Primary)
	s.Equal("fire", info.Secondary)
	s.Equal([]string{"5"}, info.Badges)
}

func (s *RegistryTestSuite) TestGetDisplayInfoMissingFields() {
	info, err := s.registry.GetDisplayInfo("spirits", registry.Record{"id": float64(7)})

	s.Require().NoError(err)
	s.Equal("", info.Primary)
	s.Equal("", info.Secondary)
	s.Empty(info.Badges)
}

func (s *RegistryTestSuite) TestGetDisplayInfoUnregistered() {
	_, err := s.registry.GetDisplayInfo("runes", registry.Record{"name": "x"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RegistryTestSuite) TestRegisterValidation() {
	testCases := []struct {
		name string
		key  string
		cfg  *registry.SourceConfig
	}{
		{
			name: "empty key",
			key:  "",
			cfg:  &registry.SourceConfig{File: "a.json", Label: "A", Display: registry.DisplayConfig{Primary: "name"}},
		},
		{
			name: "nil config",
			key:  "a",
			cfg:  nil,
		},
		{
			name: "missing file",
			key:  "a",
			cfg:  &registry.SourceConfig{Label: "A", Display: registry.DisplayConfig{Primary: "name"}},
		},
		{
			name: "missing label",
			key:  "a",
			cfg:  &registry.SourceConfig{File: "a.json", Display: registry.DisplayConfig{Primary: "name"}},
		},
		{
			name: "missing primary display field",
			key:  "a",
			cfg:  &registry.SourceConfig{File: "a.json", Label: "A"},
		},
		{
			name: "unknown kind",
			key:  "a",
			cfg:  &registry.SourceConfig{File: "a.json", Label: "A", Kind: "tree", Display: registry.DisplayConfig{Primary: "name"}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.registry.Register(tc.key, tc.cfg)

			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RegistryTestSuite) TestSourcesSorted() {
	infos := s.registry.Sources()

	s.Require().Len(infos, 3)
	s.Equal("shapes", infos[0].Key)
	s.Equal("spirits", infos[1].Key)
	s.Equal("tiers", infos[2].Key)
	s.Equal("Engraving Shapes", infos[0].Label)
}

type countingCache struct {
	mu      sync.Mutex
	puts    int
	entries map[string]*registry.Entry
}

func (c *countingCache) Get(key string) (*registry.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *countingCache) Put(key string, entry *registry.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]*registry.Entry)
	}
	c.entries[key] = entry
	c.puts++
}

func (c *countingCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *countingCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*registry.Entry)
}

func (s *RegistryTestSuite) TestInjectedCacheIsUsed() {
	cache := &countingCache{}
	reg, err := registry.New(&registry.Config{
		BaseURL: s.server.URL + "/data",
		Cache:   cache,
		Clock:   s.clock,
	})
	s.Require().NoError(err)

	s.Require().NoError(reg.Register("tiers", &registry.SourceConfig{
		File:    "tiers.json",
		Label:   "Tiers",
		Display: registry.DisplayConfig{Primary: "value"},
	}))

	_, err = reg.FetchData(s.ctx, "tiers")
	s.Require().NoError(err)
	_, err = reg.FetchData(s.ctx, "tiers")
	s.Require().NoError(err)

	s.Equal(1, cache.puts)
	s.Equal(1, s.requestCount("/data/tiers.json"))
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
