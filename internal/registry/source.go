package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spiritwiki/loadout-api/internal/errors"
)

// Kind selects how a fetched document is turned into records.
type Kind string

const (
	// KindArray treats the collection as an ordered list of items.
	KindArray Kind = "array"
	// KindObject treats the collection as a map of entry key to item.
	KindObject Kind = "object"
)

// Synthetic fields stamped onto every normalized record.
const (
	// FieldID is the record identity used by FindItem.
	FieldID = "_id"
	// FieldIndex is the record's position in normalized order.
	FieldIndex = "_index"
	// FieldKey is the original entry key, object documents only.
	FieldKey = "_key"
	// FieldSource is the key of the source the record came from.
	FieldSource = "_source"
)

// Record is one normalized item from a data source. Values are whatever
// encoding/json produced for the raw document, plus the synthetic fields.
type Record map[string]any

// Get resolves a dot-separated path against the record.
func (r Record) Get(path string) (any, bool) {
	return lookupPath(map[string]any(r), path)
}

// FilterFunc lets a source replace the default substring search.
type FilterFunc func(item Record, query string) bool

// DisplayConfig names the record paths that feed list rendering.
type DisplayConfig struct {
	Primary   string
	Secondary string
	Badges    []string
}

// SourceConfig describes one remote data file and how to normalize it.
type SourceConfig struct {
	// File is the document location, either absolute or relative to the
	// registry base URL.
	File  string
	Label string
	// Kind defaults to KindArray when empty.
	Kind Kind
	// Path optionally points at the collection nested inside the document,
	// e.g. "data.spirits".
	Path string
	// IDField names the item field adopted as the record identity. When
	// empty, or when an item lacks the field, the positional identity is
	// used instead (array index or object key).
	IDField      string
	Display      DisplayConfig
	SearchFields []string
	Filter       FilterFunc
}

func (cfg *SourceConfig) validate(key string) error {
	vb := errors.NewValidationBuilder()
	if cfg.File == "" {
		vb.RequiredField("file")
	}
	if cfg.Label == "" {
		vb.RequiredField("label")
	}
	if cfg.Display.Primary == "" {
		vb.RequiredField("display.primary")
	}
	switch cfg.Kind {
	case "", KindArray, KindObject:
	default:
		vb.InvalidField("kind", fmt.Sprintf("unknown kind %q", cfg.Kind))
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid config for data source %q", key)
	}
	return nil
}

// normalizeDocument flattens a decoded JSON document into records.
func normalizeDocument(key string, cfg *SourceConfig, doc any) ([]Record, error) {
	if cfg.Path != "" {
		nested, ok := lookupPath(asObject(doc), cfg.Path)
		if !ok {
			return nil, errors.Internalf("data source %q: path %q not found in document", key, cfg.Path)
		}
		doc = nested
	}

	switch cfg.Kind {
	case KindObject:
		obj, ok := doc.(map[string]any)
		if !ok {
			return nil, errors.Internalf("data source %q: expected object document, got %T", key, doc)
		}
		return normalizeObject(key, cfg, obj), nil
	default:
		arr, ok := doc.([]any)
		if !ok {
			return nil, errors.Internalf("data source %q: expected array document, got %T", key, doc)
		}
		return normalizeArray(key, cfg, arr), nil
	}
}

func normalizeArray(key string, cfg *SourceConfig, items []any) []Record {
	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec := copyAsRecord(item)
		rec[FieldID] = identityOf(rec, cfg.IDField, i)
		rec[FieldIndex] = i
		rec[FieldSource] = key
		records = append(records, rec)
	}
	return records
}

// normalizeObject walks entries in sorted key order so record indexes are
// stable across fetches.
func normalizeObject(key string, cfg *SourceConfig, obj map[string]any) []Record {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]Record, 0, len(keys))
	for i, entryKey := range keys {
		rec := copyAsRecord(obj[entryKey])
		rec[FieldID] = identityOf(rec, cfg.IDField, entryKey)
		rec[FieldKey] = entryKey
		rec[FieldIndex] = i
		rec[FieldSource] = key
		records = append(records, rec)
	}
	return records
}

// copyAsRecord shallow-copies an item so the synthetic fields never mutate
// the decoded document. Non-object items are wrapped under "value".
func copyAsRecord(item any) Record {
	obj, ok := item.(map[string]any)
	if !ok {
		return Record{"value": item}
	}
	rec := make(Record, len(obj)+3)
	for k, v := range obj {
		rec[k] = v
	}
	return rec
}

func identityOf(rec Record, idField string, positional any) any {
	if idField != "" {
		if v, ok := rec[idField]; ok && v != nil {
			return v
		}
	}
	return positional
}

func asObject(doc any) map[string]any {
	obj, _ := doc.(map[string]any)
	return obj
}

func lookupPath(obj map[string]any, path string) (any, bool) {
	var current any = obj
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// stringify renders a record value for search and display. JSON numbers
// that are whole render without a decimal point.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprint(val)
	}
}
