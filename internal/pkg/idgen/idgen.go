// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedUUID generates IDs with the format prefix-<uuid4>.
// An empty prefix yields a bare UUID.
type PrefixedUUID struct {
	prefix string
}

// NewPrefixedUUID creates a new UUID generator with the given prefix
func NewPrefixedUUID(prefix string) *PrefixedUUID {
	return &PrefixedUUID{prefix: prefix}
}

// Generate creates a new ID
func (g *PrefixedUUID) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s-%s", g.prefix, id)
	}
	return id
}

// Sequential generates predictable IDs for testing
type Sequential struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate creates the next sequential ID
func (g *Sequential) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s-%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
