// Package cache provides a Redis-backed invalidator for rendered view
// caches. Writes to the catalog signal every view path that could
// display the mutated record; serving layers repopulate on next read.
package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces view keys in Redis.
const DefaultPrefix = "view:"

// Invalidator deletes cached views by path. Invalidation is
// best-effort: a Redis failure must never abort the write that
// triggered it, so failures are logged and reported as warnings
// instead of errors.
type Invalidator struct {
	client *redis.Client
	prefix string
}

// NewInvalidator creates an Invalidator. A nil client disables
// invalidation (every call becomes a no-op), which keeps local setups
// without Redis working.
func NewInvalidator(client *redis.Client, prefix string) *Invalidator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Invalidator{
		client: client,
		prefix: prefix,
	}
}

// Invalidate deletes the cached views for the given paths and returns
// a warning per path that could not be invalidated.
func (i *Invalidator) Invalidate(ctx context.Context, paths ...string) []string {
	if i.client == nil || len(paths) == 0 {
		return nil
	}

	var warnings []string
	for _, path := range paths {
		key := i.prefix + path
		if err := i.client.Del(ctx, key).Err(); err != nil {
			warning := fmt.Sprintf("failed to invalidate %s: %v", path, err)
			log.Printf("cache: %s", warning)
			warnings = append(warnings, warning)
		}
	}
	return warnings
}
