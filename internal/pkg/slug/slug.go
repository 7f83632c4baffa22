// Package slug derives URL-safe identifiers from display names and
// resolves collisions against already-stored slugs.
package slug

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// randRange bounds the numeric suffix appended on collision.
const randRange = 1000

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// ExistsFunc reports whether a candidate slug is already taken by
// another record. Implementations must exclude the record being
// updated, if any.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make derives a slug from a display name: lower-cased, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens trimmed. Deterministic for a given name.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Unique derives a slug from name and, when the candidate is already
// taken, appends a random suffix in [0, 1000) to produce a distinct
// one. The resolution is probabilistic: two concurrent creations with
// the same name can still collide, which the unique index on the slug
// column turns into a commit failure rather than silent duplication.
func Unique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	candidate := Make(name)

	taken, err := exists(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
	}
	if !taken {
		return candidate, nil
	}

	return fmt.Sprintf("%s-%d", candidate, rand.Intn(randRange)), nil
}
