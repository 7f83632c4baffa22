package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestCommitPlan_AddIgnoresNil(t *testing.T) {
	plan := NewPlan()

	plan.Add(nil)
	assert.True(t, plan.IsEmpty())
	assert.Zero(t, plan.Count())

	plan.Add(spanner.Delete("products", spanner.Key{"p-1"}))
	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 1, plan.Count())
}

func TestCommitPlan_AddMultiple(t *testing.T) {
	plan := NewPlan()

	plan.AddMultiple([]*spanner.Mutation{
		spanner.Delete("products", spanner.Key{"p-1"}),
		nil,
		spanner.Delete("products", spanner.Key{"p-2"}),
	})

	assert.Equal(t, 2, plan.Count())
	assert.Len(t, plan.Mutations(), 2)
}

func TestCommitter_ApplySkipsEmptyPlan(t *testing.T) {
	// An empty plan never reaches Spanner, so no client is needed.
	c := NewCommitter(nil)

	assert.NoError(t, c.Apply(context.Background(), NewPlan()))
}
