package refdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ids(n int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, n)
	for i := range out {
		out[i] = primitive.NewObjectID()
	}
	return out
}

func TestDiff_AddedRemovedIntersection(t *testing.T) {
	all := ids(4)
	a, b, c, d := all[0], all[1], all[2], all[3]

	change := Diff(
		[]primitive.ObjectID{a, b, c},
		[]primitive.ObjectID{b, c, d},
	)

	assert.Equal(t, []primitive.ObjectID{d}, change.Added)
	assert.Equal(t, []primitive.ObjectID{a}, change.Removed)
}

func TestDiff_NoChange(t *testing.T) {
	all := ids(2)
	change := Diff(all, []primitive.ObjectID{all[1], all[0]})
	assert.True(t, change.Empty(), "reordering is not a change")
}

func TestDiff_EmptySides(t *testing.T) {
	all := ids(2)

	change := Diff(nil, all)
	assert.Len(t, change.Added, 2)
	assert.Empty(t, change.Removed)

	change = Diff(all, nil)
	assert.Empty(t, change.Added)
	assert.Len(t, change.Removed, 2)
}

func TestDiff_DuplicatesCollapsed(t *testing.T) {
	all := ids(2)
	a, b := all[0], all[1]

	change := Diff(
		[]primitive.ObjectID{a, a},
		[]primitive.ObjectID{a, b, b},
	)
	assert.Equal(t, []primitive.ObjectID{b}, change.Added)
	assert.Empty(t, change.Removed)
}

func TestSwap(t *testing.T) {
	all := ids(2)
	a, b := all[0], all[1]

	detach, attach, changed := Swap(&a, &b)
	require.True(t, changed)
	assert.Equal(t, a, *detach)
	assert.Equal(t, b, *attach)

	detach, attach, changed = Swap(&a, &a)
	assert.False(t, changed)
	assert.Nil(t, detach)
	assert.Nil(t, attach)

	detach, attach, changed = Swap(nil, &b)
	require.True(t, changed)
	assert.Nil(t, detach)
	assert.Equal(t, b, *attach)

	detach, attach, changed = Swap(&a, nil)
	require.True(t, changed)
	assert.Equal(t, a, *detach)
	assert.Nil(t, attach)

	_, _, changed = Swap(nil, nil)
	assert.False(t, changed)
}

func TestContains(t *testing.T) {
	all := ids(3)
	assert.True(t, Contains(all, all[1]))
	assert.False(t, Contains(all[:2], all[2]))
	assert.False(t, Contains(nil, all[0]))
}
