package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_AllocAssignsDistinctIds(t *testing.T) {
	r := NewRegistry()
	a := r.Alloc("owner-a")
	b := r.Alloc("owner-b")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "owner-a", r.Owner(a))
	assert.Equal(t, "owner-b", r.Owner(b))
}

func TestRegistry_AddLinksParentAndChild(t *testing.T) {
	r := NewRegistry()
	parent := r.Alloc("parent")
	child := r.Alloc("child")
	r.Add(parent, child)

	p, ok := r.Parent(child)
	assert.True(t, ok)
	assert.Equal(t, parent, p)
	assert.Equal(t, []ID{child}, r.Children(parent))
}

func TestRegistry_ZeroParentMeansRoot(t *testing.T) {
	r := NewRegistry()
	root := r.Alloc("root")
	r.Add(0, root)

	_, ok := r.Parent(root)
	assert.False(t, ok)
}

func TestRegistry_TeardownRemovesFromParentAndReleasesId(t *testing.T) {
	r := NewRegistry()
	parent := r.Alloc("parent")
	child := r.Alloc("child")
	r.Add(parent, child)

	ok := r.Teardown(child, "child")
	assert.True(t, ok)
	assert.Empty(t, r.Children(parent))
	assert.Nil(t, r.Owner(child))
}

func TestRegistry_TeardownFailsForStaleHandle(t *testing.T) {
	r := NewRegistry()
	id := r.Alloc("original")

	ok := r.Teardown(id, "impostor")
	assert.False(t, ok)
	assert.Equal(t, "original", r.Owner(id))
}

func TestRegistry_RecycledIdGuardsAgainstStaleTeardown(t *testing.T) {
	r := NewRegistry()
	first := r.Alloc("first")
	ok := r.Teardown(first, "first")
	assert.True(t, ok)

	second := r.Alloc("second")
	assert.Equal(t, first, second, "freed id should be recycled")

	// A stale reference to the original handle must not be able to tear
	// down the new owner that now holds the recycled id.
	stale := r.Teardown(second, "first")
	assert.False(t, stale)
	assert.Equal(t, "second", r.Owner(second))
}

func TestRegistry_TeardownOfUnknownIdIsFalse(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Teardown(999, "anything"))
}
