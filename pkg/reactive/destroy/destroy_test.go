package destroy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_DestroySyncRunsInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []int

	r.Register("owner", func() Deferrable {
		order = append(order, 1)
		return nil
	})
	r.Register("owner", func() Deferrable {
		order = append(order, 2)
		return nil
	})
	r.Register("owner", func() Deferrable {
		order = append(order, 3)
		return nil
	})

	r.DestroySync("owner")

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRegistry_DoubleDestroyIsNoOp(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register("owner", func() Deferrable {
		calls++
		return nil
	})

	r.DestroySync("owner")
	r.DestroySync("owner")

	assert.Equal(t, 1, calls)
}

func TestRegistry_DestroyUnregisteredOwnerIsNoOp(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		r.DestroySync("never-registered")
	})
}

func TestRegistry_PanicInDestructorDoesNotStopTheRest(t *testing.T) {
	r := NewRegistry()
	var ran []int

	r.Register("owner",
		func() Deferrable {
			ran = append(ran, 1)
			return nil
		},
		func() Deferrable {
			panic("boom")
		},
		func() Deferrable {
			ran = append(ran, 3)
			return nil
		},
	)

	assert.NotPanics(t, func() {
		r.DestroySync("owner")
	})
	assert.Equal(t, []int{1, 3}, ran)
}

func TestRegistry_DestroyCollectsDeferrables(t *testing.T) {
	r := NewRegistry()
	ch1 := make(chan struct{})
	ch2 := make(chan struct{})

	r.Register("owner",
		func() Deferrable { return Deferrable(ch1) },
		func() Deferrable { return nil },
		func() Deferrable { return Deferrable(ch2) },
	)

	var pending []Deferrable
	r.Destroy("owner", &pending)

	assert.Len(t, pending, 2)
}

func TestRegistry_MarkDestructionStartedIsObservable(t *testing.T) {
	r := NewRegistry()
	r.Register("owner", func() Deferrable { return nil })

	assert.False(t, r.IsDestructionStarted("owner"))
	r.MarkDestructionStarted("owner")
	assert.True(t, r.IsDestructionStarted("owner"))
}

func TestRegistry_IsDestructionStartedFalseAfterDestroyReleasesEntry(t *testing.T) {
	r := NewRegistry()
	r.Register("owner", func() Deferrable { return nil })
	r.DestroySync("owner")

	assert.False(t, r.IsDestructionStarted("owner")) // entry released, nothing left to ask
}

func TestRegistry_IsDestructionStartedFalseForUnknownOwner(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.IsDestructionStarted("unknown"))
}
