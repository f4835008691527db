package registry

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqlabs/arc"
	arcerrors "github.com/arqlabs/arc/errors"
)

type captureObserver struct {
	events []arc.Event
}

func (o *captureObserver) OnHandleEvent(e arc.Event) {
	o.events = append(o.events, e)
}

func TestRegistry_TracksLifecycle(t *testing.T) {
	reg := New()

	h := arc.MakeShared(42, arc.WithObserver(reg), arc.WithLabel("answer"))
	require.Equal(t, 1, reg.Len())

	live := reg.Live()
	require.Len(t, live, 1)
	assert.Equal(t, "answer", live[0].Label)
	assert.Equal(t, int64(1), live[0].Strong)
	assert.False(t, live[0].Destroyed)

	c := h.Clone()
	live = reg.Live()
	require.Len(t, live, 1)
	assert.Equal(t, int64(2), live[0].Strong)

	c.Drop()
	h.Drop()
	assert.Equal(t, 0, reg.Len(), "freed control blocks leave the registry")
}

func TestRegistry_WeakKeepsEntry(t *testing.T) {
	reg := New()

	h := arc.MakeShared("v", arc.WithObserver(reg))
	w := h.Downgrade()
	h.Drop()

	// Destroyed but not freed: the weak observer still holds the block.
	require.Equal(t, 1, reg.Len())
	live := reg.Live()
	require.Len(t, live, 1)
	assert.True(t, live[0].Destroyed)
	assert.Equal(t, int64(0), live[0].Strong)

	w.Drop()
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Leaks(t *testing.T) {
	reg := New()

	h := arc.MakeShared("held", arc.WithObserver(reg), arc.WithLabel("held"))
	g := arc.MakeShared("dropped", arc.WithObserver(reg), arc.WithLabel("dropped"))
	g.Drop()

	leaks := reg.Leaks()
	require.Len(t, leaks, 1)
	assert.Equal(t, "held", leaks[0].Label)

	h.Drop()
	assert.Empty(t, reg.Leaks())
}

func TestRegistry_Subscribe(t *testing.T) {
	reg := New()
	sink := &captureObserver{}
	reg.Subscribe(sink)

	h := arc.MakeShared(1, arc.WithObserver(reg))
	require.NotEmpty(t, sink.events)
	assert.Equal(t, arc.EventCreated, sink.events[0].Type)

	reg.Unsubscribe(sink)
	n := len(sink.events)
	h.Drop()
	assert.Len(t, sink.events, n, "no events after Unsubscribe")
}

func TestRegistry_Each(t *testing.T) {
	reg := New()
	h1 := arc.MakeShared(1, arc.WithObserver(reg))
	h2 := arc.MakeShared(2, arc.WithObserver(reg))
	defer h1.Drop()
	defer h2.Drop()

	seen := 0
	reg.Each(func(Entry) bool {
		seen++
		return true
	})
	assert.Equal(t, 2, seen)

	seen = 0
	reg.Each(func(Entry) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen, "Each stops when fn returns false")
}

func TestRegistry_Find(t *testing.T) {
	reg := New()
	h := arc.MakeShared("v", arc.WithObserver(reg), arc.WithLabel("cache"))
	defer h.Drop()

	id := reg.Live()[0].ID
	ent, err := reg.Find(id)
	require.NoError(t, err)
	assert.Equal(t, "cache", ent.Label)
	assert.Equal(t, int64(1), ent.Strong)

	_, err = reg.Find(id + 1)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &arcerrors.Error{
		Phase: arcerrors.PhaseTrack,
		Kind:  arcerrors.KindInvalidHandle,
	}))
}

func TestRegistry_FindAfterClose(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Close())

	_, err := reg.Find(1)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &arcerrors.Error{
		Phase: arcerrors.PhaseTrack,
		Kind:  arcerrors.KindClosed,
	}))
}

func TestRegistry_Close(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Close())

	h := arc.MakeShared(1, arc.WithObserver(reg))
	defer h.Drop()
	assert.Equal(t, 0, reg.Len(), "events after Close are ignored")
}
