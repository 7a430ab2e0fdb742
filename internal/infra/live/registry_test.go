package live

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeChannel struct {
	id string
}

func (f *fakeChannel) Push(_ context.Context, _ any) error { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	ch := &fakeChannel{id: "a"}

	reg.Register("device-1", ch)

	got, ok := reg.Get("device-1")
	require.True(t, ok)
	assert.Same(t, ch, got.(*fakeChannel))

	_, ok = reg.Get("device-2")
	assert.False(t, ok)
}

func TestRegistry_ReconnectOverwrites(t *testing.T) {
	reg := NewRegistry()
	old := &fakeChannel{id: "old"}
	fresh := &fakeChannel{id: "fresh"}

	reg.Register("device-1", old)
	reg.Register("device-1", fresh)

	got, ok := reg.Get("device-1")
	require.True(t, ok)
	assert.Same(t, fresh, got.(*fakeChannel))
}

func TestRegistry_UnregisterOnlyWhenCurrent(t *testing.T) {
	reg := NewRegistry()
	old := &fakeChannel{id: "old"}
	fresh := &fakeChannel{id: "fresh"}

	reg.Register("device-1", old)
	reg.Register("device-1", fresh)

	// The stale connection closing must not evict the replacement.
	reg.Unregister("device-1", old)
	_, ok := reg.Get("device-1")
	require.True(t, ok)

	reg.Unregister("device-1", fresh)
	_, ok = reg.Get("device-1")
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}

func TestRegistry_ConcurrentDistinctDevices(t *testing.T) {
	defer goleak.VerifyNone(t)

	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			deviceID := fmt.Sprintf("device-%d", i)
			ch := &fakeChannel{id: deviceID}
			reg.Register(deviceID, ch)
			got, ok := reg.Get(deviceID)
			assert.True(t, ok)
			assert.Same(t, ch, got.(*fakeChannel))
		}()
	}
	wg.Wait()

	assert.Equal(t, 64, reg.Len())
}
