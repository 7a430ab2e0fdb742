package pending

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ogarmar/Compa/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newRequest(id string) *entity.PendingConnectionRequest {
	return &entity.PendingConnectionRequest{
		RequestID:  id,
		AccountID:  42,
		DeviceID:   "device-1",
		DeviceCode: "482913",
		Requester:  entity.RequesterInfo{AccountID: 42, FullName: "Ana"},
	}
}

func TestTable_TakeConsumesOnce(t *testing.T) {
	table := NewTable(time.Minute)
	table.Put(newRequest("req-1"))

	first := table.Take("req-1")
	require.NotNil(t, first)
	assert.Equal(t, "device-1", first.DeviceID)

	assert.Nil(t, table.Take("req-1"))
}

func TestTable_TakeUnknown(t *testing.T) {
	table := NewTable(time.Minute)

	assert.Nil(t, table.Take("missing"))
}

func TestTable_ExpiredEntryUnreachable(t *testing.T) {
	table := NewTable(time.Minute)

	current := time.Now()
	table.now = func() time.Time { return current }

	table.Put(newRequest("req-1"))

	// Beyond the TTL the entry must be unreachable via Take.
	current = current.Add(2 * time.Minute)
	assert.Nil(t, table.Take("req-1"))
	assert.Zero(t, table.Len())
}

func TestTable_SweepReturnsExpiredOnly(t *testing.T) {
	table := NewTable(time.Minute)

	current := time.Now()
	table.now = func() time.Time { return current }

	table.Put(newRequest("old"))
	current = current.Add(45 * time.Second)
	table.Put(newRequest("young"))
	current = current.Add(30 * time.Second)

	expired := table.Sweep()
	require.Len(t, expired, 1)
	assert.Equal(t, "old", expired[0].RequestID)

	require.NotNil(t, table.Take("young"))
}

// TestTable_SingleConsumption exercises the core handshake property: for any
// request id, across arbitrarily many concurrent Take calls, exactly one
// observes a non-nil result.
func TestTable_SingleConsumption(t *testing.T) {
	defer goleak.VerifyNone(t)

	table := NewTable(time.Minute)

	for round := range 50 {
		id := fmt.Sprintf("req-%d", round)
		table.Put(newRequest(id))

		var winners atomic.Int32
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if table.Take(id) != nil {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()

		require.Equal(t, int32(1), winners.Load(), "round %d", round)
	}
}
