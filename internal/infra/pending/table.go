// Package pending holds pairing requests awaiting device-side approval.
// Entries live in memory only and age out after a bounded window; the table
// sweeps lazily on every access instead of running a timer.
package pending

import (
	"sync"
	"time"

	"github.com/ogarmar/Compa/internal/domain/entity"
)

// Table is a TTL-bounded map from request id to pairing request context.
//
// Take is the single consumption path: the approval handler, the rejection
// handler and the expiry sweep all go through it, and exactly one caller
// observes the entry. Everyone else must treat the request as settled.
type Table struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entity.PendingConnectionRequest
	now     func() time.Time
}

// NewTable creates an empty table whose entries expire after ttl.
func NewTable(ttl time.Duration) *Table {
	return &Table{
		ttl:     ttl,
		entries: make(map[string]*entity.PendingConnectionRequest),
		now:     time.Now,
	}
}

// Put stores a request under its id, stamping CreatedAt if unset.
func (t *Table) Put(req *entity.PendingConnectionRequest) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweepLocked()

	if req.CreatedAt.IsZero() {
		req.CreatedAt = t.now()
	}
	t.entries[req.RequestID] = req
}

// Take atomically removes and returns the request, or nil if it is absent,
// already taken, or expired.
func (t *Table) Take(requestID string) *entity.PendingConnectionRequest {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sweepLocked()

	req, ok := t.entries[requestID]
	if !ok {
		return nil
	}
	delete(t.entries, requestID)

	return req
}

// Sweep discards every expired entry and returns them, for best-effort
// expiry notifications.
func (t *Table) Sweep() []*entity.PendingConnectionRequest {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sweepLocked()
}

// Len reports the number of live entries without sweeping.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

func (t *Table) sweepLocked() []*entity.PendingConnectionRequest {
	cutoff := t.now().Add(-t.ttl)

	var expired []*entity.PendingConnectionRequest
	for id, req := range t.entries {
		if req.CreatedAt.Before(cutoff) {
			expired = append(expired, req)
			delete(t.entries, id)
		}
	}

	return expired
}
