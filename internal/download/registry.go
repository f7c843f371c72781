package download

import (
	"context"
	"sync"
)

// inflight is the cancellable token for one running download process
type inflight struct {
	cancel context.CancelFunc
}

// registry tracks running download processes keyed by video id. It exists
// solely to support cancellation: the executor registers before waiting on
// the process and removes its own entry exactly once when the attempt
// settles. Cancellation only signals; it never removes entries, so the
// pending outcome always resolves through the executor.
type registry struct {
	mu    sync.Mutex
	procs map[string]*inflight
}

func newRegistry() *registry {
	return &registry{procs: make(map[string]*inflight)}
}

func (r *registry) add(videoID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs[videoID] = &inflight{cancel: cancel}
}

func (r *registry) remove(videoID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.procs, videoID)
}

// cancel signals one running download. Returns false if nothing is running
// under that id.
func (r *registry) cancel(videoID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	proc, exists := r.procs[videoID]
	if !exists {
		return false
	}
	proc.cancel()
	return true
}

// cancelAll signals every running download in one sweep
func (r *registry) cancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, proc := range r.procs {
		proc.cancel()
	}
}

func (r *registry) active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.procs)
}
