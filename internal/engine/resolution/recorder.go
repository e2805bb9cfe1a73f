package resolution

import (
	"slices"
	"strings"
	"sync"

	"go.trai.ch/prism/internal/core/domain"
	"go.trai.ch/prism/internal/core/ports"
)

// Resolution is one reported reference and the versioned id it resolved to.
type Resolution struct {
	Reference domain.ComputationTargetReference
	Resolved  domain.UniqueID
}

// Recorder is a ResolutionLogger that keeps the latest resolution of every
// reference. It is safe for concurrent use.
type Recorder struct {
	logger ports.Logger

	mu      sync.RWMutex
	entries map[string]Resolution
}

var _ ports.ResolutionLogger = (*Recorder)(nil)

// NewRecorder creates an empty recorder. When logger is non-nil every
// reported resolution is also written at debug level.
func NewRecorder(logger ports.Logger) *Recorder {
	return &Recorder{
		logger:  logger,
		entries: make(map[string]Resolution),
	}
}

// Log records that ref resolved to resolved, replacing any earlier record of ref.
func (r *Recorder) Log(ref domain.ComputationTargetReference, resolved domain.UniqueID) {
	key := ref.String()
	r.mu.Lock()
	r.entries[key] = Resolution{Reference: ref, Resolved: resolved}
	r.mu.Unlock()

	if r.logger != nil {
		r.logger.Debug("resolved target", "reference", key, "unique_id", resolved.String())
	}
}

// Len returns the number of recorded references.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Resolutions returns the recorded resolutions ordered by reference.
func (r *Recorder) Resolutions() []Resolution {
	r.mu.RLock()
	out := make([]Resolution, 0, len(r.entries))
	for _, res := range r.entries {
		out = append(out, res)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Resolution) int {
		return strings.Compare(a.Reference.String(), b.Reference.String())
	})
	return out
}

// Retain drops every resolution for which keep returns false and reports how
// many were dropped.
func (r *Recorder) Retain(keep func(Resolution) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for key, res := range r.entries {
		if !keep(res) {
			delete(r.entries, key)
			dropped++
		}
	}
	return dropped
}
