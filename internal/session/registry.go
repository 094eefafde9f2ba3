// Package session keeps per-session dashboard state in process memory. The
// uploaded table lives here for the duration of one interactive session and
// is discarded wholesale when a new file is uploaded or the session is
// deleted; only metadata is persisted to the store.
package session

import (
	"sync"
	"time"

	"go-insights-dashboard/internal/model"
)

// Session is the explicit state one dashboard interaction carries between
// requests: the projected working table, the current filter selections, and
// whether filters have been applied at least once.
type Session struct {
	ID             string
	Table          *model.Table
	Spec           model.FilterSpec
	FiltersApplied bool
	Upload         model.UploadInfo
}

// HasData reports whether a file has been uploaded.
func (s *Session) HasData() bool { return s.Table != nil }

// Registry is the process-wide session map. The mutex only guards the map;
// a session's table is replaced wholesale on upload and derived (never
// mutated) by filtering, so no per-table locking exists.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session in its default state.
func (r *Registry) Create(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session{ID: id, Spec: model.FilterSpec{}}
	r.sessions[id] = s
	return s
}

// Get returns a session, or nil when unknown.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Delete removes a session and releases its table.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// SetTable installs a freshly uploaded table and resets the filter state, so
// no results derived from the previous table can leak into responses.
func (r *Registry) SetTable(id string, t *model.Table, fileName string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	if s == nil {
		return nil
	}
	s.Table = t
	s.Spec = model.FilterSpec{}
	s.FiltersApplied = false
	s.Upload = model.UploadInfo{
		FileName:   fileName,
		RowCount:   t.RowCount(),
		Columns:    t.Columns,
		UploadedAt: time.Now().UTC(),
	}
	return s
}

// SetFilters records the applied FilterSpec.
func (r *Registry) SetFilters(id string, spec model.FilterSpec) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.sessions[id]
	if s == nil {
		return nil
	}
	s.Spec = spec
	s.FiltersApplied = true
	return s
}
