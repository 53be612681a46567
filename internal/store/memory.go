package store

import (
	"sync"

	"github.com/aedwards3305-source/fans-dashboard/internal/model"
)

// SessionStore session-scoped record storage. The curated base dataset is
// immutable after SetBase; imported records are append-only and live only
// for the running session (no durable persistence).
type SessionStore struct {
	mu       sync.RWMutex
	base     []*model.BenchmarkRecord
	imported []*model.BenchmarkRecord
	summary  *model.Summary
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetBase installs the curated reference dataset. Called once at startup.
func (s *SessionStore) SetBase(records []*model.BenchmarkRecord, summary *model.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = records
	s.summary = summary
}

// Records returns base + imported in load/append order. The slice is a copy;
// engines re-derive from it on every call.
func (s *SessionStore) Records() []*model.BenchmarkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.BenchmarkRecord, 0, len(s.base)+len(s.imported))
	out = append(out, s.base...)
	out = append(out, s.imported...)
	return out
}

// AppendImported commits one import batch in a single atomic step.
func (s *SessionStore) AppendImported(batch []*model.BenchmarkRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imported = append(s.imported, batch...)
}

// ImportedRecords returns the session-imported records only
func (s *SessionStore) ImportedRecords() []*model.BenchmarkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.BenchmarkRecord, len(s.imported))
	copy(out, s.imported)
	return out
}

// ResetImported discards all session-imported records
func (s *SessionStore) ResetImported() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imported = nil
}

// Summary returns the precomputed portfolio summary shipped with the
// curated dataset
func (s *SessionStore) Summary() *model.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// BaseCount number of curated records
func (s *SessionStore) BaseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.base)
}

// ImportedCount number of session-imported records
func (s *SessionStore) ImportedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.imported)
}

// HealthSystems distinct health systems across base + imported, in first-seen
// order. Drives the filter dropdown.
func (s *SessionStore) HealthSystems() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	out := []string{}
	for _, rec := range s.base {
		if !seen[rec.HealthSystem] {
			seen[rec.HealthSystem] = true
			out = append(out, rec.HealthSystem)
		}
	}
	for _, rec := range s.imported {
		if !seen[rec.HealthSystem] {
			seen[rec.HealthSystem] = true
			out = append(out, rec.HealthSystem)
		}
	}
	return out
}

// Periods distinct reporting periods across base + imported, in first-seen
// order
func (s *SessionStore) Periods() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	out := []string{}
	for _, rec := range s.base {
		if !seen[rec.Period] {
			seen[rec.Period] = true
			out = append(out, rec.Period)
		}
	}
	for _, rec := range s.imported {
		if !seen[rec.Period] {
			seen[rec.Period] = true
			out = append(out, rec.Period)
		}
	}
	return out
}
