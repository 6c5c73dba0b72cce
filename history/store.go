package history

import "sync"

// Store owns one interceptor's call counters and its bounded record
// sequence.
//
// Contract:
// - Concurrency: safe for concurrent use. One mutex guards counters and
//   records; it is held only for increments, appends, and evictions,
//   never across the wrapped callable's execution.
// - Ownership: Snapshot returns a copy that stays valid while new calls
//   are recorded.
type Store struct {
	mu      sync.Mutex
	records []Record
	total   uint64
	logged  uint64
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// IncTotal increments the total-call counter and returns the new value.
func (s *Store) IncTotal() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	return s.total
}

// IncLogged increments the logged-call counter and returns the new
// value.
func (s *Store) IncLogged() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logged++
	return s.logged
}

// Append records rec subject to bound: a positive bound evicts the
// oldest records FIFO so at most bound remain, zero keeps everything,
// and a negative bound drops the record while counters persist.
func (s *Store) Append(rec Record, bound int) {
	if bound < 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	if bound > 0 {
		for len(s.records) > bound {
			s.records = s.records[1:]
		}
	}
}

// Snapshot returns a copy of the retained records, oldest first.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear drops the retained records and resets both counters to zero.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.total = 0
	s.logged = 0
}

// TotalCalls returns the number of invocations, enabled or not.
func (s *Store) TotalCalls() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// LoggedCalls returns the number of invocations whose enabled setting
// resolved truthy.
func (s *Store) LoggedCalls() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logged
}

// ElapsedSecsLogged returns the sum of elapsed seconds over the
// currently retained records. It is recomputed by summation so it stays
// consistent with eviction.
func (s *Store) ElapsedSecsLogged() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for i := range s.records {
		sum += s.records[i].ElapsedSecs
	}
	return sum
}
