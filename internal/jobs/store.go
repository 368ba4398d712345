package jobs

// Store holds the full record set for a session and the currently filtered
// subset. The full set is populated once by Load.
type Store struct {
	all      []Record
	filtered []Record
	index    map[int]int // record ID -> position in all
	loaded   bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[int]int)}
}

// Load populates the full set. Subsequent calls are ignored so the set stays
// immutable for the session. The filtered subset starts out equal to the full
// set.
func (s *Store) Load(records []Record) bool {
	if s.loaded {
		return false
	}
	s.all = append([]Record(nil), records...)
	for i, r := range s.all {
		if _, ok := s.index[r.ID]; !ok {
			s.index[r.ID] = i
		}
	}
	s.filtered = s.all
	s.loaded = true
	return true
}

// Loaded reports whether Load has been called.
func (s *Store) Loaded() bool {
	return s.loaded
}

// All returns the full record set. Callers must not modify the result.
func (s *Store) All() []Record {
	return s.all
}

// Filtered returns the current filtered subset.
func (s *Store) Filtered() []Record {
	return s.filtered
}

// SetFiltered replaces the filtered subset.
func (s *Store) SetFiltered(records []Record) {
	s.filtered = records
}

// Len returns the size of the full set.
func (s *Store) Len() int {
	return len(s.all)
}

// Position returns the index of the record with the given ID in the full set.
func (s *Store) Position(id int) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Get returns the record with the given ID.
func (s *Store) Get(id int) (Record, bool) {
	i, ok := s.index[id]
	if !ok {
		return Record{}, false
	}
	return s.all[i], true
}
