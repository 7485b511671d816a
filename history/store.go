package history

// Store owns the mapping from TransactionID to Record. Like account.Store,
// it is written by a single caller; Lookup returns a value copy so callers
// never hold a reference into the store across a further mutation.
type Store struct {
	records map[TransactionID]Record
}

// NewStore returns an empty history store.
func NewStore() *Store {
	return &Store{records: make(map[TransactionID]Record)}
}

// Insert stores a new record for a deposit or withdrawal. It fails if the
// transaction ID is already present.
func (s *Store) Insert(r Record) error {
	if _, exists := s.records[r.TX]; exists {
		return ErrDuplicateTransaction
	}
	s.records[r.TX] = r
	return nil
}

// Lookup returns a copy of the record for tx, if any.
func (s *Store) Lookup(tx TransactionID) (Record, bool) {
	r, ok := s.records[tx]
	return r, ok
}

// Transition moves tx's status to next, enforcing the dispute state
// machine. It fails if tx is unknown or if the edge is not legal from the
// record's current status.
func (s *Store) Transition(tx TransactionID, next Status) error {
	r, ok := s.records[tx]
	if !ok {
		return ErrUnknownTransaction
	}
	if !r.Status.canTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	r.Status = next
	s.records[tx] = r
	return nil
}
