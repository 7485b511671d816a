package account

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/txledger/txengine/amount"
)

// Store owns the mapping from ClientID to Account. It is written by a
// single caller (the engine); see Account's doc for the invariants it
// enforces on every mutation.
type Store struct {
	accounts map[ClientID]*Account
}

// NewStore returns an empty account store.
func NewStore() *Store {
	return &Store{accounts: make(map[ClientID]*Account)}
}

// CreateIfAbsent ensures an account exists for c, with zero balances and
// unlocked. It is idempotent.
func (s *Store) CreateIfAbsent(c ClientID) {
	if _, ok := s.accounts[c]; !ok {
		s.accounts[c] = &Account{}
	}
}

// Deposit credits a positive amount a to c's available balance, creating
// the account if it does not yet exist.
func (s *Store) Deposit(c ClientID, a amount.Amount) error {
	s.CreateIfAbsent(c)
	acc := s.accounts[c]
	if acc.Locked {
		return ErrAccountLocked
	}
	sum, overflow := amount.AddOverflow(acc.Available, a)
	if overflow {
		return ErrBalanceOverflow
	}
	acc.Available = sum
	return nil
}

// Withdraw debits a positive amount a from c's available balance.
func (s *Store) Withdraw(c ClientID, a amount.Amount) error {
	acc, err := s.mutable(c)
	if err != nil {
		return err
	}
	if amount.Cmp(acc.Available, a) < 0 {
		return ErrInsufficientFunds
	}
	acc.Available = amount.Sub(acc.Available, a)
	return nil
}

// Hold moves a positive amount a from available to held, atomically: if
// the held leg would overflow, neither leg is mutated.
func (s *Store) Hold(c ClientID, a amount.Amount) error {
	acc, err := s.mutable(c)
	if err != nil {
		return err
	}
	if amount.Cmp(acc.Available, a) < 0 {
		return ErrInsufficientFunds
	}
	newHeld, overflow := amount.AddOverflow(acc.Held, a)
	if overflow {
		return ErrBalanceOverflow
	}
	acc.Available = amount.Sub(acc.Available, a)
	acc.Held = newHeld
	return nil
}

// Release moves a positive amount a from held back to available,
// atomically: if the available leg would overflow, neither leg is mutated.
func (s *Store) Release(c ClientID, a amount.Amount) error {
	acc, err := s.mutable(c)
	if err != nil {
		return err
	}
	if amount.Cmp(acc.Held, a) < 0 {
		return ErrInsufficientFunds
	}
	newAvailable, overflow := amount.AddOverflow(acc.Available, a)
	if overflow {
		return ErrBalanceOverflow
	}
	acc.Held = amount.Sub(acc.Held, a)
	acc.Available = newAvailable
	return nil
}

// Lock permanently locks c's account. Locking an already-locked account is
// a no-op success; locking an unknown client fails.
func (s *Store) Lock(c ClientID) error {
	acc, ok := s.accounts[c]
	if !ok {
		return ErrAccountNotFound
	}
	acc.Locked = true
	return nil
}

// mutable returns the account for c, translating a missing or locked
// account into the corresponding error. It is the common precondition
// check shared by Withdraw, Hold and Release.
func (s *Store) mutable(c ClientID) (*Account, error) {
	acc, ok := s.accounts[c]
	if !ok {
		return nil, ErrAccountNotFound
	}
	if acc.Locked {
		return nil, ErrAccountLocked
	}
	return acc, nil
}

// Each calls fn once per known account, in ascending ClientID order, after
// the store has stopped changing (typically once the input stream has been
// fully drained). The snapshot is read-only: fn receives each Entry by
// value, so mutating it has no effect on the store.
func (s *Store) Each(fn func(Entry)) {
	ids := maps.Keys(s.accounts)
	slices.Sort(ids)
	for _, id := range ids {
		acc := s.accounts[id]
		fn(Entry{
			Client:    id,
			Available: acc.Available,
			Held:      acc.Held,
			Total:     acc.Total(),
			Locked:    acc.Locked,
		})
	}
}
