// Package account implements the account-balance store: the mapping from
// client identifier to account state, with the balance-mutating primitives
// the transaction engine drives.
package account

import (
	"github.com/txledger/txengine/amount"
	"github.com/txledger/txengine/common"
)

// ClientID identifies a client account.
type ClientID uint16

const (
	// ErrAccountLocked is returned by any mutator except Lock once an
	// account has been charged back.
	ErrAccountLocked = common.ConstError("account: locked")
	// ErrAccountNotFound is returned when a mutator other than Deposit
	// references a client with no account.
	ErrAccountNotFound = common.ConstError("account: not found")
	// ErrBalanceOverflow is returned when a mutation would overflow the
	// underlying fixed-point magnitude.
	ErrBalanceOverflow = common.ConstError("account: balance overflow")
	// ErrInsufficientFunds is returned when a withdraw, hold or release
	// would take a balance below zero.
	ErrInsufficientFunds = common.ConstError("account: insufficient funds")
)

// Account is the balance state of a single client.
//
// Invariants maintained by Store for every Account it owns:
//   - Available >= 0 and Held >= 0 at all times.
//   - Total() == Available + Held.
//   - once Locked is true, no further mutation succeeds except through Lock
//     itself (which is then a no-op).
type Account struct {
	Available amount.Amount
	Held      amount.Amount
	Locked    bool
}

// Total returns the sum of available and held funds.
func (a Account) Total() amount.Amount {
	return amount.Add(a.Available, a.Held)
}

// Entry is a single row of the account snapshot.
type Entry struct {
	Client    ClientID
	Available amount.Amount
	Held      amount.Amount
	Total     amount.Amount
	Locked    bool
}
