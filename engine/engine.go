// Package engine implements the transaction dispatcher: it decodes an
// already-parsed input row into a typed Operation and drives the account
// and history stores in the order spec'd for that operation, with no
// cross-store transaction and no retry.
package engine

import (
	"errors"
	"log"

	pkgerrors "github.com/pkg/errors"

	"github.com/txledger/txengine/account"
	"github.com/txledger/txengine/amount"
	"github.com/txledger/txengine/history"
)

// AccountMutator is the subset of account.Store the engine drives. It is
// declared here, consumer-side, so tests can substitute a mock without
// account.Store having to expose an interface of its own.
type AccountMutator interface {
	Deposit(c account.ClientID, a amount.Amount) error
	Withdraw(c account.ClientID, a amount.Amount) error
	Hold(c account.ClientID, a amount.Amount) error
	Release(c account.ClientID, a amount.Amount) error
	Lock(c account.ClientID) error
}

// HistoryMutator is the subset of history.Store the engine drives.
type HistoryMutator interface {
	Insert(r history.Record) error
	Lookup(tx history.TransactionID) (history.Record, bool)
	Transition(tx history.TransactionID, next history.Status) error
}

// Engine dispatches decoded rows against an account store and a history
// store. It holds no state of its own beyond references to the two stores,
// which it keeps for its whole lifetime.
type Engine struct {
	Accounts AccountMutator
	History  HistoryMutator
}

// New returns an Engine driving the given stores.
func New(accounts AccountMutator, hist HistoryMutator) *Engine {
	return &Engine{Accounts: accounts, History: hist}
}

// Process decodes row and executes it. Failure is per-event: it is
// reported to the caller (and logged) but never stops the stream. The
// stream-integrity fault described on ErrStreamIntegrityFault is likewise
// non-fatal to the stream but logged at a higher severity with a stack
// trace attached.
func (e *Engine) Process(row Row) error {
	op, err := Decode(row)
	if err != nil {
		log.Printf("engine: tx %d: decode failed: %v", row.TX, err)
		return err
	}
	if err := op.Execute(e.Accounts, e.History); err != nil {
		if errors.Is(err, ErrStreamIntegrityFault) {
			log.Printf("FATAL DATA ERROR, tx %d: %+v", row.TX, pkgerrors.WithStack(err))
			return err
		}
		log.Printf("engine: tx %d: %v", row.TX, err)
		return err
	}
	return nil
}
