// Package history implements the transaction-history store: the mapping
// from transaction identifier to its historical record, and the
// per-transaction dispute status state machine.
package history

import (
	"github.com/txledger/txengine/account"
	"github.com/txledger/txengine/amount"
	"github.com/txledger/txengine/common"
)

// TransactionID identifies a deposit or withdrawal.
type TransactionID uint64

// Kind distinguishes the two transaction types that create a history
// record. Dispute-family events never create a record of their own; they
// only mutate an existing one's Status.
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return "unknown"
	}
}

// Status is a transaction's position in the dispute lifecycle.
type Status int

const (
	Undisputed Status = iota
	Disputed
	Resolved
	Chargedback
)

func (s Status) String() string {
	switch s {
	case Undisputed:
		return "undisputed"
	case Disputed:
		return "disputed"
	case Resolved:
		return "resolved"
	case Chargedback:
		return "chargedback"
	default:
		return "unknown"
	}
}

// legalEdges enumerates the only allowed (from, to) status transitions.
var legalEdges = map[[2]Status]bool{
	{Undisputed, Disputed}: true,
	{Disputed, Resolved}:   true,
	{Disputed, Chargedback}: true,
}

func (s Status) canTransitionTo(next Status) bool {
	return legalEdges[[2]Status{s, next}]
}

const (
	// ErrDuplicateTransaction is returned by Insert when the transaction
	// ID already exists in history.
	ErrDuplicateTransaction = common.ConstError("history: duplicate transaction")
	// ErrUnknownTransaction is returned by Transition for a transaction
	// ID with no stored record.
	ErrUnknownTransaction = common.ConstError("history: unknown transaction")
	// ErrInvalidStatusTransition is returned by Transition when the
	// requested edge is not legal from the record's current status.
	ErrInvalidStatusTransition = common.ConstError("history: invalid status transition")
)

// Record is the stored artefact created by a successful deposit or
// withdrawal and mutated, in place, by the dispute-family procedures.
type Record struct {
	Client account.ClientID
	TX     TransactionID
	Kind   Kind
	Amount amount.Amount
	Status Status
}
