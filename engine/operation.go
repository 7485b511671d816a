package engine

import (
	"fmt"

	"github.com/txledger/txengine/account"
	"github.com/txledger/txengine/amount"
	"github.com/txledger/txengine/common"
	"github.com/txledger/txengine/history"
)

// Kind tags recognised in an input Row, exactly as they appear in the
// record stream: lowercase, case-sensitive.
const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
	KindDispute    = "dispute"
	KindResolve    = "resolve"
	KindChargeback = "chargeback"
)

const (
	// ErrInvalidKind is returned by Decode when the row's Kind is not
	// one of the five recognised tags.
	ErrInvalidKind = common.ConstError("engine: invalid kind")
	// ErrMissingAmount is returned by Decode when Kind is deposit or
	// withdrawal and Amount is absent.
	ErrMissingAmount = common.ConstError("engine: missing amount")
	// ErrNegativeAmount is returned by Decode when the carried amount of
	// a deposit or withdrawal is not strictly positive.
	ErrNegativeAmount = common.ConstError("engine: amount must be positive")
	// ErrOriginTransactionNotFound is returned by a dispute-family
	// operation when its referenced transaction has no history record.
	ErrOriginTransactionNotFound = common.ConstError("engine: origin transaction not found")
	// ErrNotDisputed is returned by resolve/chargeback when the
	// referenced transaction is not currently disputed.
	ErrNotDisputed = common.ConstError("engine: transaction not disputed")
	// ErrMultipleDispute is returned by dispute when the referenced
	// transaction is already disputed, resolved or charged back.
	ErrMultipleDispute = common.ConstError("engine: transaction already disputed")
	// ErrStreamIntegrityFault marks the one documented non-rollback
	// scenario: a deposit or withdrawal mutated the account store but
	// could not be recorded in history because its transaction ID was
	// already present. The caller should treat this as a fatal
	// data-integrity condition in the input stream, though the engine
	// itself keeps running.
	ErrStreamIntegrityFault = common.ConstError("engine: account mutated but history record was not stored")
)

// Row is a single decoded-from-text input record, as handed to the engine
// by the external reader. Amount is nil for dispute-family rows.
type Row struct {
	Kind   string
	Client account.ClientID
	TX     history.TransactionID
	Amount *amount.Amount
}

// Operation is the uniform contract every decoded row's logic is executed
// through: a single dispatch site operating on both stores, rather than a
// class hierarchy per kind.
type Operation interface {
	Execute(accounts AccountMutator, hist HistoryMutator) error
}

// Decode validates row and turns it into the Operation it describes.
func Decode(row Row) (Operation, error) {
	switch row.Kind {
	case KindDeposit:
		a, err := requirePositiveAmount(row.Amount)
		if err != nil {
			return nil, err
		}
		return depositOp{client: row.Client, tx: row.TX, amount: a}, nil
	case KindWithdrawal:
		a, err := requirePositiveAmount(row.Amount)
		if err != nil {
			return nil, err
		}
		return withdrawalOp{client: row.Client, tx: row.TX, amount: a}, nil
	case KindDispute:
		return disputeOp{client: row.Client, tx: row.TX}, nil
	case KindResolve:
		return resolveOp{client: row.Client, tx: row.TX}, nil
	case KindChargeback:
		return chargebackOp{client: row.Client, tx: row.TX}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, row.Kind)
	}
}

func requirePositiveAmount(a *amount.Amount) (amount.Amount, error) {
	if a == nil {
		return amount.Zero, ErrMissingAmount
	}
	if a.Sign() <= 0 {
		return amount.Zero, ErrNegativeAmount
	}
	return *a, nil
}

type depositOp struct {
	client account.ClientID
	tx     history.TransactionID
	amount amount.Amount
}

func (o depositOp) Execute(accounts AccountMutator, hist HistoryMutator) error {
	if err := accounts.Deposit(o.client, o.amount); err != nil {
		return err
	}
	rec := history.Record{Client: o.client, TX: o.tx, Kind: history.Deposit, Amount: o.amount, Status: history.Undisputed}
	if err := hist.Insert(rec); err != nil {
		return fmt.Errorf("%w: %w", ErrStreamIntegrityFault, err)
	}
	return nil
}

type withdrawalOp struct {
	client account.ClientID
	tx     history.TransactionID
	amount amount.Amount
}

func (o withdrawalOp) Execute(accounts AccountMutator, hist HistoryMutator) error {
	if err := accounts.Withdraw(o.client, o.amount); err != nil {
		return err
	}
	rec := history.Record{Client: o.client, TX: o.tx, Kind: history.Withdrawal, Amount: o.amount, Status: history.Undisputed}
	if err := hist.Insert(rec); err != nil {
		return fmt.Errorf("%w: %w", ErrStreamIntegrityFault, err)
	}
	return nil
}

type disputeOp struct {
	client account.ClientID
	tx     history.TransactionID
}

func (o disputeOp) Execute(accounts AccountMutator, hist HistoryMutator) error {
	rec, ok := hist.Lookup(o.tx)
	if !ok {
		return ErrOriginTransactionNotFound
	}
	if rec.Status != history.Undisputed {
		return ErrMultipleDispute
	}
	switch rec.Kind {
	case history.Deposit:
		if err := accounts.Hold(rec.Client, rec.Amount); err != nil {
			return err
		}
	case history.Withdrawal:
		// Restore the debited funds before holding them, so the hold's
		// available >= amount precondition is satisfied in one step.
		// This is a best-effort, non-atomic pair: the source neither
		// rolls back a successful restore if the hold then fails, nor
		// invents compensation it does not itself perform.
		if err := accounts.Deposit(rec.Client, rec.Amount); err != nil {
			return err
		}
		if err := accounts.Hold(rec.Client, rec.Amount); err != nil {
			return err
		}
	}
	return hist.Transition(o.tx, history.Disputed)
}

type resolveOp struct {
	client account.ClientID
	tx     history.TransactionID
}

func (o resolveOp) Execute(accounts AccountMutator, hist HistoryMutator) error {
	rec, ok := hist.Lookup(o.tx)
	if !ok {
		return ErrOriginTransactionNotFound
	}
	if rec.Status != history.Disputed {
		return ErrNotDisputed
	}
	if err := hist.Transition(o.tx, history.Resolved); err != nil {
		return err
	}
	return accounts.Release(rec.Client, rec.Amount)
}

type chargebackOp struct {
	client account.ClientID
	tx     history.TransactionID
}

func (o chargebackOp) Execute(accounts AccountMutator, hist HistoryMutator) error {
	rec, ok := hist.Lookup(o.tx)
	if !ok {
		return ErrOriginTransactionNotFound
	}
	if rec.Status != history.Disputed {
		return ErrNotDisputed
	}
	// Status transitions first, then release+withdraw+lock: lock must be
	// last because every other account mutator rejects a locked account.
	if err := hist.Transition(o.tx, history.Chargedback); err != nil {
		return err
	}
	if err := accounts.Release(rec.Client, rec.Amount); err != nil {
		return err
	}
	if err := accounts.Withdraw(rec.Client, rec.Amount); err != nil {
		return err
	}
	return accounts.Lock(rec.Client)
}
