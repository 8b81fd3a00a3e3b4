package storage

import (
	"context"
	"errors"
	"time"
)

// Subject kinds recorded in the journal.
const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
	KindKYC        = "kyc"
	KindUser       = "user"
	KindCoin       = "coin"
	KindBankDetail = "bank_detail"
)

// Decisions recorded in the journal.
const (
	DecisionApprove       = "approve"
	DecisionReject        = "reject"
	DecisionDelete        = "delete"
	DecisionCreate        = "create"
	DecisionUpdate        = "update"
	DecisionActivate      = "activate"
	DecisionDeactivate    = "deactivate"
	DecisionResetPassword = "reset_password"
	DecisionSetValue      = "set_value"
	DecisionManualDeposit = "manual_deposit"
)

// Journal orderings accepted by ListOptions.OrderBy.
const (
	OrderNewestFirst = "recorded_at desc"
	OrderOldestFirst = "recorded_at asc"
)

var (
	// ErrInvalidFilter wraps filter expressions the store cannot evaluate.
	ErrInvalidFilter = errors.New("invalid journal filter")
	// ErrInvalidOrder wraps orderings outside the accepted set.
	ErrInvalidOrder = errors.New("invalid journal order")
)

// JournalEntry is one operator decision.
type JournalEntry struct {
	ID         string
	Kind       string
	SubjectID  string
	Decision   string
	Detail     string
	RecordedAt time.Time
}

// ListOptions selects journal entries.
type ListOptions struct {
	// Filter is an AIP-160 expression over kind, subject_id, decision and
	// recorded_at.
	Filter string
	// OrderBy is OrderNewestFirst or OrderOldestFirst; empty means newest
	// first.
	OrderBy  string
	PageSize int
}

// JournalStore records and lists operator decisions.
type JournalStore interface {
	RecordDecision(ctx context.Context, entry JournalEntry) (JournalEntry, error)
	ListDecisions(ctx context.Context, opts ListOptions) ([]JournalEntry, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	JournalStore
	Close() error
}
