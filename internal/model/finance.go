package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeCredit     TransactionType = "credit"
	TransactionTypeDebit      TransactionType = "debit"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeFee        TransactionType = "fee"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// FinancialTransaction is one append-only ledger line. Amount is signed, in
// minor currency units. Never mutated after creation.
type FinancialTransaction struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	ClinicID      uuid.UUID         `db:"clinic_id" json:"clinic_id"`
	AppointmentID *uuid.UUID        `db:"appointment_id" json:"appointment_id,omitempty"`
	Type          TransactionType   `db:"type" json:"type"`
	Amount        int64             `db:"amount" json:"amount"`
	Description   string            `db:"description" json:"description"`
	Status        TransactionStatus `db:"status" json:"status"`
	PaymentMethod string            `db:"payment_method" json:"payment_method"`
	SettledAt     *time.Time        `db:"settled_at" json:"settled_at,omitempty"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}

// ClinicBalance is the backend-maintained summary of the transaction ledger.
// Read-only for this service; the recomputation rule lives with the backend.
type ClinicBalance struct {
	ID               uuid.UUID `db:"id" json:"id"`
	ClinicID         uuid.UUID `db:"clinic_id" json:"clinic_id"`
	AvailableBalance int64     `db:"available_balance" json:"available_balance"`
	PendingBalance   int64     `db:"pending_balance" json:"pending_balance"`
	TotalEarned      int64     `db:"total_earned" json:"total_earned"`
	TotalWithdrawn   int64     `db:"total_withdrawn" json:"total_withdrawn"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
