package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
)

func (r *financeRepository) GetBalance(ctx context.Context, clinicID uuid.UUID) (*model.ClinicBalance, error) {
	query := `
		SELECT id, clinic_id, available_balance, pending_balance,
			   total_earned, total_withdrawn, updated_at
		FROM clinic_balance
		WHERE clinic_id = $1
	`
	var balance model.ClinicBalance
	err := r.db.GetContext(ctx, &balance, query, clinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic balance: %w", err)
	}
	return &balance, nil
}

func (r *financeRepository) ListTransactions(ctx context.Context, clinicID uuid.UUID, since *time.Time) ([]*model.FinancialTransaction, error) {
	query := `
		SELECT id, clinic_id, appointment_id, type, amount, description,
			   status, payment_method, settled_at, created_at
		FROM financial_transactions
		WHERE clinic_id = $1
	`
	args := []interface{}{clinicID}

	if since != nil {
		query += " AND created_at >= $2"
		args = append(args, *since)
	}

	query += " ORDER BY created_at DESC"

	var transactions []*model.FinancialTransaction
	err := r.db.SelectContext(ctx, &transactions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
