package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
)

// Service is a read-only view over the backend-owned ledger. The balance is
// never recomputed here.
type Service struct {
	repo repository.FinanceRepository
}

func NewService(repo repository.FinanceRepository) *Service {
	return &Service{repo: repo}
}

// Balance returns the clinic's balance snapshot, or nil when the backend has
// not materialized one yet.
func (s *Service) Balance(ctx context.Context, clinicID uuid.UUID) (*model.ClinicBalance, error) {
	return s.repo.GetBalance(ctx, clinicID)
}

// Transactions lists ledger lines newest first, optionally bounded below by
// since.
func (s *Service) Transactions(ctx context.Context, clinicID uuid.UUID, since *time.Time) ([]*model.FinancialTransaction, error) {
	return s.repo.ListTransactions(ctx, clinicID, since)
}
