package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clinicpass/clinic-api/internal/model"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

const adColumns = `
	id, clinic_id, title, description, images, price_range, category,
	active, created_at, updated_at
`

func (r *adRepository) Get(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error) {
	query := `SELECT ` + adColumns + ` FROM clinic_ads WHERE id = $1 AND clinic_id = $2`

	var ad model.ClinicAd
	err := r.db.GetContext(ctx, &ad, query, id, clinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("ad")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ad: %w", err)
	}
	return &ad, nil
}

func (r *adRepository) List(ctx context.Context, clinicID uuid.UUID) ([]*model.ClinicAd, error) {
	query := `SELECT ` + adColumns + `
		FROM clinic_ads
		WHERE clinic_id = $1
		ORDER BY created_at DESC
	`
	var ads []*model.ClinicAd
	err := r.db.SelectContext(ctx, &ads, query, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ads: %w", err)
	}
	return ads, nil
}

func (r *adRepository) Create(ctx context.Context, ad *model.ClinicAd) error {
	query := `
		INSERT INTO clinic_ads (
			id, clinic_id, title, description, images, price_range, category,
			active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	ad.ID = uuid.New()
	ad.CreatedAt = time.Now()
	ad.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		ad.ID,
		ad.ClinicID,
		ad.Title,
		ad.Description,
		pq.StringArray(ad.Images),
		ad.PriceRange,
		ad.Category,
		ad.Active,
		ad.CreatedAt,
		ad.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ad: %w", err)
	}
	return nil
}

func (r *adRepository) Update(ctx context.Context, ad *model.ClinicAd) error {
	query := `
		UPDATE clinic_ads
		SET title = $1, description = $2, images = $3, price_range = $4,
			category = $5, updated_at = $6
		WHERE id = $7 AND clinic_id = $8
	`
	ad.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		ad.Title,
		ad.Description,
		pq.StringArray(ad.Images),
		ad.PriceRange,
		ad.Category,
		ad.UpdatedAt,
		ad.ID,
		ad.ClinicID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ad: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ad")
	}

	return nil
}

func (r *adRepository) ToggleActive(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error) {
	query := `
		UPDATE clinic_ads
		SET active = NOT active, updated_at = $1
		WHERE id = $2 AND clinic_id = $3
		RETURNING ` + adColumns

	var ad model.ClinicAd
	err := r.db.GetContext(ctx, &ad, query, time.Now(), id, clinicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("ad")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle ad: %w", err)
	}
	return &ad, nil
}

func (r *adRepository) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	query := `
		DELETE FROM clinic_ads
		WHERE id = $1 AND clinic_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, clinicID)
	if err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("ad")
	}

	return nil
}
