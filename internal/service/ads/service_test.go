package ads

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicpass/clinic-api/internal/model"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

type fakeAdRepo struct {
	ads map[uuid.UUID]*model.ClinicAd
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{ads: make(map[uuid.UUID]*model.ClinicAd)}
}

func (r *fakeAdRepo) Get(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error) {
	ad, ok := r.ads[id]
	if !ok || ad.ClinicID != clinicID {
		return nil, apperrors.NotFound("ad")
	}
	cp := *ad
	return &cp, nil
}

func (r *fakeAdRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.ClinicAd, error) {
	var out []*model.ClinicAd
	for _, ad := range r.ads {
		if ad.ClinicID == clinicID {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (r *fakeAdRepo) Create(ctx context.Context, ad *model.ClinicAd) error {
	ad.ID = uuid.New()
	ad.CreatedAt = time.Now()
	ad.UpdatedAt = ad.CreatedAt
	r.ads[ad.ID] = ad
	return nil
}

func (r *fakeAdRepo) Update(ctx context.Context, ad *model.ClinicAd) error {
	stored, ok := r.ads[ad.ID]
	if !ok || stored.ClinicID != ad.ClinicID {
		return apperrors.NotFound("ad")
	}
	ad.UpdatedAt = time.Now()
	r.ads[ad.ID] = ad
	return nil
}

func (r *fakeAdRepo) ToggleActive(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error) {
	ad, ok := r.ads[id]
	if !ok || ad.ClinicID != clinicID {
		return nil, apperrors.NotFound("ad")
	}
	ad.Active = !ad.Active
	return ad, nil
}

func (r *fakeAdRepo) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	ad, ok := r.ads[id]
	if !ok || ad.ClinicID != clinicID {
		return apperrors.NotFound("ad")
	}
	delete(r.ads, id)
	return nil
}

func TestCreateAd(t *testing.T) {
	clinicID := uuid.New()
	svc := NewService(newFakeAdRepo())

	ad, err := svc.Create(context.Background(), clinicID, &model.CreateAdRequest{
		Title:      "  Dental cleaning promo  ",
		Images:     []string{"https://cdn.test/ad1.jpg"},
		PriceRange: "R$80-120",
		Category:   "dental",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dental cleaning promo", ad.Title)
	assert.True(t, ad.Active)
	assert.NotEqual(t, uuid.Nil, ad.ID)
}

func TestCreateAdBlankTitle(t *testing.T) {
	svc := NewService(newFakeAdRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &model.CreateAdRequest{Title: "   "})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidInput))
}

func TestUpdateAdPatchesOnlySetFields(t *testing.T) {
	clinicID := uuid.New()
	repo := newFakeAdRepo()
	svc := NewService(repo)

	ad, err := svc.Create(context.Background(), clinicID, &model.CreateAdRequest{
		Title: "Checkup promo", Description: "Full checkup", Category: "general",
	})
	require.NoError(t, err)

	newTitle := "Checkup promo 2026"
	updated, err := svc.Update(context.Background(), clinicID, ad.ID, &model.UpdateAdRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "Full checkup", updated.Description)
	assert.Equal(t, "general", updated.Category)
}

func TestUpdateAdScopedToClinic(t *testing.T) {
	repo := newFakeAdRepo()
	svc := NewService(repo)

	ad, err := svc.Create(context.Background(), uuid.New(), &model.CreateAdRequest{Title: "Promo"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), uuid.New(), ad.ID, &model.UpdateAdRequest{Title: &title})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestToggleActive(t *testing.T) {
	clinicID := uuid.New()
	svc := NewService(newFakeAdRepo())

	ad, err := svc.Create(context.Background(), clinicID, &model.CreateAdRequest{Title: "Promo"})
	require.NoError(t, err)

	toggled, err := svc.ToggleActive(context.Background(), clinicID, ad.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)
}

func TestDeleteAd(t *testing.T) {
	clinicID := uuid.New()
	repo := newFakeAdRepo()
	svc := NewService(repo)

	ad, err := svc.Create(context.Background(), clinicID, &model.CreateAdRequest{Title: "Promo"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), clinicID, ad.ID))

	_, err = repo.Get(context.Background(), clinicID, ad.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
