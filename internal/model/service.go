package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceCategory string

const (
	ServiceCategoryExam         ServiceCategory = "exam"
	ServiceCategoryConsultation ServiceCategory = "consultation"
	ServiceCategoryProcedure    ServiceCategory = "procedure"
)

// Service is a bookable clinic offering. Prices are in minor currency units.
type Service struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ClinicID        uuid.UUID       `db:"clinic_id" json:"clinic_id"`
	Name            string          `db:"name" json:"name"`
	Description     string          `db:"description" json:"description"`
	Category        ServiceCategory `db:"category" json:"category"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	Price           int64           `db:"price" json:"price"`
	DiscountPrice   int64           `db:"discount_price" json:"discount_price"`
	Active          bool            `db:"active" json:"active"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}
