package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClinicAd is a promotional listing shown in the patient marketplace.
// Pure content entity, CRUD only.
type ClinicAd struct {
	Base
	ClinicID    uuid.UUID      `db:"clinic_id" json:"clinic_id"`
	Title       string         `db:"title" json:"title"`
	Description string         `db:"description" json:"description"`
	Images      pq.StringArray `db:"images" json:"images"`
	PriceRange  string         `db:"price_range" json:"price_range"`
	Category    string         `db:"category" json:"category"`
	Active      bool           `db:"active" json:"active"`
}

type CreateAdRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	Images      []string `json:"images"`
	PriceRange  string   `json:"price_range" binding:"max=100"`
	Category    string   `json:"category" binding:"max=100"`
}

type UpdateAdRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Images      []string `json:"images"`
	PriceRange  *string  `json:"price_range" binding:"omitempty,max=100"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
}
