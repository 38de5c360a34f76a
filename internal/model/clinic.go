package model

import (
	"time"

	"github.com/google/uuid"
)

type Clinic struct {
	Base
	Name    string  `db:"name" json:"name"`
	CNPJ    string  `db:"cnpj" json:"cnpj"`
	Email   string  `db:"email" json:"email"`
	Phone   string  `db:"phone" json:"phone"`
	Address JSONMap `db:"address" json:"address"`
	Active  bool    `db:"active" json:"active"`
}

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleAttendant UserRole = "attendant"
)

type ClinicUser struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      UserRole  `db:"role" json:"role"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Session is the resolved identity pair for a signed-in clinic user. It is
// passed explicitly to every clinic-scoped operation, never held as a global.
type Session struct {
	User   *ClinicUser `json:"user"`
	Clinic *Clinic     `json:"clinic"`
}

type SignInRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type SignInResponse struct {
	Token  string      `json:"token"`
	User   *ClinicUser `json:"user"`
	Clinic *Clinic     `json:"clinic"`
}

type UpdateClinicRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	CNPJ    *string `json:"cnpj" binding:"omitempty,max=20"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
	Address JSONMap `json:"address"`
}
