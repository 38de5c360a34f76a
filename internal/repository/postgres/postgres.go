package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/clinicpass/clinic-api/internal/repository"
)

type clinicRepository struct {
	db *sqlx.DB
}

type serviceRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type availabilityRepository struct {
	db *sqlx.DB
}

type adRepository struct {
	db *sqlx.DB
}

type financeRepository struct {
	db *sqlx.DB
}

func NewClinicRepository(db *sqlx.DB) repository.ClinicRepository {
	return &clinicRepository{db: db}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewAvailabilityRepository(db *sqlx.DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func NewAdRepository(db *sqlx.DB) repository.AdRepository {
	return &adRepository{db: db}
}

func NewFinanceRepository(db *sqlx.DB) repository.FinanceRepository {
	return &financeRepository{db: db}
}
