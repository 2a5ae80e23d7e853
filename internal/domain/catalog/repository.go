package catalog

import (
	"context"

	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

// ListLimit is the fixed page window applied to every list: offset 0, at
// most ListLimit rows, ordered by id.
const ListLimit = 100

// ErrCodeInvalidReference marks a write whose barber_id or hairstyle_id
// points at a row that does not exist.
const ErrCodeInvalidReference = "invalid_reference"

// Repository is the persistence contract for the showcase records.
// Lookups of missing rows return gorm.ErrRecordNotFound.
type Repository interface {
	// -------- Barber --------
	CreateBarber(
		ctx context.Context,
		b *models.Barber,
	) error

	ListBarbers(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	UpdateBarber(
		ctx context.Context,
		id uint,
		in models.Barber,
	) (*models.Barber, error)

	DeleteBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Hairstyle --------
	CreateHairstyle(
		ctx context.Context,
		h *models.Hairstyle,
	) error

	ListHairstyles(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Hairstyle, error)

	ListHairstylesByBarber(
		ctx context.Context,
		barberID uint,
		offset int,
		limit int,
	) ([]models.Hairstyle, error)

	GetHairstyle(
		ctx context.Context,
		id uint,
	) (*models.Hairstyle, error)

	UpdateHairstyle(
		ctx context.Context,
		id uint,
		in models.Hairstyle,
	) (*models.Hairstyle, error)

	DeleteHairstyle(
		ctx context.Context,
		id uint,
	) (*models.Hairstyle, error)

	// -------- Example --------
	CreateExample(
		ctx context.Context,
		e *models.Example,
	) error

	ListExamples(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Example, error)

	ListExamplesByBarber(
		ctx context.Context,
		barberID uint,
		offset int,
		limit int,
	) ([]models.Example, error)

	ListExamplesByHairstyle(
		ctx context.Context,
		hairstyleID uint,
		offset int,
		limit int,
	) ([]models.Example, error)

	GetExample(
		ctx context.Context,
		id uint,
	) (*models.Example, error)

	UpdateExample(
		ctx context.Context,
		id uint,
		in models.Example,
	) (*models.Example, error)

	DeleteExample(
		ctx context.Context,
		id uint,
	) (*models.Example, error)
}
