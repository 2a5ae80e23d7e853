package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-showcase/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-showcase/internal/httperr"
	"github.com/BruksfildServices01/barber-showcase/internal/models"
)

// CatalogGormRepository binds every call to the caller's context. Lookup and
// mutate pairs share one transaction so the connection goes back to the pool
// on commit or rollback alike.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *CatalogGormRepository) CreateBarber(
	ctx context.Context,
	b *models.Barber,
) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *CatalogGormRepository) ListBarbers(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Barber, error) {
	return list[models.Barber](r.db.WithContext(ctx), offset, limit)
}

func (r *CatalogGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {
	return get[models.Barber](r.db.WithContext(ctx), id)
}

func (r *CatalogGormRepository) UpdateBarber(
	ctx context.Context,
	id uint,
	in models.Barber,
) (*models.Barber, error) {

	var b models.Barber
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return err
		}

		b.FirstName = in.FirstName
		b.LastName = in.LastName
		b.Age = in.Age
		b.Address = in.Address

		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *CatalogGormRepository) DeleteBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {
	return remove[models.Barber](r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Hairstyle
// --------------------------------------------------

func (r *CatalogGormRepository) CreateHairstyle(
	ctx context.Context,
	h *models.Hairstyle,
) error {
	return translate(r.db.WithContext(ctx).Create(h).Error)
}

func (r *CatalogGormRepository) ListHairstyles(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Hairstyle, error) {
	return list[models.Hairstyle](r.db.WithContext(ctx), offset, limit)
}

func (r *CatalogGormRepository) ListHairstylesByBarber(
	ctx context.Context,
	barberID uint,
	offset int,
	limit int,
) ([]models.Hairstyle, error) {
	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)
	return list[models.Hairstyle](q, offset, limit)
}

func (r *CatalogGormRepository) GetHairstyle(
	ctx context.Context,
	id uint,
) (*models.Hairstyle, error) {
	return get[models.Hairstyle](r.db.WithContext(ctx), id)
}

func (r *CatalogGormRepository) UpdateHairstyle(
	ctx context.Context,
	id uint,
	in models.Hairstyle,
) (*models.Hairstyle, error) {

	var h models.Hairstyle
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&h, id).Error; err != nil {
			return err
		}

		h.Name = in.Name
		h.Likes = in.Likes
		h.BarberID = in.BarberID

		return tx.Save(&h).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *CatalogGormRepository) DeleteHairstyle(
	ctx context.Context,
	id uint,
) (*models.Hairstyle, error) {
	return remove[models.Hairstyle](r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Example
// --------------------------------------------------

func (r *CatalogGormRepository) CreateExample(
	ctx context.Context,
	e *models.Example,
) error {
	return translate(r.db.WithContext(ctx).Create(e).Error)
}

func (r *CatalogGormRepository) ListExamples(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Example, error) {
	return list[models.Example](r.db.WithContext(ctx), offset, limit)
}

func (r *CatalogGormRepository) ListExamplesByBarber(
	ctx context.Context,
	barberID uint,
	offset int,
	limit int,
) ([]models.Example, error) {
	q := r.db.WithContext(ctx).Where("barber_id = ?", barberID)
	return list[models.Example](q, offset, limit)
}

func (r *CatalogGormRepository) ListExamplesByHairstyle(
	ctx context.Context,
	hairstyleID uint,
	offset int,
	limit int,
) ([]models.Example, error) {
	q := r.db.WithContext(ctx).Where("hairstyle_id = ?", hairstyleID)
	return list[models.Example](q, offset, limit)
}

func (r *CatalogGormRepository) GetExample(
	ctx context.Context,
	id uint,
) (*models.Example, error) {
	return get[models.Example](r.db.WithContext(ctx), id)
}

func (r *CatalogGormRepository) UpdateExample(
	ctx context.Context,
	id uint,
	in models.Example,
) (*models.Example, error) {

	var e models.Example
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}

		e.BarberID = in.BarberID
		e.HairstyleID = in.HairstyleID

		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *CatalogGormRepository) DeleteExample(
	ctx context.Context,
	id uint,
) (*models.Example, error) {
	return remove[models.Example](r.db.WithContext(ctx), id)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func get[T any](db *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func list[T any](q *gorm.DB, offset, limit int) ([]T, error) {
	if limit <= 0 || limit > catalog.ListLimit {
		limit = catalog.ListLimit
	}
	if offset < 0 {
		offset = 0
	}

	items := []T{}
	if err := q.
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// remove returns the row as it was just before the delete.
func remove[T any](db *gorm.DB, id uint) (*T, error) {
	var rec T
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return httperr.ErrBusiness(catalog.ErrCodeInvalidReference)
	}
	return err
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)
