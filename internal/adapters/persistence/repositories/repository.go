package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the CRUD capability set shared by every entity repository.
// Lookups that match nothing return gorm.ErrRecordNotFound.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// gormRepository implements Repository for any GORM model
type gormRepository[T any] struct {
	db *gorm.DB
}

func newGormRepository[T any](db *gorm.DB) gormRepository[T] {
	return gormRepository[T]{db: db}
}

// Create creates a new record
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetByID gets a record by ID
func (r *gormRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// List lists all records ordered by ID
func (r *gormRepository[T]) List(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.db.WithContext(ctx).Order("id ASC").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// Update saves every field of the record
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete deletes a record by ID (soft delete when the model has DeletedAt)
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := r.db.WithContext(ctx).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
