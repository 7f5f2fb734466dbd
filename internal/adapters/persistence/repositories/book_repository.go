package repositories

import (
	"library-management/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bookRepository implements BookRepository interface
type bookRepository struct {
	gormRepository[models.Book]
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{gormRepository: newGormRepository[models.Book](db)}
}
