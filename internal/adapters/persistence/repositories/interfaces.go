package repositories

import (
	"context"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Repository[models.User]
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// RoleRepository defines role repository interface
type RoleRepository interface {
	GetByName(ctx context.Context, name domain.Role) (*models.Role, error)
	Ensure(ctx context.Context, name domain.Role) (*models.Role, error)
}

// BookRepository defines book repository interface
type BookRepository interface {
	Repository[models.Book]
}

// BorrowingFilter narrows a borrowing listing. Zero values match everything.
type BorrowingFilter struct {
	Status  domain.BorrowingStatus
	Overdue bool
	Now     time.Time
}

func (f BorrowingFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Overdue {
		db = db.Where("status = ?", domain.BorrowingIssued).Where("due_date < ?", f.Now)
	}
	return db
}

// BorrowingRepository defines borrowing repository interface
type BorrowingRepository interface {
	Repository[models.Borrowing]
	FindOpenByBookName(ctx context.Context, bookName string) (*models.Borrowing, error)
	CountOpenByBook(ctx context.Context, bookID uint) (int64, error)
	MarkReturned(ctx context.Context, id uint, returnDate time.Time, fee float64) error
	ListPaged(ctx context.Context, filter BorrowingFilter, offset, limit int) ([]*models.Borrowing, int64, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}
