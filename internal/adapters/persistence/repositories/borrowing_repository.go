package repositories

import (
	"context"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// borrowingRepository implements BorrowingRepository interface
type borrowingRepository struct {
	gormRepository[models.Borrowing]
}

// NewBorrowingRepository creates a new borrowing repository
func NewBorrowingRepository(db *gorm.DB) BorrowingRepository {
	return &borrowingRepository{gormRepository: newGormRepository[models.Borrowing](db)}
}

// FindOpenByBookName gets the oldest open borrowing for a book title.
// The title may be the one recorded at issue or the book's current title.
func (r *borrowingRepository) FindOpenByBookName(ctx context.Context, bookName string) (*models.Borrowing, error) {
	renamed := r.db.Model(&models.Book{}).Select("id").Where("title = ?", bookName)

	var borrowing models.Borrowing
	err := r.db.WithContext(ctx).
		Where("book_name = ? OR book_id IN (?)", bookName, renamed).
		Where("status = ?", domain.BorrowingIssued).
		Order("issue_date ASC, id ASC").
		First(&borrowing).Error
	if err != nil {
		return nil, err
	}
	return &borrowing, nil
}

// CountOpenByBook counts copies of a book currently out
func (r *borrowingRepository) CountOpenByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Borrowing{}).
		Where("book_id = ?", bookID).
		Where("status = ?", domain.BorrowingIssued).
		Count(&count).Error
	return count, err
}

// MarkReturned closes an open borrowing. Returns gorm.ErrRecordNotFound if it was already returned.
func (r *borrowingRepository) MarkReturned(ctx context.Context, id uint, returnDate time.Time, fee float64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Borrowing{}).
		Where("id = ?", id).
		Where("status = ?", domain.BorrowingIssued).
		Updates(map[string]interface{}{
			"status":      domain.BorrowingReturned,
			"return_date": returnDate,
			"fee":         fee,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPaged lists borrowings matching filter, newest first
func (r *borrowingRepository) ListPaged(ctx context.Context, filter BorrowingFilter, offset, limit int) ([]*models.Borrowing, int64, error) {
	var borrowings []*models.Borrowing
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Borrowing{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(filter.scope).
		Order("issue_date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&borrowings).Error
	if err != nil {
		return nil, 0, err
	}

	return borrowings, total, nil
}

// CountOverdue counts open borrowings past due at now
func (r *borrowingRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Borrowing{}).
		Where("status = ?", domain.BorrowingIssued).
		Where("due_date < ?", now).
		Count(&count).Error
	return count, err
}
