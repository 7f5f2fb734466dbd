package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/config"
	"library-management/internal/core/domain"
	"library-management/internal/pkg/metrics"
	"library-management/internal/pkg/pagination"

	"gorm.io/gorm"
)

// BorrowingService handles issuing and returning books
type BorrowingService struct {
	borrowingRepo repositories.BorrowingRepository
	bookRepo      repositories.BookRepository
	userRepo      repositories.UserRepository
	loanPeriod    time.Duration
	feePerDay     float64
	currency      string
	now           func() time.Time
}

// NewBorrowingService creates a new borrowing service
func NewBorrowingService(
	borrowingRepo repositories.BorrowingRepository,
	bookRepo repositories.BookRepository,
	userRepo repositories.UserRepository,
	cfg config.LibraryConfig,
) *BorrowingService {
	return &BorrowingService{
		borrowingRepo: borrowingRepo,
		bookRepo:      bookRepo,
		userRepo:      userRepo,
		loanPeriod:    time.Duration(cfg.LoanPeriodDays) * 24 * time.Hour,
		feePerDay:     cfg.FeePerDay,
		currency:      cfg.Currency,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// IssueBookInput represents a borrow request. Nil dates fall back to now and the loan period.
type IssueBookInput struct {
	BookID    uint
	Username  string
	IssueDate *time.Time
	DueDate   *time.Time
}

// ReturnResult is a closed borrowing and what the borrower owes
type ReturnResult struct {
	Borrowing   *models.Borrowing `json:"borrowing"`
	OverdueDays int               `json:"overdueDays"`
	Fee         float64           `json:"fee"`
	Currency    string            `json:"currency"`
}

// BorrowingListInput filters the borrowing listing
type BorrowingListInput struct {
	Status  domain.BorrowingStatus
	Overdue bool
	Params  *pagination.Params
}

// CalculateFee returns the whole days late (partial days round up) and the fee owed
func CalculateFee(dueDate, returnDate time.Time, feePerDay float64) (int, float64) {
	late := returnDate.Sub(dueDate)
	if late <= 0 {
		return 0, 0
	}
	days := int(math.Ceil(late.Hours() / 24))
	return days, float64(days) * feePerDay
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Currency returns the currency fees are charged in
func (s *BorrowingService) Currency() string {
	return s.currency
}

// IssueBook lends a copy of a book to a user
func (s *BorrowingService) IssueBook(ctx context.Context, input *IssueBookInput) (*models.Borrowing, error) {
	username := strings.TrimSpace(input.Username)
	if input.BookID == 0 || username == "" {
		return nil, domain.Validation("Please add the required value")
	}

	// 1. Resolve book and borrower
	book, err := s.bookRepo.GetByID(ctx, input.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// 2. Resolve dates
	issueDate := s.now()
	if input.IssueDate != nil {
		issueDate = input.IssueDate.UTC()
	}
	dueDate := issueDate.Add(s.loanPeriod)
	if input.DueDate != nil {
		dueDate = input.DueDate.UTC()
	}
	if !dueDate.After(issueDate) {
		return nil, domain.ErrDueBeforeIssue
	}

	// 3. Check availability
	open, err := s.borrowingRepo.CountOpenByBook(ctx, book.ID)
	if err != nil {
		return nil, err
	}
	if open >= int64(book.Quantity) {
		return nil, domain.ErrBookUnavailable
	}

	// 4. Create borrowing
	borrowing := &models.Borrowing{
		BookID:    book.ID,
		BookName:  book.Title,
		UserID:    user.ID,
		Username:  user.Username,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Status:    domain.BorrowingIssued,
	}

	if err := s.borrowingRepo.Create(ctx, borrowing); err != nil {
		return nil, err
	}

	metrics.BorrowingEvents.WithLabelValues("issued").Inc()
	log.Printf("📖 Book issued: %s to %s (due %s)", book.Title, user.Username, dueDate.Format("2006-01-02"))

	return borrowing, nil
}

// ReturnBook closes the oldest open borrowing of a title and computes the overdue fee
func (s *BorrowingService) ReturnBook(ctx context.Context, bookName string, returnDate *time.Time) (*ReturnResult, error) {
	bookName = strings.TrimSpace(bookName)
	if bookName == "" {
		return nil, domain.Validation("Please add the required value")
	}

	borrowing, err := s.borrowingRepo.FindOpenByBookName(ctx, bookName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBorrowingNotFound
		}
		return nil, err
	}

	returnedAt := s.now()
	if returnDate != nil {
		returnedAt = returnDate.UTC()
	}
	if returnedAt.Before(borrowing.IssueDate) {
		// A date-only return on the issue day means the book came back that day.
		if !sameDay(returnedAt, borrowing.IssueDate) {
			return nil, domain.ErrReturnBeforeIssue
		}
		returnedAt = borrowing.IssueDate
	}

	days, fee := CalculateFee(borrowing.DueDate, returnedAt, s.feePerDay)

	if err := s.borrowingRepo.MarkReturned(ctx, borrowing.ID, returnedAt, fee); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBorrowingNotFound
		}
		return nil, err
	}

	borrowing.Status = domain.BorrowingReturned
	borrowing.ReturnDate = &returnedAt
	borrowing.Fee = fee

	metrics.BorrowingEvents.WithLabelValues("returned").Inc()
	log.Printf("📗 Book returned: %s by %s (%d days late, fee %.2f %s)", borrowing.BookName, borrowing.Username, days, fee, s.currency)

	return &ReturnResult{
		Borrowing:   borrowing,
		OverdueDays: days,
		Fee:         fee,
		Currency:    s.currency,
	}, nil
}

// ListBorrowings lists borrowings page by page
func (s *BorrowingService) ListBorrowings(ctx context.Context, input *BorrowingListInput) (*pagination.Page, error) {
	filter := repositories.BorrowingFilter{
		Status:  input.Status,
		Overdue: input.Overdue,
		Now:     s.now(),
	}

	borrowings, total, err := s.borrowingRepo.ListPaged(ctx, filter, input.Params.Offset, input.Params.Limit)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(borrowings, input.Params, total), nil
}

// CountOverdue counts open borrowings that are past due right now
func (s *BorrowingService) CountOverdue(ctx context.Context) (int64, error) {
	return s.borrowingRepo.CountOverdue(ctx, s.now())
}
