package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/core/domain"
	"library-management/internal/pkg/pagination"
	"library-management/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = 24 * time.Hour

func TestCalculateFee(t *testing.T) {
	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		returned time.Time
		wantDays int
		wantFee  float64
	}{
		{"early", due.Add(-3 * day), 0, 0},
		{"on due date", due, 0, 0},
		{"one minute late", due.Add(time.Minute), 1, 100},
		{"exactly two days", due.Add(2 * day), 2, 200},
		{"two and a half days", due.Add(2*day + 12*time.Hour), 3, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, fee := CalculateFee(due, tt.returned, 100)
			assert.Equal(t, tt.wantDays, days)
			assert.Equal(t, tt.wantFee, fee)
		})
	}
}

type borrowingFixture struct {
	store *testutil.Store
	svc   *BorrowingService
	book  *models.Book
	now   time.Time
}

func newBorrowingFixture(t *testing.T, quantity int) *borrowingFixture {
	t.Helper()
	ctx := context.Background()

	store := testutil.NewSeededStore()
	_, err := newUserService(store).CreateUser(ctx, &CreateUserInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	book := &models.Book{Title: "Dune", Author: "Frank Herbert", Quantity: quantity}
	require.NoError(t, store.Books().Create(ctx, book))

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewBorrowingService(store.Borrowings(), store.Books(), store.Users(), testLibrary)
	svc.now = func() time.Time { return now }

	return &borrowingFixture{store: store, svc: svc, book: book, now: now}
}

func TestBorrowingService_IssueBook(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults dates", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)

		b, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})

		require.NoError(t, err)
		assert.Equal(t, domain.BorrowingIssued, b.Status)
		assert.Equal(t, "Dune", b.BookName)
		assert.Equal(t, "alice", b.Username)
		assert.Equal(t, f.now, b.IssueDate)
		assert.Equal(t, f.now.Add(14*day), b.DueDate)
		assert.Nil(t, b.ReturnDate)
	})

	t.Run("explicit dates", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		issue := f.now.Add(-day)
		due := f.now.Add(6 * day)

		b, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice", IssueDate: &issue, DueDate: &due})

		require.NoError(t, err)
		assert.Equal(t, issue, b.IssueDate)
		assert.Equal(t, due, b.DueDate)
	})

	t.Run("errors", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		before := f.now.Add(-day)

		tests := []struct {
			name  string
			input *IssueBookInput
			want  error
			kind  domain.Kind
		}{
			{"missing book", &IssueBookInput{Username: "alice"}, nil, domain.KindValidation},
			{"missing user", &IssueBookInput{BookID: f.book.ID, Username: "  "}, nil, domain.KindValidation},
			{"unknown book", &IssueBookInput{BookID: 99, Username: "alice"}, domain.ErrBookNotFound, domain.KindNotFound},
			{"unknown user", &IssueBookInput{BookID: f.book.ID, Username: "ghost"}, domain.ErrUserNotFound, domain.KindNotFound},
			{"due before issue", &IssueBookInput{BookID: f.book.ID, Username: "alice", DueDate: &before}, domain.ErrDueBeforeIssue, domain.KindValidation},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.svc.IssueBook(ctx, tt.input)
				require.Error(t, err)
				if tt.want != nil {
					assert.ErrorIs(t, err, tt.want)
				}
				assert.Equal(t, tt.kind, domain.KindOf(err))
			})
		}
	})

	t.Run("no copies left", func(t *testing.T) {
		f := newBorrowingFixture(t, 2)

		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)
		_, err = f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		_, err = f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		assert.ErrorIs(t, err, domain.ErrBookUnavailable)
	})
}

func TestBorrowingService_ReturnBook(t *testing.T) {
	ctx := context.Background()

	t.Run("on time", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		returned := f.now.Add(10 * day)
		result, err := f.svc.ReturnBook(ctx, "Dune", &returned)

		require.NoError(t, err)
		assert.Equal(t, 0.0, result.Fee)
		assert.Equal(t, 0, result.OverdueDays)
		assert.Equal(t, "NGN", result.Currency)
		assert.Equal(t, domain.BorrowingReturned, result.Borrowing.Status)
	})

	t.Run("late", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		returned := f.now.Add(14*day + 2*day + time.Hour)
		result, err := f.svc.ReturnBook(ctx, "Dune", &returned)

		require.NoError(t, err)
		assert.Equal(t, 3, result.OverdueDays)
		assert.Equal(t, 300.0, result.Fee)

		stored, err := f.store.Borrowings().GetByID(ctx, result.Borrowing.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BorrowingReturned, stored.Status)
		assert.Equal(t, 300.0, stored.Fee)
		require.NotNil(t, stored.ReturnDate)
		assert.Equal(t, returned, *stored.ReturnDate)
	})

	t.Run("defaults to now", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		result, err := f.svc.ReturnBook(ctx, "Dune", nil)

		require.NoError(t, err)
		assert.Equal(t, f.now, *result.Borrowing.ReturnDate)
	})

	t.Run("second return is not found", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		_, err = f.svc.ReturnBook(ctx, "Dune", nil)
		require.NoError(t, err)

		_, err = f.svc.ReturnBook(ctx, "Dune", nil)
		assert.ErrorIs(t, err, domain.ErrBorrowingNotFound)
	})

	t.Run("copy becomes available again", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)
		_, err = f.svc.ReturnBook(ctx, "Dune", nil)
		require.NoError(t, err)

		_, err = f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		assert.NoError(t, err)
	})

	t.Run("unknown title", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)

		_, err := f.svc.ReturnBook(ctx, "Unknown", nil)
		assert.ErrorIs(t, err, domain.ErrBorrowingNotFound)
		assert.Equal(t, "Book Not Found", err.Error())
	})

	t.Run("return before issue", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		early := f.now.Add(-day)
		_, err = f.svc.ReturnBook(ctx, "Dune", &early)
		assert.ErrorIs(t, err, domain.ErrReturnBeforeIssue)
	})

	t.Run("date-only return on issue day", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		result, err := f.svc.ReturnBook(ctx, "Dune", &midnight)

		require.NoError(t, err)
		assert.Equal(t, f.now, *result.Borrowing.ReturnDate)
		assert.Equal(t, 0.0, result.Fee)
	})

	t.Run("returned by current title after rename", func(t *testing.T) {
		f := newBorrowingFixture(t, 2)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)
		_, err = f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		book, err := f.store.Books().GetByID(ctx, f.book.ID)
		require.NoError(t, err)
		renamed := *book
		renamed.Title = "Dune Messiah"
		require.NoError(t, f.store.Books().Update(ctx, &renamed))

		result, err := f.svc.ReturnBook(ctx, "Dune Messiah", nil)
		require.NoError(t, err)
		assert.Equal(t, "Dune", result.Borrowing.BookName)

		_, err = f.svc.ReturnBook(ctx, "Dune", nil)
		assert.NoError(t, err, "title recorded at issue still matches")

		_, err = f.svc.ReturnBook(ctx, "Dune Messiah", nil)
		assert.ErrorIs(t, err, domain.ErrBorrowingNotFound)
	})

	t.Run("concurrent returns close one loan once", func(t *testing.T) {
		f := newBorrowingFixture(t, 1)
		_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.svc.ReturnBook(ctx, "Dune", nil)
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		var ok int
		for err := range results {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrBorrowingNotFound)
		}
		assert.Equal(t, 1, ok)
	})
}

func TestBorrowingService_ListAndCountOverdue(t *testing.T) {
	ctx := context.Background()
	f := newBorrowingFixture(t, 3)

	old := f.now.Add(-20 * day)
	_, err := f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice", IssueDate: &old})
	require.NoError(t, err)
	_, err = f.svc.IssueBook(ctx, &IssueBookInput{BookID: f.book.ID, Username: "alice"})
	require.NoError(t, err)

	count, err := f.svc.CountOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	page, err := f.svc.ListBorrowings(ctx, &BorrowingListInput{Params: pagination.NewParams(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Meta.Total)

	page, err = f.svc.ListBorrowings(ctx, &BorrowingListInput{Overdue: true, Params: pagination.NewParams(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Meta.Total)
	items := page.Items.([]*models.Borrowing)
	require.Len(t, items, 1)
	assert.Equal(t, old, items[0].IssueDate)

	page, err = f.svc.ListBorrowings(ctx, &BorrowingListInput{Status: domain.BorrowingReturned, Params: pagination.NewParams(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Meta.Total)
}
