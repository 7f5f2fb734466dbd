//go:build integration

package repositories_test

import (
	"context"
	"os"
	"testing"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/core/domain"
	"library-management/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := testutil.NewMySQLContainer(ctx)
	if err != nil {
		panic(err)
	}

	testDB, err = gorm.Open(mysql.Open(container.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	if err := models.AutoMigrate(testDB); err != nil {
		panic(err)
	}

	code := m.Run()

	_ = testcontainers.TerminateContainer(container)
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Helper()
	for _, table := range []string{"borrowings", "books", "users", "roles"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
}

func TestRoleRepository_EnsureIsIdempotent(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := repositories.NewRoleRepository(testDB)

	first, err := repo.Ensure(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	second, err := repo.Ensure(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := repo.GetByName(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repo.GetByName(ctx, domain.RoleUser)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_CRUD(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	roles := repositories.NewRoleRepository(testDB)
	users := repositories.NewUserRepository(testDB)

	role, err := roles.Ensure(ctx, domain.RoleUser)
	require.NoError(t, err)

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash", RoleID: role.ID}
	require.NoError(t, users.Create(ctx, user))

	exists, err := users.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.Role)
	assert.Equal(t, domain.RoleUser, got.RoleName())

	got.FirstName = "Alice"
	require.NoError(t, users.Update(ctx, got))

	byID, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.FirstName)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, users.Delete(ctx, user.ID))
	_, err = users.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = users.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBorrowingRepository_Lifecycle(t *testing.T) {
	truncate(t)
	ctx := context.Background()

	role, err := repositories.NewRoleRepository(testDB).Ensure(ctx, domain.RoleUser)
	require.NoError(t, err)
	user := &models.User{Username: "bob", Password: "hash", RoleID: role.ID}
	require.NoError(t, repositories.NewUserRepository(testDB).Create(ctx, user))

	book := &models.Book{Title: "Dune", Author: "Frank Herbert", Quantity: 2}
	require.NoError(t, repositories.NewBookRepository(testDB).Create(ctx, book))

	repo := repositories.NewBorrowingRepository(testDB)
	now := time.Now().UTC().Truncate(time.Second)

	older := &models.Borrowing{
		BookID: book.ID, BookName: book.Title, UserID: user.ID, Username: user.Username,
		IssueDate: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -6), Status: domain.BorrowingIssued,
	}
	newer := &models.Borrowing{
		BookID: book.ID, BookName: book.Title, UserID: user.ID, Username: user.Username,
		IssueDate: now.AddDate(0, 0, -1), DueDate: now.AddDate(0, 0, 13), Status: domain.BorrowingIssued,
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	open, err := repo.CountOpenByBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), open)

	overdue, err := repo.CountOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overdue)

	found, err := repo.FindOpenByBookName(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, older.ID, found.ID, "oldest open loan is returned first")

	require.NoError(t, repo.MarkReturned(ctx, found.ID, now, 600))
	err = repo.MarkReturned(ctx, found.ID, now, 600)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "second return must not match")

	returned, err := repo.GetByID(ctx, found.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BorrowingReturned, returned.Status)
	assert.Equal(t, 600.0, returned.Fee)
	require.NotNil(t, returned.ReturnDate)

	items, total, err := repo.ListPaged(ctx, repositories.BorrowingFilter{Status: domain.BorrowingIssued}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, newer.ID, items[0].ID)

	_, total, err = repo.ListPaged(ctx, repositories.BorrowingFilter{Overdue: true, Now: now}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, err = repo.FindOpenByBookName(ctx, "Unknown Title")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	book.Title = "Dune Messiah"
	require.NoError(t, repositories.NewBookRepository(testDB).Update(ctx, book))
	found, err = repo.FindOpenByBookName(ctx, "Dune Messiah")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, found.ID, "current title matches loans issued under the old one")
}
