package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// Store is an in-memory stand-in for the database behind the repositories.
// Missing rows surface as gorm.ErrRecordNotFound, like the GORM implementations.
type Store struct {
	mu sync.Mutex

	// Fail, when set, is returned by every repository call
	Fail error

	roles      table[models.Role]
	users      table[models.User]
	books      table[models.Book]
	borrowings table[models.Borrowing]
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		roles:      newTable(func(r *models.Role) *uint { return &r.ID }),
		users:      newTable(func(u *models.User) *uint { return &u.ID }),
		books:      newTable(func(b *models.Book) *uint { return &b.ID }),
		borrowings: newTable(func(b *models.Borrowing) *uint { return &b.ID }),
	}
}

// NewSeededStore creates a store with both roles present
func NewSeededStore() *Store {
	s := NewStore()
	for _, name := range domain.Roles {
		s.roles.create(&models.Role{Name: string(name)})
	}
	return s
}

// Users returns the user repository view of the store
func (s *Store) Users() repositories.UserRepository { return &userRepo{s: s} }

// Roles returns the role repository view of the store
func (s *Store) Roles() repositories.RoleRepository { return &roleRepo{s: s} }

// Books returns the book repository view of the store
func (s *Store) Books() repositories.BookRepository { return &bookRepo{s: s} }

// Borrowings returns the borrowing repository view of the store
func (s *Store) Borrowings() repositories.BorrowingRepository { return &borrowingRepo{s: s} }

type table[T any] struct {
	rows   map[uint]T
	nextID uint
	id     func(*T) *uint
}

func newTable[T any](id func(*T) *uint) table[T] {
	return table[T]{rows: make(map[uint]T), id: id}
}

func (t *table[T]) create(e *T) {
	t.nextID++
	*t.id(e) = t.nextID
	t.rows[t.nextID] = *e
}

func (t *table[T]) get(id uint) (*T, error) {
	row, ok := t.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (t *table[T]) list() []*T {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		row := t.rows[id]
		out = append(out, &row)
	}
	return out
}

func (t *table[T]) save(e *T) {
	if *t.id(e) == 0 {
		t.create(e)
		return
	}
	t.rows[*t.id(e)] = *e
}

func (t *table[T]) delete(id uint) error {
	if _, ok := t.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(t.rows, id)
	return nil
}

// ============================================================
// Roles
// ============================================================

type roleRepo struct{ s *Store }

func (r *roleRepo) GetByName(_ context.Context, name domain.Role) (*models.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return r.s.roleByName(string(name))
}

func (r *roleRepo) Ensure(_ context.Context, name domain.Role) (*models.Role, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	if role, err := r.s.roleByName(string(name)); err == nil {
		return role, nil
	}
	role := &models.Role{Name: string(name)}
	r.s.roles.create(role)
	return role, nil
}

func (s *Store) roleByName(name string) (*models.Role, error) {
	for _, role := range s.roles.list() {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ============================================================
// Users
// ============================================================

type userRepo struct{ s *Store }

func (r *userRepo) withRole(u *models.User) *models.User {
	if role, err := r.s.roles.get(u.RoleID); err == nil {
		u.Role = role
	}
	return u
}

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	user.CreatedAt = time.Now()
	r.s.users.create(user)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	user, err := r.s.users.get(id)
	if err != nil {
		return nil, err
	}
	return r.withRole(user), nil
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	users := r.s.users.list()
	for _, u := range users {
		r.withRole(u)
	}
	return users, nil
}

func (r *userRepo) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	row := *user
	row.Role = nil
	r.s.users.save(&row)
	return nil
}

func (r *userRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	return r.s.users.delete(id)
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	for _, u := range r.s.users.list() {
		if u.Username == username {
			return r.withRole(u), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ============================================================
// Books
// ============================================================

type bookRepo struct{ s *Store }

func (r *bookRepo) Create(_ context.Context, book *models.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	r.s.books.create(book)
	return nil
}

func (r *bookRepo) GetByID(_ context.Context, id uint) (*models.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return r.s.books.get(id)
}

func (r *bookRepo) List(_ context.Context) ([]*models.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return r.s.books.list(), nil
}

func (r *bookRepo) Update(_ context.Context, book *models.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	r.s.books.save(book)
	return nil
}

func (r *bookRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	return r.s.books.delete(id)
}

// ============================================================
// Borrowings
// ============================================================

type borrowingRepo struct{ s *Store }

func (r *borrowingRepo) Create(_ context.Context, b *models.Borrowing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	r.s.borrowings.create(b)
	return nil
}

func (r *borrowingRepo) GetByID(_ context.Context, id uint) (*models.Borrowing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return r.s.borrowings.get(id)
}

func (r *borrowingRepo) List(_ context.Context) ([]*models.Borrowing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}
	return r.s.borrowings.list(), nil
}

func (r *borrowingRepo) Update(_ context.Context, b *models.Borrowing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	r.s.borrowings.save(b)
	return nil
}

func (r *borrowingRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}
	return r.s.borrowings.delete(id)
}

func (r *borrowingRepo) FindOpenByBookName(_ context.Context, bookName string) (*models.Borrowing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, r.s.Fail
	}

	var oldest *models.Borrowing
	for _, b := range r.s.borrowings.list() {
		if b.Status != domain.BorrowingIssued {
			continue
		}
		if b.BookName != bookName {
			book, err := r.s.books.get(b.BookID)
			if err != nil || book.Title != bookName {
				continue
			}
		}
		if oldest == nil || b.IssueDate.Before(oldest.IssueDate) {
			oldest = b
		}
	}
	if oldest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return oldest, nil
}

func (r *borrowingRepo) CountOpenByBook(_ context.Context, bookID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}

	var n int64
	for _, b := range r.s.borrowings.list() {
		if b.BookID == bookID && b.Status == domain.BorrowingIssued {
			n++
		}
	}
	return n, nil
}

func (r *borrowingRepo) MarkReturned(_ context.Context, id uint, returnDate time.Time, fee float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return r.s.Fail
	}

	b, err := r.s.borrowings.get(id)
	if err != nil {
		return err
	}
	if b.Status != domain.BorrowingIssued {
		return gorm.ErrRecordNotFound
	}
	b.Status = domain.BorrowingReturned
	b.ReturnDate = &returnDate
	b.Fee = fee
	r.s.borrowings.save(b)
	return nil
}

func (r *borrowingRepo) ListPaged(_ context.Context, filter repositories.BorrowingFilter, offset, limit int) ([]*models.Borrowing, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return nil, 0, r.s.Fail
	}

	var matched []*models.Borrowing
	for _, b := range r.s.borrowings.list() {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.Overdue && !b.IsOverdue(filter.Now) {
			continue
		}
		matched = append(matched, b)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].IssueDate.After(matched[j].IssueDate) })

	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.Borrowing{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *borrowingRepo) CountOverdue(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail != nil {
		return 0, r.s.Fail
	}

	var n int64
	for _, b := range r.s.borrowings.list() {
		if b.IsOverdue(now) {
			n++
		}
	}
	return n, nil
}
