package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"library-management/internal/adapters/persistence/models"
	"library-management/internal/adapters/persistence/repositories"
	"library-management/internal/core/domain"

	"gorm.io/gorm"
)

// BookService handles catalog business logic
type BookService struct {
	bookRepo repositories.BookRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo repositories.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// BookInput represents create/update book input
type BookInput struct {
	ID            uint   `json:"id"`
	Title         string `json:"title" validate:"required,max=255"`
	Author        string `json:"author" validate:"required,max=255"`
	ISBN          string `json:"isbn" validate:"max=20"`
	Publisher     string `json:"publisher" validate:"max=255"`
	Category      string `json:"category" validate:"max=100"`
	PublishedYear int    `json:"publishedYear" validate:"omitempty,min=1,max=9999"`
	Quantity      *int   `json:"quantity" validate:"omitempty,min=0"`
}

func (in *BookInput) apply(book *models.Book) {
	book.Title = strings.TrimSpace(in.Title)
	book.Author = strings.TrimSpace(in.Author)
	book.ISBN = in.ISBN
	book.Publisher = in.Publisher
	book.Category = in.Category
	book.PublishedYear = in.PublishedYear
	if in.Quantity != nil {
		book.Quantity = *in.Quantity
	}
}

// GetBooks lists the whole catalog. An empty catalog is not an error.
func (s *BookService) GetBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.List(ctx)
}

// AddBook adds a book to the catalog
func (s *BookService) AddBook(ctx context.Context, input *BookInput) (*models.Book, error) {
	book := &models.Book{Quantity: 1}
	input.apply(book)

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Printf("📚 Book added: %s (id: %d)", book.Title, book.ID)
	return book, nil
}

// GetBookByID gets a book by ID
func (s *BookService) GetBookByID(ctx context.Context, bookID uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// UpdateBook overwrites a book's fields
func (s *BookService) UpdateBook(ctx context.Context, bookID uint, input *BookInput) (*models.Book, error) {
	book, err := s.GetBookByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	input.apply(book)

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	log.Printf("📚 Book updated: %s (id: %d)", book.Title, book.ID)
	return book, nil
}

// DeleteBook removes a book from the catalog
func (s *BookService) DeleteBook(ctx context.Context, bookID uint) error {
	if err := s.bookRepo.Delete(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookNotFound
		}
		return err
	}

	log.Printf("🗑️ Book deleted: %d", bookID)
	return nil
}
