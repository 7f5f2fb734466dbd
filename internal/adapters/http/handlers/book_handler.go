package handlers

import (
	"library-management/internal/core/services"
	"library-management/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookHandler handles catalog endpoints
type BookHandler struct {
	bookService *services.BookService
	validator   *validator.Validate
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		validator:   validator.New(),
	}
}

// GetBooks handles listing the catalog
// @Summary List books
// @Tags Book
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/Book/GetBooks [get]
func (h *BookHandler) GetBooks(c *fiber.Ctx) error {
	books, err := h.bookService.GetBooks(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, books)
}

// AddBook handles adding a book
// @Summary Add book
// @Tags Book
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.BookInput true "Book"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/Book/AddBooks [post]
func (h *BookHandler) AddBook(c *fiber.Ctx) error {
	var req services.BookInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	book, err := h.bookService.AddBook(c.Context(), &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, book)
}

// GetBookByID handles getting a book
// @Summary Get book by ID
// @Tags Book
// @Produce json
// @Param bookid query int true "Book ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/Book/GetBookById [get]
func (h *BookHandler) GetBookByID(c *fiber.Ctx) error {
	id, err := parseID(c.Query("bookid"))
	if err != nil {
		return response.BadRequest(c, "Id Not Found")
	}

	book, err := h.bookService.GetBookByID(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, book)
}

// UpdateBook handles updating a book
// @Summary Update book
// @Description The book id comes from the id query parameter, or from the body when the query is absent.
// @Tags Book
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int false "Book ID"
// @Param body body services.BookInput true "Book"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/Book/UpdateBook [put]
func (h *BookHandler) UpdateBook(c *fiber.Ctx) error {
	var req services.BookInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	id := req.ID
	if q := c.Query("id"); q != "" {
		parsed, err := parseID(q)
		if err != nil {
			return response.BadRequest(c, "Id Not Found")
		}
		id = parsed
	}
	if id == 0 {
		return response.BadRequest(c, "Id Not Found")
	}

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	book, err := h.bookService.UpdateBook(c.Context(), id, &req)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, book)
}

// DeleteBook handles deleting a book
// @Summary Delete book
// @Tags Book
// @Produce json
// @Security BearerAuth
// @Param id query int true "Book ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/Book/DeleteBook [delete]
func (h *BookHandler) DeleteBook(c *fiber.Ctx) error {
	id, err := parseID(c.Query("id"))
	if err != nil {
		return response.BadRequest(c, "Id Not Found")
	}

	if err := h.bookService.DeleteBook(c.Context(), id); err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, nil)
}
