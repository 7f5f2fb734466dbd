package handlers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"library-management/internal/core/domain"
	"library-management/internal/core/services"
	"library-management/internal/pkg/pagination"
	"library-management/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BorrowingHandler handles lending endpoints
type BorrowingHandler struct {
	borrowingService *services.BorrowingService
	validator        *validator.Validate
}

// NewBorrowingHandler creates a new borrowing handler
func NewBorrowingHandler(borrowingService *services.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{
		borrowingService: borrowingService,
		validator:        validator.New(),
	}
}

// BorrowBookRequest represents a borrow request body
type BorrowBookRequest struct {
	BookID    uint   `json:"bookId" validate:"required"`
	Username  string `json:"userName" validate:"required"`
	IssueDate string `json:"issueDate"`
	DueDate   string `json:"dueDate"`
}

// ReturnBookRequest is the object form of the return body
type ReturnBookRequest struct {
	ReturnDate string `json:"returnDate"`
}

// BorrowBook handles issuing a book
// @Summary Borrow a book
// @Description Issue a copy of a book to a user. issueDate defaults to now and dueDate to the loan period after it.
// @Tags Borrowing
// @Accept json
// @Produce json
// @Param body body BorrowBookRequest true "Borrow request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /api/Borrowing/BorrowBook [post]
func (h *BorrowingHandler) BorrowBook(c *fiber.Ctx) error {
	var req BorrowBookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid details")
	}
	req.Username = strings.TrimSpace(req.Username)

	if err := h.validator.Struct(req); err != nil {
		return response.ValidationError(c, err)
	}

	issueDate, err := parseOptionalDate(req.IssueDate)
	if err != nil {
		return response.FromError(c, err)
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return response.FromError(c, err)
	}

	borrowing, err := h.borrowingService.IssueBook(c.Context(), &services.IssueBookInput{
		BookID:    req.BookID,
		Username:  req.Username,
		IssueDate: issueDate,
		DueDate:   dueDate,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, borrowing)
}

// ReturnBook handles returning a book
// @Summary Return a book
// @Description Close the oldest open loan of a title. The body is a JSON date string, {"returnDate": ...}, or empty for now.
// @Tags Borrowing
// @Accept json
// @Produce json
// @Param bookname query string true "Book title"
// @Param body body string false "Return date"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/Borrowing/ReturnBook [put]
func (h *BorrowingHandler) ReturnBook(c *fiber.Ctx) error {
	bookName := strings.TrimSpace(c.Query("bookname"))
	if bookName == "" {
		return response.BadRequest(c, "Please add the required value")
	}

	returnDate, err := h.parseReturnDate(c)
	if err != nil {
		return response.FromError(c, err)
	}

	result, err := h.borrowingService.ReturnBook(c.Context(), bookName, returnDate)
	if err != nil {
		return response.FromError(c, err)
	}

	message := fmt.Sprintf("Successfully returned book and you owe %s%s",
		result.Currency,
		strconv.FormatFloat(result.Fee, 'f', -1, 64),
	)
	return response.Success(c, message, result)
}

// parseReturnDate accepts an empty body, a JSON string, a JSON object or a bare date
func (h *BorrowingHandler) parseReturnDate(c *fiber.Ctx) (*time.Time, error) {
	body := bytes.TrimSpace(c.Body())
	decode := c.App().Config().JSONDecoder

	switch {
	case len(body) == 0 || string(body) == "null":
		return nil, nil
	case body[0] == '"':
		var value string
		if err := decode(body, &value); err != nil {
			return nil, errInvalidDate
		}
		return parseOptionalDate(value)
	case body[0] == '{':
		var req ReturnBookRequest
		if err := decode(body, &req); err != nil {
			return nil, errInvalidDate
		}
		return parseOptionalDate(req.ReturnDate)
	default:
		return parseOptionalDate(string(body))
	}
}

// GetBorrowings handles listing borrowings
// @Summary List borrowings
// @Tags Borrowing
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param status query string false "ISSUED or RETURNED"
// @Param overdue query bool false "Only open loans past due"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/Borrowing/GetBorrowings [get]
func (h *BorrowingHandler) GetBorrowings(c *fiber.Ctx) error {
	status := domain.BorrowingStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	switch status {
	case "", domain.BorrowingIssued, domain.BorrowingReturned:
	default:
		return response.BadRequest(c, "status must be ISSUED or RETURNED")
	}

	page, err := h.borrowingService.ListBorrowings(c.Context(), &services.BorrowingListInput{
		Status:  status,
		Overdue: c.QueryBool("overdue", false),
		Params:  pagination.GetParams(c),
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, response.MessageSuccess, page)
}
