package response

import (
	"log"

	"library-management/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response codes carried in the envelope
const (
	CodeSuccess = "00"
	CodeFailure = "99"
	CodeError   = "Error"
)

// MessageSuccess is the message of a plain successful response
const MessageSuccess = "Successful"

// Response represents a standard API response
type Response struct {
	ResponseCode    string      `json:"responseCode"`
	ResponseMessage string      `json:"responseMessage"`
	Data            interface{} `json:"data"`
}

// exposeInternal controls whether internal error messages reach the client
var exposeInternal bool

// SetExposeInternal toggles internal error details in responses (dev mode only)
func SetExposeInternal(expose bool) {
	exposeInternal = expose
}

// Success sends a success response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		ResponseCode:    CodeSuccess,
		ResponseMessage: message,
		Data:            data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, code, message string) error {
	return c.Status(statusCode).JSON(Response{
		ResponseCode:    code,
		ResponseMessage: message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, CodeFailure, message)
}

// ValidationError sends a 400 response. Validator errors carry per-field details in data.
func ValidationError(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return BadRequest(c, err.Error())
	}

	fieldErrors := make([]fiber.Map, 0, len(validationErrors))
	for _, e := range validationErrors {
		fieldErrors = append(fieldErrors, fiber.Map{
			"field":   e.Field(),
			"message": e.Tag(),
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(Response{
		ResponseCode:    CodeFailure,
		ResponseMessage: "invalid details",
		Data:            fieldErrors,
	})
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, CodeError, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, CodeError, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, CodeError, message)
}

// FromError maps a service error to the envelope by its domain kind
func FromError(c *fiber.Ctx, err error) error {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindNotFound:
		return BadRequest(c, err.Error())
	case domain.KindConflict:
		return InternalServerError(c, err.Error())
	case domain.KindUnauthorized:
		return Unauthorized(c, err.Error())
	case domain.KindForbidden:
		return Forbidden(c, err.Error())
	}

	log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
	if exposeInternal {
		return InternalServerError(c, err.Error())
	}
	return InternalServerError(c, "Internal Server Error")
}
