package middleware

import (
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionIDKey is the fiber.Locals key holding the validated session id.
const SessionIDKey = "validated_session_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: validator}
}

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := vm.validator.ValidateSessionID(id); err != nil {
			return err // handled by ErrorHandler
		}
		c.Locals(SessionIDKey, id)
		return c.Next()
	}
}
