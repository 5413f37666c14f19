package server

import (
	"errors"
	"strconv"

	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that a handler helper already wrote the HTTP
// response, so the caller should return nil to Fiber.
var errResponseWritten = errors.New("response already written")

// parseID parses the named route parameter as an unsigned integer ID. On
// failure it writes a 400 response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam turns a route param name into something readable in errors.
func humanizeParam(param string) string {
	switch param {
	case "id":
		return "ID"
	case "commentId":
		return "comment ID"
	default:
		return param
	}
}

// writeServiceError maps a service-layer error to an HTTP response. AppError
// codes carry the intended status; anything else is a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation, models.CodeConflict:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeUnauthorized:
			return models.RespondWithError(c, fiber.StatusUnauthorized, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// currentUserID reads the authenticated user ID placed in locals by
// AuthRequired.
func currentUserID(c *fiber.Ctx) (uint, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok || userID == 0 {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return 0, errResponseWritten
	}
	return userID, nil
}
