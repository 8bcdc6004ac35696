package handlers

import (
	"errors"
	"fmt"

	"tokoadmin/internal/middleware"
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// currentUserID returns the authenticated user placed in Locals by the auth middleware.
func currentUserID(c *fiber.Ctx) models.ID {
	if v, ok := c.Locals(middleware.LocalUserID).(string); ok {
		return models.ID(v)
	}
	return ""
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return badRequest(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// serviceError maps a service failure onto a status code.
func serviceError(c *fiber.Ctx, log *logrus.Logger, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = fiber.StatusConflict
	}
	log.WithFields(logrus.Fields{
		"path":   c.Path(),
		"status": status,
	}).Warnf("%s: %v", message, err)
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
