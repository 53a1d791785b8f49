package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/veilcraft/gatewarden/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the lifecycle taxonomy onto HTTP. Anything
// outside the taxonomy is a collaborator fault: logged, returned generic.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrTokenRequired):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAccountNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidAssertion):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUnverified):
		return apiError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrDelivery):
		log.Printf("notifier dispatch failed: %v", err)
		return apiError(c, fiber.StatusBadGateway, "failed to deliver verification code")
	default:
		log.Printf("account operation failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
