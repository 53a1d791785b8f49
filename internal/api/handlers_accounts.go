package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/veilcraft/gatewarden/internal/models"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := signupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || strings.TrimSpace(input.FirstName) == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.accounts.Signup(input.FirstName, input.LastName, input.Email, input.Password); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":      true,
		"message": "verification code sent",
	})
}

func (handler *Handler) VerifyOTP(c *fiber.Ctx) error {
	input := verifyOTPInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	token, err := handler.accounts.VerifyOTP(strings.TrimSpace(input.Email), strings.TrimSpace(input.Code))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "token": token})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	token, err := handler.accounts.Login(strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "token": token})
}

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.accounts.ForgotPassword(strings.TrimSpace(input.Email)); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "message": "reset code sent"})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.accounts.ResetPassword(strings.TrimSpace(input.Email), strings.TrimSpace(input.Code), input.NewPassword)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "message": "password updated"})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.accounts.DeleteAccount(strings.TrimSpace(input.Email), input.Password); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "message": "account deleted"})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	input := logoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	token := input.Token
	if token == "" {
		token = bearerToken(c)
	}

	if err := handler.accounts.Logout(token); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "message": "logged out"})
}

func (handler *Handler) FederatedSignIn(c *fiber.Ctx) error {
	input := federatedSignInInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	token, account, err := handler.accounts.FederatedSignIn(c.UserContext(), strings.TrimSpace(input.AssertionToken))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"token":   token,
		"account": accountPayload(account),
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	account, ok := c.Locals(contextAccountKey).(models.Account)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"ok": true, "account": accountPayload(account)})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func accountPayload(account models.Account) fiber.Map {
	return fiber.Map{
		"id":         account.PublicID,
		"email":      account.Email,
		"firstName":  account.FirstName,
		"lastName":   account.LastName,
		"isVerified": account.IsVerified,
	}
}
