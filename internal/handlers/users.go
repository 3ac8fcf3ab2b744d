package handlers

import (
	"errors"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RegisterHandler creates a new account
func RegisterHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		user, err := userService.Register(c.Context(), req)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Messages})
			}
			if errors.Is(err, models.ErrUserExists) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email already registered"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		return c.Status(fiber.StatusCreated).JSON(models.RegisterResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}

// LoginHandler exchanges credentials for a bearer token
func LoginHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		token, err := userService.Login(c.Context(), req)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		return c.JSON(models.TokenResponse{Token: token})
	}
}
