package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards the photo routes. A missing Authorization header and
// a verified token whose user no longer exists both answer "unauthorized"; an
// empty or unverifiable token answers "invalid token". The internal reason is
// logged either way.
func AuthMiddleware(tokens *services.TokenService, users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authenticate(c, tokens, users)
		if err != nil {
			var authErr *models.AuthError
			if errors.As(err, &authErr) {
				log.Printf("auth rejected: %s", authErr.Reason)
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": authErr.PublicMessage()})
			}
			// A store failure is not an authorization verdict.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		c.Locals("user_id", user.ID)
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, tokens *services.TokenService, users *services.UserService) (*models.User, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, &models.AuthError{Reason: models.ReasonMissingCredential}
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := tokens.Verify(raw)
	if err != nil {
		return nil, &models.AuthError{Reason: models.ReasonMalformedToken}
	}

	user, err := users.GetByID(c.Context(), claims.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &models.AuthError{Reason: models.ReasonUnknownSubject}
		}
		return nil, err
	}

	return user, nil
}
