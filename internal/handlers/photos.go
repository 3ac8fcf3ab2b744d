package handlers

import (
	"errors"
	"strconv"

	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/models"
	"github.com/hafidh2001/Hactiv8-Assignment-3/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ListPhotosHandler returns every photo in insertion order
func ListPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.List(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}
		return c.JSON(photos)
	}
}

// GetPhotoHandler returns one photo with its owner embedded
func GetPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			// An unparseable id looks the same as an unknown one.
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "photo not found"})
		}

		photo, err := photoService.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "photo not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		return c.JSON(photo)
	}
}

// CreatePhotoHandler stores a new photo owned by the authenticated user
func CreatePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		var req models.CreatePhotoRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
		}

		photo, err := photoService.Create(c.Context(), userID, req)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": vErr.Messages})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		}

		return c.Status(fiber.StatusCreated).JSON(photo)
	}
}
