package validate

import (
	"errors"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		// Kiểm tra phòng tồn tại
		var room model.Room
		if err := database.DB.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, fmt.Errorf("roomId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// Kiểm tra khách tồn tại
		var guest model.Guest
		if err := database.DB.First(&guest, input.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GUEST_NOT_FOUND, fmt.Errorf("guestId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CheckIn() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckInInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CheckOut() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CheckOutInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
