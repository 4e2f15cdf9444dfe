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

func CreateMaintenance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMaintenanceInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		// Phải có đúng một trong hai: phòng hoặc mô tả vị trí
		if input.RoomID == nil && input.LocationDescription == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cần chỉ định phòng hoặc mô tả vị trí", errors.New("roomId or locationDescription required"))
		}
		if input.RoomID != nil && input.LocationDescription != "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Chỉ chọn một trong hai: phòng hoặc mô tả vị trí", errors.New("roomId and locationDescription are exclusive"))
		}

		if input.RoomID != nil {
			var room model.Room
			if err := database.DB.First(&room, *input.RoomID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, fmt.Errorf("roomId not found"))
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CompleteMaintenance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CompleteMaintenanceInput
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

func Reason() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReasonInput
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
