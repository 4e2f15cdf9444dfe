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

func CreateHousekeepingTask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHousekeepingTaskInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		var room model.Room
		if err := database.DB.First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, fmt.Errorf("roomId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func Assign() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AssignInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		// Người được giao phải là tài khoản đang hoạt động
		var account model.Account
		if err := database.DB.First(&account, input.AssignedToID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nhân viên không tồn tại", fmt.Errorf("assignedToId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !account.Active {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ACCOUNT_NOT_ACTIVE, errors.New("account inactive"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
