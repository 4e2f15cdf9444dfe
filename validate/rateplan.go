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

func CreateRatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRatePlanInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		var roomType model.RoomType
		if err := database.DB.First(&roomType, input.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Hạng phòng không tồn tại", fmt.Errorf("roomTypeId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if !input.ValidFrom.IsZero() && !input.ValidTo.IsZero() && input.ValidTo.Before(input.ValidFrom) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Ngày hết hiệu lực phải sau ngày bắt đầu", errors.New("validTo before validFrom"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateDateOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateDateOverrideInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		var roomType model.RoomType
		if err := database.DB.First(&roomType, input.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Hạng phòng không tồn tại", fmt.Errorf("roomTypeId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
