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

func SendGuestMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendGuestMessageInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		var guest model.Guest
		if err := database.DB.First(&guest, input.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GUEST_NOT_FOUND, fmt.Errorf("guestId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// Không có mẫu thì phải tự soạn nội dung
		if input.TemplateID == nil && input.Body == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cần chọn mẫu tin hoặc nhập nội dung", errors.New("templateId or body required"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
