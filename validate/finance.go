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

func CreateFinancialCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFinancialCategoryInput
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

func CreateFinancialEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFinancialEntryInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, err)
		}

		// Danh mục phải tồn tại, đang hoạt động và đúng loại thu/chi
		var category model.FinancialCategory
		if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Danh mục thu chi không tồn tại", fmt.Errorf("categoryId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !category.IsActive {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Danh mục thu chi đã ngừng sử dụng", fmt.Errorf("category %d inactive", category.ID))
		}
		if input.EntryType != category.CategoryType {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Loại bút toán không khớp loại danh mục",
				fmt.Errorf("entryType %s không thuộc danh mục %s", input.EntryType, category.CategoryType))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
