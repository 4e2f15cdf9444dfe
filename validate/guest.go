package validate

import (
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateGuestInput
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

func UpdateGuest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateGuestInput
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
