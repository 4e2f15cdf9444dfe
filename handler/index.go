package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// businessStatus ánh xạ lỗi nghiệp vụ sang mã HTTP
func businessStatus(err error) int {
	switch {
	case errors.Is(err, helper.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, helper.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, helper.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, helper.ErrIllegalTransition):
		return fiber.StatusConflict
	case errors.Is(err, helper.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	var berr *helper.BusinessError
	if errors.As(err, &berr) {
		return utils.ErrorResponse(c, businessStatus(err), berr.Message, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
