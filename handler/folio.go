package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetBookingFolio liệt kê các mục chi tiêu của một booking kèm tổng chưa trả
func GetBookingFolio(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	var items []model.FolioItem
	if err := database.DB.Where("booking_id = ?", booking.ID).Order("date, id").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var unpaid int64
	for _, item := range items {
		if !item.IsVoided && !item.IsPaid {
			unpaid += item.TotalPrice
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":       items,
		"unpaidTotal": unpaid,
		"balanceDue":  booking.BalanceDue(),
	})
}

func CreateFolioItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFolioItemInput)
	claim, _ := helper.GetAccountFromToken(c)

	var item *model.FolioItem
	err := utils.RetryTransient(func() error {
		var innerErr error
		item, innerErr = helper.CreateFolioItem(&input, claim.AccountId)
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func UpdateFolioItem(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateFolioItemInput)

	item, err := helper.UpdateFolioItem(uint(itemId), &input)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func VoidFolioItem(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.VoidFolioItemInput)

	item, err := helper.VoidFolioItem(uint(itemId), input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
