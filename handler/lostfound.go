package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetLostAndFound(c *fiber.Ctx) error {
	db := database.DB.Preload("Room")
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var items []model.LostAndFound
	if err := db.Order("id DESC").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateLostAndFound(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateLostAndFoundInput)
	claim, _ := helper.GetAccountFromToken(c)

	item := model.LostAndFound{
		RoomID:      input.RoomID,
		BookingID:   input.BookingID,
		Description: input.Description,
		FoundBy:     claim.AccountId,
		Status:      constants.LOST_FOUND_STORED,
		Notes:       input.Notes,
	}
	if input.FoundDate != nil {
		item.FoundDate = *input.FoundDate
	} else {
		item.FoundDate = utils.Today()
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func ReturnLostAndFound(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	type returnInput struct {
		ReturnedTo string `json:"returnedTo"`
	}
	var input returnInput
	if err := c.BodyParser(&input); err != nil || input.ReturnedTo == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, errors.New("returnedTo required"))
	}

	var item model.LostAndFound
	if err := database.DB.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if item.Status != constants.LOST_FOUND_STORED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("item not stored"))
	}

	err := database.DB.Model(&item).Updates(map[string]any{
		"status":      constants.LOST_FOUND_RETURNED,
		"returned_to": input.ReturnedTo,
	}).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
