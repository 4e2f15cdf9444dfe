package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMyNotifications(c *fiber.Ctx) error {
	claim, _ := helper.GetAccountFromToken(c)

	db := database.DB.Where("account_id = ?", claim.AccountId)
	if c.QueryBool("unread") {
		db = db.Where("is_read = ?", false)
	}

	var notifications []model.Notification
	if err := db.Order("id DESC").Limit(100).Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	notificationId := c.Locals("inputId").(int)
	claim, _ := helper.GetAccountFromToken(c)

	result := database.DB.Model(&model.Notification{}).
		Where("id = ? AND account_id = ?", notificationId, claim.AccountId).
		Update("is_read", true)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"read": notificationId})
}

// RegisterDeviceToken lưu token FCM của thiết bị để nhận nhắc việc
func RegisterDeviceToken(c *fiber.Ctx) error {
	claim, _ := helper.GetAccountFromToken(c)

	type tokenInput struct {
		Token    string `json:"token"`
		Platform string `json:"platform"`
	}
	var input tokenInput
	if err := c.BodyParser(&input); err != nil || input.Token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	token := model.DeviceToken{
		AccountId: claim.AccountId,
		Token:     input.Token,
		Platform:  input.Platform,
		IsActive:  true,
	}
	err := database.DB.Where("token = ?", input.Token).
		Assign(map[string]any{"account_id": claim.AccountId, "platform": input.Platform, "is_active": true}).
		FirstOrCreate(&token).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, token)
}
