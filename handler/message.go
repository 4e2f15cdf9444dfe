package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetMessageTemplates(c *fiber.Ctx) error {
	var templates []model.MessageTemplate
	if err := database.DB.Where("is_active = ?", true).Order("id").Find(&templates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, templates)
}

func GetGuestMessages(c *fiber.Ctx) error {
	db := database.DB.Model(&model.GuestMessage{})
	if guestId := c.QueryInt("guestId"); guestId > 0 {
		db = db.Where("guest_id = ?", guestId)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var messages []model.GuestMessage
	if err := db.Order("id DESC").Limit(200).Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

// SendGuestMessage soạn từ mẫu (nếu có) rồi gửi ngay qua kênh tương ứng
func SendGuestMessage(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SendGuestMessageInput)
	claim, _ := helper.GetAccountFromToken(c)

	message := model.GuestMessage{
		GuestID:    input.GuestID,
		BookingID:  input.BookingID,
		TemplateID: input.TemplateID,
		Channel:    input.Channel,
		Recipient:  input.Recipient,
		Subject:    input.Subject,
		Body:       input.Body,
		Status:     constants.MESSAGE_PENDING,
		CreatedBy:  claim.AccountId,
	}
	if message.Channel == "" {
		message.Channel = constants.CHANNEL_EMAIL
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	sent, err := helper.SendGuestMessage(message.ID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, sent)
}

// RunCheckinReminders chạy tay đợt nhắc nhận phòng, thường để thử cấu hình
func RunCheckinReminders(c *fiber.Ctx) error {
	summary := helper.SendCheckinReminders()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"summary": summary})
}

func RunCheckoutReminders(c *fiber.Ctx) error {
	summary := helper.SendCheckoutReminders()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"summary": summary})
}
