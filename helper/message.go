package helper

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SendResult struct {
	Success   bool   `json:"success"`
	MessageId string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// channelEnabled tra cờ tính năng của từng kênh gửi
func channelEnabled(channel string) bool {
	switch channel {
	case constants.CHANNEL_EMAIL:
		return config.ConfigBool("EMAIL_ENABLED", false)
	case constants.CHANNEL_SMS:
		return config.ConfigBool("SMS_ENABLED", false)
	case constants.CHANNEL_ZALO:
		return config.ConfigBool("ZALO_ENABLED", false)
	case constants.CHANNEL_PUSH:
		return config.ConfigBool("FCM_ENABLED", false)
	}
	return false
}

// SendMessage là cổng gửi duy nhất. Kênh tắt cờ thì trả mock thành công,
// không gọi ra ngoài.
func SendMessage(channel, recipient, subject, body string) SendResult {
	if !channelEnabled(channel) {
		return SendResult{Success: true, MessageId: "mock-" + uuid.NewString()}
	}

	switch channel {
	case constants.CHANNEL_EMAIL:
		if err := utils.SendEmail(recipient, subject, body); err != nil {
			return SendResult{Success: false, Error: err.Error()}
		}
		return SendResult{Success: true, MessageId: uuid.NewString()}
	case constants.CHANNEL_SMS, constants.CHANNEL_ZALO, constants.CHANNEL_PUSH:
		// Gateway ngoài chưa nối, cờ bật mà thiếu adapter coi như lỗi tích hợp
		return SendResult{Success: false, Error: fmt.Sprintf("kênh %s chưa có gateway", channel)}
	}
	return SendResult{Success: false, Error: "kênh không hỗ trợ"}
}

// Ngữ cảnh render cố định của template tin nhắn
type TemplateContext struct {
	GuestName     string
	HotelName     string
	HotelPhone    string
	WifiPassword  string
	RoomNumber    string
	RoomType      string
	CheckInDate   string
	CheckOutDate  string
	Nights        int
	TotalAmount   int64
	BookingSource string
}

// RenderTemplate thay placeholder {key} bằng giá trị ngữ cảnh
func RenderTemplate(text string, ctx TemplateContext) string {
	replacer := strings.NewReplacer(
		"{guest_name}", ctx.GuestName,
		"{hotel_name}", ctx.HotelName,
		"{hotel_phone}", ctx.HotelPhone,
		"{wifi_password}", ctx.WifiPassword,
		"{room_number}", ctx.RoomNumber,
		"{room_type}", ctx.RoomType,
		"{check_in_date}", ctx.CheckInDate,
		"{check_out_date}", ctx.CheckOutDate,
		"{nights}", fmt.Sprintf("%d", ctx.Nights),
		"{total_amount}", fmt.Sprintf("%d", ctx.TotalAmount),
		"{booking_source}", ctx.BookingSource,
	)
	return replacer.Replace(text)
}

// BuildBookingContext dựng ngữ cảnh từ đặt phòng đã preload Room+Guest
func BuildBookingContext(booking *model.Booking) TemplateContext {
	return TemplateContext{
		GuestName:     booking.Guest.FullName,
		HotelName:     config.ConfigOr("HOTEL_NAME", "Khách sạn"),
		HotelPhone:    config.Config("HOTEL_PHONE"),
		WifiPassword:  config.Config("HOTEL_WIFI_PASSWORD"),
		RoomNumber:    booking.Room.Number,
		RoomType:      booking.Room.RoomType.Name,
		CheckInDate:   booking.CheckInDate.String(),
		CheckOutDate:  booking.CheckOutDate.String(),
		Nights:        booking.CheckInDate.DaysUntil(booking.CheckOutDate),
		TotalAmount:   booking.TotalAmount,
		BookingSource: booking.Source,
	}
}

// SendGuestMessage render template (nếu có) rồi gửi, cập nhật trạng thái
// bản ghi: pending → sent hoặc failed kèm send_error.
func SendGuestMessage(messageId uint) (*model.GuestMessage, error) {
	db := database.DB

	var msg model.GuestMessage
	if err := db.Preload("Guest").First(&msg, messageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.NOT_FOUND)
		}
		return nil, err
	}
	if msg.Status == constants.MESSAGE_SENT {
		return &msg, nil
	}

	if msg.TemplateID != nil && msg.Body == "" {
		var tpl model.MessageTemplate
		if err := db.First(&tpl, *msg.TemplateID).Error; err == nil {
			ctx := TemplateContext{
				GuestName:  msg.Guest.FullName,
				HotelName:  config.ConfigOr("HOTEL_NAME", "Khách sạn"),
				HotelPhone: config.Config("HOTEL_PHONE"),
			}
			if msg.BookingID != nil {
				var booking model.Booking
				if err := db.Preload("Room.RoomType").Preload("Guest").
					First(&booking, *msg.BookingID).Error; err == nil {
					ctx = BuildBookingContext(&booking)
				}
			}
			msg.Subject = RenderTemplate(tpl.Subject, ctx)
			msg.Body = RenderTemplate(tpl.Body, ctx)
		}
	}

	msg.Status = constants.MESSAGE_PENDING
	db.Save(&msg)

	result := SendMessage(msg.Channel, msg.Recipient, msg.Subject, msg.Body)
	now := time.Now()
	if result.Success {
		msg.Status = constants.MESSAGE_SENT
		msg.MessageId = result.MessageId
		msg.SentAt = &now
		msg.SendError = ""
	} else {
		msg.Status = constants.MESSAGE_FAILED
		msg.SendError = utils.TruncateString(result.Error, 500)
		log.Printf("Gửi tin nhắn #%d thất bại: %s", msg.ID, result.Error)
	}
	if err := db.Save(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
