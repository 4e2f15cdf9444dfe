package helper

import (
	"strings"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"
)

func TestRenderTemplate(t *testing.T) {
	ctx := TemplateContext{
		GuestName:   "Nguyễn Văn An",
		HotelName:   "Khách sạn Hoa Sen",
		RoomNumber:  "101",
		CheckInDate: "2026-09-10",
		Nights:      2,
		TotalAmount: 1500000,
	}
	got := RenderTemplate(
		"Chào {guest_name}, phòng {room_number} tại {hotel_name}, nhận {check_in_date}, {nights} đêm, tổng {total_amount}đ. Placeholder lạ {abc} giữ nguyên.",
		ctx,
	)
	want := "Chào Nguyễn Văn An, phòng 101 tại Khách sạn Hoa Sen, nhận 2026-09-10, 2 đêm, tổng 1500000đ. Placeholder lạ {abc} giữ nguyên."
	if got != want {
		t.Fatalf("render ra:\n%s\nmuốn:\n%s", got, want)
	}
}

func TestSendMessageDisabledChannelMockSuccess(t *testing.T) {
	// Không bật cờ kênh nào: mọi kênh phải trả mock thành công
	t.Setenv("EMAIL_ENABLED", "false")
	t.Setenv("SMS_ENABLED", "false")

	for _, channel := range []string{
		constants.CHANNEL_EMAIL, constants.CHANNEL_SMS,
		constants.CHANNEL_ZALO, constants.CHANNEL_PUSH,
	} {
		result := SendMessage(channel, "test@example.com", "Chủ đề", "Nội dung")
		if !result.Success {
			t.Fatalf("kênh %s tắt cờ phải mock thành công: %+v", channel, result)
		}
		if !strings.HasPrefix(result.MessageId, "mock-") {
			t.Fatalf("message id mock phải có tiền tố mock-: %q", result.MessageId)
		}
	}

	// Kênh không tồn tại
	if result := SendMessage("fax", "x", "", ""); !result.Success {
		t.Fatalf("kênh lạ tắt cờ vẫn phải mock thành công: %+v", result)
	}
}

func TestSendMessageEnabledWithoutGateway(t *testing.T) {
	t.Setenv("SMS_ENABLED", "true")

	result := SendMessage(constants.CHANNEL_SMS, "0901234567", "", "Tin nhắn thử")
	if result.Success {
		t.Fatal("bật cờ mà thiếu gateway phải báo lỗi")
	}
	if result.Error == "" {
		t.Fatal("thiếu thông điệp lỗi")
	}
}

func TestSendGuestMessageRendersTemplate(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("EMAIL_ENABLED", "false")
	t.Setenv("HOTEL_NAME", "Khách sạn Hoa Sen")

	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	booking := model.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  utils.Today().AddDays(1),
		CheckOutDate: utils.Today().AddDays(3),
		TotalAmount:  1500000,
		Status:       constants.BOOKING_CONFIRMED,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("tạo đặt phòng: %v", err)
	}

	tpl := model.MessageTemplate{
		Code:     "xac-nhan-dat-phong",
		Name:     "Xác nhận đặt phòng",
		Channel:  constants.CHANNEL_EMAIL,
		Subject:  "Xác nhận đặt phòng {room_number}",
		Body:     "Chào {guest_name}, phòng {room_number} đã giữ cho bạn, tổng {total_amount}đ.",
		IsActive: true,
	}
	if err := db.Create(&tpl).Error; err != nil {
		t.Fatalf("tạo template: %v", err)
	}

	msg := model.GuestMessage{
		GuestID:    guest.ID,
		BookingID:  &booking.ID,
		TemplateID: &tpl.ID,
		Channel:    constants.CHANNEL_EMAIL,
		Recipient:  "an@example.com",
		Status:     constants.MESSAGE_DRAFT,
	}
	if err := db.Create(&msg).Error; err != nil {
		t.Fatalf("tạo tin nhắn: %v", err)
	}

	sent, err := SendGuestMessage(msg.ID)
	if err != nil {
		t.Fatalf("SendGuestMessage: %v", err)
	}
	if sent.Status != constants.MESSAGE_SENT {
		t.Fatalf("trạng thái = %q, muốn sent", sent.Status)
	}
	if sent.SentAt == nil || sent.MessageId == "" {
		t.Fatalf("thiếu dấu vết gửi: %+v", sent)
	}
	if sent.Subject != "Xác nhận đặt phòng 101" {
		t.Fatalf("subject = %q, placeholder chưa được thay", sent.Subject)
	}
	if !strings.Contains(sent.Body, "Nguyễn Văn An") || !strings.Contains(sent.Body, "1500000") {
		t.Fatalf("body chưa render đủ ngữ cảnh: %q", sent.Body)
	}

	// Gửi lại tin đã sent là no-op
	again, err := SendGuestMessage(msg.ID)
	if err != nil {
		t.Fatalf("SendGuestMessage lần hai: %v", err)
	}
	if again.MessageId != sent.MessageId {
		t.Fatal("gửi lại tin đã sent không được gửi thêm lần nữa")
	}
}

func TestSendGuestMessageNotFound(t *testing.T) {
	setupTestDB(t)

	if _, err := SendGuestMessage(9999); err == nil {
		t.Fatal("tin nhắn không tồn tại phải báo lỗi")
	}
}
