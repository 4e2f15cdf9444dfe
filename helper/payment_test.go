package helper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// receiptOf trả về số phiếu thu hoặc chuỗi rỗng khi chưa cấp
func receiptOf(p *model.Payment) string {
	if p.ReceiptNumber == nil {
		return ""
	}
	return *p.ReceiptNumber
}

func seedConfirmedBooking(t *testing.T, db *gorm.DB, total int64) *model.Booking {
	t.Helper()

	room := seedRoom(t, db, fmt.Sprintf("P%d", time.Now().UnixNano()%100000), 750000)
	guest := seedGuest(t, db, "Trần Thị Bình", fmt.Sprintf("09%09d", time.Now().UnixNano()%1000000000))
	booking := model.Booking{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		BookingType:  constants.BOOKING_TYPE_OVERNIGHT,
		CheckInDate:  utils.Today().AddDays(1),
		CheckOutDate: utils.Today().AddDays(3),
		TotalAmount:  total,
		Status:       constants.BOOKING_CONFIRMED,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("tạo đặt phòng: %v", err)
	}
	return &booking
}

func TestRecordDepositThreshold(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)

	// 300k / 1.5tr = 20%, chưa chạm ngưỡng 30%
	payment, updated, err := RecordDeposit(&model.RecordDepositInput{
		BookingID: booking.ID,
		Amount:    300000,
	}, 1)
	if err != nil {
		t.Fatalf("RecordDeposit: %v", err)
	}
	if payment.Status != constants.PAYMENT_STATUS_COMPLETED {
		t.Fatalf("phiếu cọc phải completed, nhận %q", payment.Status)
	}
	if updated.DepositPaid {
		t.Fatal("20% chưa được bật deposit_paid")
	}
	if updated.DepositAmount != 300000 {
		t.Fatalf("tiền cọc = %d, muốn 300000", updated.DepositAmount)
	}

	wantReceipt := fmt.Sprintf("PMT-%s-0001", time.Now().Format("20060102"))
	if receiptOf(payment) != wantReceipt {
		t.Fatalf("số phiếu thu = %q, muốn %q", receiptOf(payment), wantReceipt)
	}

	// Cọc thêm 200k, tổng 500k ≥ 450k → bật deposit_paid
	second, updated, err := RecordDeposit(&model.RecordDepositInput{
		BookingID: booking.ID,
		Amount:    200000,
	}, 1)
	if err != nil {
		t.Fatalf("RecordDeposit lần hai: %v", err)
	}
	if !updated.DepositPaid {
		t.Fatal("500k trên tổng 1.5tr phải bật deposit_paid")
	}
	wantReceipt = fmt.Sprintf("PMT-%s-0002", time.Now().Format("20060102"))
	if receiptOf(second) != wantReceipt {
		t.Fatalf("số phiếu thu = %q, muốn %q", receiptOf(second), wantReceipt)
	}
}

func TestRecordDepositTerminalBooking(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)
	db.Model(booking).Update("status", constants.BOOKING_CANCELLED)

	_, _, err := RecordDeposit(&model.RecordDepositInput{BookingID: booking.ID, Amount: 100000}, 1)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("cọc vào đặt phòng đã huỷ phải bị chặn, nhận %v", err)
	}
}

func TestCompletePayment(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)

	payment, err := CreatePayment(&model.CreatePaymentInput{
		BookingID:   &booking.ID,
		PaymentType: constants.PAYMENT_ROOM_CHARGE,
		Amount:      1500000,
		Status:      constants.PAYMENT_STATUS_PENDING,
	}, 1)
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if payment.ReceiptNumber != nil {
		t.Fatalf("thanh toán pending chưa được cấp số phiếu thu, nhận %q", *payment.ReceiptNumber)
	}

	completed, err := CompletePayment(payment.ID)
	if err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}
	if completed.Status != constants.PAYMENT_STATUS_COMPLETED {
		t.Fatalf("trạng thái = %q, muốn completed", completed.Status)
	}
	if completed.ReceiptNumber == nil {
		t.Fatal("hoàn tất thanh toán phải cấp số phiếu thu")
	}

	if _, err := CompletePayment(payment.ID); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("hoàn tất lặp phải báo illegal transition, nhận %v", err)
	}
}

// Hai thanh toán pending cùng tồn tại: chưa cấp số phiếu thu thì cột
// receipt_number phải là NULL, unique index không được coi đó là trùng.
func TestTwoPendingPaymentsCoexist(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)

	for i := 0; i < 2; i++ {
		payment, err := CreatePayment(&model.CreatePaymentInput{
			BookingID:   &booking.ID,
			PaymentType: constants.PAYMENT_ROOM_CHARGE,
			Amount:      500000,
			Status:      constants.PAYMENT_STATUS_PENDING,
		}, 1)
		if err != nil {
			t.Fatalf("CreatePayment pending lần %d: %v", i+1, err)
		}
		if payment.ReceiptNumber != nil {
			t.Fatalf("thanh toán pending không được cấp số phiếu thu, nhận %q", *payment.ReceiptNumber)
		}
	}

	var count int64
	db.Model(&model.Payment{}).Where("status = ?", constants.PAYMENT_STATUS_PENDING).Count(&count)
	if count != 2 {
		t.Fatalf("số thanh toán pending = %d, muốn 2", count)
	}
}

// Thanh toán pending tạo hôm qua mà hoàn tất hôm nay vẫn phải nhận số
// phiếu thu của hôm nay, và thanh toán tiếp theo không được trùng số.
func TestReceiptNumberCountsByPrefixNotCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)

	pending, err := CreatePayment(&model.CreatePaymentInput{
		BookingID:   &booking.ID,
		PaymentType: constants.PAYMENT_ROOM_CHARGE,
		Amount:      700000,
		Status:      constants.PAYMENT_STATUS_PENDING,
	}, 1)
	if err != nil {
		t.Fatalf("CreatePayment pending: %v", err)
	}
	yesterday := time.Now().AddDate(0, 0, -1)
	if err := db.Model(&model.Payment{}).Where("id = ?", pending.ID).
		UpdateColumn("created_at", yesterday).Error; err != nil {
		t.Fatalf("lùi created_at: %v", err)
	}

	completed, err := CompletePayment(pending.ID)
	if err != nil {
		t.Fatalf("CompletePayment: %v", err)
	}
	wantFirst := fmt.Sprintf("PMT-%s-0001", time.Now().Format("20060102"))
	if receiptOf(completed) != wantFirst {
		t.Fatalf("số phiếu thu = %q, muốn %q", receiptOf(completed), wantFirst)
	}

	next, err := CreatePayment(&model.CreatePaymentInput{
		BookingID:   &booking.ID,
		PaymentType: constants.PAYMENT_EXTRA_CHARGE,
		Amount:      100000,
	}, 1)
	if err != nil {
		t.Fatalf("CreatePayment completed: %v", err)
	}
	wantSecond := fmt.Sprintf("PMT-%s-0002", time.Now().Format("20060102"))
	if receiptOf(next) != wantSecond {
		t.Fatalf("số phiếu thu = %q, muốn %q", receiptOf(next), wantSecond)
	}
}

func TestFolioRecomputesAdditionalCharges(t *testing.T) {
	db := setupTestDB(t)
	booking := seedConfirmedBooking(t, db, 1500000)

	item, err := CreateFolioItem(&model.CreateFolioItemInput{
		BookingID:   booking.ID,
		ItemType:    constants.FOLIO_MINIBAR,
		Description: "Bia Sài Gòn",
		Quantity:    2,
		UnitPrice:   25000,
	}, 1)
	if err != nil {
		t.Fatalf("CreateFolioItem: %v", err)
	}
	if item.TotalPrice != 50000 {
		t.Fatalf("total_price = %d, muốn 50000", item.TotalPrice)
	}

	var got model.Booking
	db.First(&got, booking.ID)
	if got.AdditionalCharges != 50000 {
		t.Fatalf("phụ thu = %d, muốn 50000", got.AdditionalCharges)
	}

	// Sửa số lượng thì total_price và phụ thu phải tính lại
	qty := 4
	updated, err := UpdateFolioItem(item.ID, &model.UpdateFolioItemInput{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateFolioItem: %v", err)
	}
	if updated.TotalPrice != 100000 {
		t.Fatalf("total_price sau sửa = %d, muốn 100000", updated.TotalPrice)
	}
	db.First(&got, booking.ID)
	if got.AdditionalCharges != 100000 {
		t.Fatalf("phụ thu sau sửa = %d, muốn 100000", got.AdditionalCharges)
	}

	// Mục tiền phòng không tính vào phụ thu
	if _, err := CreateFolioItem(&model.CreateFolioItemInput{
		BookingID: booking.ID,
		ItemType:  constants.FOLIO_ROOM,
		Quantity:  1,
		UnitPrice: 750000,
	}, 1); err != nil {
		t.Fatalf("CreateFolioItem tiền phòng: %v", err)
	}
	db.First(&got, booking.ID)
	if got.AdditionalCharges != 100000 {
		t.Fatalf("mục tiền phòng bị tính vào phụ thu: %d", got.AdditionalCharges)
	}

	// Huỷ mục thì phụ thu về 0
	voided, err := VoidFolioItem(item.ID, "Khách trả lại")
	if err != nil {
		t.Fatalf("VoidFolioItem: %v", err)
	}
	if !voided.IsVoided || voided.VoidReason != "Khách trả lại" {
		t.Fatalf("mục chưa được đánh dấu huỷ: %+v", voided)
	}
	db.First(&got, booking.ID)
	if got.AdditionalCharges != 0 {
		t.Fatalf("phụ thu sau huỷ = %d, muốn 0", got.AdditionalCharges)
	}

	// Huỷ lặp là no-op
	again, err := VoidFolioItem(item.ID, "lý do khác")
	if err != nil {
		t.Fatalf("VoidFolioItem lặp: %v", err)
	}
	if again.VoidReason != "Khách trả lại" {
		t.Fatalf("huỷ lặp không được ghi đè lý do: %q", again.VoidReason)
	}

	// Sửa mục đã huỷ phải bị chặn
	if _, err := UpdateFolioItem(item.ID, &model.UpdateFolioItemInput{Quantity: &qty}); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("sửa mục đã huỷ phải bị chặn, nhận %v", err)
	}
}
