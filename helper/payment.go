package helper

import (
	"errors"
	"fmt"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cọc đủ khi đạt 30% tổng tiền
const depositPaidThreshold = 0.30

// nextReceiptNumber cấp PMT-YYYYMMDD-NNNN, NNNN là số thứ tự trong ngày.
// Đếm theo tiền tố số phiếu đã cấp chứ không theo created_at: thanh toán
// pending tạo hôm trước mà hoàn tất hôm nay vẫn nhận đúng số của hôm nay.
// Đếm có khoá ghi trong transaction để hai thanh toán song song không
// trùng số.
func nextReceiptNumber(tx *gorm.DB, now time.Time) (string, error) {
	prefix := "PMT-" + now.Format("20060102") + "-"

	var count int64
	err := tx.Model(&model.Payment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("receipt_number LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

// RecordDeposit ghi một lần đặt cọc: tạo Payment completed kèm số phiếu thu,
// cộng dồn tiền cọc và bật deposit_paid khi chạm ngưỡng 30%.
func RecordDeposit(input *model.RecordDepositInput, actorId uint) (*model.Payment, *model.Booking, error) {
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, nil, err
	}
	if booking.IsTerminal() {
		return nil, nil, NewBusinessError(ErrIllegalTransition, "đặt phòng đã kết thúc, không nhận cọc")
	}

	method := input.PaymentMethod
	if method == "" {
		method = constants.PAYMENT_METHOD_CASH
	}

	payment := &model.Payment{
		BookingID:     &booking.ID,
		PaymentType:   constants.PAYMENT_DEPOSIT,
		Amount:        input.Amount,
		PaymentMethod: method,
		Status:        constants.PAYMENT_STATUS_COMPLETED,
		Notes:         input.Notes,
		CreatedBy:     actorId,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		receipt, err := nextReceiptNumber(tx, time.Now())
		if err != nil {
			return err
		}
		payment.ReceiptNumber = &receipt
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		booking.DepositAmount += input.Amount
		if float64(booking.DepositAmount) >= depositPaidThreshold*float64(booking.TotalAmount) {
			booking.DepositPaid = true
		}
		return tx.Model(&model.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"deposit_amount": booking.DepositAmount,
				"deposit_paid":   booking.DepositPaid,
			}).Error
	}, serializableTx)
	if err != nil {
		return nil, nil, err
	}
	return payment, &booking, nil
}

// CreatePayment ghi thanh toán tự do; số phiếu thu chỉ cấp khi lưu lần đầu
// với status=completed.
func CreatePayment(input *model.CreatePaymentInput, actorId uint) (*model.Payment, error) {
	db := database.DB

	if input.BookingID != nil {
		var booking model.Booking
		if err := db.First(&booking, *input.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
			}
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = constants.PAYMENT_STATUS_COMPLETED
	}
	method := input.PaymentMethod
	if method == "" {
		method = constants.PAYMENT_METHOD_CASH
	}

	payment := &model.Payment{
		BookingID:     input.BookingID,
		PaymentType:   input.PaymentType,
		Amount:        input.Amount,
		PaymentMethod: method,
		Status:        status,
		Notes:         input.Notes,
		CreatedBy:     actorId,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if status == constants.PAYMENT_STATUS_COMPLETED {
			receipt, err := nextReceiptNumber(tx, time.Now())
			if err != nil {
				return err
			}
			payment.ReceiptNumber = &receipt
		}
		return tx.Create(payment).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// CompletePayment chuyển pending → completed, cấp số phiếu thu lúc này
func CompletePayment(id uint) (*model.Payment, error) {
	db := database.DB

	var payment model.Payment
	if err := db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.NOT_FOUND)
		}
		return nil, err
	}
	if payment.Status != constants.PAYMENT_STATUS_PENDING {
		return nil, NewBusinessError(ErrIllegalTransition, constants.ILLEGAL_TRANSITION)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if payment.ReceiptNumber == nil {
			receipt, err := nextReceiptNumber(tx, time.Now())
			if err != nil {
				return err
			}
			payment.ReceiptNumber = &receipt
		}
		payment.Status = constants.PAYMENT_STATUS_COMPLETED
		return tx.Save(&payment).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// recomputeAdditionalCharges ghi lại additional_charges của đặt phòng =
// tổng total_price các mục folio chưa huỷ, chưa thanh toán, trừ tiền phòng
func recomputeAdditionalCharges(tx *gorm.DB, bookingID uint) error {
	var sum int64
	err := tx.Model(&model.FolioItem{}).
		Where("booking_id = ? AND is_voided = ? AND is_paid = ? AND item_type <> ?",
			bookingID, false, false, constants.FOLIO_ROOM).
		Select("COALESCE(SUM(total_price), 0)").Scan(&sum).Error
	if err != nil {
		return err
	}
	return tx.Model(&model.Booking{}).Where("id = ?", bookingID).
		UpdateColumn("additional_charges", sum).Error
}

// CreateFolioItem ghi mục folio, total_price luôn tính lại từ số lượng và
// đơn giá rồi dồn về additional_charges của đặt phòng.
func CreateFolioItem(input *model.CreateFolioItemInput, actorId uint) (*model.FolioItem, error) {
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, input.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, err
	}

	date := utils.Today()
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	item := &model.FolioItem{
		BookingID:   booking.ID,
		ItemType:    input.ItemType,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalPrice:  int64(input.Quantity) * input.UnitPrice,
		Date:        date,
		CreatedBy:   actorId,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recomputeAdditionalCharges(tx, booking.ID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func UpdateFolioItem(id uint, input *model.UpdateFolioItemInput) (*model.FolioItem, error) {
	db := database.DB

	var item model.FolioItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.NOT_FOUND)
		}
		return nil, err
	}
	if item.IsVoided {
		return nil, NewBusinessError(ErrIllegalTransition, "mục đã huỷ, không sửa được")
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		item.UnitPrice = *input.UnitPrice
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.IsPaid != nil {
		item.IsPaid = *input.IsPaid
	}
	item.TotalPrice = int64(item.Quantity) * item.UnitPrice

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recomputeAdditionalCharges(tx, item.BookingID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// VoidFolioItem huỷ mục folio kèm lý do và tính lại phụ thu
func VoidFolioItem(id uint, reason string) (*model.FolioItem, error) {
	db := database.DB

	var item model.FolioItem
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.NOT_FOUND)
		}
		return nil, err
	}
	if item.IsVoided {
		return &item, nil
	}

	item.IsVoided = true
	item.VoidReason = reason

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recomputeAdditionalCharges(tx, item.BookingID)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
