package helper

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// Bảng chuyển trạng thái đặt phòng. Thiếu trong map nghĩa là cấm.
var allowedTransitions = map[string][]string{
	constants.BOOKING_PENDING:    {constants.BOOKING_CONFIRMED, constants.BOOKING_CHECKED_IN, constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW},
	constants.BOOKING_CONFIRMED:  {constants.BOOKING_CHECKED_IN, constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW},
	constants.BOOKING_CHECKED_IN: {constants.BOOKING_CHECKED_OUT, constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW},
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// hasOverlap: tồn tại đặt phòng chưa kết thúc trên cùng phòng giao với
// [checkIn, checkOut) không, bỏ qua chính nó. Chạy trong transaction tạo/sửa
// để hai request song song không cùng lọt qua.
func hasOverlap(tx *gorm.DB, roomID uint, checkIn, checkOut utils.DateOnly, excludeID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []string{constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW, constants.BOOKING_CHECKED_OUT}).
		Where("check_in_date < ? AND ? < check_out_date", checkOut, checkIn).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

// CreateBooking kiểm tra ngày, sức chứa, cọc và chồng lịch rồi ghi trong
// một transaction serializable.
func CreateBooking(input *model.CreateBookingInput, actorId uint) (*model.Booking, error) {
	db := database.DB

	var room model.Room
	if err := db.Preload("RoomType").First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.ROOM_NOT_FOUND)
		}
		return nil, err
	}
	var guest model.Guest
	if err := db.First(&guest, input.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.GUEST_NOT_FOUND)
		}
		return nil, err
	}

	bookingType := input.BookingType
	if bookingType == "" {
		bookingType = constants.BOOKING_TYPE_OVERNIGHT
	}

	checkIn := input.CheckInDate
	checkOut := input.CheckOutDate
	if bookingType == constants.BOOKING_TYPE_HOURLY && checkOut.IsZero() {
		checkOut = checkIn.AddDays(1)
	}

	if bookingType == constants.BOOKING_TYPE_OVERNIGHT && !checkOut.After(checkIn) {
		return nil, NewBusinessError(ErrValidation, "ngày trả phòng phải sau ngày nhận phòng")
	}
	// Cho phép tạo lùi tối đa 7 ngày (nhập bù sổ)
	if checkIn.Before(utils.Today().AddDays(-7)) {
		return nil, NewBusinessError(ErrValidation, "ngày nhận phòng quá xa trong quá khứ")
	}

	numGuests := input.NumGuests
	if numGuests == 0 {
		numGuests = 1
	}
	if numGuests > room.RoomType.MaxGuests {
		return nil, NewBusinessError(ErrValidation,
			fmt.Sprintf("phòng chỉ chứa tối đa %d khách", room.RoomType.MaxGuests))
	}

	booking := &model.Booking{
		RoomID:        room.ID,
		GuestID:       guest.ID,
		BookingType:   bookingType,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		NumGuests:     numGuests,
		NightlyRate:   input.NightlyRate,
		TotalAmount:   input.TotalAmount,
		DepositAmount: input.DepositAmount,
		Status:        constants.BOOKING_CONFIRMED,
		Source:        input.Source,
		PaymentMethod: input.PaymentMethod,
		OtaReference:  input.OtaReference,
		Notes:         input.Notes,
	}
	if input.Status == constants.BOOKING_PENDING {
		booking.Status = constants.BOOKING_PENDING
	}
	if booking.Source == "" {
		booking.Source = "walk_in"
	}
	if booking.PaymentMethod == "" {
		booking.PaymentMethod = constants.PAYMENT_METHOD_CASH
	}

	switch bookingType {
	case constants.BOOKING_TYPE_HOURLY:
		if !room.RoomType.AllowsHourly {
			return nil, NewBusinessError(ErrValidation, "loại phòng không cho thuê theo giờ")
		}
		if input.HoursBooked < room.RoomType.MinHours {
			return nil, NewBusinessError(ErrValidation,
				fmt.Sprintf("thuê theo giờ tối thiểu %d giờ", room.RoomType.MinHours))
		}
		booking.HoursBooked = input.HoursBooked
		hourlyRate := int64(0)
		if room.RoomType.HourlyRate != nil {
			hourlyRate = *room.RoomType.HourlyRate
		}
		booking.HourlyRate = hourlyRate
		if booking.TotalAmount == 0 {
			first := hourlyRate
			if room.RoomType.FirstHourRate != nil {
				first = *room.RoomType.FirstHourRate
			}
			booking.TotalAmount = first + int64(input.HoursBooked-1)*hourlyRate
		}
		expected := checkIn.Time.Add(time.Duration(input.HoursBooked) * time.Hour)
		booking.ExpectedCheckOutTime = &expected
	default:
		// Giá qua bộ phân giải nếu client không đưa sẵn
		if booking.NightlyRate == 0 || booking.TotalAmount == 0 {
			var plan *model.RatePlan
			if input.RatePlanID != nil {
				var p model.RatePlan
				if err := db.First(&p, *input.RatePlanID).Error; err == nil {
					plan = &p
				}
			}
			quote, err := ResolvePrice(db, &room.RoomType, checkIn, checkOut, plan)
			if err != nil {
				return nil, err
			}
			if booking.NightlyRate == 0 {
				booking.NightlyRate = quote.NightlyRateAvg
			}
			if booking.TotalAmount == 0 {
				booking.TotalAmount = quote.TotalAmount
			}
		}
	}

	if booking.DepositAmount > booking.TotalAmount {
		return nil, NewBusinessError(ErrValidation, "tiền cọc không được vượt tổng tiền")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		overlap, err := hasOverlap(tx, room.ID, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if overlap {
			return NewBusinessError(ErrConflict, constants.BOOKING_OVERLAP)
		}
		return tx.Create(booking).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}

	booking.Room = room
	booking.Guest = guest
	return booking, nil
}

// UpdateBooking vá các trường thường, đổi phòng/ngày thì kiểm tra lại chồng
// lịch. Trạng thái kết thúc không cho đổi phòng/ngày.
func UpdateBooking(id uint, input *model.UpdateBookingInput) (*model.Booking, error) {
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, err
	}

	datesChanged := input.CheckInDate != nil || input.CheckOutDate != nil || input.RoomID != nil
	if datesChanged && booking.IsTerminal() {
		return nil, NewBusinessError(ErrIllegalTransition, "đặt phòng đã kết thúc, không đổi được phòng hoặc ngày")
	}

	if input.RoomID != nil {
		var room model.Room
		if err := db.First(&room, *input.RoomID).Error; err != nil {
			return nil, NewBusinessError(ErrNotFound, constants.ROOM_NOT_FOUND)
		}
		booking.RoomID = *input.RoomID
	}
	if input.CheckInDate != nil {
		booking.CheckInDate = *input.CheckInDate
	}
	if input.CheckOutDate != nil {
		booking.CheckOutDate = *input.CheckOutDate
	}
	if booking.BookingType == constants.BOOKING_TYPE_OVERNIGHT && !booking.CheckOutDate.After(booking.CheckInDate) {
		return nil, NewBusinessError(ErrValidation, "ngày trả phòng phải sau ngày nhận phòng")
	}

	if input.NumGuests != nil {
		booking.NumGuests = *input.NumGuests
	}
	if input.NightlyRate != nil {
		booking.NightlyRate = *input.NightlyRate
	}
	if input.TotalAmount != nil {
		booking.TotalAmount = *input.TotalAmount
	}
	if input.Source != nil {
		booking.Source = *input.Source
	}
	if input.PaymentMethod != nil {
		booking.PaymentMethod = *input.PaymentMethod
	}
	if input.OtaReference != nil {
		booking.OtaReference = *input.OtaReference
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.EarlyCheckInFee != nil {
		booking.EarlyCheckInFee = *input.EarlyCheckInFee
	}
	if input.EarlyCheckInHours != nil {
		booking.EarlyCheckInHours = *input.EarlyCheckInHours
	}
	if input.LateCheckOutFee != nil {
		booking.LateCheckOutFee = *input.LateCheckOutFee
	}
	if input.LateCheckOutHours != nil {
		booking.LateCheckOutHours = *input.LateCheckOutHours
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if datesChanged {
			overlap, err := hasOverlap(tx, booking.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
			if err != nil {
				return err
			}
			if overlap {
				return NewBusinessError(ErrConflict, constants.BOOKING_OVERLAP)
			}
		}
		return tx.Save(&booking).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckInBooking: pending/confirmed → checked_in, phòng chuyển occupied
// trong cùng transaction.
func CheckInBooking(id uint, actual *time.Time) (*model.Booking, error) {
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, err
	}
	if !CanTransition(booking.Status, constants.BOOKING_CHECKED_IN) {
		return nil, NewBusinessError(ErrIllegalTransition, constants.ILLEGAL_TRANSITION)
	}

	when := time.Now()
	if actual != nil {
		when = *actual
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		booking.Status = constants.BOOKING_CHECKED_IN
		booking.ActualCheckIn = &when
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&model.Room{}).Where("id = ?", booking.RoomID).
			Update("status", constants.ROOM_OCCUPIED).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckOutBooking gom toàn bộ hiệu ứng trả phòng vào một transaction:
// trạng thái, phòng sang cleaning, task dọn phòng, bút toán thu theo danh
// mục thu mặc định, tăng total_stays của khách. Lỗi giữa chừng rollback hết.
func CheckOutBooking(id uint, additionalCharges *int64, actorId uint) (*model.Booking, error) {
	db := database.DB

	var booking model.Booking
	if err := db.Preload("Guest").Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, err
	}
	if booking.Status != constants.BOOKING_CHECKED_IN {
		return nil, NewBusinessError(ErrIllegalTransition, constants.ILLEGAL_TRANSITION)
	}

	var defaultIncome model.FinancialCategory
	if err := db.Where("category_type = ? AND is_default = ? AND is_active = ?",
		constants.ENTRY_INCOME, true, true).First(&defaultIncome).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrConfiguration, constants.NO_DEFAULT_INCOME)
		}
		return nil, err
	}

	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		booking.Status = constants.BOOKING_CHECKED_OUT
		booking.ActualCheckOut = &now
		if additionalCharges != nil {
			booking.AdditionalCharges = *additionalCharges
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Room{}).Where("id = ?", booking.RoomID).
			Update("status", constants.ROOM_CLEANING).Error; err != nil {
			return err
		}

		task := model.HousekeepingTask{
			RoomID:        booking.RoomID,
			BookingID:     &booking.ID,
			TaskType:      constants.TASK_TYPE_CHECKOUT_CLEAN,
			Status:        constants.TASK_PENDING,
			ScheduledDate: utils.Today(),
			Notes:         fmt.Sprintf("Auto-created khi trả phòng %s", booking.Room.Number),
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		entry := model.FinancialEntry{
			CategoryID:    defaultIncome.ID,
			EntryType:     constants.ENTRY_INCOME,
			Amount:        booking.TotalAmount + booking.AdditionalCharges + booking.EarlyCheckInFee + booking.LateCheckOutFee,
			Currency:      "VND",
			ExchangeRate:  1,
			Date:          utils.Today(),
			PaymentMethod: booking.PaymentMethod,
			Description:   fmt.Sprintf("Tiền phòng %s, đặt phòng #%d", booking.Room.Number, booking.ID),
			BookingID:     &booking.ID,
			CreatedBy:     actorId,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Model(&model.Guest{}).Where("id = ?", booking.GuestID).
			UpdateColumn("total_stays", gorm.Expr("total_stays + 1")).Error
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus chuyển trạng thái tổng quát theo bảng. Huỷ hoặc
// no-show khi đang ở: trả phòng về available nếu không còn khách khác.
// actorId là tài khoản thao tác, dùng cho bút toán khi trả phòng.
func UpdateBookingStatus(id uint, newStatus, reason string, actorId uint) (*model.Booking, error) {
	db := database.DB

	var booking model.Booking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, constants.BOOKING_NOT_FOUND)
		}
		return nil, err
	}
	if !CanTransition(booking.Status, newStatus) {
		return nil, NewBusinessError(ErrIllegalTransition, constants.ILLEGAL_TRANSITION)
	}
	if newStatus == constants.BOOKING_CHECKED_IN {
		return CheckInBooking(id, nil)
	}
	if newStatus == constants.BOOKING_CHECKED_OUT {
		return CheckOutBooking(id, nil, actorId)
	}

	wasCheckedIn := booking.Status == constants.BOOKING_CHECKED_IN

	err := db.Transaction(func(tx *gorm.DB) error {
		booking.Status = newStatus
		if reason != "" {
			if booking.Notes != "" {
				booking.Notes += "\n"
			}
			booking.Notes += reason
		}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if wasCheckedIn {
			var others int64
			if err := tx.Model(&model.Booking{}).
				Where("room_id = ? AND status = ? AND id <> ?",
					booking.RoomID, constants.BOOKING_CHECKED_IN, booking.ID).
				Count(&others).Error; err != nil {
				return err
			}
			if others == 0 {
				if err := tx.Model(&model.Room{}).Where("id = ?", booking.RoomID).
					Update("status", constants.ROOM_AVAILABLE).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}, serializableTx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
