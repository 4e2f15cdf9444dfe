package helper

import (
	"errors"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_CHECKED_IN, true},
		{constants.BOOKING_PENDING, constants.BOOKING_CANCELLED, true},
		{constants.BOOKING_PENDING, constants.BOOKING_CHECKED_OUT, false},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_CHECKED_IN, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_NO_SHOW, true},
		{constants.BOOKING_CONFIRMED, constants.BOOKING_PENDING, false},
		{constants.BOOKING_CHECKED_IN, constants.BOOKING_CHECKED_OUT, true},
		{constants.BOOKING_CHECKED_IN, constants.BOOKING_CONFIRMED, false},
		{constants.BOOKING_CHECKED_OUT, constants.BOOKING_CHECKED_IN, false},
		{constants.BOOKING_CANCELLED, constants.BOOKING_CONFIRMED, false},
		{constants.BOOKING_NO_SHOW, constants.BOOKING_CHECKED_IN, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, muốn %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCreateBookingResolvesPrice(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today().AddDays(1)
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(2),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if booking.Status != constants.BOOKING_CONFIRMED {
		t.Fatalf("trạng thái = %q, muốn confirmed", booking.Status)
	}
	if booking.Source != "walk_in" {
		t.Fatalf("nguồn = %q, muốn walk_in", booking.Source)
	}
	if booking.TotalAmount != 1500000 {
		t.Fatalf("tổng tiền = %d, muốn 1500000", booking.TotalAmount)
	}
	if booking.NightlyRate != 750000 {
		t.Fatalf("giá đêm = %d, muốn 750000", booking.NightlyRate)
	}
}

func TestCreateBookingOverlap(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today().AddDays(1)
	if _, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(3),
	}, 1); err != nil {
		t.Fatalf("CreateBooking đầu tiên: %v", err)
	}

	// Giao khoảng ngày với đặt phòng đang giữ
	_, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn.AddDays(1),
		CheckOutDate: checkIn.AddDays(4),
	}, 1)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("chồng lịch phải báo conflict, nhận %v", err)
	}

	// Ngày trả của đặt cũ trùng ngày nhận của đặt mới thì hợp lệ
	if _, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn.AddDays(3),
		CheckOutDate: checkIn.AddDays(5),
	}, 1); err != nil {
		t.Fatalf("back-to-back phải hợp lệ: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today().AddDays(1)

	// Ngày trả không sau ngày nhận
	_, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn,
	}, 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ngày trả = ngày nhận phải bị chặn, nhận %v", err)
	}

	// Tạo lùi quá 7 ngày
	_, err = CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  utils.Today().AddDays(-10),
		CheckOutDate: utils.Today().AddDays(-8),
	}, 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ngày nhận quá xa quá khứ phải bị chặn, nhận %v", err)
	}

	// Quá sức chứa của loại phòng
	_, err = CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(1),
		NumGuests:    5,
	}, 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("quá số khách tối đa phải bị chặn, nhận %v", err)
	}

	// Cọc vượt tổng tiền
	_, err = CreateBooking(&model.CreateBookingInput{
		RoomID:        room.ID,
		GuestID:       guest.ID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.AddDays(1),
		DepositAmount: 2000000,
	}, 1)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("cọc vượt tổng tiền phải bị chặn, nhận %v", err)
	}

	// Phòng không tồn tại
	_, err = CreateBooking(&model.CreateBookingInput{
		RoomID:       9999,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(1),
	}, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("phòng không tồn tại phải báo not found, nhận %v", err)
	}
}

func TestCheckInBooking(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today()
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(2),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	checked, err := CheckInBooking(booking.ID, nil)
	if err != nil {
		t.Fatalf("CheckInBooking: %v", err)
	}
	if checked.Status != constants.BOOKING_CHECKED_IN {
		t.Fatalf("trạng thái = %q, muốn checked_in", checked.Status)
	}
	if checked.ActualCheckIn == nil {
		t.Fatal("actual_check_in phải được ghi")
	}

	var gotRoom model.Room
	if err := db.First(&gotRoom, room.ID).Error; err != nil {
		t.Fatalf("đọc phòng: %v", err)
	}
	if gotRoom.Status != constants.ROOM_OCCUPIED {
		t.Fatalf("phòng = %q, muốn occupied", gotRoom.Status)
	}

	// Nhận phòng lần hai phải bị chặn
	if _, err := CheckInBooking(booking.ID, nil); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("check-in lặp phải báo illegal transition, nhận %v", err)
	}
}

func TestCheckOutBookingFanOut(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")
	category := seedDefaultIncomeCategory(t, db)

	checkIn := utils.Today()
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(2),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CheckInBooking(booking.ID, nil); err != nil {
		t.Fatalf("CheckInBooking: %v", err)
	}

	extra := int64(200000)
	checkedOut, err := CheckOutBooking(booking.ID, &extra, 7)
	if err != nil {
		t.Fatalf("CheckOutBooking: %v", err)
	}
	if checkedOut.Status != constants.BOOKING_CHECKED_OUT {
		t.Fatalf("trạng thái = %q, muốn checked_out", checkedOut.Status)
	}

	var gotRoom model.Room
	db.First(&gotRoom, room.ID)
	if gotRoom.Status != constants.ROOM_CLEANING {
		t.Fatalf("phòng sau trả = %q, muốn cleaning", gotRoom.Status)
	}

	var task model.HousekeepingTask
	if err := db.Where("booking_id = ?", booking.ID).First(&task).Error; err != nil {
		t.Fatalf("task dọn phòng phải được tạo: %v", err)
	}
	if task.TaskType != constants.TASK_TYPE_CHECKOUT_CLEAN || task.Status != constants.TASK_PENDING {
		t.Fatalf("task = %s/%s, muốn checkout_clean/pending", task.TaskType, task.Status)
	}

	var entry model.FinancialEntry
	if err := db.Where("booking_id = ?", booking.ID).First(&entry).Error; err != nil {
		t.Fatalf("bút toán thu phải được tạo: %v", err)
	}
	if entry.CategoryID != category.ID || entry.EntryType != constants.ENTRY_INCOME {
		t.Fatalf("bút toán sai danh mục: %+v", entry)
	}
	if entry.Amount != 1500000+200000 {
		t.Fatalf("bút toán = %d, muốn 1700000", entry.Amount)
	}
	if entry.CreatedBy != 7 {
		t.Fatalf("created_by = %d, muốn 7", entry.CreatedBy)
	}

	var gotGuest model.Guest
	db.First(&gotGuest, guest.ID)
	if gotGuest.TotalStays != 1 {
		t.Fatalf("total_stays = %d, muốn 1", gotGuest.TotalStays)
	}
}

func TestCheckOutWithoutDefaultIncomeCategory(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today()
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(1),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CheckInBooking(booking.ID, nil); err != nil {
		t.Fatalf("CheckInBooking: %v", err)
	}

	if _, err := CheckOutBooking(booking.ID, nil, 1); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("thiếu danh mục thu mặc định phải báo configuration, nhận %v", err)
	}

	// Lỗi cấu hình không được làm đổi trạng thái
	var got model.Booking
	db.First(&got, booking.ID)
	if got.Status != constants.BOOKING_CHECKED_IN {
		t.Fatalf("trạng thái = %q, muốn vẫn checked_in", got.Status)
	}
}

func TestCancelCheckedInFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today()
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(2),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CheckInBooking(booking.ID, nil); err != nil {
		t.Fatalf("CheckInBooking: %v", err)
	}

	cancelled, err := UpdateBookingStatus(booking.ID, constants.BOOKING_CANCELLED, "Khách có việc đột xuất", 1)
	if err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if cancelled.Status != constants.BOOKING_CANCELLED {
		t.Fatalf("trạng thái = %q, muốn cancelled", cancelled.Status)
	}
	if cancelled.Notes == "" {
		t.Fatal("lý do huỷ phải được ghi vào notes")
	}

	var gotRoom model.Room
	db.First(&gotRoom, room.ID)
	if gotRoom.Status != constants.ROOM_AVAILABLE {
		t.Fatalf("phòng sau huỷ = %q, muốn available", gotRoom.Status)
	}
}

// Trả phòng qua chuyển trạng thái cũng phải ghi bút toán đúng người thao tác
func TestCheckOutViaStatusRecordsActor(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")
	seedDefaultIncomeCategory(t, db)

	checkIn := utils.Today()
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(1),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := CheckInBooking(booking.ID, nil); err != nil {
		t.Fatalf("CheckInBooking: %v", err)
	}

	checkedOut, err := UpdateBookingStatus(booking.ID, constants.BOOKING_CHECKED_OUT, "", 9)
	if err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if checkedOut.Status != constants.BOOKING_CHECKED_OUT {
		t.Fatalf("trạng thái = %q, muốn checked_out", checkedOut.Status)
	}

	var entry model.FinancialEntry
	if err := db.Where("booking_id = ?", booking.ID).First(&entry).Error; err != nil {
		t.Fatalf("đọc bút toán trả phòng: %v", err)
	}
	if entry.CreatedBy != 9 {
		t.Fatalf("bút toán ghi người thao tác = %d, muốn 9", entry.CreatedBy)
	}
}

func TestUpdateBookingTerminalDatesLocked(t *testing.T) {
	db := setupTestDB(t)
	room := seedRoom(t, db, "101", 750000)
	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")

	checkIn := utils.Today().AddDays(1)
	booking, err := CreateBooking(&model.CreateBookingInput{
		RoomID:       room.ID,
		GuestID:      guest.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkIn.AddDays(1),
	}, 1)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if _, err := UpdateBookingStatus(booking.ID, constants.BOOKING_CANCELLED, "", 1); err != nil {
		t.Fatalf("huỷ đặt phòng: %v", err)
	}

	newDate := checkIn.AddDays(5)
	_, err = UpdateBooking(booking.ID, &model.UpdateBookingInput{CheckInDate: &newDate})
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("đổi ngày trên đặt phòng đã kết thúc phải bị chặn, nhận %v", err)
	}

	// Sửa ghi chú thì vẫn được
	notes := "Hoàn cọc qua chuyển khoản"
	updated, err := UpdateBooking(booking.ID, &model.UpdateBookingInput{Notes: &notes})
	if err != nil {
		t.Fatalf("sửa ghi chú: %v", err)
	}
	if updated.Notes != notes {
		t.Fatalf("notes = %q, muốn %q", updated.Notes, notes)
	}
}
