package helper

import (
	"errors"
	"fmt"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"
)

func TestComputeNightAudit(t *testing.T) {
	db := setupTestDB(t)

	// 7 phòng: 2 occupied, 3 available, 1 cleaning, 1 maintenance
	statuses := []string{
		constants.ROOM_OCCUPIED, constants.ROOM_OCCUPIED,
		constants.ROOM_AVAILABLE, constants.ROOM_AVAILABLE, constants.ROOM_AVAILABLE,
		constants.ROOM_CLEANING, constants.ROOM_MAINTENANCE,
	}
	rooms := make([]*model.Room, len(statuses))
	for i, status := range statuses {
		rooms[i] = seedRoom(t, db, fmt.Sprintf("10%d", i+1), 750000)
		db.Model(rooms[i]).Update("status", status)
	}

	guest := seedGuest(t, db, "Nguyễn Văn An", "0901234567")
	today := utils.Today()

	// Khách đang ở, chưa thanh toán, còn nợ 600k
	inHouse := model.Booking{
		RoomID:        rooms[0].ID,
		GuestID:       guest.ID,
		CheckInDate:   today,
		CheckOutDate:  today.AddDays(2),
		TotalAmount:   1000000,
		DepositAmount: 400000,
		Status:        constants.BOOKING_CHECKED_IN,
	}
	if err := db.Create(&inHouse).Error; err != nil {
		t.Fatalf("tạo đặt phòng đang ở: %v", err)
	}
	// Khách trả phòng hôm nay
	departed := model.Booking{
		RoomID:       rooms[5].ID,
		GuestID:      guest.ID,
		CheckInDate:  today.AddDays(-2),
		CheckOutDate: today,
		TotalAmount:  800000,
		IsPaid:       true,
		Status:       constants.BOOKING_CHECKED_OUT,
	}
	if err := db.Create(&departed).Error; err != nil {
		t.Fatalf("tạo đặt phòng đã trả: %v", err)
	}

	category := seedDefaultIncomeCategory(t, db)
	expense := model.FinancialCategory{Name: "Điện nước", CategoryType: constants.ENTRY_EXPENSE, IsActive: true}
	db.Create(&expense)

	entries := []model.FinancialEntry{
		{CategoryID: category.ID, EntryType: constants.ENTRY_INCOME, Amount: 500000, Currency: "VND", ExchangeRate: 1, Date: today, PaymentMethod: constants.PAYMENT_METHOD_CASH},
		{CategoryID: category.ID, EntryType: constants.ENTRY_INCOME, Amount: 200000, Currency: "VND", ExchangeRate: 1, Date: today, PaymentMethod: constants.PAYMENT_METHOD_MOMO},
		// Thu ngoại tệ quy đổi: 20 USD × 25000
		{CategoryID: category.ID, EntryType: constants.ENTRY_INCOME, Amount: 20, Currency: "USD", ExchangeRate: 25000, Date: today, PaymentMethod: constants.PAYMENT_METHOD_BANK_TRANSFER},
		{CategoryID: category.ID, EntryType: constants.ENTRY_INCOME, Amount: 100000, Currency: "VND", ExchangeRate: 1, Date: today, PaymentMethod: constants.PAYMENT_METHOD_CARD},
		{CategoryID: expense.ID, EntryType: constants.ENTRY_EXPENSE, Amount: 300000, Currency: "VND", ExchangeRate: 1, Date: today, PaymentMethod: constants.PAYMENT_METHOD_CASH},
	}
	for i := range entries {
		if err := db.Create(&entries[i]).Error; err != nil {
			t.Fatalf("tạo bút toán: %v", err)
		}
	}

	audit, err := ComputeNightAudit(today)
	if err != nil {
		t.Fatalf("ComputeNightAudit: %v", err)
	}

	if audit.TotalRooms != 7 || audit.OccupiedRooms != 2 || audit.AvailableRooms != 3 ||
		audit.CleaningRooms != 1 || audit.MaintenanceRooms != 1 {
		t.Fatalf("khối phòng sai: %+v", audit)
	}
	if audit.OccupancyRate != 28.57 {
		t.Fatalf("công suất = %v, muốn 28.57", audit.OccupancyRate)
	}

	if audit.CheckInsToday != 1 || audit.CheckOutsToday != 1 {
		t.Fatalf("check-in/out hôm nay = %d/%d, muốn 1/1", audit.CheckInsToday, audit.CheckOutsToday)
	}
	if audit.NewBookings != 2 {
		t.Fatalf("đặt phòng mới = %d, muốn 2", audit.NewBookings)
	}

	if audit.TotalIncome != 1300000 {
		t.Fatalf("tổng thu = %d, muốn 1300000", audit.TotalIncome)
	}
	if audit.TotalExpense != 300000 || audit.NetRevenue != 1000000 {
		t.Fatalf("chi/lãi = %d/%d, muốn 300000/1000000", audit.TotalExpense, audit.NetRevenue)
	}
	if audit.CashCollected != 500000 || audit.MomoCollected != 200000 || audit.BankTransferCollected != 500000 {
		t.Fatalf("thu theo kênh sai: %+v", audit)
	}
	// Thẻ không có cột riêng, rơi vào OtherPayments
	if audit.OtherPayments != 100000 {
		t.Fatalf("thu khác = %d, muốn 100000", audit.OtherPayments)
	}

	if audit.RoomRevenue != 800000 || audit.OtherRevenue != 500000 {
		t.Fatalf("doanh thu phòng/khác = %d/%d, muốn 800000/500000", audit.RoomRevenue, audit.OtherRevenue)
	}

	if audit.PendingCount != 1 || audit.PendingAmount != 600000 {
		t.Fatalf("công nợ = %d/%d, muốn 1/600000", audit.PendingCount, audit.PendingAmount)
	}
	if audit.Status != constants.AUDIT_DRAFT {
		t.Fatalf("trạng thái = %q, muốn draft", audit.Status)
	}

	// Tính lại phải ghi đè cùng bản ghi, không tạo bản mới
	again, err := ComputeNightAudit(today)
	if err != nil {
		t.Fatalf("ComputeNightAudit lần hai: %v", err)
	}
	if again.ID != audit.ID {
		t.Fatalf("tính lại tạo bản ghi mới: %d vs %d", again.ID, audit.ID)
	}
}

func TestNightAuditClosedImmutable(t *testing.T) {
	db := setupTestDB(t)
	seedRoom(t, db, "101", 750000)

	date := utils.Today()
	audit, err := CloseNightAudit(date, 3)
	if err != nil {
		t.Fatalf("CloseNightAudit: %v", err)
	}
	if audit.Status != constants.AUDIT_CLOSED {
		t.Fatalf("trạng thái = %q, muốn closed", audit.Status)
	}
	if audit.ClosedBy == nil || *audit.ClosedBy != 3 || audit.ClosedAt == nil {
		t.Fatalf("thiếu dấu vết người chốt: %+v", audit)
	}

	if _, err := ComputeNightAudit(date); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("tính lại sổ đã chốt phải bị chặn, nhận %v", err)
	}
	if _, err := CloseNightAudit(date, 3); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("chốt lặp phải bị chặn, nhận %v", err)
	}
}
