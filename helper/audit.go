package helper

import (
	"errors"
	"math"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

func dayBounds(date utils.DateOnly) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

func sumVND(db *gorm.DB, query *gorm.DB) (int64, error) {
	var total float64
	err := query.Select("COALESCE(SUM(amount * exchange_rate), 0)").Scan(&total).Error
	return int64(math.Round(total)), err
}

// ComputeNightAudit dựng lại số liệu chốt ngày cho audit_date. Bản ghi đã
// closed thì không tính lại.
func ComputeNightAudit(date utils.DateOnly) (*model.NightAudit, error) {
	db := database.DB

	var audit model.NightAudit
	err := db.Where("audit_date = ?", date).First(&audit).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && audit.Status == constants.AUDIT_CLOSED {
		return nil, NewBusinessError(ErrIllegalTransition, constants.AUDIT_CLOSED_IMMUTABLE)
	}
	audit.AuditDate = date
	if audit.Status == "" {
		audit.Status = constants.AUDIT_DRAFT
	}

	// Khối phòng: chụp hiện trạng, không phải lịch sử
	type statusCount struct {
		Status string
		N      int
	}
	var counts []statusCount
	if err := db.Model(&model.Room{}).Where("is_active = ?", true).
		Select("status, COUNT(*) as n").Group("status").Scan(&counts).Error; err != nil {
		return nil, err
	}
	audit.TotalRooms, audit.OccupiedRooms, audit.AvailableRooms = 0, 0, 0
	audit.CleaningRooms, audit.MaintenanceRooms, audit.BlockedRooms = 0, 0, 0
	for _, sc := range counts {
		audit.TotalRooms += sc.N
		switch sc.Status {
		case constants.ROOM_OCCUPIED:
			audit.OccupiedRooms = sc.N
		case constants.ROOM_AVAILABLE:
			audit.AvailableRooms = sc.N
		case constants.ROOM_CLEANING:
			audit.CleaningRooms = sc.N
		case constants.ROOM_MAINTENANCE:
			audit.MaintenanceRooms = sc.N
		case constants.ROOM_BLOCKED:
			audit.BlockedRooms = sc.N
		}
	}
	if audit.TotalRooms > 0 {
		rate := float64(audit.OccupiedRooms) / float64(audit.TotalRooms) * 100
		audit.OccupancyRate = math.Round(rate*100) / 100
	} else {
		audit.OccupancyRate = 0
	}

	// Khối đặt phòng theo ngày chốt
	dayStart, dayEnd := dayBounds(date)
	var n int64
	db.Model(&model.Booking{}).
		Where("status = ? AND check_in_date = ?", constants.BOOKING_CHECKED_IN, date).Count(&n)
	audit.CheckInsToday = int(n)
	db.Model(&model.Booking{}).
		Where("status = ? AND check_out_date = ?", constants.BOOKING_CHECKED_OUT, date).Count(&n)
	audit.CheckOutsToday = int(n)
	db.Model(&model.Booking{}).
		Where("status = ? AND check_in_date = ?", constants.BOOKING_NO_SHOW, date).Count(&n)
	audit.NoShows = int(n)
	db.Model(&model.Booking{}).
		Where("status = ? AND updated_at >= ? AND updated_at < ?",
			constants.BOOKING_CANCELLED, dayStart, dayEnd).Count(&n)
	audit.Cancellations = int(n)
	db.Model(&model.Booking{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).Count(&n)
	audit.NewBookings = int(n)

	// Khối tài chính từ sổ thu chi của ngày
	incomeQ := db.Model(&model.FinancialEntry{}).
		Where("date = ? AND entry_type = ?", date, constants.ENTRY_INCOME)
	totalIncome, err := sumVND(db, incomeQ)
	if err != nil {
		return nil, err
	}
	expenseQ := db.Model(&model.FinancialEntry{}).
		Where("date = ? AND entry_type = ?", date, constants.ENTRY_EXPENSE)
	totalExpense, err := sumVND(db, expenseQ)
	if err != nil {
		return nil, err
	}
	audit.TotalIncome = totalIncome
	audit.TotalExpense = totalExpense
	audit.NetRevenue = totalIncome - totalExpense

	collected := map[string]int64{}
	var methodSum int64
	for _, method := range []string{
		constants.PAYMENT_METHOD_CASH,
		constants.PAYMENT_METHOD_BANK_TRANSFER,
		constants.PAYMENT_METHOD_MOMO,
	} {
		q := db.Model(&model.FinancialEntry{}).
			Where("date = ? AND entry_type = ? AND payment_method = ?",
				date, constants.ENTRY_INCOME, method)
		sum, err := sumVND(db, q)
		if err != nil {
			return nil, err
		}
		collected[method] = sum
		methodSum += sum
	}
	audit.CashCollected = collected[constants.PAYMENT_METHOD_CASH]
	audit.BankTransferCollected = collected[constants.PAYMENT_METHOD_BANK_TRANSFER]
	audit.MomoCollected = collected[constants.PAYMENT_METHOD_MOMO]
	audit.OtherPayments = totalIncome - methodSum

	var roomRevenue int64
	db.Model(&model.Booking{}).
		Where("status = ? AND check_out_date = ?", constants.BOOKING_CHECKED_OUT, date).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&roomRevenue)
	audit.RoomRevenue = roomRevenue
	audit.OtherRevenue = totalIncome - roomRevenue

	// Công nợ: khách đang ở chưa thanh toán
	var pending []model.Booking
	if err := db.Where("status = ? AND is_paid = ?", constants.BOOKING_CHECKED_IN, false).
		Find(&pending).Error; err != nil {
		return nil, err
	}
	audit.PendingCount = len(pending)
	audit.PendingAmount = 0
	for i := range pending {
		audit.PendingAmount += pending[i].BalanceDue()
	}

	if err := db.Save(&audit).Error; err != nil {
		return nil, err
	}
	return &audit, nil
}

// CloseNightAudit chốt sổ: draft/completed → closed, sau đó chỉ đọc.
// Chưa có bản ghi thì tính trước rồi chốt.
func CloseNightAudit(date utils.DateOnly, userId uint) (*model.NightAudit, error) {
	db := database.DB

	var audit model.NightAudit
	err := db.Where("audit_date = ?", date).First(&audit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		computed, cerr := ComputeNightAudit(date)
		if cerr != nil {
			return nil, cerr
		}
		audit = *computed
	} else if err != nil {
		return nil, err
	}

	if audit.Status == constants.AUDIT_CLOSED {
		return nil, NewBusinessError(ErrIllegalTransition, constants.AUDIT_CLOSED_IMMUTABLE)
	}

	now := time.Now()
	audit.Status = constants.AUDIT_CLOSED
	audit.ClosedBy = &userId
	audit.ClosedAt = &now
	if err := db.Save(&audit).Error; err != nil {
		return nil, err
	}
	return &audit, nil
}
