package model

import (
	"time"

	"hotel_manager/utils"
)

// NightAudit là ảnh chụp số liệu cuối ngày, đã closed thì bất biến
type NightAudit struct {
	DTO
	AuditDate utils.DateOnly `gorm:"type:date;uniqueIndex" json:"auditDate"`
	Status    string         `gorm:"size:20;default:draft" json:"status"`

	// Khối phòng (chụp tại thời điểm chạy)
	TotalRooms       int     `json:"totalRooms"`
	OccupiedRooms    int     `json:"occupiedRooms"`
	AvailableRooms   int     `json:"availableRooms"`
	CleaningRooms    int     `json:"cleaningRooms"`
	MaintenanceRooms int     `json:"maintenanceRooms"`
	BlockedRooms     int     `json:"blockedRooms"`
	OccupancyRate    float64 `json:"occupancyRate"` // %

	// Khối đặt phòng theo ngày chốt
	CheckInsToday  int `json:"checkInsToday"`
	CheckOutsToday int `json:"checkOutsToday"`
	NoShows        int `json:"noShows"`
	Cancellations  int `json:"cancellations"`
	NewBookings    int `json:"newBookings"`

	// Khối tài chính
	TotalIncome           int64 `json:"totalIncome"`
	TotalExpense          int64 `json:"totalExpense"`
	NetRevenue            int64 `json:"netRevenue"`
	RoomRevenue           int64 `json:"roomRevenue"`
	OtherRevenue          int64 `json:"otherRevenue"`
	CashCollected         int64 `json:"cashCollected"`
	BankTransferCollected int64 `json:"bankTransferCollected"`
	MomoCollected         int64 `json:"momoCollected"`
	OtherPayments         int64 `json:"otherPayments"`

	// Khối công nợ: khách đang ở chưa thanh toán
	PendingAmount int64 `json:"pendingAmount"`
	PendingCount  int   `json:"pendingCount"`

	ClosedBy *uint      `json:"closedBy,omitempty"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`
	Notes    string     `gorm:"type:text" json:"notes,omitempty"`
}
