package model

import (
	"time"

	"hotel_manager/utils"
)

type Booking struct {
	DTO
	RoomID  uint  `gorm:"index" json:"roomId"`
	Room    Room  `gorm:"foreignKey:RoomID;constraint:OnDelete:RESTRICT" json:"room,omitempty"`
	GuestID uint  `gorm:"index" json:"guestId"`
	Guest   Guest `gorm:"foreignKey:GuestID;constraint:OnDelete:RESTRICT" json:"guest,omitempty"`

	BookingType  string         `gorm:"size:20;default:overnight" json:"bookingType"`
	CheckInDate  utils.DateOnly `gorm:"type:date;index" json:"checkInDate"`
	CheckOutDate utils.DateOnly `gorm:"type:date;index" json:"checkOutDate"`
	NumGuests    int            `gorm:"default:1" json:"numGuests"`

	// Thuê theo giờ
	HoursBooked          int        `gorm:"default:0" json:"hoursBooked,omitempty"`
	HourlyRate           int64      `gorm:"default:0" json:"hourlyRate,omitempty"`
	ExpectedCheckOutTime *time.Time `json:"expectedCheckOutTime,omitempty"`

	NightlyRate       int64 `json:"nightlyRate"`
	TotalAmount       int64 `json:"totalAmount"`
	AdditionalCharges int64 `gorm:"default:0" json:"additionalCharges"`
	DepositAmount     int64 `gorm:"default:0" json:"depositAmount"`
	DepositPaid       bool  `gorm:"default:false" json:"depositPaid"`

	EarlyCheckInFee   int64 `gorm:"default:0" json:"earlyCheckInFee"`
	EarlyCheckInHours int   `gorm:"default:0" json:"earlyCheckInHours"`
	LateCheckOutFee   int64 `gorm:"default:0" json:"lateCheckOutFee"`
	LateCheckOutHours int   `gorm:"default:0" json:"lateCheckOutHours"`

	Status        string `gorm:"size:32;index;default:confirmed" json:"status"`
	Source        string `gorm:"size:50;default:walk_in" json:"source"`
	PaymentMethod string `gorm:"size:32;default:cash" json:"paymentMethod"`
	OtaReference  string `gorm:"size:100" json:"otaReference,omitempty"`
	IsPaid        bool   `gorm:"default:false" json:"isPaid"`
	Notes         string `gorm:"type:text" json:"notes,omitempty"`

	ActualCheckIn  *time.Time `json:"actualCheckIn,omitempty"`
	ActualCheckOut *time.Time `json:"actualCheckOut,omitempty"`

	GroupBookingID *uint `gorm:"index" json:"groupBookingId,omitempty"`
}

// BalanceDue là trường dẫn xuất, chỉ tính khi đọc
func (b *Booking) BalanceDue() int64 {
	return b.TotalAmount + b.AdditionalCharges + b.EarlyCheckInFee + b.LateCheckOutFee - b.DepositAmount
}

// IsTerminal: các trạng thái không cho chuyển tiếp nữa
func (b *Booking) IsTerminal() bool {
	return b.Status == "checked_out" || b.Status == "cancelled" || b.Status == "no_show"
}

type GroupBooking struct {
	DTO
	GroupName     string         `gorm:"size:200" json:"groupName"`
	ContactName   string         `gorm:"size:200" json:"contactName"`
	ContactPhone  string         `gorm:"size:20" json:"contactPhone"`
	CheckInDate   utils.DateOnly `gorm:"type:date" json:"checkInDate"`
	CheckOutDate  utils.DateOnly `gorm:"type:date" json:"checkOutDate"`
	TotalAmount   int64          `json:"totalAmount"`
	DepositAmount int64          `gorm:"default:0" json:"depositAmount"`
	Notes         string         `gorm:"type:text" json:"notes,omitempty"`
	Bookings      []Booking      `gorm:"foreignKey:GroupBookingID" json:"bookings,omitempty"`
}

type CreateBookingInput struct {
	RoomID       uint           `json:"roomId" validate:"required"`
	GuestID      uint           `json:"guestId" validate:"required"`
	BookingType  string         `json:"bookingType" validate:"omitempty,oneof=overnight hourly"`
	CheckInDate  utils.DateOnly `json:"checkInDate" validate:"required"`
	CheckOutDate utils.DateOnly `json:"checkOutDate"`
	NumGuests    int            `json:"numGuests" validate:"omitempty,min=1"`

	HoursBooked int `json:"hoursBooked" validate:"omitempty,min=1"`

	NightlyRate   int64  `json:"nightlyRate" validate:"omitempty,min=0"`
	TotalAmount   int64  `json:"totalAmount" validate:"omitempty,min=0"`
	DepositAmount int64  `json:"depositAmount" validate:"omitempty,min=0"`
	RatePlanID    *uint  `json:"ratePlanId"`
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed"`
	Source        string `json:"source"`
	PaymentMethod string `json:"paymentMethod"`
	OtaReference  string `json:"otaReference"`
	Notes         string `json:"notes"`
}

type UpdateBookingInput struct {
	RoomID        *uint           `json:"roomId"`
	CheckInDate   *utils.DateOnly `json:"checkInDate"`
	CheckOutDate  *utils.DateOnly `json:"checkOutDate"`
	NumGuests     *int            `json:"numGuests" validate:"omitempty,min=1"`
	NightlyRate   *int64          `json:"nightlyRate" validate:"omitempty,min=0"`
	TotalAmount   *int64          `json:"totalAmount" validate:"omitempty,min=0"`
	Source        *string         `json:"source"`
	PaymentMethod *string         `json:"paymentMethod"`
	OtaReference  *string         `json:"otaReference"`
	Notes         *string         `json:"notes"`

	EarlyCheckInFee   *int64 `json:"earlyCheckInFee" validate:"omitempty,min=0"`
	EarlyCheckInHours *int   `json:"earlyCheckInHours" validate:"omitempty,min=0"`
	LateCheckOutFee   *int64 `json:"lateCheckOutFee" validate:"omitempty,min=0"`
	LateCheckOutHours *int   `json:"lateCheckOutHours" validate:"omitempty,min=0"`
}

type CheckInInput struct {
	ActualCheckIn *time.Time `json:"actualCheckIn"`
}

type CheckOutInput struct {
	AdditionalCharges *int64 `json:"additionalCharges" validate:"omitempty,min=0"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled no_show"`
	Reason string `json:"reason"`
}
