package model

import (
	"time"

	"hotel_manager/utils"
)

type HousekeepingTask struct {
	DTO
	RoomID uint `gorm:"index" json:"roomId"`
	Room   Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	TaskType      string         `gorm:"size:32;default:daily_clean" json:"taskType"`
	Status        string         `gorm:"size:32;index;default:pending" json:"status"`
	ScheduledDate utils.DateOnly `gorm:"type:date;index" json:"scheduledDate"`

	AssignedToID *uint    `gorm:"index" json:"assignedToId,omitempty"`
	AssignedTo   *Account `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`

	BookingID *uint    `gorm:"index" json:"bookingId,omitempty"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:SET NULL" json:"-"`

	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	VerifiedBy  *uint      `json:"verifiedBy,omitempty"`
}

type RoomInspection struct {
	DTO
	RoomID      uint       `gorm:"index" json:"roomId"`
	Room        Room       `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	InspectorID uint       `json:"inspectorId"`
	Score       int        `json:"score"` // 0..10
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type CreateHousekeepingTaskInput struct {
	RoomID        uint            `json:"roomId" validate:"required"`
	TaskType      string          `json:"taskType" validate:"omitempty,oneof=checkout_clean daily_clean deep_clean turndown"`
	ScheduledDate *utils.DateOnly `json:"scheduledDate"`
	AssignedToID  *uint           `json:"assignedToId"`
	Notes         string          `json:"notes"`
}

type AssignInput struct {
	AssignedToID uint `json:"assignedToId" validate:"required"`
}
