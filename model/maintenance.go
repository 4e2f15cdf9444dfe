package model

import "time"

type MaintenanceRequest struct {
	DTO
	// Yêu cầu đúng một trong hai: phòng hoặc mô tả vị trí
	RoomID              *uint  `gorm:"index" json:"roomId,omitempty"`
	Room                *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	LocationDescription string `gorm:"size:255" json:"locationDescription,omitempty"`

	Category    string `gorm:"size:50" json:"category"`
	Priority    string `gorm:"size:20;default:normal" json:"priority"`
	Title       string `gorm:"size:200" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Status      string `gorm:"size:32;index;default:pending" json:"status"`

	AssignedToID *uint    `gorm:"index" json:"assignedToId,omitempty"`
	AssignedTo   *Account `gorm:"foreignKey:AssignedToID" json:"assignedTo,omitempty"`

	EstimatedCost int64 `gorm:"default:0" json:"estimatedCost"`
	ActualCost    int64 `gorm:"default:0" json:"actualCost"`

	HoldReason   string     `gorm:"size:255" json:"holdReason,omitempty"`
	CancelReason string     `gorm:"size:255" json:"cancelReason,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	ReportedBy   uint       `json:"reportedBy"`
}

type CreateMaintenanceInput struct {
	RoomID              *uint  `json:"roomId"`
	LocationDescription string `json:"locationDescription"`
	Category            string `json:"category" validate:"required"`
	Priority            string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Title               string `json:"title" validate:"required"`
	Description         string `json:"description"`
	EstimatedCost       int64  `json:"estimatedCost" validate:"omitempty,min=0"`
}

type CompleteMaintenanceInput struct {
	ActualCost int64  `json:"actualCost" validate:"omitempty,min=0"`
	Notes      string `json:"notes"`
}

type ReasonInput struct {
	Reason string `json:"reason" validate:"required"`
}
