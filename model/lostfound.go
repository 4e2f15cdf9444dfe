package model

import "hotel_manager/utils"

type LostAndFound struct {
	DTO
	RoomID      *uint          `gorm:"index" json:"roomId,omitempty"`
	Room        *Room          `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	BookingID   *uint          `gorm:"index" json:"bookingId,omitempty"`
	Description string         `gorm:"size:255" json:"description"`
	FoundDate   utils.DateOnly `gorm:"type:date" json:"foundDate"`
	FoundBy     uint           `json:"foundBy"`
	Status      string         `gorm:"size:20;default:stored" json:"status"` // stored | returned | disposed
	ReturnedTo  string         `gorm:"size:200" json:"returnedTo,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
}

type CreateLostAndFoundInput struct {
	RoomID      *uint           `json:"roomId"`
	BookingID   *uint           `json:"bookingId"`
	Description string          `json:"description" validate:"required"`
	FoundDate   *utils.DateOnly `json:"foundDate"`
	Notes       string          `json:"notes"`
}
