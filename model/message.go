package model

import "time"

type MessageTemplate struct {
	DTO
	Code     string `gorm:"uniqueIndex;size:100" json:"code"` // slug, vd: xac-nhan-dat-phong
	Name     string `gorm:"size:200" json:"name"`
	Channel  string `gorm:"size:20;default:email" json:"channel"`
	Subject  string `gorm:"size:255" json:"subject,omitempty"`
	Body     string `gorm:"type:text" json:"body"` // placeholder dạng {guest_name}, {room_number}...
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type GuestMessage struct {
	DTO
	GuestID   uint     `gorm:"index" json:"guestId"`
	Guest     Guest    `gorm:"foreignKey:GuestID" json:"-"`
	BookingID *uint    `gorm:"index" json:"bookingId,omitempty"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:SET NULL" json:"-"`

	TemplateID *uint  `json:"templateId,omitempty"`
	Channel    string `gorm:"size:20;default:email" json:"channel"`
	Recipient  string `gorm:"size:255" json:"recipient"`
	Subject    string `gorm:"size:255" json:"subject,omitempty"`
	Body       string `gorm:"type:text" json:"body"`

	Status    string     `gorm:"size:20;default:draft" json:"status"` // draft | pending | sent | failed
	MessageId string     `gorm:"size:100" json:"messageId,omitempty"`
	SentAt    *time.Time `json:"sentAt,omitempty"`
	SendError string     `gorm:"size:500" json:"sendError,omitempty"`
	CreatedBy uint       `json:"createdBy"`
}

type SendGuestMessageInput struct {
	GuestID    uint   `json:"guestId" validate:"required"`
	BookingID  *uint  `json:"bookingId"`
	TemplateID *uint  `json:"templateId"`
	Channel    string `json:"channel" validate:"omitempty,oneof=email sms zalo push"`
	Recipient  string `json:"recipient" validate:"required"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}
