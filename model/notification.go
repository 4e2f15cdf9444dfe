package model

import "time"

type DeviceToken struct {
	DTO
	AccountId uint   `gorm:"index" json:"accountId"`
	Token     string `gorm:"uniqueIndex;size:512" json:"token"`
	Platform  string `gorm:"size:20" json:"platform"` // android | ios | web
	IsActive  bool   `gorm:"default:true" json:"isActive"`
}

type Notification struct {
	DTO
	AccountId uint   `gorm:"index" json:"accountId"`
	Title     string `gorm:"size:200" json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	// Khoá chống gửi trùng trong ngày cho cùng sự kiện
	DedupKey string     `gorm:"size:200;index" json:"-"`
	IsSent   bool       `gorm:"default:false" json:"isSent"`
	SentAt   *time.Time `json:"sentAt,omitempty"`
	IsRead   bool       `gorm:"default:false" json:"isRead"`
}
