package model

import "time"

// SensitiveDataAccessLog chỉ ghi thêm, không sửa không xoá qua API
type SensitiveDataAccessLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time `gorm:"index;autoCreateTime" json:"timestamp"`
	AccountId    uint      `gorm:"index" json:"accountId"`
	Action       string    `gorm:"size:20" json:"action"` // view | create | update | search
	ResourceType string    `gorm:"size:50" json:"resourceType"`
	ResourceId   uint      `json:"resourceId"`
	Fields       string    `gorm:"size:255" json:"fields"` // danh sách field phân tách dấu phẩy
	ClientIP     string    `gorm:"size:64" json:"clientIp"`
	UserAgent    string    `gorm:"size:500" json:"userAgent"`
	Detail       string    `gorm:"type:text" json:"detail,omitempty"` // JSON tuỳ chọn
}
