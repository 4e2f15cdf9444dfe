package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;size:100" json:"username"`
	Password string `json:"-"`
	FullName string `gorm:"size:200" json:"fullName"`
	Email    string `gorm:"size:200" json:"email,omitempty"`
	Phone    string `gorm:"size:20" json:"phone,omitempty"`
	Role     string `gorm:"size:32;default:staff" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`
}

// RefreshToken lưu whitelist token làm mới, bản sao trong Redis để thu hồi nhanh
type RefreshToken struct {
	DTO
	AccountId uint      `gorm:"index" json:"accountId"`
	Token     string    `gorm:"uniqueIndex;size:512" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"index" json:"accountId"`
	Token     string    `gorm:"uniqueIndex;size:128" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=owner manager staff housekeeping"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}
