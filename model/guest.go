package model

type Guest struct {
	DTO
	FullName string `gorm:"size:200" json:"fullName"`
	Phone    string `gorm:"uniqueIndex;size:20" json:"phone"`
	Email    string `gorm:"size:200" json:"email,omitempty"`

	IdType string `gorm:"size:20;default:cccd" json:"idType"`
	// Bản mã hoá khi có khoá cấu hình, hash để tra cứu và chống trùng
	IdNumber     string `gorm:"size:512" json:"idNumber,omitempty"`
	IdNumberHash string `gorm:"size:64;index" json:"-"`
	IdImageUrl   string `gorm:"size:512" json:"idImageUrl,omitempty"`

	VisaNumber     string `gorm:"size:512" json:"visaNumber,omitempty"`
	VisaNumberHash string `gorm:"size:64;index" json:"-"`

	Nationality string `gorm:"size:100;default:Việt Nam" json:"nationality"`
	Address     string `gorm:"type:text" json:"address,omitempty"`
	IsVip       bool   `gorm:"default:false" json:"isVip"`
	TotalStays  int    `gorm:"default:0" json:"totalStays"`
	Notes       string `gorm:"type:text" json:"notes,omitempty"`
}

type CreateGuestInput struct {
	FullName    string `json:"fullName" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	IdType      string `json:"idType" validate:"omitempty,oneof=cccd passport cmnd gplx other"`
	IdNumber    string `json:"idNumber"`
	VisaNumber  string `json:"visaNumber"`
	Nationality string `json:"nationality"`
	Address     string `json:"address"`
	IsVip       bool   `json:"isVip"`
	Notes       string `json:"notes"`
}

type UpdateGuestInput struct {
	FullName    *string `json:"fullName"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	IdType      *string `json:"idType" validate:"omitempty,oneof=cccd passport cmnd gplx other"`
	IdNumber    *string `json:"idNumber"`
	VisaNumber  *string `json:"visaNumber"`
	Nationality *string `json:"nationality"`
	Address     *string `json:"address"`
	IsVip       *bool   `json:"isVip"`
	Notes       *string `json:"notes"`
}
