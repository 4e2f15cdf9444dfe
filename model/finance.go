package model

import "hotel_manager/utils"

type FinancialCategory struct {
	DTO
	Name         string `gorm:"size:100" json:"name"`
	CategoryType string `gorm:"size:20;index" json:"categoryType"` // income | expense
	Icon         string `gorm:"size:50" json:"icon,omitempty"`
	Color        string `gorm:"size:20" json:"color,omitempty"`
	IsDefault    bool   `gorm:"default:false" json:"isDefault"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

type FinancialEntry struct {
	DTO
	CategoryID uint              `gorm:"index" json:"categoryId"`
	Category   FinancialCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	EntryType    string         `gorm:"size:20;index" json:"entryType"` // phải khớp loại của Category
	Amount       int64          `json:"amount"`
	Currency     string         `gorm:"size:3;default:VND" json:"currency"`
	ExchangeRate float64        `gorm:"default:1" json:"exchangeRate"` // về VND
	Date         utils.DateOnly `gorm:"type:date;index" json:"date"`
	Description  string         `gorm:"size:255" json:"description,omitempty"`

	PaymentMethod string `gorm:"size:32;default:cash" json:"paymentMethod"`

	BookingID *uint    `gorm:"index" json:"bookingId,omitempty"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedBy uint     `json:"createdBy"`
}

type ExchangeRate struct {
	DTO
	Currency string         `gorm:"size:3;index" json:"currency"`
	Rate     float64        `json:"rate"` // 1 đơn vị = Rate VND
	Date     utils.DateOnly `gorm:"type:date;index" json:"date"`
}

type CreateFinancialCategoryInput struct {
	Name         string `json:"name" validate:"required"`
	CategoryType string `json:"categoryType" validate:"required,oneof=income expense"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	IsDefault    bool   `json:"isDefault"`
}

type CreateFinancialEntryInput struct {
	CategoryID    uint            `json:"categoryId" validate:"required"`
	EntryType     string          `json:"entryType" validate:"required,oneof=income expense"`
	Amount        int64           `json:"amount" validate:"min=0"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
	ExchangeRate  float64         `json:"exchangeRate" validate:"omitempty,gt=0"`
	Date          *utils.DateOnly `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	BookingID     *uint           `json:"bookingId"`
}
