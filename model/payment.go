package model

import "hotel_manager/utils"

type Payment struct {
	DTO
	BookingID *uint    `gorm:"index" json:"bookingId,omitempty"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`

	PaymentType   string `gorm:"size:32" json:"paymentType"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `gorm:"size:32;default:cash" json:"paymentMethod"`
	Status        string `gorm:"size:32;default:completed" json:"status"`
	// PMT-YYYYMMDD-NNNN, cấp khi lưu lần đầu với status=completed.
	// NULL cho tới lúc đó để unique index chỉ ràng buộc số đã cấp.
	ReceiptNumber *string `gorm:"uniqueIndex;size:32" json:"receiptNumber,omitempty"`
	Notes         string  `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     uint    `json:"createdBy"`
}

type FolioItem struct {
	DTO
	BookingID uint     `gorm:"index" json:"bookingId"`
	Booking   *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`

	ItemType    string         `gorm:"size:32" json:"itemType"`
	Description string         `gorm:"size:255" json:"description"`
	Quantity    int            `gorm:"default:1" json:"quantity"`
	UnitPrice   int64          `json:"unitPrice"`
	TotalPrice  int64          `json:"totalPrice"` // luôn = Quantity * UnitPrice
	Date        utils.DateOnly `gorm:"type:date" json:"date"`
	IsPaid      bool           `gorm:"default:false" json:"isPaid"`
	IsVoided    bool           `gorm:"default:false" json:"isVoided"`
	VoidReason  string         `gorm:"size:255" json:"voidReason,omitempty"`
	CreatedBy   uint           `json:"createdBy"`
}

type RecordDepositInput struct {
	BookingID     uint   `json:"bookingId" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=cash bank_transfer momo card"`
	Notes         string `json:"notes"`
}

type CreatePaymentInput struct {
	BookingID     *uint  `json:"bookingId"`
	PaymentType   string `json:"paymentType" validate:"required,oneof=deposit room_charge extra_charge refund adjustment"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=cash bank_transfer momo card"`
	Status        string `json:"status" validate:"omitempty,oneof=pending completed failed refunded cancelled"`
	Notes         string `json:"notes"`
}

type CreateFolioItemInput struct {
	BookingID   uint            `json:"bookingId" validate:"required"`
	ItemType    string          `json:"itemType" validate:"required,oneof=room minibar laundry food service damage early_check_in late_check_out other"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   int64           `json:"unitPrice" validate:"min=0"`
	Date        *utils.DateOnly `json:"date"`
}

type UpdateFolioItemInput struct {
	Quantity    *int    `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice   *int64  `json:"unitPrice" validate:"omitempty,min=0"`
	Description *string `json:"description"`
	IsPaid      *bool   `json:"isPaid"`
}

type VoidFolioItemInput struct {
	Reason string `json:"reason" validate:"required"`
}
