package model

type MinibarItem struct {
	DTO
	Name     string `gorm:"size:100" json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `gorm:"default:0" json:"stock"`
	Unit     string `gorm:"size:20;default:cái" json:"unit"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type MinibarSale struct {
	DTO
	BookingID uint        `gorm:"index" json:"bookingId"`
	Booking   *Booking    `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`
	ItemID    uint        `gorm:"index" json:"itemId"`
	Item      MinibarItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity  int         `gorm:"default:1" json:"quantity"`
	UnitPrice int64       `json:"unitPrice"`
	Total     int64       `json:"total"`
	// Mục folio sinh ra từ lần bán này
	FolioItemID *uint `json:"folioItemId,omitempty"`
	SoldBy      uint  `json:"soldBy"`
}

type CreateMinibarItemInput struct {
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"required,gt=0"`
	Stock int    `json:"stock" validate:"omitempty,min=0"`
	Unit  string `json:"unit"`
}

type CreateMinibarSaleInput struct {
	BookingID uint `json:"bookingId" validate:"required"`
	ItemID    uint `json:"itemId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}
