package model

type RoomType struct {
	DTO
	Name          string `gorm:"size:100" json:"name"`
	NameEn        string `gorm:"size:100" json:"nameEn,omitempty"`
	BaseRate      int64  `json:"baseRate"` // VND/đêm
	HourlyRate    *int64 `json:"hourlyRate,omitempty"`
	FirstHourRate *int64 `json:"firstHourRate,omitempty"`
	MinHours      int    `gorm:"default:2" json:"minHours"`
	AllowsHourly  bool   `gorm:"default:false" json:"allowsHourly"`
	MaxGuests     int    `gorm:"default:2" json:"maxGuests"`
	Amenities     string `gorm:"type:text" json:"amenities,omitempty"` // danh sách phân tách dấu phẩy
	IsActive      bool   `gorm:"default:true" json:"isActive"`
}

type Room struct {
	DTO
	Number     string   `gorm:"uniqueIndex;size:20" json:"number"`
	RoomTypeID uint     `gorm:"index" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID;constraint:OnDelete:RESTRICT" json:"roomType,omitempty"`
	Floor      int      `json:"floor"`
	Status     string   `gorm:"size:32;default:available" json:"status"`
	Notes      string   `gorm:"type:text" json:"notes,omitempty"`
	IsActive   bool     `gorm:"default:true" json:"isActive"`
}

type CreateRoomTypeInput struct {
	Name          string `json:"name" validate:"required"`
	NameEn        string `json:"nameEn"`
	BaseRate      int64  `json:"baseRate" validate:"required,gt=0"`
	HourlyRate    *int64 `json:"hourlyRate" validate:"omitempty,gt=0"`
	FirstHourRate *int64 `json:"firstHourRate" validate:"omitempty,gt=0"`
	MinHours      int    `json:"minHours" validate:"omitempty,min=1"`
	AllowsHourly  bool   `json:"allowsHourly"`
	MaxGuests     int    `json:"maxGuests" validate:"required,min=1"`
	Amenities     string `json:"amenities"`
}

type CreateRoomInput struct {
	Number     string `json:"number" validate:"required"`
	RoomTypeID uint   `json:"roomTypeId" validate:"required"`
	Floor      int    `json:"floor"`
	Notes      string `json:"notes"`
}

type UpdateRoomStatusInput struct {
	Status string `json:"status" validate:"required,oneof=available occupied cleaning maintenance blocked"`
}
