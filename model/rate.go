package model

import "hotel_manager/utils"

type RatePlan struct {
	DTO
	RoomTypeID uint     `gorm:"index" json:"roomTypeId"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`

	Name      string         `gorm:"size:100" json:"name"`
	BaseRate  int64          `json:"baseRate"`
	ValidFrom utils.DateOnly `gorm:"type:date" json:"validFrom"`
	ValidTo   utils.DateOnly `gorm:"type:date" json:"validTo"`
	// Không đặt default:true ở cột này: GORM bỏ qua giá trị zero khi
	// insert, Create với IsActive=false sẽ thành bảng giá đang hoạt động.
	IsActive bool `json:"isActive"`
}

// Covers: plan có hiệu lực cho ngày date hay không
func (p *RatePlan) Covers(date utils.DateOnly) bool {
	if !p.IsActive {
		return false
	}
	if !p.ValidFrom.IsZero() && date.Before(p.ValidFrom) {
		return false
	}
	if !p.ValidTo.IsZero() && date.After(p.ValidTo) {
		return false
	}
	return true
}

type DateRateOverride struct {
	DTO
	RoomTypeID uint           `gorm:"index:idx_override_type_date,unique" json:"roomTypeId"`
	Date       utils.DateOnly `gorm:"type:date;index:idx_override_type_date,unique" json:"date"`
	Rate       int64          `json:"rate"`
	Reason     string         `gorm:"size:200" json:"reason,omitempty"`
}

type CreateRatePlanInput struct {
	RoomTypeID uint           `json:"roomTypeId" validate:"required"`
	Name       string         `json:"name" validate:"required"`
	BaseRate   int64          `json:"baseRate" validate:"required,gt=0"`
	ValidFrom  utils.DateOnly `json:"validFrom"`
	ValidTo    utils.DateOnly `json:"validTo"`
}

type CreateDateOverrideInput struct {
	RoomTypeID uint           `json:"roomTypeId" validate:"required"`
	Date       utils.DateOnly `json:"date" validate:"required"`
	Rate       int64          `json:"rate" validate:"required,gt=0"`
	Reason     string         `json:"reason"`
}
