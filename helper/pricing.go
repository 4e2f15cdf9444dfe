package helper

import (
	"errors"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// Nguồn giá theo thứ tự ưu tiên
const (
	RateSourceDateOverride = "date_override"
	RateSourceRatePlan     = "rate_plan"
	RateSourceRoomType     = "room_type"
)

type NightRate struct {
	Date   utils.DateOnly `json:"date"`
	Rate   int64          `json:"rate"`
	Source string         `json:"source"`
}

type PriceQuote struct {
	Nights           int         `json:"nights"`
	NightlyRateAvg   int64       `json:"nightlyRateAvg"`
	TotalAmount      int64       `json:"totalAmount"`
	NightlyBreakdown []NightRate `json:"nightlyBreakdown"`
}

// ResolvePrice tính giá từng đêm trên [checkIn, checkOut).
// Ưu tiên: ghi đè theo ngày → bảng giá chỉ định → bảng giá mới nhất còn
// hiệu lực → giá gốc loại phòng. Toàn bộ số học là VND nguyên.
func ResolvePrice(db *gorm.DB, roomType *model.RoomType, checkIn, checkOut utils.DateOnly, plan *model.RatePlan) (*PriceQuote, error) {
	quote := &PriceQuote{NightlyBreakdown: []NightRate{}}
	if roomType == nil {
		return nil, NewBusinessError(ErrValidation, "thiếu loại phòng")
	}
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return quote, nil
	}

	var overrides []model.DateRateOverride
	if err := db.Where("room_type_id = ? AND date >= ? AND date < ?",
		roomType.ID, checkIn, checkOut).Find(&overrides).Error; err != nil {
		return nil, err
	}
	overrideByDate := make(map[string]int64, len(overrides))
	for _, o := range overrides {
		overrideByDate[o.Date.String()] = o.Rate
	}

	// Bảng giá mới nhất còn hoạt động của loại phòng, dùng khi không có
	// plan chỉ định
	var latest model.RatePlan
	var latestPlan *model.RatePlan
	err := db.Where("room_type_id = ? AND is_active = ?", roomType.ID, true).
		Order("created_at DESC").First(&latest).Error
	if err == nil {
		latestPlan = &latest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var total int64
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		night := NightRate{Date: d, Rate: roomType.BaseRate, Source: RateSourceRoomType}

		if rate, ok := overrideByDate[d.String()]; ok {
			night.Rate, night.Source = rate, RateSourceDateOverride
		} else if plan != nil && plan.Covers(d) {
			night.Rate, night.Source = plan.BaseRate, RateSourceRatePlan
		} else if latestPlan != nil && latestPlan.Covers(d) {
			night.Rate, night.Source = latestPlan.BaseRate, RateSourceRatePlan
		}

		total += night.Rate
		quote.NightlyBreakdown = append(quote.NightlyBreakdown, night)
	}

	quote.Nights = nights
	quote.TotalAmount = total
	quote.NightlyRateAvg = total / int64(nights)
	return quote, nil
}

// QuoteForRoom tiện cho handler: tra loại phòng và plan theo id
func QuoteForRoom(roomID uint, checkIn, checkOut utils.DateOnly, ratePlanID *uint) (*PriceQuote, error) {
	db := database.DB

	var room model.Room
	if err := db.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(ErrNotFound, "không tìm thấy phòng")
		}
		return nil, err
	}

	var plan *model.RatePlan
	if ratePlanID != nil {
		var p model.RatePlan
		if err := db.First(&p, *ratePlanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewBusinessError(ErrNotFound, "không tìm thấy bảng giá")
			}
			return nil, err
		}
		plan = &p
	}

	return ResolvePrice(db, &room.RoomType, checkIn, checkOut, plan)
}
