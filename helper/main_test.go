package helper

import (
	"fmt"
	"sync/atomic"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB mở một SQLite in-memory riêng cho mỗi test và gán vào
// database.DB để các helper dùng chung kết nối này.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, baseRate int64) *model.Room {
	t.Helper()

	roomType := model.RoomType{
		Name:      "Phòng đôi " + number,
		BaseRate:  baseRate,
		MaxGuests: 2,
		MinHours:  2,
		IsActive:  true,
	}
	if err := db.Create(&roomType).Error; err != nil {
		t.Fatalf("tạo loại phòng: %v", err)
	}
	room := model.Room{
		Number:     number,
		RoomTypeID: roomType.ID,
		Status:     constants.ROOM_AVAILABLE,
		IsActive:   true,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("tạo phòng: %v", err)
	}
	room.RoomType = roomType
	return &room
}

func seedGuest(t *testing.T, db *gorm.DB, name, phone string) *model.Guest {
	t.Helper()

	guest := model.Guest{FullName: name, Phone: phone, Nationality: "Việt Nam"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("tạo khách: %v", err)
	}
	return &guest
}

func seedDefaultIncomeCategory(t *testing.T, db *gorm.DB) *model.FinancialCategory {
	t.Helper()

	category := model.FinancialCategory{
		Name:         "Tiền phòng",
		CategoryType: constants.ENTRY_INCOME,
		IsDefault:    true,
		IsActive:     true,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("tạo danh mục thu: %v", err)
	}
	return &category
}
