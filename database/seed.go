package database

import (
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/model"

	"hotel_manager/utils"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseSeedDate(dateStr string) utils.DateOnly {
	d, _ := utils.ParseDate(dateStr)
	return d
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "chuksan", Password: hashPassword, FullName: "Chủ khách sạn", Role: constants.ROLE_OWNER, Active: true},
		{Username: "quanly", Password: hashPassword, FullName: "Quản lý", Role: constants.ROLE_MANAGER, Active: true},
		{Username: "letan", Password: hashPassword, FullName: "Lễ tân", Role: constants.ROLE_STAFF, Active: true},
		{Username: "buongphong", Password: hashPassword, FullName: "Buồng phòng", Role: constants.ROLE_HOUSEKEEPING, Active: true},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	roomTypes := []model.RoomType{
		{Name: "Phòng đơn", NameEn: "Single", BaseRate: 400000, MaxGuests: 1, MinHours: 2, AllowsHourly: true, IsActive: true},
		{Name: "Phòng đôi", NameEn: "Double", BaseRate: 500000, MaxGuests: 2, MinHours: 2, AllowsHourly: true, IsActive: true},
		{Name: "Phòng gia đình", NameEn: "Family", BaseRate: 800000, MaxGuests: 4, MinHours: 2, IsActive: true},
	}
	for i := range roomTypes {
		if err := db.Where(model.RoomType{Name: roomTypes[i].Name}).FirstOrCreate(&roomTypes[i]).Error; err != nil {
			log.Println("failed to seed room type:", roomTypes[i].Name, "error:", err)
		}
	}

	// 7 phòng của khách sạn
	rooms := []model.Room{
		{Number: "101", RoomTypeID: roomTypes[0].ID, Floor: 1},
		{Number: "102", RoomTypeID: roomTypes[1].ID, Floor: 1},
		{Number: "103", RoomTypeID: roomTypes[1].ID, Floor: 1},
		{Number: "201", RoomTypeID: roomTypes[1].ID, Floor: 2},
		{Number: "202", RoomTypeID: roomTypes[1].ID, Floor: 2},
		{Number: "203", RoomTypeID: roomTypes[2].ID, Floor: 2},
		{Number: "301", RoomTypeID: roomTypes[2].ID, Floor: 3},
	}
	for _, room := range rooms {
		room.Status = constants.ROOM_AVAILABLE
		room.IsActive = true
		if err := db.Where(model.Room{Number: room.Number}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.Number, "error:", err)
		}
	}

	categories := []model.FinancialCategory{
		{Name: "Tiền phòng", CategoryType: constants.ENTRY_INCOME, IsDefault: true, IsActive: true},
		{Name: "Dịch vụ", CategoryType: constants.ENTRY_INCOME, IsActive: true},
		{Name: "Minibar", CategoryType: constants.ENTRY_INCOME, IsActive: true},
		{Name: "Điện nước", CategoryType: constants.ENTRY_EXPENSE, IsActive: true},
		{Name: "Vật tư", CategoryType: constants.ENTRY_EXPENSE, IsActive: true},
		{Name: "Lương nhân viên", CategoryType: constants.ENTRY_EXPENSE, IsDefault: true, IsActive: true},
	}
	for _, category := range categories {
		if err := db.Where(model.FinancialCategory{Name: category.Name, CategoryType: category.CategoryType}).
			FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed financial category:", category.Name, "error:", err)
		}
	}

	templates := []model.MessageTemplate{
		{
			Name:    "Xác nhận đặt phòng",
			Channel: constants.CHANNEL_EMAIL,
			Subject: "Xác nhận đặt phòng tại {hotel_name}",
			Body: "Kính chào {guest_name},\n\n" +
				"{hotel_name} xác nhận đặt phòng {room_number} ({room_type}) " +
				"từ {check_in_date} đến {check_out_date} ({nights} đêm), tổng tiền {total_amount}đ.\n" +
				"Mọi thắc mắc vui lòng gọi {hotel_phone}.",
		},
		{
			Name:    "Nhắc nhận phòng",
			Channel: constants.CHANNEL_SMS,
			Body: "{hotel_name}: Quý khách {guest_name} có lịch nhận phòng {room_number} ngày {check_in_date}. " +
				"Hotline {hotel_phone}.",
		},
		{
			Name:    "Cảm ơn sau lưu trú",
			Channel: constants.CHANNEL_EMAIL,
			Subject: "Cảm ơn quý khách đã lưu trú tại {hotel_name}",
			Body: "Kính chào {guest_name},\n\nCảm ơn quý khách đã lưu trú. " +
				"Wifi: {wifi_password}. Hẹn gặp lại!",
		},
	}
	for _, tpl := range templates {
		tpl.Code = slug.Make(tpl.Name)
		tpl.IsActive = true
		if err := db.Where(model.MessageTemplate{Code: tpl.Code}).FirstOrCreate(&tpl).Error; err != nil {
			log.Println("failed to seed message template:", tpl.Code, "error:", err)
		}
	}

	minibarItems := []model.MinibarItem{
		{Name: "Nước suối", Price: 15000, Stock: 100},
		{Name: "Bia 333", Price: 30000, Stock: 60},
		{Name: "Snack", Price: 25000, Stock: 50},
		{Name: "Nước ngọt", Price: 20000, Stock: 80},
	}
	for _, item := range minibarItems {
		item.IsActive = true
		if err := db.Where(model.MinibarItem{Name: item.Name}).FirstOrCreate(&item).Error; err != nil {
			log.Println("failed to seed minibar item:", item.Name, "error:", err)
		}
	}

	var rateCount int64
	db.Model(&model.ExchangeRate{}).Count(&rateCount)
	if rateCount == 0 {
		now := time.Now()
		db.Create(&model.ExchangeRate{
			Currency: "USD",
			Rate:     25400,
			Date:     parseSeedDate(now.Format("2006-01-02")),
		})
	}
}
