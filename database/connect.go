package database

import (
	"fmt"
	"log"
	"strconv"

	"hotel_manager/config"
	"hotel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error

	// DB_DRIVER=sqlite dùng cho môi trường dev, mặc định Postgres
	if config.ConfigOr("DB_DRIVER", "postgres") == "sqlite" {
		path := config.ConfigOr("DB_PATH", "./hotel.db")
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	} else {
		p := config.ConfigOr("DB_PORT", "5432")
		port, perr := strconv.ParseUint(p, 10, 32)
		if perr != nil {
			panic("failed to parse database port")
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Config("DB_HOST"), port, config.Config("DB_USER"),
			config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		log.Fatalf("Lỗi migrate database: %v", err)
	}
	fmt.Println("Database Migrated")

	// khởi tạo dữ liệu
	SeedData(DB)
}

// Migrate theo thứ tự cha trước con
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.RefreshToken{},
		&model.PasswordResetToken{},
		&model.RoomType{},
		&model.Room{},
		&model.Guest{},
		&model.GroupBooking{},
		&model.Booking{},
		&model.Payment{},
		&model.FolioItem{},
		&model.FinancialCategory{},
		&model.FinancialEntry{},
		&model.ExchangeRate{},
		&model.RatePlan{},
		&model.DateRateOverride{},
		&model.HousekeepingTask{},
		&model.RoomInspection{},
		&model.MaintenanceRequest{},
		&model.NightAudit{},
		&model.DeviceToken{},
		&model.Notification{},
		&model.SensitiveDataAccessLog{},
		&model.MinibarItem{},
		&model.MinibarSale{},
		&model.LostAndFound{},
		&model.MessageTemplate{},
		&model.GuestMessage{},
	)
}
