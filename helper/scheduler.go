package helper

import (
	"fmt"
	"log"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	reminderScheduler gocron.Scheduler
	sweepScheduler    *cron.Cron
)

// StartReminderScheduler chạy job nhắc nhận/trả phòng hằng ngày theo giờ VN
func StartReminderScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Printf("Lỗi tạo scheduler nhắc lịch: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(func() {
			log.Println(SendCheckinReminders())
		}),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job nhắc nhận phòng: %v", err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(func() {
			log.Println(SendCheckoutReminders())
		}),
	)
	if err != nil {
		log.Printf("Lỗi đăng ký job nhắc trả phòng: %v", err)
	}

	s.Start()
	reminderScheduler = s
	log.Println("Scheduler nhắc lịch đã khởi động (08:00 và 09:00 hằng ngày)")
}

func StopReminderScheduler() {
	if reminderScheduler != nil {
		_ = reminderScheduler.Shutdown()
		log.Println("Scheduler nhắc lịch đã dừng")
	}
}

// StartSweepScheduler chạy dọn token hết hạn (02:00 hằng ngày) và quét
// retention (03:00 Chủ nhật)
func StartSweepScheduler() {
	sweepScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	if _, err := sweepScheduler.AddFunc("0 2 * * *", CleanupExpiredTokens); err != nil {
		log.Printf("Lỗi đăng ký job dọn token: %v", err)
		return
	}
	if _, err := sweepScheduler.AddFunc("0 3 * * 0", func() {
		result, err := ApplyRetentionPolicy(false, nil)
		if err != nil {
			log.Printf("Lỗi quét retention: %v", err)
			return
		}
		log.Printf("[RETENTION] kết quả quét: %v", result)
	}); err != nil {
		log.Printf("Lỗi đăng ký job retention: %v", err)
		return
	}

	sweepScheduler.Start()
	log.Println("Scheduler dọn dẹp đã khởi động")
}

func StopSweepScheduler() {
	if sweepScheduler != nil {
		sweepScheduler.Stop()
		log.Println("Scheduler dọn dẹp đã dừng")
	}
}

// notifyStaff tạo thông báo cho toàn bộ nhân sự từ cấp staff trở lên,
// DedupKey chống phát lại trong cùng ngày cho cùng sự kiện
func notifyStaff(title, body, dedupKey string) int {
	db := database.DB

	var accounts []model.Account
	if err := db.Where("active = ? AND role IN ?", true,
		[]string{constants.ROLE_OWNER, constants.ROLE_MANAGER, constants.ROLE_STAFF}).
		Find(&accounts).Error; err != nil {
		log.Printf("Lỗi tải danh sách nhân sự: %v", err)
		return 0
	}

	sent := 0
	now := time.Now()
	for _, account := range accounts {
		key := fmt.Sprintf("%s:%d", dedupKey, account.ID)
		var existing int64
		db.Model(&model.Notification{}).Where("dedup_key = ?", key).Count(&existing)
		if existing > 0 {
			continue
		}
		notification := model.Notification{
			AccountId: account.ID,
			Title:     title,
			Body:      body,
			DedupKey:  key,
			IsSent:    true,
			SentAt:    &now,
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Lỗi tạo thông báo cho tài khoản %d: %v", account.ID, err)
			continue
		}
		sent++
	}
	return sent
}

// SendCheckinReminders nhắc các đặt phòng nhận hôm nay còn pending/confirmed
func SendCheckinReminders() string {
	db := database.DB
	today := utils.Today()

	var bookings []model.Booking
	if err := db.Preload("Room").Preload("Guest").
		Where("check_in_date = ? AND status IN ?", today,
			[]string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Find(&bookings).Error; err != nil {
		return fmt.Sprintf("Lỗi quét đặt phòng nhận hôm nay: %v", err)
	}

	total := 0
	for i := range bookings {
		b := &bookings[i]
		title := fmt.Sprintf("Nhận phòng hôm nay: phòng %s", b.Room.Number)
		body := fmt.Sprintf("Khách %s nhận phòng %s ngày %s",
			b.Guest.FullName, b.Room.Number, b.CheckInDate.String())
		total += notifyStaff(title, body, fmt.Sprintf("checkin:%d:%s", b.ID, today.String()))
	}
	return fmt.Sprintf("Nhắc nhận phòng: %d đặt phòng, %d thông báo", len(bookings), total)
}

// SendCheckoutReminders nhắc các đặt phòng trả hôm nay còn đang ở
func SendCheckoutReminders() string {
	db := database.DB
	today := utils.Today()

	var bookings []model.Booking
	if err := db.Preload("Room").Preload("Guest").
		Where("check_out_date = ? AND status = ?", today, constants.BOOKING_CHECKED_IN).
		Find(&bookings).Error; err != nil {
		return fmt.Sprintf("Lỗi quét đặt phòng trả hôm nay: %v", err)
	}

	total := 0
	for i := range bookings {
		b := &bookings[i]
		title := fmt.Sprintf("Trả phòng hôm nay: phòng %s", b.Room.Number)
		body := fmt.Sprintf("Khách %s trả phòng %s ngày %s",
			b.Guest.FullName, b.Room.Number, b.CheckOutDate.String())
		total += notifyStaff(title, body, fmt.Sprintf("checkout:%d:%s", b.ID, today.String()))
	}
	return fmt.Sprintf("Nhắc trả phòng: %d đặt phòng, %d thông báo", len(bookings), total)
}

// CleanupExpiredTokens xoá refresh token và token đặt lại mật khẩu hết hạn
func CleanupExpiredTokens() {
	db := database.DB
	now := time.Now()

	result := db.Where("expires_at < ?", now).Delete(&model.RefreshToken{})
	if result.Error != nil {
		log.Printf("Lỗi dọn refresh token: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã xoá %d refresh token hết hạn", result.RowsAffected)
	}

	result = db.Where("expires_at < ?", now).Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		log.Printf("Lỗi dọn token đặt lại mật khẩu: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã xoá %d token đặt lại mật khẩu hết hạn", result.RowsAffected)
	}
}
