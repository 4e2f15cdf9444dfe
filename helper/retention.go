package helper

import (
	"log"
	"strconv"
	"strings"
	"time"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// retentionPolicy: một thực thể, số ngày giữ và điều kiện quét
type retentionPolicy struct {
	Name  string
	Days  int
	Model interface{}
	Query func(db *gorm.DB, cutoff time.Time, cutoffDate utils.DateOnly) *gorm.DB
}

func defaultRetentionPolicies() []retentionPolicy {
	return []retentionPolicy{
		{
			Name: "notification", Days: 90, Model: &model.Notification{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("created_at < ?", cutoff)
			},
		},
		{
			Name: "device_token", Days: 30, Model: &model.DeviceToken{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("is_active = ? AND updated_at < ?", false, cutoff)
			},
		},
		{
			Name: "guest_message", Days: 730, Model: &model.GuestMessage{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("created_at < ?", cutoff)
			},
		},
		{
			Name: "housekeeping_task", Days: 365, Model: &model.HousekeepingTask{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("status IN ? AND created_at < ?",
					[]string{constants.TASK_COMPLETED, constants.TASK_VERIFIED}, cutoff)
			},
		},
		{
			Name: "maintenance_request", Days: 730, Model: &model.MaintenanceRequest{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("status IN ? AND created_at < ?",
					[]string{constants.MAINTENANCE_COMPLETED, constants.MAINTENANCE_CANCELLED}, cutoff)
			},
		},
		{
			Name: "room_inspection", Days: 365, Model: &model.RoomInspection{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("completed_at IS NOT NULL AND created_at < ?", cutoff)
			},
		},
		{
			Name: "lost_and_found", Days: 730, Model: &model.LostAndFound{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("status = ? AND created_at < ?", constants.LOST_FOUND_DISPOSED, cutoff)
			},
		},
		{
			Name: "booking", Days: 1095, Model: &model.Booking{},
			Query: func(db *gorm.DB, _ time.Time, cutoffDate utils.DateOnly) *gorm.DB {
				return db.Where("status IN ? AND check_out_date < ?",
					[]string{constants.BOOKING_CHECKED_OUT, constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW},
					cutoffDate)
			},
		},
		{
			Name: "night_audit", Days: 1825, Model: &model.NightAudit{},
			Query: func(db *gorm.DB, _ time.Time, cutoffDate utils.DateOnly) *gorm.DB {
				return db.Where("status = ? AND audit_date < ?", constants.AUDIT_CLOSED, cutoffDate)
			},
		},
		{
			Name: "financial_entry", Days: 1825, Model: &model.FinancialEntry{},
			Query: func(db *gorm.DB, _ time.Time, cutoffDate utils.DateOnly) *gorm.DB {
				return db.Where("booking_id IS NULL AND date < ?", cutoffDate)
			},
		},
		{
			Name: "exchange_rate", Days: 1095, Model: &model.ExchangeRate{},
			Query: func(db *gorm.DB, _ time.Time, cutoffDate utils.DateOnly) *gorm.DB {
				return db.Where("date < ?", cutoffDate)
			},
		},
		{
			Name: "date_rate_override", Days: 1095, Model: &model.DateRateOverride{},
			Query: func(db *gorm.DB, _ time.Time, cutoffDate utils.DateOnly) *gorm.DB {
				return db.Where("date < ?", cutoffDate)
			},
		},
		{
			Name: "sensitive_data_access_log", Days: 2555, Model: &model.SensitiveDataAccessLog{},
			Query: func(db *gorm.DB, cutoff time.Time, _ utils.DateOnly) *gorm.DB {
				return db.Where("timestamp < ?", cutoff)
			},
		},
	}
}

// parseRetentionOverrides đọc chuỗi "name=days,name=days"
func parseRetentionOverrides(raw string) map[string]int {
	overrides := map[string]int{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		days, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || days <= 0 {
			continue
		}
		overrides[name] = days
	}
	return overrides
}

// ApplyRetentionPolicy quét xoá dữ liệu quá hạn theo từng thực thể.
// dryRun chỉ đếm; modelFilter rỗng nghĩa là chạy tất cả.
func ApplyRetentionPolicy(dryRun bool, modelFilter []string) (map[string]int64, error) {
	db := database.DB
	overrides := parseRetentionOverrides(config.Config("RETENTION_OVERRIDES"))

	wanted := map[string]bool{}
	for _, name := range modelFilter {
		wanted[strings.TrimSpace(name)] = true
	}

	now := time.Now()
	result := map[string]int64{}
	for _, policy := range defaultRetentionPolicies() {
		if len(wanted) > 0 && !wanted[policy.Name] {
			continue
		}
		days := policy.Days
		if d, ok := overrides[policy.Name]; ok {
			days = d
		}
		cutoff := now.AddDate(0, 0, -days)
		cutoffDate := utils.NewDate(cutoff.Year(), cutoff.Month(), cutoff.Day())

		scope := policy.Query(db.Model(policy.Model), cutoff, cutoffDate)
		var count int64
		if err := scope.Count(&count).Error; err != nil {
			return nil, err
		}
		result[policy.Name] = count

		if dryRun || count == 0 {
			continue
		}
		del := policy.Query(db, cutoff, cutoffDate)
		if err := del.Delete(policy.Model).Error; err != nil {
			return nil, err
		}
		log.Printf("[RETENTION] đã xoá %d bản ghi %s quá %d ngày", count, policy.Name, days)
	}
	return result, nil
}
