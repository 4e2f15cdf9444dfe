package helper

import (
	"log"
	"strings"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Các field nhạy cảm phải ghi log khi đọc/ghi
var SensitiveGuestFields = []string{"id_number", "visa_number", "id_image"}

// clientIP ưu tiên hop đầu của X-Forwarded-For
func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.IP()
}

// LogSensitiveAccess ghi một dòng log bất biến cho mỗi lần chạm field nhạy
// cảm. Ghi cả khi request sau đó thất bại.
func LogSensitiveAccess(c *fiber.Ctx, accountId uint, action, resourceType string, resourceId uint, fields []string, detail string) {
	entry := model.SensitiveDataAccessLog{
		AccountId:    accountId,
		Action:       action,
		ResourceType: resourceType,
		ResourceId:   resourceId,
		Fields:       strings.Join(fields, ","),
		ClientIP:     clientIP(c),
		UserAgent:    utils.TruncateString(c.Get("User-Agent"), 500),
		Detail:       detail,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		// Không chặn request vì lỗi ghi log, nhưng phải thấy trong log hệ thống
		log.Printf("Lỗi ghi access log: %v", err)
	}
}
