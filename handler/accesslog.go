package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSensitiveAccessLogs: vết truy cập dữ liệu nhạy cảm, chỉ quản lý trở lên xem được
func GetSensitiveAccessLogs(c *fiber.Ctx) error {
	db := database.DB.Model(&model.SensitiveDataAccessLog{})
	if accountId := c.QueryInt("accountId"); accountId > 0 {
		db = db.Where("account_id = ?", accountId)
	}
	if resourceId := c.QueryInt("resourceId"); resourceId > 0 {
		db = db.Where("resource_id = ?", resourceId)
	}

	var page, pageSize *int
	if p := c.QueryInt("page"); p > 0 {
		page = &p
	}
	if s := c.QueryInt("pageSize"); s > 0 {
		pageSize = &s
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, page, pageSize)
	var logs []model.SensitiveDataAccessLog
	if err := db.Order("id DESC").Find(&logs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       logs,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	})
}
