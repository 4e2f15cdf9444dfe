package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetNightAudits(c *fiber.Ctx) error {
	db := database.DB.Model(&model.NightAudit{})
	if from, err := utils.ParseDate(c.Query("from")); err == nil {
		db = db.Where("audit_date >= ?", from)
	}
	if to, err := utils.ParseDate(c.Query("to")); err == nil {
		db = db.Where("audit_date <= ?", to)
	}

	var audits []model.NightAudit
	if err := db.Order("audit_date DESC").Limit(90).Find(&audits).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, audits)
}

func GetNightAudit(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		date = utils.Today()
	}

	var audit model.NightAudit
	if err := database.DB.Where("audit_date = ?", date).First(&audit).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Chưa có sổ cho ngày này", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, audit)
}

// ComputeNightAudit tính (lại) sổ cho một ngày, sổ đã chốt thì từ chối
func ComputeNightAudit(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		date = utils.Today()
	}

	var audit *model.NightAudit
	err = utils.RetryTransient(func() error {
		var innerErr error
		audit, innerErr = helper.ComputeNightAudit(date)
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, audit)
}

func CloseNightAudit(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		date = utils.Today()
	}
	claim, _ := helper.GetAccountFromToken(c)

	audit, err := helper.CloseNightAudit(date, claim.AccountId)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, audit)
}
