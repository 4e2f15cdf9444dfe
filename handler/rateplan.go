package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"

	"gorm.io/gorm/clause"
)

func GetRatePlans(c *fiber.Ctx) error {
	db := database.DB.Where("is_active = ?", true)
	if roomTypeId := c.QueryInt("roomTypeId"); roomTypeId > 0 {
		db = db.Where("room_type_id = ?", roomTypeId)
	}

	var plans []model.RatePlan
	if err := db.Order("id DESC").Find(&plans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, plans)
}

func CreateRatePlan(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRatePlanInput)

	plan := model.RatePlan{
		RoomTypeID: input.RoomTypeID,
		Name:       input.Name,
		BaseRate:   input.BaseRate,
		ValidFrom:  input.ValidFrom,
		ValidTo:    input.ValidTo,
		IsActive:   true,
	}
	if err := database.DB.Create(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, plan)
}

func DeactivateRatePlan(c *fiber.Ctx) error {
	planId := c.Locals("inputId").(int)

	var plan model.RatePlan
	if err := database.DB.First(&plan, planId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if err := database.DB.Model(&plan).Update("is_active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}

func GetDateOverrides(c *fiber.Ctx) error {
	db := database.DB.Model(&model.DateRateOverride{})
	if roomTypeId := c.QueryInt("roomTypeId"); roomTypeId > 0 {
		db = db.Where("room_type_id = ?", roomTypeId)
	}
	if from, err := utils.ParseDate(c.Query("from")); err == nil {
		db = db.Where("date >= ?", from)
	}
	if to, err := utils.ParseDate(c.Query("to")); err == nil {
		db = db.Where("date <= ?", to)
	}

	var overrides []model.DateRateOverride
	if err := db.Order("date").Find(&overrides).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, overrides)
}

// CreateDateOverride upsert theo (hạng phòng, ngày): đặt lại giá là ghi đè giá cũ
func CreateDateOverride(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateDateOverrideInput)

	override := model.DateRateOverride{
		RoomTypeID: input.RoomTypeID,
		Date:       input.Date,
		Rate:       input.Rate,
		Reason:     input.Reason,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_type_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "reason", "updated_at"}),
	}).Create(&override).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, override)
}

func DeleteDateOverride(c *fiber.Ctx) error {
	overrideId := c.Locals("inputId").(int)

	result := database.DB.Delete(&model.DateRateOverride{}, overrideId)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": overrideId})
}
