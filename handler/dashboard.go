package handler

import (
	"math"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard: màn hình đầu ngày của chủ khách sạn
func GetDashboard(c *fiber.Ctx) error {
	today := utils.Today()

	var totalRooms, occupied, cleaning, maintenance int64
	database.DB.Model(&model.Room{}).Where("is_active = ?", true).Count(&totalRooms)
	database.DB.Model(&model.Room{}).Where("is_active = ? AND status = ?", true, constants.ROOM_OCCUPIED).Count(&occupied)
	database.DB.Model(&model.Room{}).Where("is_active = ? AND status = ?", true, constants.ROOM_CLEANING).Count(&cleaning)
	database.DB.Model(&model.Room{}).Where("is_active = ? AND status = ?", true, constants.ROOM_MAINTENANCE).Count(&maintenance)

	var occupancyRate float64
	if totalRooms > 0 {
		occupancyRate = math.Round(float64(occupied)/float64(totalRooms)*10000) / 100
	}

	var arrivals, departures int64
	database.DB.Model(&model.Booking{}).
		Where("check_in_date = ? AND status IN ?", today, []string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Count(&arrivals)
	database.DB.Model(&model.Booking{}).
		Where("check_out_date = ? AND status = ?", today, constants.BOOKING_CHECKED_IN).
		Count(&departures)

	income := sumEntries(constants.ENTRY_INCOME, today, today)
	expense := sumEntries(constants.ENTRY_EXPENSE, today, today)

	var openTasks, openMaintenance int64
	database.DB.Model(&model.HousekeepingTask{}).
		Where("scheduled_date = ? AND status IN ?", today, []string{constants.TASK_PENDING, constants.TASK_IN_PROGRESS}).
		Count(&openTasks)
	database.DB.Model(&model.MaintenanceRequest{}).
		Where("status IN ?", []string{constants.MAINTENANCE_PENDING, constants.MAINTENANCE_ASSIGNED, constants.MAINTENANCE_IN_PROGRESS}).
		Count(&openMaintenance)

	// Khách đang ở còn nợ tiền
	var unpaid []model.Booking
	database.DB.Where("status = ? AND is_paid = ?", constants.BOOKING_CHECKED_IN, false).Find(&unpaid)
	var pendingAmount int64
	for i := range unpaid {
		pendingAmount += unpaid[i].BalanceDue()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date": today,
		"rooms": fiber.Map{
			"total":         totalRooms,
			"occupied":      occupied,
			"cleaning":      cleaning,
			"maintenance":   maintenance,
			"occupancyRate": occupancyRate,
		},
		"bookings": fiber.Map{
			"arrivals":   arrivals,
			"departures": departures,
		},
		"finance": fiber.Map{
			"income":        income,
			"expense":       expense,
			"net":           income - expense,
			"pendingAmount": pendingAmount,
			"pendingCount":  len(unpaid),
		},
		"tasks": fiber.Map{
			"housekeeping": openTasks,
			"maintenance":  openMaintenance,
		},
	})
}
