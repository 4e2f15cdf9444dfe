package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMaintenanceRequests(c *fiber.Ctx) error {
	db := database.DB.Preload("Room").Preload("AssignedTo")
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		db = db.Where("priority = ?", priority)
	}
	if roomId := c.QueryInt("roomId"); roomId > 0 {
		db = db.Where("room_id = ?", roomId)
	}

	var requests []model.MaintenanceRequest
	if err := db.Order("id DESC").Find(&requests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, requests)
}

func CreateMaintenanceRequest(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMaintenanceInput)
	claim, _ := helper.GetAccountFromToken(c)

	request := model.MaintenanceRequest{
		RoomID:              input.RoomID,
		LocationDescription: input.LocationDescription,
		Category:            input.Category,
		Priority:            input.Priority,
		Title:               input.Title,
		Description:         input.Description,
		EstimatedCost:       input.EstimatedCost,
		Status:              constants.MAINTENANCE_PENDING,
		ReportedBy:          claim.AccountId,
	}
	if request.Priority == "" {
		request.Priority = "normal"
	}

	if err := database.DB.Create(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Sự cố khẩn thì chặn luôn phòng để khỏi xếp khách vào
	if request.RoomID != nil && request.Priority == "urgent" {
		database.DB.Model(&model.Room{}).
			Where("id = ? AND status = ?", *request.RoomID, constants.ROOM_AVAILABLE).
			Update("status", constants.ROOM_MAINTENANCE)
	}

	database.DB.Preload("Room").First(&request, request.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, request)
}

// setMaintenanceStatus kiểm tra bước chuyển hợp lệ rồi cập nhật
func setMaintenanceStatus(c *fiber.Ctx, allowedFrom []string, updates map[string]any) error {
	requestId := c.Locals("inputId").(int)

	var request model.MaintenanceRequest
	if err := database.DB.First(&request, requestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	allowed := false
	for _, from := range allowedFrom {
		if request.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("status "+request.Status))
	}

	if err := database.DB.Model(&request).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Room").Preload("AssignedTo").First(&request, request.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, request)
}

func AssignMaintenanceRequest(c *fiber.Ctx) error {
	input := c.Locals("input").(model.AssignInput)
	return setMaintenanceStatus(c,
		[]string{constants.MAINTENANCE_PENDING, constants.MAINTENANCE_ASSIGNED},
		map[string]any{
			"status":         constants.MAINTENANCE_ASSIGNED,
			"assigned_to_id": input.AssignedToID,
		})
}

func StartMaintenanceRequest(c *fiber.Ctx) error {
	return setMaintenanceStatus(c,
		[]string{constants.MAINTENANCE_ASSIGNED},
		map[string]any{"status": constants.MAINTENANCE_IN_PROGRESS})
}

func HoldMaintenanceRequest(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ReasonInput)
	return setMaintenanceStatus(c,
		[]string{constants.MAINTENANCE_ASSIGNED, constants.MAINTENANCE_IN_PROGRESS},
		map[string]any{
			"status":      constants.MAINTENANCE_ON_HOLD,
			"hold_reason": input.Reason,
		})
}

func ResumeMaintenanceRequest(c *fiber.Ctx) error {
	return setMaintenanceStatus(c,
		[]string{constants.MAINTENANCE_ON_HOLD},
		map[string]any{
			"status":      constants.MAINTENANCE_IN_PROGRESS,
			"hold_reason": "",
		})
}

// CompleteMaintenanceRequest chốt chi phí thực tế và trả phòng về available
func CompleteMaintenanceRequest(c *fiber.Ctx) error {
	requestId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CompleteMaintenanceInput)

	var request model.MaintenanceRequest
	if err := database.DB.First(&request, requestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if request.Status != constants.MAINTENANCE_IN_PROGRESS && request.Status != constants.MAINTENANCE_ASSIGNED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("status "+request.Status))
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":       constants.MAINTENANCE_COMPLETED,
			"actual_cost":  input.ActualCost,
			"completed_at": &now,
		}
		if input.Notes != "" {
			updates["description"] = request.Description + "\n" + input.Notes
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return err
		}

		if request.RoomID != nil {
			if err := tx.Model(&model.Room{}).
				Where("id = ? AND status = ?", *request.RoomID, constants.ROOM_MAINTENANCE).
				Update("status", constants.ROOM_AVAILABLE).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Room").First(&request, request.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, request)
}

func CancelMaintenanceRequest(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ReasonInput)
	return setMaintenanceStatus(c,
		[]string{constants.MAINTENANCE_PENDING, constants.MAINTENANCE_ASSIGNED, constants.MAINTENANCE_IN_PROGRESS, constants.MAINTENANCE_ON_HOLD},
		map[string]any{
			"status":        constants.MAINTENANCE_CANCELLED,
			"cancel_reason": input.Reason,
		})
}
