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

func GetHousekeepingTasks(c *fiber.Ctx) error {
	db := database.DB.Preload("Room").Preload("AssignedTo")
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if date, err := utils.ParseDate(c.Query("date")); err == nil {
		db = db.Where("scheduled_date = ?", date)
	}
	if assignee := c.QueryInt("assignedToId"); assignee > 0 {
		db = db.Where("assigned_to_id = ?", assignee)
	}

	var tasks []model.HousekeepingTask
	if err := db.Order("scheduled_date, id").Find(&tasks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tasks)
}

// GetMyHousekeepingTasks: việc hôm nay của chính nhân viên đang đăng nhập
func GetMyHousekeepingTasks(c *fiber.Ctx) error {
	claim, _ := helper.GetAccountFromToken(c)

	var tasks []model.HousekeepingTask
	err := database.DB.Preload("Room").
		Where("assigned_to_id = ? AND scheduled_date = ? AND status IN ?",
			claim.AccountId, utils.Today(), []string{constants.TASK_PENDING, constants.TASK_IN_PROGRESS}).
		Order("id").Find(&tasks).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tasks)
}

func CreateHousekeepingTask(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateHousekeepingTaskInput)

	task := model.HousekeepingTask{
		RoomID:       input.RoomID,
		TaskType:     input.TaskType,
		AssignedToID: input.AssignedToID,
		Notes:        input.Notes,
		Status:       constants.TASK_PENDING,
	}
	if task.TaskType == "" {
		task.TaskType = constants.TASK_TYPE_DAILY_CLEAN
	}
	if input.ScheduledDate != nil {
		task.ScheduledDate = *input.ScheduledDate
	} else {
		task.ScheduledDate = utils.Today()
	}

	if err := database.DB.Create(&task).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Room").First(&task, task.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, task)
}

func AssignHousekeepingTask(c *fiber.Ctx) error {
	taskId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.AssignInput)

	var task model.HousekeepingTask
	if err := database.DB.First(&task, taskId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if task.Status == constants.TASK_COMPLETED || task.Status == constants.TASK_VERIFIED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("task already finished"))
	}

	if err := database.DB.Model(&task).Update("assigned_to_id", input.AssignedToID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, task)
}

func StartHousekeepingTask(c *fiber.Ctx) error {
	taskId := c.Locals("inputId").(int)

	var task model.HousekeepingTask
	if err := database.DB.First(&task, taskId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if task.Status != constants.TASK_PENDING {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("task not pending"))
	}

	now := time.Now()
	err := database.DB.Model(&task).Updates(map[string]any{
		"status":     constants.TASK_IN_PROGRESS,
		"started_at": &now,
	}).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, task)
}

// CompleteHousekeepingTask: xong việc dọn thì phòng đang cleaning chuyển về available
func CompleteHousekeepingTask(c *fiber.Ctx) error {
	taskId := c.Locals("inputId").(int)

	var task model.HousekeepingTask
	if err := database.DB.First(&task, taskId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if task.Status != constants.TASK_PENDING && task.Status != constants.TASK_IN_PROGRESS {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("task not open"))
	}

	now := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Updates(map[string]any{
			"status":       constants.TASK_COMPLETED,
			"completed_at": &now,
		}).Error; err != nil {
			return err
		}

		var room model.Room
		if err := tx.First(&room, task.RoomID).Error; err != nil {
			return err
		}
		if room.Status == constants.ROOM_CLEANING {
			if err := tx.Model(&room).Update("status", constants.ROOM_AVAILABLE).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Room").First(&task, task.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, task)
}

func VerifyHousekeepingTask(c *fiber.Ctx) error {
	taskId := c.Locals("inputId").(int)
	claim, _ := helper.GetAccountFromToken(c)

	var task model.HousekeepingTask
	if err := database.DB.First(&task, taskId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if task.Status != constants.TASK_COMPLETED {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ILLEGAL_TRANSITION, errors.New("task not completed"))
	}

	err := database.DB.Model(&task).Updates(map[string]any{
		"status":      constants.TASK_VERIFIED,
		"verified_by": claim.AccountId,
	}).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, task)
}
