package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetRooms(c *fiber.Ctx) error {
	db := database.DB.Preload("RoomType").Where("is_active = ?", true)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if floor := c.QueryInt("floor"); floor > 0 {
		db = db.Where("floor = ?", floor)
	}

	var rooms []model.Room
	if err := db.Order("number").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}

// GetRoomBoard: sơ đồ phòng kèm khách đang ở, màn chính của lễ tân
func GetRoomBoard(c *fiber.Ctx) error {
	var rooms []model.Room
	if err := database.DB.Preload("RoomType").Where("is_active = ?", true).Order("floor, number").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var inHouse []model.Booking
	database.DB.Preload("Guest").Where("status = ?", constants.BOOKING_CHECKED_IN).Find(&inHouse)
	byRoom := make(map[uint]*model.Booking, len(inHouse))
	for i := range inHouse {
		byRoom[inHouse[i].RoomID] = &inHouse[i]
	}

	type roomCard struct {
		Room    model.Room     `json:"room"`
		Booking *model.Booking `json:"booking,omitempty"`
	}
	board := make([]roomCard, 0, len(rooms))
	for _, room := range rooms {
		board = append(board, roomCard{Room: room, Booking: byRoom[room.ID]})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

func GetRoomDetail(c *fiber.Ctx) error {
	roomId := c.Locals("inputId").(int)

	var room model.Room
	if err := database.DB.Preload("RoomType").First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRoom(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRoomInput)

	var count int64
	database.DB.Model(&model.Room{}).Where("number = ?", input.Number).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Số phòng đã tồn tại", errors.New("duplicate room number"))
	}

	room := model.Room{
		Number:     input.Number,
		RoomTypeID: input.RoomTypeID,
		Floor:      input.Floor,
		Status:     constants.ROOM_AVAILABLE,
		Notes:      input.Notes,
		IsActive:   true,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("RoomType").First(&room, room.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// UpdateRoomStatus đổi trạng thái thủ công, không đụng tới booking
func UpdateRoomStatus(c *fiber.Ctx) error {
	roomId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateRoomStatusInput)

	var room model.Room
	if err := database.DB.First(&room, roomId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, err)
	}

	// Phòng đang có khách không đổi tay được, phải check-out trước
	if room.Status == constants.ROOM_OCCUPIED && input.Status != constants.ROOM_OCCUPIED {
		var count int64
		database.DB.Model(&model.Booking{}).
			Where("room_id = ? AND status = ?", room.ID, constants.BOOKING_CHECKED_IN).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Phòng đang có khách, không thể đổi trạng thái", errors.New("room occupied"))
		}
	}

	if err := database.DB.Model(&room).Update("status", input.Status).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func GetRoomTypes(c *fiber.Ctx) error {
	var roomTypes []model.RoomType
	if err := database.DB.Where("is_active = ?", true).Order("base_rate").Find(&roomTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, roomTypes)
}

func CreateRoomType(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateRoomTypeInput)

	roomType := model.RoomType{
		Name:          input.Name,
		NameEn:        input.NameEn,
		BaseRate:      input.BaseRate,
		HourlyRate:    input.HourlyRate,
		FirstHourRate: input.FirstHourRate,
		MinHours:      input.MinHours,
		AllowsHourly:  input.AllowsHourly,
		MaxGuests:     input.MaxGuests,
		Amenities:     input.Amenities,
		IsActive:      true,
	}
	if roomType.MinHours == 0 {
		roomType.MinHours = 2
	}
	if err := database.DB.Create(&roomType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, roomType)
}
