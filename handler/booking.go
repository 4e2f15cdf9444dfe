package handler

import (
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type bookingFilter struct {
	Status   *string `query:"status"`
	RoomID   *uint   `query:"roomId"`
	GuestID  *uint   `query:"guestId"`
	Source   *string `query:"source"`
	From     *string `query:"from"`
	To       *string `query:"to"`
	Page     *int    `query:"page"`
	PageSize *int    `query:"pageSize"`
}

func GetBookings(c *fiber.Ctx) error {
	filter := new(bookingFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	db := database.DB.Model(&model.Booking{})
	if filter.Status != nil && *filter.Status != "" {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.RoomID != nil {
		db = db.Where("room_id = ?", *filter.RoomID)
	}
	if filter.GuestID != nil {
		db = db.Where("guest_id = ?", *filter.GuestID)
	}
	if filter.Source != nil && *filter.Source != "" {
		db = db.Where("source = ?", *filter.Source)
	}
	if filter.From != nil {
		if from, err := utils.ParseDate(*filter.From); err == nil {
			db = db.Where("check_in_date >= ?", from)
		}
	}
	if filter.To != nil {
		if to, err := utils.ParseDate(*filter.To); err == nil {
			db = db.Where("check_in_date <= ?", to)
		}
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Page, filter.PageSize)
	var bookings []model.Booking
	if err := db.Preload("Room").Preload("Guest").Order("check_in_date DESC, id DESC").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	})
}

func GetBookingDetail(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	err := database.DB.Preload("Room").Preload("Room.RoomType").Preload("Guest").
		First(&booking, bookingId).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	var payments []model.Payment
	database.DB.Where("booking_id = ?", booking.ID).Order("id").Find(&payments)

	var folio []model.FolioItem
	database.DB.Where("booking_id = ?", booking.ID).Order("id").Find(&folio)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":    booking,
		"payments":   payments,
		"folio":      folio,
		"balanceDue": booking.BalanceDue(),
	})
}

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	claim, _ := helper.GetAccountFromToken(c)

	booking, err := helper.CreateBooking(&input, claim.AccountId)
	if err != nil {
		return respondError(c, err)
	}

	database.DB.Preload("Room").Preload("Guest").First(booking, booking.ID)

	// Gửi mail xác nhận nếu khách có email, lỗi gửi không chặn nghiệp vụ
	if booking.Guest.Email != "" {
		utils.SendBookingConfirmationEmail(booking.Guest.Email, utils.BookingConfirmationData{
			GuestName:    booking.Guest.FullName,
			RoomNumber:   booking.Room.Number,
			CheckInDate:  booking.CheckInDate.String(),
			CheckOutDate: booking.CheckOutDate.String(),
			TotalAmount:  booking.TotalAmount,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func UpdateBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateBookingInput)

	booking, err := helper.UpdateBooking(uint(bookingId), &input)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CheckInBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CheckInInput)

	booking, err := helper.CheckInBooking(uint(bookingId), input.ActualCheckIn)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CheckOutBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.CheckOutInput)
	claim, _ := helper.GetAccountFromToken(c)

	var booking *model.Booking
	err := utils.RetryTransient(func() error {
		var innerErr error
		booking, innerErr = helper.CheckOutBooking(uint(bookingId), input.AdditionalCharges, claim.AccountId)
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":    booking,
		"balanceDue": booking.BalanceDue(),
	})
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateStatusInput)
	claim, _ := helper.GetAccountFromToken(c)

	booking, err := helper.UpdateBookingStatus(uint(bookingId), input.Status, input.Reason, claim.AccountId)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetTodayBookings gom ba nhóm lễ tân cần nhìn mỗi sáng
func GetTodayBookings(c *fiber.Ctx) error {
	today := utils.Today()

	var arrivals []model.Booking
	database.DB.Preload("Room").Preload("Guest").
		Where("check_in_date = ? AND status IN ?", today, []string{constants.BOOKING_PENDING, constants.BOOKING_CONFIRMED}).
		Order("id").Find(&arrivals)

	var departures []model.Booking
	database.DB.Preload("Room").Preload("Guest").
		Where("check_out_date = ? AND status = ?", today, constants.BOOKING_CHECKED_IN).
		Order("id").Find(&departures)

	var inHouse []model.Booking
	database.DB.Preload("Room").Preload("Guest").
		Where("status = ?", constants.BOOKING_CHECKED_IN).
		Order("id").Find(&inHouse)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":       today,
		"arrivals":   arrivals,
		"departures": departures,
		"inHouse":    inHouse,
	})
}

// GetBookingCalendar trả booking giao với khoảng [start, end] theo phòng.
// Khoảng ngược trả danh sách rỗng thay vì lỗi.
func GetBookingCalendar(c *fiber.Ctx) error {
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		start = utils.Today()
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		end = start.AddDays(14)
	}

	var bookings []model.Booking
	if !end.Before(start) {
		err := database.DB.Preload("Room").Preload("Guest").
			Where("check_in_date <= ? AND check_out_date >= ?", end, start).
			Where("status NOT IN ?", []string{constants.BOOKING_CANCELLED, constants.BOOKING_NO_SHOW}).
			Order("room_id, check_in_date").
			Find(&bookings).Error
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	var rooms []model.Room
	database.DB.Preload("RoomType").Where("is_active = ?", true).Order("number").Find(&rooms)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"start":    start,
		"end":      end,
		"rooms":    rooms,
		"bookings": bookings,
	})
}

// QuoteBooking báo giá trước khi tạo, không ghi gì vào DB
func QuoteBooking(c *fiber.Ctx) error {
	roomId := uint(c.QueryInt("roomId"))
	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	var ratePlanID *uint
	if v := c.QueryInt("ratePlanId"); v > 0 {
		id := uint(v)
		ratePlanID = &id
	}

	quote, err := helper.QuoteForRoom(roomId, checkIn, checkOut, ratePlanID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, quote)
}
