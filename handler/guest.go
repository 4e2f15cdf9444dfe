package handler

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type guestFilter struct {
	Q        *string `query:"q"`
	IdNumber *string `query:"idNumber"`
	IsVip    *bool   `query:"isVip"`
	Page     *int    `query:"page"`
	PageSize *int    `query:"pageSize"`
}

func GetGuests(c *fiber.Ctx) error {
	filter := new(guestFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	db := database.DB.Model(&model.Guest{})

	// Tra cứu theo số giấy tờ đi qua hash, không bao giờ quét bản mã
	if filter.IdNumber != nil && *filter.IdNumber != "" {
		db = db.Where("id_number_hash = ?", helper.Cipher.HashValue(strings.TrimSpace(*filter.IdNumber)))
	}
	if filter.Q != nil && *filter.Q != "" {
		like := "%" + strings.TrimSpace(*filter.Q) + "%"
		db = db.Where("full_name LIKE ? OR phone LIKE ?", like, like)
	}
	if filter.IsVip != nil {
		db = db.Where("is_vip = ?", *filter.IsVip)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Page, filter.PageSize)
	var guests []model.Guest
	if err := db.Order("id DESC").Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Danh sách không trả số giấy tờ, chỉ màn chi tiết mới giải mã
	for i := range guests {
		guests[i].IdNumber = ""
		guests[i].VisaNumber = ""
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       guests,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	})
}

func GetGuestDetail(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)
	claim, _ := helper.GetAccountFromToken(c)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	helper.DecryptGuestSensitiveFields(&guest)
	if guest.IdNumber != "" || guest.VisaNumber != "" || guest.IdImageUrl != "" {
		helper.LogSensitiveAccess(c, claim.AccountId, "read", "guest", guest.ID, helper.SensitiveGuestFields, "")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

func CreateGuest(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateGuestInput)

	guest := model.Guest{
		FullName:    input.FullName,
		Phone:       input.Phone,
		Email:       input.Email,
		IdType:      input.IdType,
		IdNumber:    input.IdNumber,
		VisaNumber:  input.VisaNumber,
		Nationality: input.Nationality,
		Address:     input.Address,
		IsVip:       input.IsVip,
		Notes:       input.Notes,
	}
	if guest.IdType == "" {
		guest.IdType = constants.ID_TYPE_CCCD
	}

	if err := helper.SaveGuest(&guest); err != nil {
		return respondError(c, err)
	}

	helper.DecryptGuestSensitiveFields(&guest)
	return utils.SuccessResponse(c, fiber.StatusCreated, guest)
}

func UpdateGuest(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateGuestInput)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	if input.FullName != nil {
		guest.FullName = *input.FullName
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.IdType != nil {
		guest.IdType = *input.IdType
	}
	if input.IdNumber != nil {
		guest.IdNumber = *input.IdNumber
		guest.IdNumberHash = ""
	}
	if input.VisaNumber != nil {
		guest.VisaNumber = *input.VisaNumber
		guest.VisaNumberHash = ""
	}
	if input.Nationality != nil {
		guest.Nationality = *input.Nationality
	}
	if input.Address != nil {
		guest.Address = *input.Address
	}
	if input.IsVip != nil {
		guest.IsVip = *input.IsVip
	}
	if input.Notes != nil {
		guest.Notes = *input.Notes
	}

	if err := helper.SaveGuest(&guest); err != nil {
		return respondError(c, err)
	}

	if input.IdNumber != nil || input.VisaNumber != nil {
		claim, _ := helper.GetAccountFromToken(c)
		helper.LogSensitiveAccess(c, claim.AccountId, "update", "guest", guest.ID, helper.SensitiveGuestFields, "")
	}

	helper.DecryptGuestSensitiveFields(&guest)
	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}

// GetGuestHistory trả các lượt lưu trú trước đây của khách
func GetGuestHistory(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	var bookings []model.Booking
	err := database.DB.Preload("Room").Preload("Room.RoomType").
		Where("guest_id = ?", guest.ID).
		Order("check_in_date DESC").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"guest":      fiber.Map{"id": guest.ID, "fullName": guest.FullName, "totalStays": guest.TotalStays, "isVip": guest.IsVip},
		"bookings":   bookings,
		"totalStays": guest.TotalStays,
	})
}

// LookupGuestByIdNumber tìm khách theo số giấy tờ, phục vụ check-in nhanh
func LookupGuestByIdNumber(c *fiber.Ctx) error {
	idNumber := strings.TrimSpace(c.Query("idNumber"))
	if idNumber == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, errors.New("idNumber required"))
	}

	guest, err := helper.FindGuestByIdNumber(idNumber)
	if err != nil {
		return respondError(c, err)
	}
	if guest == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, nil)
	}

	claim, _ := helper.GetAccountFromToken(c)
	helper.LogSensitiveAccess(c, claim.AccountId, "lookup", "guest", guest.ID, []string{"id_number"}, "")

	helper.DecryptGuestSensitiveFields(guest)
	return utils.SuccessResponse(c, fiber.StatusOK, guest)
}
