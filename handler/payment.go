package handler

import (
	"encoding/base64"
	"fmt"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

type paymentFilter struct {
	BookingID *uint   `query:"bookingId"`
	Method    *string `query:"method"`
	From      *string `query:"from"`
	To        *string `query:"to"`
	Page      *int    `query:"page"`
	PageSize  *int    `query:"pageSize"`
}

func GetPayments(c *fiber.Ctx) error {
	filter := new(paymentFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	db := database.DB.Model(&model.Payment{})
	if filter.BookingID != nil {
		db = db.Where("booking_id = ?", *filter.BookingID)
	}
	if filter.Method != nil && *filter.Method != "" {
		db = db.Where("payment_method = ?", *filter.Method)
	}
	if filter.From != nil {
		if from, err := utils.ParseDate(*filter.From); err == nil {
			db = db.Where("created_at >= ?", from.Time)
		}
	}
	if filter.To != nil {
		if to, err := utils.ParseDate(*filter.To); err == nil {
			db = db.Where("created_at < ?", to.AddDays(1).Time)
		}
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Page, filter.PageSize)
	var payments []model.Payment
	if err := db.Order("id DESC").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       payments,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	})
}

// GetPaymentDetail kèm mã QR của biên nhận để in hoặc gửi khách
func GetPaymentDetail(c *fiber.Ctx) error {
	paymentId := c.Locals("inputId").(int)

	var payment model.Payment
	if err := database.DB.Preload("Booking").First(&payment, paymentId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	var qrBase64 string
	if payment.ReceiptNumber != nil {
		content := fmt.Sprintf("%s|%d|%s", *payment.ReceiptNumber, payment.Amount, payment.PaymentMethod)
		if png, err := utils.GenerateQRCode(content, 256); err == nil {
			qrBase64 = base64.StdEncoding.EncodeToString(png)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"payment":   payment,
		"receiptQr": qrBase64,
	})
}

func RecordDeposit(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RecordDepositInput)
	claim, _ := helper.GetAccountFromToken(c)

	var payment *model.Payment
	var booking *model.Booking
	err := utils.RetryTransient(func() error {
		var innerErr error
		payment, booking, innerErr = helper.RecordDeposit(&input, claim.AccountId)
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"payment":     payment,
		"depositPaid": booking.DepositPaid,
	})
}

func CreatePayment(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePaymentInput)
	claim, _ := helper.GetAccountFromToken(c)

	var payment *model.Payment
	err := utils.RetryTransient(func() error {
		var innerErr error
		payment, innerErr = helper.CreatePayment(&input, claim.AccountId)
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, payment)
}

func CompletePayment(c *fiber.Ctx) error {
	paymentId := c.Locals("inputId").(int)

	var payment *model.Payment
	err := utils.RetryTransient(func() error {
		var innerErr error
		payment, innerErr = helper.CompletePayment(uint(paymentId))
		return innerErr
	}, helper.IsTransientDBError)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}
