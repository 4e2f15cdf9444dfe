package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMinibarItems(c *fiber.Ctx) error {
	var items []model.MinibarItem
	if err := database.DB.Where("is_active = ?", true).Order("name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateMinibarItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMinibarItemInput)

	item := model.MinibarItem{
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		Unit:     input.Unit,
		IsActive: true,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

// RecordMinibarSale trừ kho và ghi thẳng vào folio của booking trong một giao dịch
func RecordMinibarSale(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMinibarSaleInput)
	claim, _ := helper.GetAccountFromToken(c)

	var sale model.MinibarSale
	err := utils.RetryTransient(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var item model.MinibarItem
			if err := tx.First(&item, input.ItemID).Error; err != nil {
				return helper.NewBusinessError(helper.ErrNotFound, "Không tìm thấy mặt hàng minibar")
			}
			if item.Stock < input.Quantity {
				return helper.NewBusinessError(helper.ErrConflict, "Không đủ tồn kho minibar")
			}

			var booking model.Booking
			if err := tx.First(&booking, input.BookingID).Error; err != nil {
				return helper.NewBusinessError(helper.ErrNotFound, constants.BOOKING_NOT_FOUND)
			}
			if booking.Status != constants.BOOKING_CHECKED_IN {
				return helper.NewBusinessError(helper.ErrConflict, "Chỉ ghi minibar cho khách đang ở")
			}

			if err := tx.Model(&item).Update("stock", gorm.Expr("stock - ?", input.Quantity)).Error; err != nil {
				return err
			}

			folioItem := model.FolioItem{
				BookingID:   booking.ID,
				ItemType:    constants.FOLIO_MINIBAR,
				Description: item.Name,
				Quantity:    input.Quantity,
				UnitPrice:   item.Price,
				TotalPrice:  int64(input.Quantity) * item.Price,
				Date:        utils.Today(),
				CreatedBy:   claim.AccountId,
			}
			if err := tx.Create(&folioItem).Error; err != nil {
				return err
			}

			sale = model.MinibarSale{
				BookingID:   booking.ID,
				ItemID:      item.ID,
				Quantity:    input.Quantity,
				UnitPrice:   item.Price,
				Total:       folioItem.TotalPrice,
				FolioItemID: &folioItem.ID,
				SoldBy:      claim.AccountId,
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}

			// Cộng dồn phụ thu lên booking để balance còn đúng
			return tx.Model(&booking).
				Update("additional_charges", gorm.Expr("additional_charges + ?", folioItem.TotalPrice)).Error
		})
	}, helper.IsTransientDBError)
	if err != nil {
		var berr *helper.BusinessError
		if errors.As(err, &berr) {
			return respondError(c, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, sale)
}
