package handler

import (
	"fmt"
	"math"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetFinancialCategories(c *fiber.Ctx) error {
	var categories []model.FinancialCategory
	if err := database.DB.Where("is_active = ?", true).Order("category_type, id").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateFinancialCategory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFinancialCategoryInput)

	category := model.FinancialCategory{
		Name:         input.Name,
		CategoryType: input.CategoryType,
		Icon:         input.Icon,
		Color:        input.Color,
		IsDefault:    input.IsDefault,
		IsActive:     true,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

type entryFilter struct {
	EntryType  *string `query:"entryType"`
	CategoryID *uint   `query:"categoryId"`
	From       *string `query:"from"`
	To         *string `query:"to"`
	Page       *int    `query:"page"`
	PageSize   *int    `query:"pageSize"`
}

func GetFinancialEntries(c *fiber.Ctx) error {
	filter := new(entryFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
	}

	db := database.DB.Model(&model.FinancialEntry{})
	if filter.EntryType != nil && *filter.EntryType != "" {
		db = db.Where("entry_type = ?", *filter.EntryType)
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.From != nil {
		if from, err := utils.ParseDate(*filter.From); err == nil {
			db = db.Where("date >= ?", from)
		}
	}
	if filter.To != nil {
		if to, err := utils.ParseDate(*filter.To); err == nil {
			db = db.Where("date <= ?", to)
		}
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Page, filter.PageSize)
	var entries []model.FinancialEntry
	if err := db.Preload("Category").Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       entries,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
	})
}

func CreateFinancialEntry(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFinancialEntryInput)

	entry := model.FinancialEntry{
		CategoryID:    input.CategoryID,
		EntryType:     input.EntryType,
		Amount:        input.Amount,
		Currency:      input.Currency,
		ExchangeRate:  input.ExchangeRate,
		Description:   input.Description,
		PaymentMethod: input.PaymentMethod,
		BookingID:     input.BookingID,
	}
	if entry.Currency == "" {
		entry.Currency = "VND"
	}
	if entry.ExchangeRate == 0 {
		entry.ExchangeRate = 1
	}
	if input.Date != nil {
		entry.Date = *input.Date
	} else {
		entry.Date = utils.Today()
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Category").First(&entry, entry.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, entry)
}

// sumEntries quy về VND theo tỷ giá từng dòng
func sumEntries(entryType string, from, to utils.DateOnly) int64 {
	var total float64
	database.DB.Model(&model.FinancialEntry{}).
		Where("entry_type = ? AND date >= ? AND date <= ?", entryType, from, to).
		Select("COALESCE(SUM(amount * exchange_rate), 0)").
		Scan(&total)
	return int64(math.Round(total))
}

func GetDailyFinanceSummary(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		date = utils.Today()
	}

	income := sumEntries(constants.ENTRY_INCOME, date, date)
	expense := sumEntries(constants.ENTRY_EXPENSE, date, date)

	// Chia theo danh mục để hiện biểu đồ
	type categorySum struct {
		CategoryID uint   `json:"categoryId"`
		Name       string `json:"name"`
		EntryType  string `json:"entryType"`
		Total      int64  `json:"total"`
	}
	var byCategory []categorySum
	database.DB.Model(&model.FinancialEntry{}).
		Select("financial_entries.category_id, financial_categories.name, financial_entries.entry_type, CAST(COALESCE(SUM(financial_entries.amount * financial_entries.exchange_rate), 0) AS INTEGER) AS total").
		Joins("JOIN financial_categories ON financial_categories.id = financial_entries.category_id").
		Where("financial_entries.date = ?", date).
		Group("financial_entries.category_id, financial_categories.name, financial_entries.entry_type").
		Scan(&byCategory)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":       date,
		"income":     income,
		"expense":    expense,
		"net":        income - expense,
		"byCategory": byCategory,
	})
}

func GetMonthlyFinanceSummary(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, fmt.Errorf("month %d invalid", month))
	}

	first := utils.NewDate(year, time.Month(month), 1)
	last := utils.NewDate(year, time.Month(month)+1, 1).AddDays(-1)

	income := sumEntries(constants.ENTRY_INCOME, first, last)
	expense := sumEntries(constants.ENTRY_EXPENSE, first, last)

	// Từng ngày trong tháng để vẽ đường doanh thu
	type daySum struct {
		Date    utils.DateOnly `json:"date"`
		Income  int64          `json:"income"`
		Expense int64          `json:"expense"`
	}
	days := make([]daySum, 0, 31)
	for d := first; !d.After(last); d = d.AddDays(1) {
		days = append(days, daySum{
			Date:    d,
			Income:  sumEntries(constants.ENTRY_INCOME, d, d),
			Expense: sumEntries(constants.ENTRY_EXPENSE, d, d),
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"year":    year,
		"month":   month,
		"income":  income,
		"expense": expense,
		"net":     income - expense,
		"byDay":   days,
	})
}
