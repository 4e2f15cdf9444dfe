package validate

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:validatedb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("mở sqlite in-memory: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	return db
}

func postEntry(t *testing.T, app *fiber.App, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

// Bút toán phải cùng loại thu/chi với danh mục, nếu không tổng kết toán
// đêm sẽ lệch.
func TestCreateFinancialEntryCategoryTypeMatch(t *testing.T) {
	db := setupTestDB(t)

	income := model.FinancialCategory{
		Name:         "Tiền phòng",
		CategoryType: constants.ENTRY_INCOME,
		IsActive:     true,
	}
	if err := db.Create(&income).Error; err != nil {
		t.Fatalf("tạo danh mục thu: %v", err)
	}
	retired := model.FinancialCategory{
		Name:         "Danh mục cũ",
		CategoryType: constants.ENTRY_EXPENSE,
	}
	if err := db.Create(&retired).Error; err != nil {
		t.Fatalf("tạo danh mục ngừng dùng: %v", err)
	}
	db.Model(&retired).Update("is_active", false)

	app := fiber.New()
	app.Post("/entries", CreateFinancialEntry(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Ghi chi vào danh mục thu → chặn
	body := fmt.Sprintf(`{"categoryId":%d,"entryType":"expense","amount":100000}`, income.ID)
	if code := postEntry(t, app, body); code != fiber.StatusBadRequest {
		t.Fatalf("bút toán chi trên danh mục thu: status = %d, muốn 400", code)
	}

	// Danh mục ngừng dùng → chặn
	body = fmt.Sprintf(`{"categoryId":%d,"entryType":"expense","amount":100000}`, retired.ID)
	if code := postEntry(t, app, body); code != fiber.StatusBadRequest {
		t.Fatalf("bút toán trên danh mục ngừng dùng: status = %d, muốn 400", code)
	}

	// Đúng loại thì qua validation
	body = fmt.Sprintf(`{"categoryId":%d,"entryType":"income","amount":100000}`, income.ID)
	if code := postEntry(t, app, body); code != fiber.StatusOK {
		t.Fatalf("bút toán đúng loại: status = %d, muốn 200", code)
	}

	// Danh mục không tồn tại → chặn
	if code := postEntry(t, app, `{"categoryId":9999,"entryType":"income","amount":100000}`); code != fiber.StatusBadRequest {
		t.Fatalf("danh mục không tồn tại: status = %d, muốn 400", code)
	}
}
