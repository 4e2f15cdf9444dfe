package router

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:routerdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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

func tokenFor(t *testing.T, account *model.Account) string {
	t.Helper()

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	if err != nil {
		t.Fatalf("tạo access token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) int {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp.StatusCode
}

// Ghi khách và ghi bút toán là thao tác từ cấp quản lý trở lên; lễ tân
// chỉ được đọc.
func TestMutatingGuestAndFinanceRoutesRequireManager(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "router-test-secret")
	helper.InitSecrets()

	staff := model.Account{Username: "letan01", Role: constants.ROLE_STAFF, Active: true}
	manager := model.Account{Username: "quanly01", Role: constants.ROLE_MANAGER, Active: true}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("tạo tài khoản lễ tân: %v", err)
	}
	if err := db.Create(&manager).Error; err != nil {
		t.Fatalf("tạo tài khoản quản lý: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app)

	staffToken := tokenFor(t, &staff)
	managerToken := tokenFor(t, &manager)

	// Lễ tân vẫn đọc được danh sách khách
	if code := doJSON(t, app, "GET", "/api/v1/guest/", staffToken, ""); code == fiber.StatusForbidden {
		t.Fatal("lễ tân phải đọc được danh sách khách")
	}

	// Nhưng không được tạo hay sửa khách
	if code := doJSON(t, app, "POST", "/api/v1/guest/", staffToken, `{}`); code != fiber.StatusForbidden {
		t.Fatalf("lễ tân tạo khách: status = %d, muốn 403", code)
	}
	if code := doJSON(t, app, "PUT", "/api/v1/guest/1", staffToken, `{}`); code != fiber.StatusForbidden {
		t.Fatalf("lễ tân sửa khách: status = %d, muốn 403", code)
	}
	if code := doJSON(t, app, "POST", "/api/v1/finance/entries", staffToken, `{}`); code != fiber.StatusForbidden {
		t.Fatalf("lễ tân ghi bút toán: status = %d, muốn 403", code)
	}

	// Quản lý qua được cổng phân quyền (request rỗng dừng ở validation)
	if code := doJSON(t, app, "POST", "/api/v1/guest/", managerToken, `{}`); code == fiber.StatusForbidden {
		t.Fatal("quản lý phải được phép tạo khách")
	}
	if code := doJSON(t, app, "POST", "/api/v1/finance/entries", managerToken, `{}`); code == fiber.StatusForbidden {
		t.Fatal("quản lý phải được phép ghi bút toán")
	}
}
