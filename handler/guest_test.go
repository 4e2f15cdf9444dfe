package handler

import (
	"net/http/httptest"
	"testing"

	"hotel_manager/helper"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func TestLookupGuestByIdNumber(t *testing.T) {
	db := setupTestDB(t)

	app := fiber.New()
	app.Get("/guest/lookup", LookupGuestByIdNumber)

	// Không có idNumber → 400
	resp, err := app.Test(httptest.NewRequest("GET", "/guest/lookup", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("thiếu idNumber: status = %d, muốn 400", resp.StatusCode)
	}

	// Số giấy tờ không khớp khách nào → 404, không được panic
	resp, err = app.Test(httptest.NewRequest("GET", "/guest/lookup?idNumber=000000000000", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("khách không tồn tại: status = %d, muốn 404", resp.StatusCode)
	}

	// Có khách khớp → 200
	guest := model.Guest{
		FullName:     "Lê Văn Cường",
		Phone:        "0901234567",
		IdNumberHash: helper.Cipher.HashValue("079203001234"),
	}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("tạo khách: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest("GET", "/guest/lookup?idNumber=079203001234", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("khách tồn tại: status = %d, muốn 200", resp.StatusCode)
	}
}
