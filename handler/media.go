package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature cấp chữ ký cho client tự upload ảnh giấy tờ lên Cloudinary
func GenerateUploadSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Params không hợp lệ", err)
	}

	timestamp := time.Now().Unix()

	if params.Folder == "" {
		params.Folder = helper.GuestIdImageFolder
	}
	paramMap := map[string]string{
		"timestamp": fmt.Sprintf("%d", timestamp),
		"folder":    params.Folder,
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary ký chuỗi key=value thô, không URL-encode
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadGuestIdImage nhận file scan giấy tờ, đẩy lên Cloudinary rồi lưu URL vào hồ sơ khách
func UploadGuestIdImage(c *fiber.Ctx) error {
	guestId := c.Locals("inputId").(int)
	claim, _ := helper.GetAccountFromToken(c)

	var guest model.Guest
	if err := database.DB.First(&guest, guestId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Thiếu file ảnh", err)
	}

	cld, ok := c.Locals("cld").(*cloudinary.Cloudinary)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, fmt.Errorf("cloudinary client missing"))
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc file", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		Folder:   helper.GuestIdImageFolder,
		PublicID: fmt.Sprintf("guest_%d_%d", guest.ID, time.Now().Unix()),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload ảnh thất bại", err)
	}

	if err := database.DB.Model(&guest).Update("id_image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.LogSensitiveAccess(c, claim.AccountId, "upload", "guest", guest.ID, []string{"id_image"}, "")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"idImageUrl": result.SecureURL,
	})
}
