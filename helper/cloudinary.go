package helper

import (
	"log"

	"hotel_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Ảnh giấy tờ của khách gom về một thư mục để giới hạn quyền truy cập
// theo prefix trên Cloudinary.
const GuestIdImageFolder = "hotel/giay-to-khach"

// InitCloudinary dựng client cho ảnh scan giấy tờ. File ảnh nằm ngoài
// hệ thống, server chỉ ký upload và giữ lại secure URL trong hồ sơ khách.
func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Không khởi tạo được Cloudinary: %v", err)
	}
	cld.Config.URL.Secure = true
	return cld
}
