package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRCode tạo ảnh PNG mã QR cho mã tra cứu phiếu thu
func GenerateQRCode(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}
