package helper

import (
	"errors"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"gorm.io/gorm"
)

// PrepareGuestSensitiveFields chạy trước khi lưu: giá trị còn là plaintext
// thì tính hash rồi mã hoá. Hash là cột duy nhất đánh unique vì bản mã
// không xác định.
func PrepareGuestSensitiveFields(guest *model.Guest) error {
	if guest.IdNumber != "" && !Cipher.IsEncrypted(guest.IdNumber) {
		plain := strings.TrimSpace(guest.IdNumber)
		guest.IdNumberHash = Cipher.HashValue(plain)
		encrypted, err := Cipher.Encrypt(plain)
		if err != nil {
			return err
		}
		guest.IdNumber = encrypted
	}
	if guest.VisaNumber != "" && !Cipher.IsEncrypted(guest.VisaNumber) {
		plain := strings.TrimSpace(guest.VisaNumber)
		guest.VisaNumberHash = Cipher.HashValue(plain)
		encrypted, err := Cipher.Encrypt(plain)
		if err != nil {
			return err
		}
		guest.VisaNumber = encrypted
	}
	return nil
}

// DecryptGuestSensitiveFields giải mã để trả plaintext cho API
func DecryptGuestSensitiveFields(guest *model.Guest) {
	if plain, err := Cipher.Decrypt(guest.IdNumber); err == nil {
		guest.IdNumber = plain
	}
	if plain, err := Cipher.Decrypt(guest.VisaNumber); err == nil {
		guest.VisaNumber = plain
	}
}

// CheckGuestUniqueness báo Conflict khi trùng số điện thoại hoặc trùng hash
// số giấy tờ với khách khác
func CheckGuestUniqueness(guest *model.Guest) error {
	db := database.DB

	var count int64
	if err := db.Model(&model.Guest{}).
		Where("phone = ? AND id <> ?", guest.Phone, guest.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return NewBusinessError(ErrValidation, constants.DUPLICATE_PHONE)
	}

	if guest.IdNumberHash != "" {
		if err := db.Model(&model.Guest{}).
			Where("id_number_hash = ? AND id <> ?", guest.IdNumberHash, guest.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewBusinessError(ErrValidation, constants.DUPLICATE_ID_NUMBER)
		}
	}
	if guest.VisaNumberHash != "" {
		if err := db.Model(&model.Guest{}).
			Where("visa_number_hash = ? AND id <> ?", guest.VisaNumberHash, guest.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return NewBusinessError(ErrValidation, constants.DUPLICATE_ID_NUMBER)
		}
	}
	return nil
}

// SaveGuest gom đủ luồng lưu: hash + mã hoá, kiểm tra trùng, ghi DB
func SaveGuest(guest *model.Guest) error {
	if err := PrepareGuestSensitiveFields(guest); err != nil {
		return err
	}
	if err := CheckGuestUniqueness(guest); err != nil {
		return err
	}
	return database.DB.Save(guest).Error
}

// FindGuestByIdNumber tra khách theo plaintext số giấy tờ qua cột hash
func FindGuestByIdNumber(idNumber string) (*model.Guest, error) {
	hash := Cipher.HashValue(idNumber)
	if hash == "" {
		return nil, nil
	}
	var guest model.Guest
	err := database.DB.Where("id_number_hash = ?", hash).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}
