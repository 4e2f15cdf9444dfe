package helper

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"hotel_manager/config"
)

// Tiền tố nhận diện bản mã để không mã hoá hai lần
const cipherPrefix = "enc:v1:"

// FieldCipher mã hoá field nhạy cảm (số giấy tờ, visa) bằng AES-256-GCM
// và sinh hash SHA-256 có pepper làm khoá tra cứu/chống trùng.
// Không có khoá thì hoạt động như hàm đồng nhất (chế độ dev/test).
type FieldCipher struct {
	key    []byte
	pepper string
	// Cho phép trả nguyên văn khi giải mã thất bại (giai đoạn di trú
	// dữ liệu cũ chưa mã hoá)
	legacyFallback bool
}

func NewFieldCipher(key, pepper string, legacyFallback bool) (*FieldCipher, error) {
	fc := &FieldCipher{pepper: pepper, legacyFallback: legacyFallback}
	if key == "" {
		return fc, nil
	}
	raw := sha256.Sum256([]byte(key))
	fc.key = raw[:]
	return fc, nil
}

// NewFieldCipherFromEnv đọc FIELD_ENCRYPTION_KEY, HASH_PEPPER,
// LEGACY_PLAINTEXT_FALLBACK (mặc định bật)
func NewFieldCipherFromEnv() *FieldCipher {
	fc, _ := NewFieldCipher(
		config.Config("FIELD_ENCRYPTION_KEY"),
		config.Config("HASH_PEPPER"),
		config.ConfigBool("LEGACY_PLAINTEXT_FALLBACK", true),
	)
	return fc
}

func (fc *FieldCipher) HasKey() bool {
	return len(fc.key) > 0
}

// IsEncrypted nhận diện giá trị đã là bản mã
func (fc *FieldCipher) IsEncrypted(value string) bool {
	return strings.HasPrefix(value, cipherPrefix)
}

// Encrypt mã hoá plaintext, nonce mới mỗi lần nên bản mã không xác định.
// Chuỗi rỗng hoặc đã mã hoá thì trả nguyên văn.
func (fc *FieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" || !fc.HasKey() || fc.IsEncrypted(plaintext) {
		return plaintext, nil
	}

	block, err := aes.NewCipher(fc.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return cipherPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt giải mã. Giá trị không đúng định dạng hoặc sai tag xác thực:
// trả nguyên văn nếu legacyFallback bật, ngược lại báo lỗi.
func (fc *FieldCipher) Decrypt(value string) (string, error) {
	if value == "" || !fc.HasKey() {
		return value, nil
	}
	if !fc.IsEncrypted(value) {
		if fc.legacyFallback {
			return value, nil
		}
		return "", errors.New("giá trị không phải bản mã")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, cipherPrefix))
	if err != nil {
		return fc.decryptFailed(value, err)
	}

	block, err := aes.NewCipher(fc.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	if len(raw) < gcm.NonceSize() {
		return fc.decryptFailed(value, errors.New("bản mã quá ngắn"))
	}

	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return fc.decryptFailed(value, err)
	}
	return string(plaintext), nil
}

func (fc *FieldCipher) decryptFailed(value string, err error) (string, error) {
	if fc.legacyFallback {
		return value, nil
	}
	return "", err
}

// HashValue sinh SHA-256 hex có pepper, dùng làm khoá tra cứu vì bản mã
// không xác định nên không đánh index được. Rỗng → rỗng.
func (fc *FieldCipher) HashValue(plaintext string) string {
	trimmed := strings.TrimSpace(plaintext)
	if trimmed == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(fc.pepper + trimmed))
	return hex.EncodeToString(sum[:])
}

// Cipher dùng chung toàn tiến trình, nạp lại sau khi load .env
var Cipher = NewFieldCipherFromEnv()

func InitSecrets() {
	JwtSecret = []byte(config.Config("JWT_SECRET"))
	Cipher = NewFieldCipherFromEnv()
}
