package helper

import (
	"strings"
	"testing"
)

func TestFieldCipherRoundTrip(t *testing.T) {
	fc, err := NewFieldCipher("khoa-bi-mat", "pepper", false)
	if err != nil {
		t.Fatalf("NewFieldCipher: %v", err)
	}

	plain := "079123456789"
	encrypted, err := fc.Encrypt(plain)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !strings.HasPrefix(encrypted, "enc:v1:") {
		t.Fatalf("bản mã thiếu tiền tố: %q", encrypted)
	}
	if encrypted == plain {
		t.Fatal("bản mã trùng plaintext")
	}

	decrypted, err := fc.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if decrypted != plain {
		t.Fatalf("giải mã ra %q, muốn %q", decrypted, plain)
	}
}

func TestFieldCipherEncryptNondeterministic(t *testing.T) {
	fc, _ := NewFieldCipher("khoa-bi-mat", "", false)

	a, _ := fc.Encrypt("079123456789")
	b, _ := fc.Encrypt("079123456789")
	if a == b {
		t.Fatal("hai lần mã hoá cùng giá trị không được trùng nhau")
	}
}

func TestFieldCipherNoDoubleEncrypt(t *testing.T) {
	fc, _ := NewFieldCipher("khoa-bi-mat", "", false)

	once, _ := fc.Encrypt("079123456789")
	twice, err := fc.Encrypt(once)
	if err != nil {
		t.Fatalf("Encrypt lần hai: %v", err)
	}
	if twice != once {
		t.Fatal("giá trị đã mã hoá phải được trả nguyên văn")
	}
}

func TestFieldCipherNoKeyIdentity(t *testing.T) {
	fc, err := NewFieldCipher("", "pepper", true)
	if err != nil {
		t.Fatalf("NewFieldCipher: %v", err)
	}
	if fc.HasKey() {
		t.Fatal("không cấu hình khoá mà HasKey trả true")
	}

	encrypted, err := fc.Encrypt("079123456789")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if encrypted != "079123456789" {
		t.Fatalf("không có khoá phải trả nguyên văn, nhận %q", encrypted)
	}
	decrypted, err := fc.Decrypt("079123456789")
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if decrypted != "079123456789" {
		t.Fatalf("không có khoá phải trả nguyên văn, nhận %q", decrypted)
	}
}

func TestFieldCipherLegacyFallback(t *testing.T) {
	withFallback, _ := NewFieldCipher("khoa-bi-mat", "", true)
	plain, err := withFallback.Decrypt("so-giay-to-chua-ma-hoa")
	if err != nil {
		t.Fatalf("fallback bật mà vẫn lỗi: %v", err)
	}
	if plain != "so-giay-to-chua-ma-hoa" {
		t.Fatalf("fallback phải trả nguyên văn, nhận %q", plain)
	}

	strict, _ := NewFieldCipher("khoa-bi-mat", "", false)
	if _, err := strict.Decrypt("so-giay-to-chua-ma-hoa"); err == nil {
		t.Fatal("fallback tắt phải báo lỗi với giá trị không phải bản mã")
	}
}

func TestHashValue(t *testing.T) {
	fc, _ := NewFieldCipher("khoa-bi-mat", "pepper-a", false)

	if fc.HashValue("") != "" {
		t.Fatal("chuỗi rỗng phải ra hash rỗng")
	}
	if fc.HashValue("  ") != "" {
		t.Fatal("toàn khoảng trắng phải ra hash rỗng")
	}

	// Hash xác định và bỏ khoảng trắng hai đầu
	a := fc.HashValue("079123456789")
	b := fc.HashValue("  079123456789  ")
	if a == "" || a != b {
		t.Fatalf("hash không xác định: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("hash SHA-256 hex phải dài 64, nhận %d", len(a))
	}

	// Đổi pepper phải ra hash khác
	other, _ := NewFieldCipher("khoa-bi-mat", "pepper-b", false)
	if other.HashValue("079123456789") == a {
		t.Fatal("pepper khác nhau mà hash trùng nhau")
	}
}
