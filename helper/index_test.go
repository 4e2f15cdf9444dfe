package helper

import (
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/golang-jwt/jwt/v5"
)

func withTestJwtSecret(t *testing.T) {
	t.Helper()

	previous := JwtSecret
	JwtSecret = []byte("jwt-secret-test")
	t.Cleanup(func() { JwtSecret = previous })
}

func TestTokenRoundTrip(t *testing.T) {
	withTestJwtSecret(t)

	claim := model.TokenClaim{AccountId: 5, Username: "letan01", Role: constants.ROLE_STAFF}

	access, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	parsed, err := ParseToken(access)
	if err != nil || !parsed.Valid {
		t.Fatalf("ParseToken: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["username"] != "letan01" || claims["role"] != constants.ROLE_STAFF {
		t.Fatalf("claims sai: %v", claims)
	}
	if _, hasType := claims["type"]; hasType {
		t.Fatal("access token không được mang claim type")
	}

	refresh, err := GenerateRefreshToken(claim)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	parsed, err = ParseToken(refresh)
	if err != nil || !parsed.Valid {
		t.Fatalf("ParseToken refresh: %v", err)
	}
	claims = parsed.Claims.(jwt.MapClaims)
	if claims["type"] != "refresh" {
		t.Fatalf("refresh token phải mang type=refresh, nhận %v", claims["type"])
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	withTestJwtSecret(t)

	token, err := GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "x"})
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	JwtSecret = []byte("secret-khac")
	parsed, err := ParseToken(token)
	if err == nil && parsed.Valid {
		t.Fatal("token ký bằng secret khác phải bị từ chối")
	}
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role, required string
		want           bool
	}{
		{constants.ROLE_OWNER, constants.ROLE_MANAGER, true},
		{constants.ROLE_OWNER, constants.ROLE_OWNER, true},
		{constants.ROLE_MANAGER, constants.ROLE_OWNER, false},
		{constants.ROLE_MANAGER, constants.ROLE_STAFF, true},
		{constants.ROLE_STAFF, constants.ROLE_MANAGER, false},
		{constants.ROLE_STAFF, constants.ROLE_HOUSEKEEPING, true},
		{constants.ROLE_HOUSEKEEPING, constants.ROLE_STAFF, false},
		{"", constants.ROLE_HOUSEKEEPING, false},
	}
	for _, tc := range cases {
		if got := RoleAtLeast(tc.role, tc.required); got != tc.want {
			t.Errorf("RoleAtLeast(%q, %q) = %v, muốn %v", tc.role, tc.required, got, tc.want)
		}
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "matkhau123" {
		t.Fatal("mật khẩu không được lưu plaintext")
	}
	if !CheckPasswordHash("matkhau123", hash) {
		t.Fatal("mật khẩu đúng phải khớp hash")
	}
	if CheckPasswordHash("matkhausai", hash) {
		t.Fatal("mật khẩu sai không được khớp hash")
	}
}
