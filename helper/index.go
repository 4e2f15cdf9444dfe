package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

const (
	AccessTokenTTL  = time.Minute * 60
	RefreshTokenTTL = time.Hour * 24 * 7
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(AccessTokenTTL).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["type"] = "refresh"
	claims["exp"] = time.Now().Add(RefreshTokenTTL).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// roleRank: owner > manager > staff > housekeeping
func roleRank(role string) int {
	switch role {
	case constants.ROLE_OWNER:
		return 4
	case constants.ROLE_MANAGER:
		return 3
	case constants.ROLE_STAFF:
		return 2
	case constants.ROLE_HOUSEKEEPING:
		return 1
	}
	return 0
}

// RoleAtLeast: quyền bao trùm, owner làm được mọi việc của manager...
func RoleAtLeast(role, required string) bool {
	return roleRank(role) >= roleRank(required)
}

// GetAccountFromToken đọc claim từ token đã qua middleware Protected
func GetAccountFromToken(c *fiber.Ctx) (model.TokenClaim, *model.Account) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil
	}

	accountIdF, _ := claims["accountId"].(float64)
	username, _ := claims["username"].(string)
	accountId := uint(accountIdF)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Account not found: id=%d", accountId)
		} else {
			log.Printf("Database query error for account: id=%d, error=%v", accountId, err)
		}
		return model.TokenClaim{}, nil
	}

	return model.TokenClaim{
		AccountId: accountId,
		Username:  username,
		Role:      account.Role,
	}, &account
}
