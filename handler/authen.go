package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil || account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("account not found"))
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account locked"))
	}
	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("wrong password"))
	}

	claim := model.TokenClaim{AccountId: account.ID, Username: account.Username, Role: account.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	record := model.RefreshToken{
		AccountId: account.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(helper.RefreshTokenTTL),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	database.CacheRefreshToken(c.Context(), refreshToken, account.ID, helper.RefreshTokenTTL)

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(helper.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"token": model.TokenData{AccessToken: accessToken, RefreshToken: refreshToken},
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"fullName": account.FullName,
			"role":     account.Role,
		},
	})
}

func RefreshAccessToken(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RefreshInput)

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", errors.New("wrong token type"))
	}

	// Token phải còn trong whitelist, Redis trước rồi tới DB
	exists, redisOn := database.IsRefreshTokenCached(c.Context(), input.RefreshToken)
	if redisOn && !exists {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token đã bị thu hồi", errors.New("token revoked"))
	}
	if !redisOn {
		var record model.RefreshToken
		err := database.DB.Where("token = ? AND revoked = ? AND expires_at > ?", input.RefreshToken, false, time.Now()).First(&record).Error
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token đã bị thu hồi", errors.New("token revoked"))
		}
	}

	accountId := uint(claims["accountId"].(float64))
	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, err)
	}
	if !account.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account locked"))
	}

	claim := model.TokenClaim{AccountId: account.ID, Username: account.Username, Role: account.Role}
	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"accessToken": accessToken})
}

func Logout(c *fiber.Ctx) error {
	input := new(model.RefreshInput)
	if err := c.BodyParser(input); err == nil && input.RefreshToken != "" {
		database.DB.Where("token = ?", input.RefreshToken).Delete(&model.RefreshToken{})
		database.RevokeRefreshToken(c.Context(), input.RefreshToken)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đăng xuất thành công"})
}

func GetProfile(c *fiber.Ctx) error {
	_, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("account not found"))
	}
	account.Password = ""
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func ChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ChangePassword)
	_, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("account not found"))
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("wrong password"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(account).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đổi mật khẩu thì thu hồi toàn bộ refresh token cũ
	var tokens []model.RefreshToken
	database.DB.Where("account_id = ?", account.ID).Find(&tokens)
	for _, t := range tokens {
		database.RevokeRefreshToken(c.Context(), t.Token)
	}
	database.DB.Where("account_id = ?", account.ID).Delete(&model.RefreshToken{})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

func GetAccounts(c *fiber.Ctx) error {
	var accounts []model.Account
	if err := database.DB.Order("id").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	for i := range accounts {
		accounts[i].Password = ""
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func CreateAccount(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateAccountInput)

	var count int64
	database.DB.Model(&model.Account{}).Where("username = ?", input.Username).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Tên đăng nhập đã tồn tại", errors.New("duplicate username"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hashed,
		FullName: input.FullName,
		Role:     input.Role,
		Email:    input.Email,
		Phone:    input.Phone,
		Active:   true,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	account.Password = ""

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func DeactivateAccount(c *fiber.Ctx) error {
	accountId := c.Locals("inputId").(int)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	if account.Role == constants.ROLE_OWNER {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Không thể khoá tài khoản chủ khách sạn", errors.New("cannot lock owner"))
	}

	if err := database.DB.Model(&account).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã khoá tài khoản"})
}
