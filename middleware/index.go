package middleware

import (
	"errors"
	"os"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Thiếu token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Token không hợp lệ", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// RequireRole chặn theo cấp bậc: owner > manager > staff > housekeeping
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, account := helper.GetAccountFromToken(c)
		if account == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Tài khoản không tồn tại", nil)
		}
		if !account.Active {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, nil)
		}
		if !helper.RoleAtLeast(account.Role, required) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
		}
		c.Locals("claim", claim)
		c.Locals("account", account)
		return c.Next()
	}
}
