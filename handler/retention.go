package handler

import (
	"strings"

	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// RunRetention quét xoá dữ liệu quá hạn lưu trữ. dryRun=true chỉ đếm.
func RunRetention(c *fiber.Ctx) error {
	dryRun := c.QueryBool("dryRun", true)

	var models []string
	if raw := c.Query("models"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				models = append(models, name)
			}
		}
	}

	counts, err := helper.ApplyRetentionPolicy(dryRun, models)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"dryRun": dryRun,
		"counts": counts,
	})
}
