package utils

import (
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"detail": message,
		"error":  errMsg,
	})
}

// ValidationErrorResponse trả về 400 kèm map lỗi theo từng field
func ValidationErrorResponse(c *fiber.Ctx, message string, err error) error {
	fields := fiber.Map{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[fe.Field()] = []string{fe.Tag()}
		}
	} else if err != nil {
		fields["non_field_errors"] = []string{err.Error()}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"detail": message,
		"fields": fields,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// ApplyPagination giới hạn page_size tối đa 100, mặc định 20
func ApplyPagination(query *gorm.DB, page, pageSize *int) *gorm.DB {
	size := 20
	if pageSize != nil && *pageSize > 0 {
		size = *pageSize
	}
	if size > 100 {
		size = 100
	}
	p := 1
	if page != nil && *page >= 1 {
		p = *page
	}
	return query.Limit(size).Offset(size * (p - 1))
}

func Ptr[T any](v T) *T {
	return &v
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// RetryTransient chạy lại fn tối đa 3 lần khi gặp lỗi tranh chấp (deadlock,
// serialization failure), backoff có jitter
func RetryTransient(fn func() error, isTransient func(error) bool) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = fn()
		if err == nil || isTransient == nil || !isTransient(err) {
			return err
		}
		backoff := time.Duration(50*(attempt+1))*time.Millisecond +
			time.Duration(rand.Intn(50))*time.Millisecond
		time.Sleep(backoff)
	}
	return err
}

func TruncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
