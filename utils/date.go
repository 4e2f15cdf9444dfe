package utils

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateOnly lưu ngày không kèm giờ, JSON dạng "YYYY-MM-DD"
type DateOnly struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date format: %s", s)
	}
	return DateOnly{t}, nil
}

// Today theo múi giờ địa phương, cắt về 00:00 UTC
func Today() DateOnly {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d DateOnly) AddDays(n int) DateOnly {
	t := d.Time.AddDate(0, 0, n)
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d DateOnly) Before(other DateOnly) bool {
	return d.Time.Before(other.Time)
}

func (d DateOnly) After(other DateOnly) bool {
	return d.Time.After(other.Time)
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Time.Equal(other.Time)
}

// DaysUntil số ngày từ d đến other (âm nếu other trước d)
func (d DateOnly) DaysUntil(other DateOnly) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = DateOnly{time.Time{}}
		return nil
	}

	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time.Format("2006-01-02"), nil
}

func (d *DateOnly) Scan(value interface{}) error {
	if value == nil {
		*d = DateOnly{time.Time{}}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("unsupported scan type for DateOnly: %T", value)
	}
}

func (d *DateOnly) scanString(v string) error {
	// Postgres trả "2006-01-02", SQLite có thể kèm giờ
	if len(v) > 10 {
		v = v[:10]
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}
