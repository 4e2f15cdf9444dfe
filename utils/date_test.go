package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.September || d.Day() != 10 {
		t.Fatalf("parse ra %v", d)
	}

	for _, bad := range []string{"10/09/2026", "2026-13-01", "hôm nay", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) phải lỗi", bad)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.September, 10)

	if got := d.AddDays(5); got.String() != "2026-09-15" {
		t.Fatalf("AddDays(5) = %s", got)
	}
	// Qua ranh giới tháng
	if got := d.AddDays(25); got.String() != "2026-10-05" {
		t.Fatalf("AddDays(25) = %s", got)
	}
	if got := d.AddDays(-11); got.String() != "2026-08-30" {
		t.Fatalf("AddDays(-11) = %s", got)
	}

	if n := d.DaysUntil(d.AddDays(3)); n != 3 {
		t.Fatalf("DaysUntil = %d, muốn 3", n)
	}
	if n := d.DaysUntil(d.AddDays(-2)); n != -2 {
		t.Fatalf("DaysUntil lùi = %d, muốn -2", n)
	}
	if n := d.DaysUntil(d); n != 0 {
		t.Fatalf("DaysUntil chính nó = %d, muốn 0", n)
	}

	if !d.Before(d.AddDays(1)) || !d.AddDays(1).After(d) || !d.Equal(NewDate(2026, time.September, 10)) {
		t.Fatal("so sánh ngày sai")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.September, 10)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-09-10"` {
		t.Fatalf("marshal ra %s", data)
	}

	var parsed DateOnly
	if err := json.Unmarshal([]byte(`"2026-09-10"`), &parsed); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !parsed.Equal(d) {
		t.Fatalf("unmarshal ra %v", parsed)
	}

	// null và zero value đối xứng
	var zero DateOnly
	data, _ = json.Marshal(zero)
	if string(data) != "null" {
		t.Fatalf("zero marshal ra %s, muốn null", data)
	}
	var fromNull DateOnly
	if err := json.Unmarshal([]byte("null"), &fromNull); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !fromNull.IsZero() {
		t.Fatal("null phải ra zero value")
	}

	if err := json.Unmarshal([]byte(`"10/09/2026"`), &parsed); err == nil {
		t.Fatal("định dạng sai phải lỗi")
	}
}

func TestDateSQLValueScan(t *testing.T) {
	d := NewDate(2026, time.September, 10)

	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "2026-09-10" {
		t.Fatalf("Value = %v", v)
	}

	var zero DateOnly
	v, _ = zero.Value()
	if v != nil {
		t.Fatalf("zero Value = %v, muốn nil", v)
	}

	cases := []interface{}{
		"2026-09-10",
		"2026-09-10 00:00:00+07:00", // SQLite có thể kèm giờ
		[]byte("2026-09-10"),
		time.Date(2026, time.September, 10, 15, 30, 0, 0, time.Local),
		nil,
	}
	for _, input := range cases {
		var got DateOnly
		if err := got.Scan(input); err != nil {
			t.Errorf("Scan(%v): %v", input, err)
			continue
		}
		if input == nil {
			if !got.IsZero() {
				t.Errorf("Scan(nil) = %v, muốn zero", got)
			}
			continue
		}
		if got.String() != "2026-09-10" {
			t.Errorf("Scan(%v) = %s", input, got)
		}
	}

	var bad DateOnly
	if err := bad.Scan(12345); err == nil {
		t.Fatal("Scan kiểu không hỗ trợ phải lỗi")
	}
}

func TestTodayIsMidnight(t *testing.T) {
	d := Today()
	if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
		t.Fatalf("Today phải cắt về 00:00: %v", d.Time)
	}
}
