package utils

import (
	"errors"
	"testing"
)

func TestRetryTransient(t *testing.T) {
	transient := errors.New("database is locked")
	isTransient := func(err error) bool { return errors.Is(err, transient) }

	// Lỗi tranh chấp hai lần đầu, lần ba thành công
	calls := 0
	err := RetryTransient(func() error {
		calls++
		if calls < 3 {
			return transient
		}
		return nil
	}, isTransient)
	if err != nil {
		t.Fatalf("muốn thành công sau retry, nhận %v", err)
	}
	if calls != 3 {
		t.Fatalf("gọi %d lần, muốn 3", calls)
	}

	// Lỗi nghiệp vụ thì không retry
	calls = 0
	wantErr := errors.New("không tìm thấy")
	err = RetryTransient(func() error {
		calls++
		return wantErr
	}, isTransient)
	if !errors.Is(err, wantErr) || calls != 1 {
		t.Fatalf("lỗi thường không được retry: err=%v calls=%d", err, calls)
	}

	// Hết lượt vẫn lỗi thì trả lỗi cuối
	calls = 0
	err = RetryTransient(func() error {
		calls++
		return transient
	}, isTransient)
	if !errors.Is(err, transient) || calls != 3 {
		t.Fatalf("hết lượt phải trả lỗi cuối: err=%v calls=%d", err, calls)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdef", 4); got != "abcd" {
		t.Fatalf("TruncateString = %q", got)
	}
	if got := TruncateString("abc", 4); got != "abc" {
		t.Fatalf("chuỗi ngắn hơn max phải giữ nguyên: %q", got)
	}
	if got := TruncateString("", 4); got != "" {
		t.Fatalf("chuỗi rỗng: %q", got)
	}
}
