package reportsvc

import (
	"testing"
	"time"
)

func TestParseDateRange_SingleDay(t *testing.T) {
	startMs, endMs, err := ParseDateRange("2026-03-15", "2026-03-15")
	if err != nil {
		t.Fatalf("Khoảng một ngày hợp lệ nhưng bị từ chối: %v", err)
	}

	wantStart := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	if startMs != wantStart {
		t.Errorf("startMs sai: got %d, want %d", startMs, wantStart)
	}
	// Ngày kết thúc nới đến 23:59:59.999 để khoảng bao trọn cả ngày
	if endMs != wantStart+24*60*60*1000-1 {
		t.Errorf("endMs phải là cuối ngày: got %d, want %d", endMs, wantStart+24*60*60*1000-1)
	}
}

func TestParseDateRange_InvalidFormat(t *testing.T) {
	bad := [][2]string{
		{"15-03-2026", "2026-03-16"},
		{"2026-03-15", "not-a-date"},
		{"", "2026-03-16"},
		{"2026-03-15T00:00:00", "2026-03-16"},
	}
	for _, pair := range bad {
		if _, _, err := ParseDateRange(pair[0], pair[1]); err == nil {
			t.Errorf("Cặp ngày (%q, %q) sai định dạng nhưng được chấp nhận", pair[0], pair[1])
		}
	}
}

func TestParseDateRange_ReversedRangeAccepted(t *testing.T) {
	// Khoảng ngược không bị từ chối; tầng truy vấn trả về kết quả rỗng
	startMs, endMs, err := ParseDateRange("2026-03-20", "2026-03-10")
	if err != nil {
		t.Fatalf("Khoảng ngược phải được chấp nhận: %v", err)
	}
	if startMs <= endMs {
		t.Errorf("Khoảng ngược phải cho start > end: start=%d end=%d", startMs, endMs)
	}
}
