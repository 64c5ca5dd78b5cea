// Package reportsvc - Test trạng thái dirty và mốc hoàn tất refresh của snapshot.
package reportsvc

import (
	"testing"
	"time"

	models "liberty_commerce/internal/api/report/models"
)

func TestMarkDirty_TrongLucRefreshKhongBiXoa(t *testing.T) {
	markCleanedThrough(dirtyGen.Load())

	MarkDirty()
	coveredGen := dirtyGen.Load() // generation mà một refresh đang chạy sẽ bao phủ

	// Dữ liệu nguồn thay đổi tiếp trong lúc refresh đang compute
	MarkDirty()

	markCleanedThrough(coveredGen)
	if !isDirty() {
		t.Error("MarkDirty đến sau khi refresh bắt đầu compute phải giữ snapshot ở trạng thái dirty")
	}

	// Refresh kế tiếp bao phủ generation mới nhất thì snapshot mới sạch
	markCleanedThrough(dirtyGen.Load())
	if isDirty() {
		t.Error("Snapshot phải sạch sau khi refresh bao phủ toàn bộ thay đổi")
	}
}

func TestIsStale_DirtyBuocPhaiRefresh(t *testing.T) {
	markCleanedThrough(dirtyGen.Load())

	s := &DashboardService{}
	now := time.Now()
	snapshot := &models.Dashboard{LastUpdated: now.UnixMilli()}

	if s.IsStale(snapshot, now) {
		t.Fatal("Snapshot vừa cập nhật và không dirty thì không được coi là cũ")
	}

	MarkDirty()
	if !s.IsStale(snapshot, now) {
		t.Error("Snapshot phải bị coi là cũ sau khi dữ liệu nguồn thay đổi")
	}

	markCleanedThrough(dirtyGen.Load())
	if s.IsStale(snapshot, now) {
		t.Error("Snapshot phải hết cũ sau khi refresh bao phủ thay đổi")
	}
}

func TestRefreshCompletedSince_ChiDoRefreshGhi(t *testing.T) {
	entered := time.Now().UnixNano()

	// Cập nhật tỷ giá ghi lastUpdated của snapshot nhưng không ghi mốc refresh,
	// nên caller đang chờ lock vẫn phải tự compute lại
	if refreshCompletedSince(entered) {
		t.Fatal("Chưa có refresh nào hoàn tất sau thời điểm entered")
	}

	time.Sleep(time.Millisecond)
	markRefreshCompleted()
	if !refreshCompletedSince(entered) {
		t.Error("Refresh hoàn tất sau entered phải được ghi nhận để caller chờ lock dùng lại kết quả")
	}
}
