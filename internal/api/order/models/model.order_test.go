package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPending, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusProcessing, OrderStatusCompleted},
		{OrderStatusProcessing, OrderStatusCancelled},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("Chuyển %s -> %s phải hợp lệ", pair[0], pair[1])
		}
	}

	// Trạng thái cuối không chuyển tiếp được
	denied := [][2]string{
		{OrderStatusCompleted, OrderStatusPending},
		{OrderStatusCancelled, OrderStatusProcessing},
		{OrderStatusPending, OrderStatusCompleted},
	}
	for _, pair := range denied {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("Chuyển %s -> %s phải bị từ chối", pair[0], pair[1])
		}
	}
}
