package models

import "testing"

func TestMoneyAdd(t *testing.T) {
	a := Money{USD: 10.5, LRD: 2047.5}
	b := Money{USD: 4.5, LRD: 877.5}
	sum := a.Add(b)
	if sum.USD != 15 || sum.LRD != 2925 {
		t.Errorf("Money.Add sai: got USD=%v LRD=%v, want USD=15 LRD=2925", sum.USD, sum.LRD)
	}

	// Cộng zero-value không đổi
	if got := a.Add(Money{}); got != a {
		t.Errorf("Cộng Money rỗng phải giữ nguyên: got %+v", got)
	}
}
