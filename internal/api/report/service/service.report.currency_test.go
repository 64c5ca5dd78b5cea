package reportsvc

import (
	"math"
	"testing"
)

func TestValidateCurrencyRate(t *testing.T) {
	valid := []float64{0.5, 1, 195, 250.75}
	for _, rate := range valid {
		if err := ValidateCurrencyRate(rate); err != nil {
			t.Errorf("Tỷ giá %v hợp lệ nhưng bị từ chối: %v", rate, err)
		}
	}

	invalid := []float64{0, -1, -195, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, rate := range invalid {
		if err := ValidateCurrencyRate(rate); err == nil {
			t.Errorf("Tỷ giá %v không hợp lệ nhưng được chấp nhận", rate)
		}
	}
}

func TestCascadeValues(t *testing.T) {
	priceLRD, totalValueLRD := CascadeValues(10, 5, 2.0)
	if priceLRD != 20 {
		t.Errorf("priceLRD sai: got %v, want 20", priceLRD)
	}
	if totalValueLRD != 100 {
		t.Errorf("totalValueLRD sai: got %v, want 100", totalValueLRD)
	}

	// Tồn kho 0 thì tổng giá trị 0
	if _, total := CascadeValues(9.99, 0, 195); total != 0 {
		t.Errorf("Tồn kho 0 phải cho totalValueLRD=0, got %v", total)
	}
}
