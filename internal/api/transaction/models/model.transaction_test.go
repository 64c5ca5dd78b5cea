package models

import "testing"

func TestIsKnownPaymentMethod(t *testing.T) {
	for _, method := range KnownPaymentMethods {
		if !IsKnownPaymentMethod(method) {
			t.Errorf("Phương thức %q phải được nhận diện", method)
		}
	}
	for _, method := range []string{"crypto", "CASH", "Mobile_Money", ""} {
		if IsKnownPaymentMethod(method) {
			t.Errorf("Phương thức %q không hợp lệ nhưng được nhận diện", method)
		}
	}
}
