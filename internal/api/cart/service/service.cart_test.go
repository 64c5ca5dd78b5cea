package cartsvc

import (
	"testing"

	models "liberty_commerce/internal/api/cart/models"
)

func TestCheckoutSet_TachPhuongThucVaTrangThaiThanhToan(t *testing.T) {
	for _, method := range []string{"cash", "bank_transfer", "mobile_money", "other"} {
		set := checkoutSet(method)

		if got := set["paymentMethod"]; got != method {
			t.Errorf("paymentMethod phải là %s, nhận được %v", method, got)
		}
		// Phương thức thanh toán không được lẫn vào trạng thái thanh toán
		if got := set["paymentStatus"]; got != models.PaymentStatusPaid {
			t.Errorf("paymentStatus phải là %s, nhận được %v", models.PaymentStatusPaid, got)
		}
	}
}
