package reporthdl

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
)

func newCurrencyRateTestApp() *fiber.App {
	app := fiber.New()
	h := &DashboardHandler{}
	app.Put("/api/v1/dashboard/currency-rate", h.HandleSetCurrencyRate)
	return app
}

func putCurrencyRate(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/dashboard/currency-rate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Gọi handler thất bại: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Đọc response body thất bại: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Response không phải JSON hợp lệ: %v (body: %s)", err, raw)
	}
	return resp.StatusCode, parsed
}

func TestHandleSetCurrencyRate_RateSaiKieuTraVe400(t *testing.T) {
	app := newCurrencyRateTestApp()

	status, body := putCurrencyRate(t, app, `{"rate":"abc"}`)
	if status != common.StatusBadRequest {
		t.Fatalf("rate sai kiểu phải trả %d, nhận được %d", common.StatusBadRequest, status)
	}
	if code, _ := body["code"].(string); code != common.ErrCodeValidationFormat.Code {
		t.Errorf("Mã lỗi phải là %s, nhận được %v", common.ErrCodeValidationFormat.Code, body["code"])
	}
	if st, _ := body["status"].(string); st != "error" {
		t.Errorf("Trạng thái phải là error, nhận được %v", body["status"])
	}
}

func TestHandleSetCurrencyRate_BodyHongTraVe400(t *testing.T) {
	app := newCurrencyRateTestApp()

	for _, raw := range []string{"", "{", `"not-an-object"`} {
		status, body := putCurrencyRate(t, app, raw)
		if status != common.StatusBadRequest {
			t.Errorf("body %q phải trả %d, nhận được %d", raw, common.StatusBadRequest, status)
			continue
		}
		if code, _ := body["code"].(string); code != common.ErrCodeValidationFormat.Code {
			t.Errorf("body %q: mã lỗi phải là %s, nhận được %v", raw, common.ErrCodeValidationFormat.Code, body["code"])
		}
	}
}

func TestHandleSetCurrencyRate_ThieuRateTraVe400(t *testing.T) {
	global.InitValidator()
	app := newCurrencyRateTestApp()

	status, body := putCurrencyRate(t, app, `{}`)
	if status != common.StatusBadRequest {
		t.Fatalf("body thiếu rate phải trả %d, nhận được %d", common.StatusBadRequest, status)
	}
	if code, _ := body["code"].(string); code != common.ErrCodeValidationInput.Code {
		t.Errorf("Mã lỗi phải là %s, nhận được %v", common.ErrCodeValidationInput.Code, body["code"])
	}
}
