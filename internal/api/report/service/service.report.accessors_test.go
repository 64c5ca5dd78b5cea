package reportsvc

import "testing"

func TestValidatePeriod(t *testing.T) {
	for _, period := range []string{PeriodDaily, PeriodWeekly, PeriodMonthly} {
		if err := ValidatePeriod(period); err != nil {
			t.Errorf("Chu kỳ %q hợp lệ nhưng bị từ chối: %v", period, err)
		}
	}
	for _, period := range []string{"yearly", "hourly", "", "Daily", "DAILY"} {
		if err := ValidatePeriod(period); err == nil {
			t.Errorf("Chu kỳ %q không hợp lệ nhưng được chấp nhận", period)
		}
	}
}
