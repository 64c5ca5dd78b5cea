package reportsvc

import (
	"context"
	"fmt"
	"time"

	models "liberty_commerce/internal/api/report/models"
	transactionmodels "liberty_commerce/internal/api/transaction/models"
	"liberty_commerce/internal/common"

	"go.mongodb.org/mongo-driver/bson"
)

const rangeDateLayout = "2006-01-02"

// ParseDateRange phân tích cặp ngày YYYY-MM-DD (UTC) thành khoảng millisecond.
// Ngày kết thúc được nới đến cuối ngày (23:59:59.999) để khoảng bao trọn cả hai đầu.
// Không kiểm tra start <= end: khoảng ngược trả về kết quả rỗng ở tầng truy vấn.
func ParseDateRange(startStr, endStr string) (int64, int64, error) {
	start, err := time.ParseInLocation(rangeDateLayout, startStr, time.UTC)
	if err != nil {
		return 0, 0, invalidDate("startDate", startStr)
	}
	end, err := time.ParseInLocation(rangeDateLayout, endStr, time.UTC)
	if err != nil {
		return 0, 0, invalidDate("endDate", endStr)
	}
	end = end.Add(24*time.Hour - time.Millisecond)
	return start.UnixMilli(), end.UnixMilli(), nil
}

func invalidDate(field, value string) error {
	return common.NewError(
		common.ErrCodeValidationFormat,
		fmt.Sprintf("Trường %s không đúng định dạng YYYY-MM-DD", field),
		common.StatusBadRequest,
		map[string]interface{}{field: value},
	)
}

// RangeQuery gộp doanh thu theo từng ngày UTC trong khoảng [startDate, endDate],
// chỉ tính giao dịch đã hoàn tất. Ngày không có giao dịch không xuất hiện
// trong kết quả. Truy vấn trực tiếp dữ liệu nguồn, không đi qua snapshot.
func (s *DashboardService) RangeQuery(ctx context.Context, startStr, endStr string) ([]models.PeriodSales, error) {
	startMs, endMs, err := ParseDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{
			"transactionStatus": transactionmodels.TransactionStatusCompleted,
			"transactionDate":   bson.M{"$gte": startMs, "$lte": endMs},
		}},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     bson.M{"$toDate": "$transactionDate"},
				"timezone": "UTC",
			}},
			"usd":   bson.M{"$sum": "$totalBoughtUSD"},
			"lrd":   bson.M{"$sum": "$totalBoughtLRD"},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.transactionService.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date  string  `bson:"_id"`
		USD   float64 `bson:"usd"`
		LRD   float64 `bson:"lrd"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	items := make([]models.PeriodSales, 0, len(rows))
	for _, row := range rows {
		items = append(items, models.PeriodSales{
			BucketKey: row.Date,
			Amount:    models.Money{USD: row.USD, LRD: row.LRD},
			Count:     row.Count,
		})
	}
	return items, nil
}
