package reportsvc

import (
	"context"

	"liberty_commerce/internal/api/events"
	"liberty_commerce/internal/global"
)

// Snapshot phụ thuộc vào products, orders và transactions: mọi thay đổi trên
// ba collection này đánh dấu snapshot cũ để lần truy cập kế tiếp refresh lại.
func init() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		switch e.CollectionName {
		case global.MongoDB_ColNames.Products,
			global.MongoDB_ColNames.Orders,
			global.MongoDB_ColNames.Transactions:
			MarkDirty()
		}
	})
}
