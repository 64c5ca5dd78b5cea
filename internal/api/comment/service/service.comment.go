// Package commentsvc - service bình luận sản phẩm (Comment).
package commentsvc

import (
	"context"
	"fmt"

	basesvc "liberty_commerce/internal/api/base/service"
	commentdto "liberty_commerce/internal/api/comment/dto"
	models "liberty_commerce/internal/api/comment/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](commentCollection),
	}, nil
}

// CreateComment tạo bình luận mới cho một sản phẩm
func (s *CommentService) CreateComment(ctx context.Context, userID primitive.ObjectID, userName string, input *commentdto.CommentCreateInput) (*models.Comment, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err)
	}

	comment := models.Comment{
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Content:   input.Content,
		Rating:    input.Rating,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByProduct trả về bình luận của một sản phẩm, mới nhất trước
func (s *CommentService) ListByProduct(ctx context.Context, productID primitive.ObjectID, limit int64) ([]models.Comment, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"productId": productID}, opts)
}

// Stats thống kê số bình luận và điểm trung bình của một sản phẩm qua aggregation
func (s *CommentService) Stats(ctx context.Context, productID primitive.ObjectID) (*models.CommentStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"productId": productID}},
		{"$group": bson.M{
			"_id":           "$productId",
			"commentCount":  bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$rating"},
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []models.CommentStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return &models.CommentStats{ProductID: productID}, nil
	}
	return &results[0], nil
}
