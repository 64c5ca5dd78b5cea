// Package models - model bình luận sản phẩm (Comment) thuộc domain comment.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment định nghĩa bình luận kèm đánh giá sao của khách về một sản phẩm.
// UserName được denormalize để hiển thị không cần join sang users.
type Comment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId" index:"single"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	UserName  string             `json:"userName" bson:"userName"`
	Content   string             `json:"content" bson:"content"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// CommentStats thống kê bình luận của một sản phẩm
type CommentStats struct {
	ProductID     primitive.ObjectID `json:"productId" bson:"_id"`
	CommentCount  int64              `json:"commentCount" bson:"commentCount"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
}
