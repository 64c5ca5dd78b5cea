// Package models - model tin nhắn (Message) thuộc domain message.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các chủ đề hội thoại giữa khách và cửa hàng
const (
	TopicOrder     = "order"
	TopicProduct   = "product"
	TopicDelivery  = "delivery"
	TopicComplaint = "complaint"
	TopicOther     = "other"
)

// Message định nghĩa một tin nhắn trong hội thoại giữa khách hàng và cửa hàng.
// ConversationID gom các tin nhắn của cùng một khách về cùng một chủ đề.
type Message struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationID string             `json:"conversationId" bson:"conversationId" index:"single"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	Topic          string             `json:"topic" bson:"topic"`
	Content        string             `json:"content" bson:"content"`
	IsFromUser     bool               `json:"isFromUser" bson:"isFromUser"`
	Read           bool               `json:"read" bson:"read"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ConversationSummary tóm tắt một hội thoại: tin cuối + số tin chưa đọc
type ConversationSummary struct {
	ConversationID string             `json:"conversationId" bson:"_id"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	Topic          string             `json:"topic" bson:"topic"`
	LastContent    string             `json:"lastContent" bson:"lastContent"`
	LastAt         int64              `json:"lastAt" bson:"lastAt"`
	UnreadCount    int64              `json:"unreadCount" bson:"unreadCount"`
}
