// Package messagesvc - service tin nhắn (Message).
package messagesvc

import (
	"context"
	"fmt"

	basesvc "liberty_commerce/internal/api/base/service"
	messagedto "liberty_commerce/internal/api/message/dto"
	models "liberty_commerce/internal/api/message/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageService là cấu trúc chứa các phương thức liên quan đến tin nhắn
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[models.Message]
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	messageCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Message](messageCollection),
	}, nil
}

// Send gửi một tin nhắn. ConversationID rỗng sẽ mở hội thoại mới theo user + topic.
func (s *MessageService) Send(ctx context.Context, userID primitive.ObjectID, isFromUser bool, input *messagedto.MessageSendInput) (*models.Message, error) {
	topic := input.Topic
	if topic == "" {
		topic = models.TopicOther
	}
	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("%s:%s", userID.Hex(), topic)
	}

	message := models.Message{
		ConversationID: conversationID,
		UserID:         userID,
		Topic:          topic,
		Content:        input.Content,
		IsFromUser:     isFromUser,
		Read:           false,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, message)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListByConversation trả về tin nhắn của một hội thoại theo thứ tự thời gian tăng dần
func (s *MessageService) ListByConversation(ctx context.Context, conversationID string, limit int64) ([]models.Message, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().SetSort(bson.M{"createdAt": 1}).SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"conversationId": conversationID}, opts)
}

// Conversations trả về danh sách hội thoại (tin cuối + số tin chưa đọc) qua aggregation.
// forUser true: chưa đọc là tin từ cửa hàng; false (phía quản trị): chưa đọc là tin từ khách.
func (s *MessageService) Conversations(ctx context.Context, filter bson.M, forUser bool) ([]models.ConversationSummary, error) {
	unreadFrom := !forUser // phía quản trị đếm tin isFromUser=true chưa đọc

	pipeline := []bson.M{
		{"$match": filter},
		{"$sort": bson.M{"createdAt": -1}},
		{"$group": bson.M{
			"_id":         "$conversationId",
			"userId":      bson.M{"$first": "$userId"},
			"topic":       bson.M{"$first": "$topic"},
			"lastContent": bson.M{"$first": "$content"},
			"lastAt":      bson.M{"$first": "$createdAt"},
			"unreadCount": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$read", false}},
						bson.M{"$eq": bson.A{"$isFromUser", unreadFrom}},
					}},
					1,
					0,
				},
			}},
		}},
		{"$sort": bson.M{"lastAt": -1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var summaries []models.ConversationSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if summaries == nil {
		summaries = []models.ConversationSummary{}
	}
	return summaries, nil
}

// MarkRead đánh dấu đã đọc các tin trong hội thoại gửi từ phía đối diện
func (s *MessageService) MarkRead(ctx context.Context, conversationID string, forUser bool) (int64, error) {
	fromUser := !forUser
	filter := bson.M{
		"conversationId": conversationID,
		"isFromUser":     fromUser,
		"read":           false,
	}
	return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"read": true},
	}, nil)
}
