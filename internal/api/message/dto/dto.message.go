package messagedto

// MessageSendInput đầu vào gửi tin nhắn. ConversationID rỗng sẽ mở hội thoại mới.
type MessageSendInput struct {
	ConversationID string `json:"conversationId"`
	Topic          string `json:"topic" validate:"omitempty,oneof=order product delivery complaint other"`
	Content        string `json:"content" validate:"required"`
}

// MessageMarkReadInput đầu vào đánh dấu đã đọc cả hội thoại.
type MessageMarkReadInput struct {
	ConversationID string `json:"conversationId" validate:"required"`
}
