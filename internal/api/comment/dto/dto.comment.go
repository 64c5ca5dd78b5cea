package commentdto

// CommentCreateInput đầu vào tạo bình luận.
type CommentCreateInput struct {
	ProductID string `json:"productId" validate:"required"`
	Content   string `json:"content" validate:"required,no_xss"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
}

// CommentUpdateInput đầu vào sửa bình luận của chính mình.
type CommentUpdateInput struct {
	Content string `json:"content" validate:"omitempty,no_xss"`
	Rating  int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}
