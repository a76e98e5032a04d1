package dto

type CommentRequest struct {
	Content string `json:"content"`
}

// PageRequest is the shared pagination query shape: 1-indexed page,
// defaults page=1 limit=10.
type PageRequest struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}
