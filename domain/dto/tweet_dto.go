package dto

type TweetRequest struct {
	Content string `json:"content"`
}
