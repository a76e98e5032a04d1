package dto

// VideoListRequest carries the catalog listing query parameters.
type VideoListRequest struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy,default=createdAt"`
	SortType string `form:"sortType,default=desc"`
	UserID   string `form:"userId"`
}

// VideoPublishRequest carries the multipart text fields of an upload.
// The videoFile and thumbnail files are handled separately by the handler.
type VideoPublishRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// VideoUpdateRequest carries the partial-update fields. An empty string means
// "leave unchanged".
type VideoUpdateRequest struct {
	Title       string `form:"title"       json:"title"`
	Description string `form:"description" json:"description"`
}
