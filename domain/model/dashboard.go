package model

// ChannelStats aggregates a channel owner's content counts. Every field is
// computed independently; zero values are valid results, not errors.
type ChannelStats struct {
	TotalVideos       int64 `json:"totalVideos"`
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
	TotalViews        int64 `json:"totalViews"`
}
