package dto

// Stats 전체 서비스 통계 (/api/stats)
type Stats struct {
	TotalUsers     int64 `json:"total_users"`
	TotalTools     int64 `json:"total_tools"`
	TotalTemplates int64 `json:"total_templates"`
	TotalUsage     int64 `json:"total_usage"`
	TotalChats     int64 `json:"total_chats"`
	TotalPosts     int64 `json:"total_posts"`
}
