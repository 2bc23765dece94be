package dto

// AutomationProgressInfo 자동화 진행률 응답
type AutomationProgressInfo struct {
	ToolID          int64 `json:"tool_id"`
	Stage           int   `json:"stage"`
	TotalStages     int   `json:"total_stages"`
	ProgressPercent int   `json:"progress_percent"`
	Completed       bool  `json:"completed"`
	Reward          int   `json:"reward,omitempty"` // 이번 호출로 지급된 보상
}
