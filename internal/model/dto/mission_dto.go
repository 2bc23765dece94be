package dto

// MissionItem 미션 한 건
type MissionItem struct {
	Day          int    `json:"day"`
	Title        string `json:"title"`
	RewardAmount int    `json:"reward_amount"`
	Completed    bool   `json:"completed"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

// MissionList 미션 전체 + 진행률
type MissionList struct {
	Missions        []*MissionItem `json:"missions"`
	CompletedCount  int            `json:"completed_count"`
	ProgressPercent int            `json:"progress_percent"`
}

// MissionCompleted 미션 완료 응답
type MissionCompleted struct {
	Day         int  `json:"day"`
	Reward      int  `json:"reward"`
	StreakBonus int  `json:"streak_bonus,omitempty"` // 7일 전체 완료 시에만
	AiCash      int  `json:"ai_cash"`
	AllDone     bool `json:"all_done"`
}
