package dto

// PurchaseSubscriptionRequest 구독 결제 요청 (AI캐시 차감)
type PurchaseSubscriptionRequest struct {
	Plan      string  `json:"plan" binding:"required,oneof=basic pro"`
	RequestID *string `json:"request_id,omitempty" binding:"omitempty,max=64"`
}

// SubscriptionInfo 구독 상태 응답
type SubscriptionInfo struct {
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	StartedAt string `json:"started_at"`
	ExpiresAt string `json:"expires_at"`
}
