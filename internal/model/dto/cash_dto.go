package dto

// CashRequest 충전/차감 요청. RequestID 는 중복 제출 방지용 (선택).
type CashRequest struct {
	Amount      int     `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=200"`
	RequestID   *string `json:"request_id,omitempty" binding:"omitempty,max=64"`
}

// CashBalance 잔액 응답
type CashBalance struct {
	UserID int64 `json:"user_id"`
	AiCash int   `json:"ai_cash"`
}

// CashTransactionItem 원장 내역 한 건
type CashTransactionItem struct {
	ID           int64  `json:"id"`
	Amount       int    `json:"amount"`
	BalanceAfter int    `json:"balance_after"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	CreatedAt    string `json:"created_at"`
}
