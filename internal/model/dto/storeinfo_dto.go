package dto

// StoreInfoRequest 매장 정보 등록/수정 요청
type StoreInfoRequest struct {
	StoreName   string `json:"store_name" binding:"required,max=100"`
	ProductName string `json:"product_name" binding:"max=100"`
	Keywords    string `json:"keywords" binding:"max=500"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=30"`
}

// StoreInfoCreated 등록 응답. Charged 는 이번 등록으로 차감된 AI캐시.
type StoreInfoCreated struct {
	ID      int64 `json:"id"`
	Charged int   `json:"charged"`
	AiCash  int   `json:"ai_cash"`
}
