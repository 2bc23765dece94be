package dto

// RegisterRequest 회원 가입 요청
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required,min=2,max=50"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8,max=32"`
	ReferralCode *string `json:"referral_code,omitempty"` // 추천인 코드 (선택)
}

// RegisterResponse 가입 응답
type RegisterResponse struct {
	UserID       int64  `json:"user_id"`
	ReferralCode string `json:"referral_code"`
	AiCash       int    `json:"ai_cash"`
}

// LoginRequest 로그인 요청
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 로그인 응답
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// VerifyEmailRequest 이메일 인증 요청
type VerifyEmailRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserInfo 프론트로 내려주는 사용자 정보
type UserInfo struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	AvatarURL     string `json:"avatar_url"`
	AiCash        int    `json:"ai_cash"`
	Role          string `json:"role"`
	ReferralCode  string `json:"referral_code"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// UpdateProfileRequest 프로필 수정 요청
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=2,max=50"`
}
