package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model"
)

// TestUser 테스트 사용자 생성
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	nano := time.Now().UnixNano()
	email := fmt.Sprintf("test_%d@example.com", nano)
	passwordHash := "$2a$10$abcdefghijklmnopqrstuvwxyz123456" // bcrypt hash placeholder
	user := &model.User{
		Username:      fmt.Sprintf("testuser_%d", nano%100000),
		Email:         &email,
		PasswordHash:  &passwordHash,
		AiCash:        1000,
		Role:          model.RoleUser,
		ReferralCode:  fmt.Sprintf("REF%d", nano%100000000),
		EmailVerified: true,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 사용자명 지정
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithEmail 이메일 지정
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = &email
	}
}

// WithAiCash AI캐시 잔액 지정
func WithAiCash(amount int) func(*model.User) {
	return func(u *model.User) {
		u.AiCash = amount
	}
}

// WithRole 역할 지정
func WithRole(role string) func(*model.User) {
	return func(u *model.User) {
		u.Role = role
	}
}

// WithKakaoID 카카오 연동 계정으로 지정
func WithKakaoID(kakaoID string) func(*model.User) {
	return func(u *model.User) {
		u.KakaoID = &kakaoID
	}
}

// WithReferralCode 추천인 코드 지정
func WithReferralCode(code string) func(*model.User) {
	return func(u *model.User) {
		u.ReferralCode = code
	}
}

// TestTool 테스트 도구 생성
func TestTool(t *testing.T, db *gorm.DB, opts ...func(*model.Tool)) *model.Tool {
	t.Helper()

	tool := &model.Tool{
		Name:        fmt.Sprintf("테스트 도구 %d", time.Now().UnixNano()%100000),
		Description: "테스트용 도구입니다",
		Category:    "블로그",
		Icon:        "pencil",
		IsActive:    true,
	}

	for _, opt := range opts {
		opt(tool)
	}

	if err := db.Create(tool).Error; err != nil {
		t.Fatalf("Failed to create test tool: %v", err)
	}

	return tool
}

// WithToolName 도구 이름 지정
func WithToolName(name string) func(*model.Tool) {
	return func(tl *model.Tool) {
		tl.Name = name
	}
}

// WithToolCategory 도구 카테고리 지정
func WithToolCategory(category string) func(*model.Tool) {
	return func(tl *model.Tool) {
		tl.Category = category
	}
}

// WithToolActive 도구 활성화 여부 지정
func WithToolActive(active bool) func(*model.Tool) {
	return func(tl *model.Tool) {
		tl.IsActive = active
	}
}

// TestTemplate 테스트 템플릿 생성
func TestTemplate(t *testing.T, db *gorm.DB, opts ...func(*model.Template)) *model.Template {
	t.Helper()

	tpl := &model.Template{
		Title:       fmt.Sprintf("테스트 템플릿 %d", time.Now().UnixNano()%100000),
		Description: "테스트용 템플릿입니다",
		Category:    "블로그",
		IsActive:    true,
	}

	for _, opt := range opts {
		opt(tpl)
	}

	if err := db.Create(tpl).Error; err != nil {
		t.Fatalf("Failed to create test template: %v", err)
	}

	return tpl
}

// TestFavorite 테스트 즐겨찾기 생성
func TestFavorite(t *testing.T, db *gorm.DB, userID, toolID int64) *model.Favorite {
	t.Helper()

	fav := &model.Favorite{
		UserID: userID,
		ToolID: toolID,
	}

	if err := db.Create(fav).Error; err != nil {
		t.Fatalf("Failed to create test favorite: %v", err)
	}

	return fav
}

// TestPost 테스트 게시글 생성
func TestPost(t *testing.T, db *gorm.DB, userID int64, opts ...func(*model.Post)) *model.Post {
	t.Helper()

	post := &model.Post{
		UserID:   userID,
		Title:    fmt.Sprintf("테스트 게시글 %d", time.Now().UnixNano()%100000),
		Content:  "테스트 본문입니다",
		Category: "자유",
	}

	for _, opt := range opts {
		opt(post)
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return post
}

// WithPostCategory 게시글 카테고리 지정
func WithPostCategory(category string) func(*model.Post) {
	return func(p *model.Post) {
		p.Category = category
	}
}

// TestStoreInfo 테스트 매장 정보 생성
func TestStoreInfo(t *testing.T, db *gorm.DB, userID int64) *model.StoreInfo {
	t.Helper()

	info := &model.StoreInfo{
		UserID:      userID,
		StoreName:   fmt.Sprintf("테스트 매장 %d", time.Now().UnixNano()%100000),
		ProductName: "아메리카노",
		Keywords:    "카페,커피,디저트",
	}

	if err := db.Create(info).Error; err != nil {
		t.Fatalf("Failed to create test store info: %v", err)
	}

	return info
}

// TestMission 테스트 미션 생성
func TestMission(t *testing.T, db *gorm.DB, userID int64, day int, completed bool) *model.ChallengerMission {
	t.Helper()

	mission := &model.ChallengerMission{
		UserID:       userID,
		Day:          day,
		Title:        fmt.Sprintf("%d일차 미션", day),
		RewardAmount: 1000,
		Completed:    completed,
	}
	if completed {
		now := time.Now()
		mission.CompletedAt = &now
	}

	if err := db.Create(mission).Error; err != nil {
		t.Fatalf("Failed to create test mission: %v", err)
	}

	return mission
}

// TestSubscription 테스트 구독 생성
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, status string, expiresAt time.Time) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:    userID,
		Plan:      "basic",
		Amount:    9900,
		StartedAt: expiresAt.AddDate(0, 0, -30),
		ExpiresAt: expiresAt,
		Status:    status,
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}
