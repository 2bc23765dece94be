package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/geokjeongma/ai-server/internal/model"
)

// SetupTestDB 테스트용 데이터베이스 생성 (SQLite 메모리 모드)
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect test database: %v", err)
	}

	// 전체 모델 마이그레이션
	err = db.AutoMigrate(
		&model.User{},
		&model.Tool{},
		&model.Template{},
		&model.Favorite{},
		&model.ChatMessage{},
		&model.StoreInfo{},
		&model.Post{},
		&model.CashTransaction{},
		&model.AutomationProgress{},
		&model.ChallengerMission{},
		&model.Subscription{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB 테스트 데이터베이스 정리
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close test database: %v", err)
	}
}

// TruncateTables 모든 테이블 데이터 비우기
func TruncateTables(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"cash_transactions",
		"challenger_missions",
		"automation_progress",
		"favorites",
		"chat_messages",
		"store_infos",
		"posts",
		"subscriptions",
		"tools",
		"templates",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}
