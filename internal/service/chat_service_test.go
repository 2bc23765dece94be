package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/repository"
	"github.com/geokjeongma/ai-server/internal/testutil"
)

func setupChatService(t *testing.T) (*ChatService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	return NewChatService(repository.NewChatRepository(db), nil), db
}

func TestChatService_Send_ReturnsResponse(t *testing.T) {
	svc, db := setupChatService(t)
	user := testutil.TestUser(t, db)

	item, err := svc.Send(user.ID, &dto.ChatRequest{Message: "블로그 어떻게 써요?"})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "블로그 어떻게 써요?", item.Message)
	assert.NotEmpty(t, item.Response)
	assert.Contains(t, item.Response, "블로그")
}

func TestChatService_Send_Deterministic(t *testing.T) {
	svc, db := setupChatService(t)
	user := testutil.TestUser(t, db)

	first, err := svc.Send(user.ID, &dto.ChatRequest{Message: "미션이 뭐예요?"})
	require.NoError(t, err)
	second, err := svc.Send(user.ID, &dto.ChatRequest{Message: "미션이 뭐예요?"})
	require.NoError(t, err)

	// 같은 질문에는 항상 같은 답
	assert.Equal(t, first.Response, second.Response)
}

func TestChatService_History_OldestFirst(t *testing.T) {
	svc, db := setupChatService(t)
	user := testutil.TestUser(t, db)

	_, err := svc.Send(user.ID, &dto.ChatRequest{Message: "첫 번째"})
	require.NoError(t, err)
	_, err = svc.Send(user.ID, &dto.ChatRequest{Message: "두 번째"})
	require.NoError(t, err)

	items, total, err := svc.History(user.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "첫 번째", items[0].Message)
	assert.Equal(t, "두 번째", items[1].Message)
	assert.NotEmpty(t, items[0].Response)
}

func TestChatService_History_OtherUserHidden(t *testing.T) {
	svc, db := setupChatService(t)
	user1 := testutil.TestUser(t, db)
	user2 := testutil.TestUser(t, db)

	_, err := svc.Send(user1.ID, &dto.ChatRequest{Message: "안녕하세요"})
	require.NoError(t, err)

	items, total, err := svc.History(user2.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, items)
}
