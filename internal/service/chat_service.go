package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/geokjeongma/ai-server/internal/model"
	"github.com/geokjeongma/ai-server/internal/model/dto"
	"github.com/geokjeongma/ai-server/internal/pkg/queue"
	"github.com/geokjeongma/ai-server/internal/repository"
)

// ChatService AI 비서 채팅. 응답은 메시지 내용 기반의 템플릿으로 생성한다.
type ChatService struct {
	chatRepo *repository.ChatRepository
	queue    *queue.Queue
}

func NewChatService(chatRepo *repository.ChatRepository, q *queue.Queue) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		queue:    q,
	}
}

// Send 메시지를 기록하고 응답을 생성한다
func (s *ChatService) Send(userID int64, req *dto.ChatRequest) (*dto.ChatMessageItem, error) {
	msg := &model.ChatMessage{
		UserID:  userID,
		Message: req.Message,
	}
	if err := s.chatRepo.Create(msg); err != nil {
		return nil, err
	}

	response := buildChatResponse(req.Message)
	if err := s.chatRepo.UpdateResponse(msg.ID, response); err != nil {
		return nil, err
	}

	s.publishChatResponse(userID, msg.ID, response)

	return &dto.ChatMessageItem{
		ID:        msg.ID,
		Message:   msg.Message,
		Response:  response,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}, nil
}

// History 대화 내역 조회 (오래된 순)
func (s *ChatService) History(userID int64, page, pageSize int) ([]*dto.ChatMessageItem, int64, error) {
	messages, total, err := s.chatRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*dto.ChatMessageItem, 0, len(messages))
	for _, m := range messages {
		item := &dto.ChatMessageItem{
			ID:        m.ID,
			Message:   m.Message,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		}
		if m.Response != nil {
			item.Response = *m.Response
		}
		items = append(items, item)
	}

	return items, total, nil
}

// buildChatResponse 키워드 기반 템플릿 응답. 같은 입력이면 항상 같은 답을 낸다.
func buildChatResponse(message string) string {
	switch {
	case strings.Contains(message, "블로그"):
		return "블로그 포스팅이라면 '블로그 글쓰기' 도구를 추천드려요! 매장 정보를 등록해 두시면 더 맞춤형 글을 만들어 드릴 수 있어요."
	case strings.Contains(message, "인스타"), strings.Contains(message, "SNS"):
		return "SNS 홍보는 '인스타그램 캡션' 도구로 시작해 보세요. 해시태그까지 한 번에 만들어 드려요!"
	case strings.Contains(message, "리뷰"):
		return "고객 리뷰 답변은 '리뷰 답글' 도구가 도와드릴 수 있어요. 정중하고 따뜻한 답글을 만들어 드려요."
	case strings.Contains(message, "캐시"), strings.Contains(message, "충전"):
		return "AI캐시는 충전 메뉴에서 충전하실 수 있고, 챌린저 미션을 완료하면 무료로 적립돼요!"
	case strings.Contains(message, "미션"):
		return "7일 챌린저 미션에 도전해 보세요! 매일 미션을 완료하면 AI캐시가 적립되고, 7일을 모두 끝내면 보너스도 드려요."
	default:
		return fmt.Sprintf("'%s'에 대해 물어보셨네요. 사장님의 가게 홍보에 맞는 도구를 찾아드릴게요. 어떤 콘텐츠가 필요하신가요?", truncateMessage(message, 30))
	}
}

func truncateMessage(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func (s *ChatService) publishChatResponse(userID, messageID int64, response string) {
	if s.queue == nil {
		return
	}

	evt := &queue.Event{
		Type:   queue.EventChatResponse,
		UserID: userID,
		Payload: map[string]interface{}{
			"message_id": messageID,
			"response":   response,
		},
	}
	if err := s.queue.Push(context.Background(), evt); err != nil {
		log.Printf("Failed to publish chat_response event: %v", err)
	}
}
