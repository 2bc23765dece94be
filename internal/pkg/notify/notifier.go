package notify

import (
	"context"
	"log"
	"time"

	"github.com/geokjeongma/ai-server/internal/pkg/queue"
	"github.com/geokjeongma/ai-server/internal/pkg/ws"
)

// Notifier 알림 큐를 소비해 웹소켓 허브로 전달하는 백그라운드 워커
type Notifier struct {
	queue    *queue.Queue
	hub      *ws.Hub
	stopChan chan struct{}
}

func NewNotifier(q *queue.Queue, hub *ws.Hub) *Notifier {
	return &Notifier{
		queue:    q,
		hub:      hub,
		stopChan: make(chan struct{}),
	}
}

// Start 소비 루프 시작
func (n *Notifier) Start() {
	go n.run()
	log.Println("Notifier started")
}

// Stop 소비 루프 종료
func (n *Notifier) Stop() {
	close(n.stopChan)
	log.Println("Notifier stopped")
}

func (n *Notifier) run() {
	ctx := context.Background()

	for {
		select {
		case <-n.stopChan:
			return
		default:
		}

		evt, err := n.queue.Pop(ctx, 5*time.Second)
		if err != nil {
			log.Printf("Notifier pop error: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if evt == nil {
			continue // 타임아웃, 재시도
		}

		n.dispatch(evt)
	}
}

func (n *Notifier) dispatch(evt *queue.Event) {
	var msgType string
	switch evt.Type {
	case queue.EventCashChanged:
		msgType = ws.TypeCashChanged
	case queue.EventMissionCompleted:
		msgType = ws.TypeMissionCompleted
	case queue.EventChatResponse:
		msgType = ws.TypeChatResponse
	default:
		log.Printf("Notifier: unknown event type %q", evt.Type)
		return
	}

	if err := n.hub.SendToUser(evt.UserID, &ws.Message{Type: msgType, Data: evt.Payload}); err != nil {
		log.Printf("Notifier send error for user %d: %v", evt.UserID, err)
	}
}
