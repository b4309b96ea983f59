package chat

import (
	"context"
	"sync"
	"time"

	chaterrors "halo-swapro/internal/chat/errors"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/genai"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// replyTimeout membatasi panggilan generator agar chat tidak
	// menggantung di status mengetik selamanya
	replyTimeout = 30 * time.Second

	// historyWindow adalah jumlah pesan terakhir yang dikirim ke generator
	historyWindow = 4
)

type EmployeeDirectory interface {
	GetByID(ctx context.Context, id string) (employee.Employee, error)
}

type Service interface {
	ListChats(ctx context.Context) (map[string]Chat, error)
	GetChat(ctx context.Context, employeeID string) (Chat, error)
	SendMessage(ctx context.Context, employeeID, senderID, senderName string, req SendMessageRequest) (Chat, error)
}

// service memegang percakapan di memori, dikunci per koleksi. Balasan lawan
// bicara disusun di goroutine terpisah dan digabung terhadap keadaan chat
// TERBARU saat selesai, bukan snapshot saat pesan dikirim.
type service struct {
	employees EmployeeDirectory
	generator genai.ReplyGenerator
	logger    *zap.Logger

	mu    sync.Mutex
	chats map[string]*Chat
}

func NewService(employees EmployeeDirectory, generator genai.ReplyGenerator, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	return &service{
		employees: employees,
		generator: generator,
		logger:    l,
		chats:     map[string]*Chat{},
	}
}

func (s *service) ListChats(ctx context.Context) (map[string]Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Chat, len(s.chats))
	for id, c := range s.chats {
		out[id] = snapshotLocked(c)
	}
	return out, nil
}

func (s *service) GetChat(ctx context.Context, employeeID string) (Chat, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return Chat{}, chaterrors.ErrUnknownCounterpart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshotLocked(s.chatLocked(employeeID)), nil
}

// SendMessage menambahkan pesan PIC, menandai lawan bicara sedang mengetik,
// dan langsung kembali; balasan menyusul lewat goroutine. Generator yang
// gagal tidak menambahkan pesan apa pun, hanya membersihkan penanda.
func (s *service) SendMessage(
	ctx context.Context,
	employeeID, senderID, senderName string,
	req SendMessageRequest,
) (Chat, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return Chat{}, chaterrors.ErrUnknownCounterpart
	}

	message := Message{
		ID:        "msg-" + uuid.NewString(),
		SenderID:  senderID,
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
		ImageURL:  req.ImageURL,
	}

	s.mu.Lock()
	c := s.chatLocked(employeeID)
	c.Messages = append(c.Messages, message)
	c.IsTyping = true
	history := replyHistoryLocked(c, senderID, senderName, emp.FullName)
	out := snapshotLocked(c)
	s.mu.Unlock()

	go s.composeReply(employeeID, emp.FullName, senderName, history)

	return out, nil
}

func (s *service) composeReply(employeeID, employeeName, picName string, history []genai.ChatLine) {
	ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
	defer cancel()

	text, err := s.generator.GenerateReply(ctx, history, employeeName, picName)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Penanda mengetik selalu dibersihkan, apa pun hasil generator
	c := s.chatLocked(employeeID)
	c.IsTyping = false

	if err != nil {
		s.logger.Error("generate chat reply failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return
	}

	c.Messages = append(c.Messages, Message{
		ID:        "msg-" + uuid.NewString(),
		SenderID:  employeeID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
}

// chatLocked mengembalikan chat untuk lawan bicara, membuatnya kosong bila
// belum ada. Caller harus memegang s.mu.
func (s *service) chatLocked(employeeID string) *Chat {
	c, ok := s.chats[employeeID]
	if !ok {
		c = &Chat{}
		s.chats[employeeID] = c
	}
	return c
}

func snapshotLocked(c *Chat) Chat {
	out := Chat{IsTyping: c.IsTyping, Messages: make([]Message, len(c.Messages))}
	copy(out.Messages, c.Messages)
	return out
}

func replyHistoryLocked(c *Chat, picID, picName, employeeName string) []genai.ChatLine {
	start := len(c.Messages) - historyWindow
	if start < 0 {
		start = 0
	}

	lines := make([]genai.ChatLine, 0, historyWindow)
	for _, msg := range c.Messages[start:] {
		sender := employeeName
		if msg.SenderID == picID {
			sender = picName
		}
		lines = append(lines, genai.ChatLine{Sender: sender, Text: msg.Text})
	}
	return lines
}
