package dataentry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"halo-swapro/internal/chat"
	dataentryerrors "halo-swapro/internal/dataentry/errors"
	"halo-swapro/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const storeTimeout = 15 * time.Second

const counterType = "data_entry"

type Service interface {
	List(ctx context.Context, userID string, includeAll bool) ([]DataEntry, error)
	GetByID(ctx context.Context, id string) (DataEntry, error)
	Create(ctx context.Context, userID string, req CreateEntryRequest) (DataEntry, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (DataEntry, error)
	GetEntryChat(ctx context.Context, id string) (chat.Chat, error)
	SendEntryMessage(ctx context.Context, id, senderID string, req SendEntryMessageRequest) (chat.Chat, error)
}

// service memegang snapshot tiket plus chat diskusi per tiket di memori.
// Nomor tiket dibagikan counter bersama agar mudah dirujuk user.
type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger

	mu      sync.Mutex
	entries []DataEntry
	chats   map[string]*chat.Chat
	loaded  bool
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dataentry.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dataentry.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		logger:  l,
		chats:   map[string]*chat.Chat{},
	}
}

func (s *service) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.repo.SelectAll(ctx)
	if err != nil {
		return mapRepositoryError(err)
	}
	s.entries = rows
	s.loaded = true
	return nil
}

// List mengembalikan tiket milik user, terbaru dulu; includeAll membuka
// seluruh tiket untuk PIC.
func (s *service) List(ctx context.Context, userID string, includeAll bool) ([]DataEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		s.logger.Error("load data entries failed", zap.Error(err))
		return nil, err
	}

	out := make([]DataEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if includeAll || e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DataEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return DataEntry{}, err
	}

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return DataEntry{}, dataentryerrors.ErrEntryNotFound
	}
	return s.entries[idx], nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateEntryRequest) (DataEntry, error) {
	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	seq, err := s.counter.GetNextValue(callCtx, counterType)
	if err != nil {
		s.logger.Error("issue entry number failed", zap.Error(err))
		return DataEntry{}, err
	}

	entry := DataEntry{
		ID:        fmt.Sprintf("RPT-%06d", seq),
		Judul:     req.Judul,
		Deskripsi: req.Deskripsi,
		UserID:    userID,
		Status:    StatusBaru,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return DataEntry{}, err
	}

	row, err := s.repo.Insert(callCtx, entry)
	if err != nil {
		s.logger.Error("create entry persist failed", zap.Error(err))
		return DataEntry{}, mapRepositoryError(err)
	}

	// Tiket baru di depan, chat diskusinya lahir kosong
	s.entries = append([]DataEntry{row}, s.entries...)
	s.chats[row.ID] = &chat.Chat{}

	s.logger.Info("create entry success",
		zap.String("entry_id", row.ID),
		zap.String("user_id", userID),
	)
	return row, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (DataEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return DataEntry{}, err
	}

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return DataEntry{}, dataentryerrors.ErrEntryNotFound
	}

	entity := s.entries[idx]
	entity.Status = req.Status

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	row, err := s.repo.Update(callCtx, entity)
	if err != nil {
		s.logger.Error("update entry status failed", zap.Error(err))
		return DataEntry{}, mapRepositoryError(err)
	}

	s.entries[idx] = row

	s.logger.Info("update entry status success",
		zap.String("entry_id", id),
		zap.String("status", row.Status),
	)
	return row, nil
}

func (s *service) GetEntryChat(ctx context.Context, id string) (chat.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return chat.Chat{}, err
	}

	if s.indexOfLocked(id) < 0 {
		return chat.Chat{}, dataentryerrors.ErrEntryNotFound
	}
	return s.chatSnapshotLocked(id), nil
}

// SendEntryMessage menambahkan pesan diskusi; tiket berstatus Selesai
// ditutup untuk pesan baru.
func (s *service) SendEntryMessage(ctx context.Context, id, senderID string, req SendEntryMessageRequest) (chat.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return chat.Chat{}, err
	}

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return chat.Chat{}, dataentryerrors.ErrEntryNotFound
	}
	if s.entries[idx].Status == StatusSelesai {
		return chat.Chat{}, dataentryerrors.ErrEntryClosed
	}

	c, ok := s.chats[id]
	if !ok {
		c = &chat.Chat{}
		s.chats[id] = c
	}
	c.Messages = append(c.Messages, chat.Message{
		ID:        "msg-" + uuid.NewString(),
		SenderID:  senderID,
		Text:      req.Text,
		Timestamp: time.Now().UTC(),
	})

	return s.chatSnapshotLocked(id), nil
}

func (s *service) indexOfLocked(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) chatSnapshotLocked(id string) chat.Chat {
	c, ok := s.chats[id]
	if !ok {
		return chat.Chat{}
	}
	out := chat.Chat{Messages: make([]chat.Message, len(c.Messages))}
	copy(out.Messages, c.Messages)
	return out
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dataentryerrors.ErrEntryNotFound
	}
	return err
}
