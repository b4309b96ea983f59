package client

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	clienterrors "halo-swapro/internal/client/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const storeTimeout = 15 * time.Second

// EmployeeCounter dipakai untuk cek referensial sebelum hapus klien.
// Diimplementasikan oleh employee.Service.
type EmployeeCounter interface {
	CountByClient(ctx context.Context, clientID string) (int, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	Create(ctx context.Context, req ClientRequest) (Client, error)
	Update(ctx context.Context, id string, req ClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}

// service memegang snapshot klien untuk sesi server dan menegakkan invarian
// referensial: klien yang masih punya karyawan tidak boleh dihapus.
type service struct {
	repo      Repository
	employees EmployeeCounter
	logger    *zap.Logger

	mu      sync.Mutex
	clients []Client
	loaded  bool
}

func NewService(repo Repository, employees EmployeeCounter, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{
		repo:      repo,
		employees: employees,
		logger:    l,
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
	s.clients = rows
	s.loaded = true
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		s.logger.Error("load clients failed", zap.Error(err))
		return nil, err
	}

	out := make([]Client, len(s.clients))
	copy(out, s.clients)
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Client{}, err
	}

	for _, c := range s.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, clienterrors.ErrClientNotFound
}

func (s *service) Create(ctx context.Context, req ClientRequest) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Client{}, err
	}

	for _, c := range s.clients {
		if c.ID == req.ID {
			return Client{}, clienterrors.ErrClientAlreadyExists
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	row, err := s.repo.Insert(callCtx, Client{ID: req.ID, Name: req.Name})
	if err != nil {
		s.logger.Error("create client persist failed", zap.Error(err))
		return Client{}, mapRepositoryError(err)
	}

	s.clients = append([]Client{row}, s.clients...)

	s.logger.Info("create client success", zap.String("client_id", row.ID))
	return row, nil
}

func (s *service) Update(ctx context.Context, id string, req ClientRequest) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Client{}, err
	}

	idx := -1
	for i, c := range s.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Client{}, clienterrors.ErrClientNotFound
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	row, err := s.repo.Update(callCtx, Client{ID: id, Name: req.Name})
	if err != nil {
		s.logger.Error("update client persist failed", zap.Error(err))
		return Client{}, mapRepositoryError(err)
	}

	s.clients[idx] = row

	s.logger.Info("update client success", zap.String("client_id", id))
	return row, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Invarian referensial dicek lokal dulu, tanpa menyentuh store
	count, err := s.employees.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Warn("delete client refused, employees still assigned",
			zap.String("client_id", id),
			zap.Int("employees", count),
		)
		return clienterrors.ErrClientHasEmployees
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// Hapus lokal hanya setelah store mengkonfirmasi
	if err := s.repo.Delete(callCtx, id); err != nil {
		s.logger.Error("delete client failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}

	s.logger.Info("delete client success", zap.String("client_id", id))
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clienterrors.ErrClientNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return clienterrors.ErrClientAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return clienterrors.ErrClientAlreadyExists
	}

	return err
}
