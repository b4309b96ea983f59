package payslip

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"halo-swapro/internal/client"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/events"
	"halo-swapro/internal/messaging/kafka"
	paysliperrors "halo-swapro/internal/payslip/errors"
	"halo-swapro/internal/shared/contextutil"
	"halo-swapro/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const storeTimeout = 15 * time.Second

const blobBucket = "public"

// EmployeeDirectory dan ClientDirectory adalah pandangan sempit atas modul
// tetangga; cukup untuk resolusi nama saat membangkitkan PDF.
type EmployeeDirectory interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
}

type ClientDirectory interface {
	GetAll(ctx context.Context) ([]client.Client, error)
}

type Service interface {
	List(ctx context.Context, period, q string) ([]PayslipView, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	BatchUpload(ctx context.Context, fileData []byte) (BatchUploadResult, error)
	Delete(ctx context.Context, id string) error
}

// service memegang snapshot slip gaji, direkonsiliasi hanya dari row yang
// dikembalikan batch upsert (bukan refetch seluruh tabel).
type service struct {
	db        *gorm.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	blob      storage.Store
	employees EmployeeDirectory
	clients   ClientDirectory
	logger    *zap.Logger

	mu       sync.Mutex
	payslips []Payslip
	loaded   bool
}

func NewService(
	db *gorm.DB,
	repo Repository,
	blob storage.Store,
	employees EmployeeDirectory,
	clients ClientDirectory,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, nil, blob, employees, clients, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	blob storage.Store,
	employees EmployeeDirectory,
	clients ClientDirectory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outboxRepo,
		blob:      blob,
		employees: employees,
		clients:   clients,
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
	s.payslips = rows
	s.loaded = true
	return nil
}

// List mengembalikan slip gaji terfilter periode dan nama karyawan,
// periode terbaru dulu.
func (s *service) List(ctx context.Context, period, q string) ([]PayslipView, error) {
	nameByID, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		s.logger.Error("load payslips failed", zap.Error(err))
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]PayslipView, 0, len(s.payslips))
	for _, p := range s.payslips {
		if period != "" && period != "all" && p.Period != period {
			continue
		}
		name := nameByID[p.EmployeeID]
		if q != "" &&
			!strings.Contains(strings.ToLower(name), q) &&
			!strings.Contains(strings.ToLower(p.EmployeeID), q) {
			continue
		}
		out = append(out, PayslipView{Payslip: p, EmployeeName: name})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period > out[j].Period
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out, nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	var out []Payslip
	for _, p := range s.payslips {
		if p.EmployeeID == employeeID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period > out[j].Period })
	return out, nil
}

// BatchUpload menjalankan pipeline unggahan: parse XLSX -> per baris
// bangkitkan PDF dan unggah ke blob store (upsert) -> satu batch upsert
// berkunci komposit -> rekonsiliasi dari row yang dikembalikan. Baris untuk
// karyawan yang tidak dikenal dilewati dengan peringatan.
func (s *service) BatchUpload(ctx context.Context, fileData []byte) (BatchUploadResult, error) {
	rid := contextutil.GetRequestID(ctx)

	rows, err := ParseBatchFile(fileData)
	if err != nil {
		return BatchUploadResult{}, err
	}
	if len(rows) == 0 {
		return BatchUploadResult{
			Message: "Tidak ada data slip gaji yang valid untuk diunggah.",
		}, nil
	}

	empByID, clientNameByID, err := s.directories(ctx)
	if err != nil {
		return BatchUploadResult{}, err
	}

	var (
		toUpsert []Payslip
		skipped  []string
	)
	for _, row := range rows {
		emp, ok := empByID[row.EmployeeID]
		if !ok {
			s.logger.Warn("payslip row skipped, unknown employee",
				zap.String("request_id", rid),
				zap.String("employee_id", row.EmployeeID),
				zap.String("period", row.Period),
			)
			skipped = append(skipped, row.EmployeeID)
			continue
		}

		clientName := clientNameByID[emp.ClientID]
		if clientName == "" {
			clientName = "N/A"
		}

		pdfData, err := BuildPDF(row, emp, clientName)
		if err != nil {
			return BatchUploadResult{}, err
		}

		objectPath := "payslips/" + row.EmployeeID + "-" + row.Period + ".pdf"

		uploadCtx, cancel := context.WithTimeout(ctx, storeTimeout)
		err = s.blob.Upload(uploadCtx, blobBucket, objectPath, pdfData, true)
		cancel()
		if err != nil {
			s.logger.Error("payslip pdf upload failed",
				zap.String("request_id", rid),
				zap.String("path", objectPath),
				zap.Error(err),
			)
			return BatchUploadResult{}, err
		}

		toUpsert = append(toUpsert, Payslip{
			ID:         CompositeID(row.EmployeeID, row.Period),
			EmployeeID: row.EmployeeID,
			Period:     row.Period,
			FileURL:    s.blob.PublicURL(blobBucket, objectPath),
		})
	}

	if len(toUpsert) == 0 {
		return BatchUploadResult{
			Skipped: skipped,
			Message: "Tidak ada data slip gaji yang valid untuk diunggah.",
		}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return BatchUploadResult{}, err
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var returned []Payslip
	err = s.db.WithContext(callCtx).Transaction(func(tx *gorm.DB) error {
		upserted, err := s.repo.WithTx(tx).BulkUpsert(callCtx, toUpsert)
		if err != nil {
			return err
		}
		returned = upserted

		if s.outbox == nil {
			return nil
		}

		ids := make([]string, len(upserted))
		periods := make(map[string]struct{})
		for i, p := range upserted {
			ids[i] = p.ID
			periods[p.Period] = struct{}{}
		}
		period := ""
		if len(periods) == 1 {
			period = upserted[0].Period
		}

		event := events.PayslipBatchUploadedEvent{
			EventType:  "payslip_batch_uploaded",
			RequestID:  rid,
			Period:     period,
			PayslipIDs: ids,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(callCtx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   "batch",
			EventType:     event.EventType,
			Topic:         events.PayslipBatchUploadedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("payslip batch upsert failed",
			zap.String("request_id", rid),
			zap.Int("rows", len(toUpsert)),
			zap.Error(err),
		)
		return BatchUploadResult{}, mapRepositoryError(err)
	}

	// Rekonsiliasi: row hasil store menang, entri lain tidak disentuh
	indexByID := make(map[string]int, len(s.payslips))
	for i, p := range s.payslips {
		indexByID[p.ID] = i
	}
	for _, row := range returned {
		if i, ok := indexByID[row.ID]; ok {
			s.payslips[i] = row
		} else {
			s.payslips = append(s.payslips, row)
			indexByID[row.ID] = len(s.payslips) - 1
		}
	}

	s.logger.Info("payslip batch upload success",
		zap.String("request_id", rid),
		zap.Int("uploaded", len(returned)),
		zap.Int("skipped", len(skipped)),
	)
	return BatchUploadResult{Uploaded: len(returned), Skipped: skipped}, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// Hapus lokal hanya setelah store mengkonfirmasi
	if err := s.repo.Delete(callCtx, id); err != nil {
		s.logger.Error("delete payslip failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	for i, p := range s.payslips {
		if p.ID == id {
			s.payslips = append(s.payslips[:i], s.payslips[i+1:]...)
			break
		}
	}

	s.logger.Info("delete payslip success", zap.String("payslip_id", id))
	return nil
}

func (s *service) employeeNames(ctx context.Context) (map[string]string, error) {
	emps, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(emps))
	for _, e := range emps {
		out[e.ID] = e.FullName
	}
	return out, nil
}

func (s *service) directories(ctx context.Context) (map[string]employee.Employee, map[string]string, error) {
	emps, err := s.employees.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	empByID := make(map[string]employee.Employee, len(emps))
	for _, e := range emps {
		empByID[e.ID] = e
	}

	clients, err := s.clients.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	nameByID := make(map[string]string, len(clients))
	for _, c := range clients {
		nameByID[c.ID] = c.Name
	}
	return empByID, nameByID, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}
	return err
}
