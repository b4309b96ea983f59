package employee

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	employeeerrors "halo-swapro/internal/employee/errors"
	"halo-swapro/internal/events"
	"halo-swapro/internal/messaging/kafka"
	"halo-swapro/internal/shared/contextutil"
	"halo-swapro/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const publicSearchKeyPrefix = "public:employee:"

// PublicSearchCacheKey adalah key cache pencarian mandiri per NIK;
// di-invalidate setiap kali record karyawan berubah.
func PublicSearchCacheKey(nik string) string {
	return publicSearchKeyPrefix + nik
}

const storeTimeout = 15 * time.Second

const blobBucket = "public"

type Service interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	CountByClient(ctx context.Context, clientID string) (int, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req EmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, csvText string) (BulkImportResult, error)
	ExportCSV(ctx context.Context, clientID, q string) (string, error)
	AttachFile(ctx context.Context, id, kind, filename string, data []byte) (Employee, error)
}

// service adalah mediator CRUD karyawan: memegang snapshot in-memory yang
// kanonik untuk sesi server, dan merekonsiliasinya hanya dari row yang
// dikembalikan store. Tidak pernah ada mutasi lokal optimistik.
type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	blob   storage.Store
	rdb    *redis.Client
	logger *zap.Logger

	mu        sync.Mutex
	employees []Employee
	loaded    bool
}

func NewService(db *gorm.DB, repo Repository, blob storage.Store, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, blob, rdb, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	blob storage.Store,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		blob:   blob,
		rdb:    rdb,
		logger: l,
	}
}

// ensureLoadedLocked memuat snapshot dari store saat pertama dibutuhkan.
// Caller harus memegang s.mu.
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
	s.employees = rows
	s.loaded = true
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		s.logger.Error("load employees failed", zap.Error(err))
		return nil, err
	}

	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Employee{}, err
	}

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) CountByClient(ctx context.Context, clientID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return 0, err
	}

	count := 0
	for _, e := range s.employees {
		if e.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (s *service) Create(ctx context.Context, req EmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.ID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Employee{}, err
	}

	// NIK ganda ditolak sebelum menyentuh store
	for _, e := range s.employees {
		if e.ID == req.ID {
			return Employee{}, employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	row, err := s.repo.Insert(callCtx, req.toEntity())
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}

	// Row hasil store yang otoritatif, di-prepend seperti tampilan portal
	s.employees = append([]Employee{row}, s.employees...)
	s.invalidateSearchCache(ctx, row.ID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", row.ID),
	)
	return row, nil
}

func (s *service) Update(ctx context.Context, id string, req EmployeeRequest) (Employee, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Employee{}, err
	}

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	entity := req.toEntity()
	entity.ID = id // NIK immutable

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	row, err := s.repo.Update(callCtx, entity)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return Employee{}, mapRepositoryError(err)
	}

	s.employees[idx] = row
	s.invalidateSearchCache(ctx, id)

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return row, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// Hapus lokal hanya setelah store mengkonfirmasi
	if err := s.repo.Delete(callCtx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if idx := s.indexOfLocked(id); idx >= 0 {
		s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	}
	s.invalidateSearchCache(ctx, id)

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// BulkImport menjalankan pipeline impor: parse CSV -> deep merge terhadap
// snapshot -> satu batch upsert -> rekonsiliasi map-based dari row yang
// dikembalikan. Gagal di tengah tidak meninggalkan mutasi lokal parsial.
func (s *service) BulkImport(ctx context.Context, csvText string) (BulkImportResult, error) {
	rid := contextutil.GetRequestID(ctx)

	patches, err := ParseImportFile(csvText)
	if err != nil {
		return BulkImportResult{}, err
	}
	if len(patches) == 0 {
		return BulkImportResult{
			Imported: 0,
			Message:  "Tidak ada data valid yang ditemukan untuk diimpor.",
		}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return BulkImportResult{}, err
	}

	baseByID := make(map[string]Employee, len(s.employees))
	for _, e := range s.employees {
		baseByID[e.ID] = e
	}

	merged := make([]Employee, 0, len(patches))
	for _, patch := range patches {
		id, _ := patch["id"].(string)
		merged = append(merged, MergePatch(baseByID[id], patch))
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var returned []Employee
	err = s.db.WithContext(callCtx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.repo.WithTx(tx).BulkUpsert(callCtx, merged)
		if err != nil {
			return err
		}
		returned = rows

		if s.outbox == nil {
			return nil
		}

		ids := make([]string, len(rows))
		for i, row := range rows {
			ids[i] = row.ID
		}
		event := events.EmployeeBulkImportedEvent{
			EventType:   "employee_bulk_imported",
			RequestID:   rid,
			EmployeeIDs: ids,
			RowCount:    len(rows),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}
		return s.outbox.WithTx(tx).Create(callCtx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   "bulk",
			EventType:     event.EventType,
			Topic:         events.EmployeeBulkImportedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		s.logger.Error("bulk import persist failed",
			zap.String("request_id", rid),
			zap.Int("rows", len(merged)),
			zap.Error(err),
		)
		return BulkImportResult{}, mapRepositoryError(err)
	}

	// Rekonsiliasi: row hasil store menang; record yang tak tersentuh utuh
	indexByID := make(map[string]int, len(s.employees))
	for i, e := range s.employees {
		indexByID[e.ID] = i
	}
	for _, row := range returned {
		if i, ok := indexByID[row.ID]; ok {
			s.employees[i] = row
		} else {
			s.employees = append([]Employee{row}, s.employees...)
			for id, idx := range indexByID {
				indexByID[id] = idx + 1
			}
			indexByID[row.ID] = 0
		}
		s.invalidateSearchCache(ctx, row.ID)
	}

	s.logger.Info("bulk import success",
		zap.String("request_id", rid),
		zap.Int("imported", len(returned)),
	)
	return BulkImportResult{Imported: len(returned)}, nil
}

// ExportCSV membangun file ekspor dari snapshot, difilter mengikuti tampilan
// pemanggil dan diurutkan per nama.
func (s *service) ExportCSV(ctx context.Context, clientID, q string) (string, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return "", err
	}

	filtered := filterEmployees(all, clientID, q)
	sortByName(filtered)
	return BuildCSV(filtered), nil
}

func (s *service) AttachFile(ctx context.Context, id, kind, filename string, data []byte) (Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoadedLocked(ctx); err != nil {
		return Employee{}, err
	}

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return Employee{}, employeeerrors.ErrEmployeeNotFound
	}

	var objectPath string
	switch kind {
	case "photo":
		objectPath = "profiles/" + id + "/" + filename
	case "pkwtNewHire", "pkwtExtension", "spLetter":
		objectPath = "documents/" + id + "/" + kind + "/" + filename
	default:
		return Employee{}, employeeerrors.ErrUnknownFileKind
	}

	callCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	if err := s.blob.Upload(callCtx, blobBucket, objectPath, data, true); err != nil {
		s.logger.Error("attach file upload failed",
			zap.String("employee_id", id),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return Employee{}, err
	}
	url := s.blob.PublicURL(blobBucket, objectPath)

	entity := s.employees[idx]
	switch kind {
	case "photo":
		entity.ProfilePhotoURL = url
	case "pkwtNewHire":
		entity.Documents.PKWTNewHire = url
	case "pkwtExtension":
		entity.Documents.PKWTExtension = url
	case "spLetter":
		entity.Documents.SPLetter = url
	}

	row, err := s.repo.Update(callCtx, entity)
	if err != nil {
		return Employee{}, mapRepositoryError(err)
	}

	s.employees[idx] = row
	s.invalidateSearchCache(ctx, id)
	return row, nil
}

func (s *service) indexOfLocked(id string) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *service) invalidateSearchCache(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, PublicSearchCacheKey(id)).Err(); err != nil {
		s.logger.Error("failed to invalidate public search cache",
			zap.Error(err),
			zap.String("key", PublicSearchCacheKey(id)),
		)
	}
}
