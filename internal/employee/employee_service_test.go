package employee_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"halo-swapro/internal/employee"
	employeeerrors "halo-swapro/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	rows []employee.Employee

	selectCalls int
	insertErr   error
	deleteErr   error
	upsertErr   error
}

func (f *fakeEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepo) SelectAll(ctx context.Context) ([]employee.Employee, error) {
	f.selectCalls++
	out := make([]employee.Employee, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeEmployeeRepo) Insert(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if f.insertErr != nil {
		return employee.Employee{}, f.insertErr
	}
	// Store menormalkan nama: trailing space dibuang
	e.FullName = strings.TrimSpace(e.FullName)
	f.rows = append(f.rows, e)
	return e, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for i, row := range f.rows {
		if row.ID == e.ID {
			f.rows[i] = e
			return e, nil
		}
	}
	return employee.Employee{}, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) BulkUpsert(ctx context.Context, rows []employee.Employee) ([]employee.Employee, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	for _, incoming := range rows {
		replaced := false
		for i, row := range f.rows {
			if row.ID == incoming.ID {
				f.rows[i] = incoming
				replaced = true
				break
			}
		}
		if !replaced {
			f.rows = append(f.rows, incoming)
		}
	}
	return rows, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeBlobStore struct {
	uploads []string
	err     error
}

func (f *fakeBlobStore) Upload(ctx context.Context, bucket, path string, data []byte, upsert bool) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, bucket+"/"+path)
	return nil
}

func (f *fakeBlobStore) PublicURL(bucket, path string) string {
	return "https://files.example.com/" + bucket + "/" + path
}

func setupEmployeeTest(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func employeeRequest(id, name, clientID string) employee.EmployeeRequest {
	return employee.EmployeeRequest{
		ID:       id,
		FullName: name,
		ClientID: clientID,
		JoinDate: "2023-02-01",
		Gender:   "Laki-laki",
		Status:   "Active",
	}
}

func TestGetAll_SnapshotLoadedOnce(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	first, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	second, err := svc.GetAll(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.selectCalls)
}

func TestCreate_StoreRowBecomesCanonical(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	created, err := svc.Create(context.Background(), employeeRequest("E1", "Budi Santoso  ", "CL-01"))

	assert.NoError(t, err)
	// Snapshot menyimpan versi hasil store, bukan input mentah
	assert.Equal(t, "Budi Santoso", created.FullName)

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "Budi Santoso", all[0].FullName)
}

func TestCreate_DuplicateNIKRejectedBeforeStore(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	_, err := svc.Create(context.Background(), employeeRequest("E1", "Orang Lain", "CL-02"))

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	assert.Len(t, repo.rows, 1)
}

func TestCreate_PrependsNewestFirst(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	_, err := svc.Create(context.Background(), employeeRequest("E2", "Siti Rahma", "CL-01"))
	assert.NoError(t, err)

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "E2", all[0].ID)
	assert.Equal(t, "E1", all[1].ID)
}

func TestDelete_StoreFailureKeepsSnapshot(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{
		rows:      []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}},
		deleteErr: errors.New("store tidak tersedia"),
	}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	err := svc.Delete(context.Background(), "E1")

	assert.Error(t, err)
	all, getErr := svc.GetAll(context.Background())
	assert.NoError(t, getErr)
	assert.Len(t, all, 1)
}

func TestDelete_RemovesLocalAfterConfirm(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	assert.NoError(t, svc.Delete(context.Background(), "E1"))

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete_NotFound(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	err := svc.Delete(context.Background(), "E404")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestCountByClient(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{
		{ID: "E1", ClientID: "CL-01"},
		{ID: "E2", ClientID: "CL-01"},
		{ID: "E3", ClientID: "CL-02"},
	}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	n, err := svc.CountByClient(context.Background(), "CL-01")

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestBulkImport_MergesAndReconciles(t *testing.T) {
	gdb, mock := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{
		{
			ID:       "E1",
			FullName: "Budi Santoso",
			ClientID: "CL-01",
			BankAccount: employee.BankAccount{
				Number:     "111",
				HolderName: "Budi Santoso",
				BankName:   "BCA",
			},
		},
	}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	csvText := strings.Join([]string{
		"NIK KARYAWAN;Nama Lengkap;No Rekening",
		"E1;Budi S.;222",
		"E2;Siti Rahma;",
	}, "\n")

	result, err := svc.BulkImport(context.Background(), csvText)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	// E2 baru: di-prepend. E1 hasil merge: rekening berubah, sub-field lain utuh.
	assert.Equal(t, "E2", all[0].ID)
	updated := all[1]
	assert.Equal(t, "Budi S.", updated.FullName)
	assert.Equal(t, "222", updated.BankAccount.Number)
	assert.Equal(t, "Budi Santoso", updated.BankAccount.HolderName)
	assert.Equal(t, "BCA", updated.BankAccount.BankName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImport_NothingToImport(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	result, err := svc.BulkImport(context.Background(), employee.TemplateCSV())

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 0, repo.selectCalls)
}

func TestBulkImport_StoreFailureLeavesSnapshotUntouched(t *testing.T) {
	gdb, mock := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{
		rows:      []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}},
		upsertErr: errors.New("store tidak tersedia"),
	}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()

	csvText := "NIK KARYAWAN;Nama Lengkap\nE1;Budi S."
	_, err := svc.BulkImport(context.Background(), csvText)

	assert.Error(t, err)

	all, getErr := svc.GetAll(context.Background())
	assert.NoError(t, getErr)
	assert.Equal(t, "Budi Santoso", all[0].FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkImport_InvalidHeaderFailsWithoutTouchingStore(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	_, err := svc.BulkImport(context.Background(), "Kolom Aneh\nE1")

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidImportHeader)
	assert.Equal(t, 0, repo.selectCalls)
}

func TestExportCSV_FiltersAndSortsByName(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{
		{ID: "E2", FullName: "Siti Rahma", ClientID: "CL-01"},
		{ID: "E1", FullName: "Budi Santoso", ClientID: "CL-01"},
		{ID: "E3", FullName: "Agus Wijaya", ClientID: "CL-02"},
	}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	out, err := svc.ExportCSV(context.Background(), "CL-01", "")

	assert.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Budi Santoso")
	assert.Contains(t, lines[2], "Siti Rahma")
	assert.NotContains(t, out, "Agus Wijaya")
}

func TestAttachFile_PhotoUpdatesProfileURL(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1", FullName: "Budi Santoso"}}}
	blob := &fakeBlobStore{}
	svc := employee.NewService(gdb, repo, blob, nil)

	row, err := svc.AttachFile(context.Background(), "E1", "photo", "foto.jpg", []byte("img"))

	assert.NoError(t, err)
	assert.Equal(t, []string{"public/profiles/E1/foto.jpg"}, blob.uploads)
	assert.Equal(t, "https://files.example.com/public/profiles/E1/foto.jpg", row.ProfilePhotoURL)
}

func TestAttachFile_UnknownKind(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	repo := &fakeEmployeeRepo{rows: []employee.Employee{{ID: "E1"}}}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, nil)

	_, err := svc.AttachFile(context.Background(), "E1", "selfie", "foto.jpg", nil)

	assert.ErrorIs(t, err, employeeerrors.ErrUnknownFileKind)
}

func TestWrites_InvalidatePublicSearchCache(t *testing.T) {
	gdb, _ := setupEmployeeTest(t)
	rdb, rmock := redismock.NewClientMock()
	repo := &fakeEmployeeRepo{}
	svc := employee.NewService(gdb, repo, &fakeBlobStore{}, rdb)

	rmock.ExpectDel(employee.PublicSearchCacheKey("E1")).SetVal(1)

	_, err := svc.Create(context.Background(), employeeRequest("E1", "Budi Santoso", "CL-01"))

	assert.NoError(t, err)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
