package search_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"halo-swapro/internal/client"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/payslip"
	"halo-swapro/internal/search"
	searcherrors "halo-swapro/internal/search/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeDirectory struct {
	calls int
}

func (f *fakeEmployeeDirectory) GetAll(ctx context.Context) ([]employee.Employee, error) {
	f.calls++
	return []employee.Employee{
		{ID: "E1", SwaproID: "SW-100", FullName: "Budi Santoso", ClientID: "CL-01"},
	}, nil
}

type fakeClientDirectory struct{}

func (f *fakeClientDirectory) GetAll(ctx context.Context) ([]client.Client, error) {
	return []client.Client{{ID: "CL-01", Name: "PT Maju Jaya"}}, nil
}

type fakePayslipLister struct{}

func (f *fakePayslipLister) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	return []payslip.Payslip{
		{ID: "E1-2024-07", EmployeeID: "E1", Period: "2024-07", FileURL: "https://files.example.com/public/payslips/E1-2024-07.pdf"},
	}, nil
}

func expectedProfile() search.PublicProfile {
	return search.PublicProfile{
		Employee:   employee.Employee{ID: "E1", SwaproID: "SW-100", FullName: "Budi Santoso", ClientID: "CL-01"},
		ClientName: "PT Maju Jaya",
		Payslips: []payslip.Payslip{
			{ID: "E1-2024-07", EmployeeID: "E1", Period: "2024-07", FileURL: "https://files.example.com/public/payslips/E1-2024-07.pdf"},
		},
	}
}

func TestLookupByNIK_ByEmployeeID(t *testing.T) {
	svc := search.NewService(&fakeEmployeeDirectory{}, &fakeClientDirectory{}, &fakePayslipLister{}, nil)

	profile, err := svc.LookupByNIK(context.Background(), "E1")

	assert.NoError(t, err)
	assert.Equal(t, "Budi Santoso", profile.Employee.FullName)
	assert.Equal(t, "PT Maju Jaya", profile.ClientName)
	assert.Len(t, profile.Payslips, 1)
}

func TestLookupByNIK_BySwaproID(t *testing.T) {
	svc := search.NewService(&fakeEmployeeDirectory{}, &fakeClientDirectory{}, &fakePayslipLister{}, nil)

	profile, err := svc.LookupByNIK(context.Background(), "SW-100")

	assert.NoError(t, err)
	assert.Equal(t, "E1", profile.Employee.ID)
}

func TestLookupByNIK_NotFound(t *testing.T) {
	svc := search.NewService(&fakeEmployeeDirectory{}, &fakeClientDirectory{}, &fakePayslipLister{}, nil)

	_, err := svc.LookupByNIK(context.Background(), "E404")

	assert.ErrorIs(t, err, searcherrors.ErrProfileNotFound)
}

func TestLookupByNIK_CacheHitSkipsDirectories(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	payload, err := json.Marshal(expectedProfile())
	assert.NoError(t, err)
	mock.ExpectGet(employee.PublicSearchCacheKey("E1")).SetVal(string(payload))

	employees := &fakeEmployeeDirectory{}
	svc := search.NewService(employees, &fakeClientDirectory{}, &fakePayslipLister{}, rdb)

	profile, err := svc.LookupByNIK(context.Background(), "E1")

	assert.NoError(t, err)
	assert.Equal(t, expectedProfile(), profile)
	assert.Zero(t, employees.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupByNIK_CacheMissStoresProfile(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	payload, err := json.Marshal(expectedProfile())
	assert.NoError(t, err)
	mock.ExpectGet(employee.PublicSearchCacheKey("E1")).RedisNil()
	mock.ExpectSet(employee.PublicSearchCacheKey("E1"), payload, 5*time.Minute).SetVal("OK")

	svc := search.NewService(&fakeEmployeeDirectory{}, &fakeClientDirectory{}, &fakePayslipLister{}, rdb)

	profile, err := svc.LookupByNIK(context.Background(), "E1")

	assert.NoError(t, err)
	assert.Equal(t, expectedProfile(), profile)
	assert.NoError(t, mock.ExpectationsWereMet())
}
