package search

import (
	"context"
	"encoding/json"
	"time"

	"halo-swapro/internal/client"
	"halo-swapro/internal/employee"
	"halo-swapro/internal/payslip"
	searcherrors "halo-swapro/internal/search/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 5 * time.Minute

// PublicProfile adalah hasil pencarian mandiri: profil karyawan, nama
// kliennya, dan daftar slip gaji yang bisa diunduh.
type PublicProfile struct {
	Employee   employee.Employee `json:"employee"`
	ClientName string            `json:"clientName"`
	Payslips   []payslip.Payslip `json:"payslips"`
}

type EmployeeDirectory interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
}

type ClientDirectory interface {
	GetAll(ctx context.Context) ([]client.Client, error)
}

type PayslipLister interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error)
}

type Service interface {
	LookupByNIK(ctx context.Context, nik string) (PublicProfile, error)
}

// service melayani lookup publik tanpa autentikasi. Hasil per NIK di-cache
// di redis dan panggilan serentak untuk NIK yang sama digabung singleflight;
// cache di-invalidate modul employee pada setiap perubahan record.
type service struct {
	employees EmployeeDirectory
	clients   ClientDirectory
	payslips  PayslipLister
	rdb       *redis.Client
	group     singleflight.Group
	logger    *zap.Logger
}

func NewService(
	employees EmployeeDirectory,
	clients ClientDirectory,
	payslips PayslipLister,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("search.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.service")
	}
	return &service{
		employees: employees,
		clients:   clients,
		payslips:  payslips,
		rdb:       rdb,
		logger:    l,
	}
}

func (s *service) LookupByNIK(ctx context.Context, nik string) (PublicProfile, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, employee.PublicSearchCacheKey(nik)).Bytes()
		if err == nil {
			var profile PublicProfile
			if err := json.Unmarshal(cached, &profile); err == nil {
				return profile, nil
			}
		}
	}

	v, err, _ := s.group.Do(nik, func() (interface{}, error) {
		return s.lookup(ctx, nik)
	})
	if err != nil {
		return PublicProfile{}, err
	}
	return v.(PublicProfile), nil
}

func (s *service) lookup(ctx context.Context, nik string) (PublicProfile, error) {
	employees, err := s.employees.GetAll(ctx)
	if err != nil {
		return PublicProfile{}, err
	}

	// NIK karyawan maupun NIK SWAPRO diterima
	var found *employee.Employee
	for i := range employees {
		if employees[i].ID == nik || employees[i].SwaproID == nik {
			found = &employees[i]
			break
		}
	}
	if found == nil {
		return PublicProfile{}, searcherrors.ErrProfileNotFound
	}

	clients, err := s.clients.GetAll(ctx)
	if err != nil {
		return PublicProfile{}, err
	}
	clientName := "N/A"
	for _, c := range clients {
		if c.ID == found.ClientID {
			clientName = c.Name
			break
		}
	}

	slips, err := s.payslips.ListByEmployee(ctx, found.ID)
	if err != nil {
		return PublicProfile{}, err
	}

	profile := PublicProfile{
		Employee:   *found,
		ClientName: clientName,
		Payslips:   slips,
	}

	if s.rdb != nil {
		payload, err := json.Marshal(profile)
		if err == nil {
			// Cache diisi dengan key id karyawan supaya invalidasi dari
			// modul employee mengenai entri ini
			if err := s.rdb.Set(ctx, employee.PublicSearchCacheKey(found.ID), payload, cacheTTL).Err(); err != nil {
				s.logger.Warn("cache public profile failed", zap.Error(err))
			}
		}
	}

	return profile, nil
}
