package client

import (
	"context"
	"errors"
	"testing"

	clienterrors "halo-swapro/internal/client/errors"

	"github.com/stretchr/testify/assert"
)

type fakeClientRepo struct {
	rows      []Client
	insertErr error
	deleteErr error

	deleteCalled bool
}

func (f *fakeClientRepo) SelectAll(ctx context.Context) ([]Client, error) {
	out := make([]Client, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeClientRepo) Insert(ctx context.Context, c Client) (Client, error) {
	if f.insertErr != nil {
		return Client{}, f.insertErr
	}
	f.rows = append(f.rows, c)
	return c, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, c Client) (Client, error) {
	for i, row := range f.rows {
		if row.ID == c.ID {
			f.rows[i] = c
			return c, nil
		}
	}
	return Client{}, errors.New("not found")
}

func (f *fakeClientRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalled = true
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeEmployeeCounter struct {
	counts map[string]int
	err    error
}

func (f *fakeEmployeeCounter) CountByClient(ctx context.Context, clientID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[clientID], nil
}

func TestClientService_Create_Success(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewService(repo, &fakeEmployeeCounter{})

	created, err := svc.Create(context.Background(), ClientRequest{ID: "CL-01", Name: "PT Maju Jaya"})

	assert.NoError(t, err)
	assert.Equal(t, "CL-01", created.ID)

	all, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestClientService_Create_DuplicateID(t *testing.T) {
	repo := &fakeClientRepo{rows: []Client{{ID: "CL-01", Name: "PT Maju Jaya"}}}
	svc := NewService(repo, &fakeEmployeeCounter{})

	_, err := svc.Create(context.Background(), ClientRequest{ID: "CL-01", Name: "PT Lain"})

	assert.ErrorIs(t, err, clienterrors.ErrClientAlreadyExists)
	assert.Len(t, repo.rows, 1)
}

func TestClientService_Delete_RefusedWhenEmployeesAssigned(t *testing.T) {
	repo := &fakeClientRepo{rows: []Client{{ID: "CL-01", Name: "PT Maju Jaya"}}}
	counter := &fakeEmployeeCounter{counts: map[string]int{"CL-01": 3}}
	svc := NewService(repo, counter)

	err := svc.Delete(context.Background(), "CL-01")

	assert.ErrorIs(t, err, clienterrors.ErrClientHasEmployees)
	// store tidak boleh disentuh saat guard menolak
	assert.False(t, repo.deleteCalled)

	all, _ := svc.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestClientService_Delete_Success(t *testing.T) {
	repo := &fakeClientRepo{rows: []Client{{ID: "CL-01", Name: "PT Maju Jaya"}}}
	svc := NewService(repo, &fakeEmployeeCounter{})

	err := svc.Delete(context.Background(), "CL-01")

	assert.NoError(t, err)
	assert.True(t, repo.deleteCalled)

	all, _ := svc.GetAll(context.Background())
	assert.Empty(t, all)
}

func TestClientService_Delete_StoreFailureKeepsSnapshot(t *testing.T) {
	repo := &fakeClientRepo{
		rows:      []Client{{ID: "CL-01", Name: "PT Maju Jaya"}},
		deleteErr: errors.New("connection refused"),
	}
	svc := NewService(repo, &fakeEmployeeCounter{})

	err := svc.Delete(context.Background(), "CL-01")

	assert.Error(t, err)

	all, _ := svc.GetAll(context.Background())
	assert.Len(t, all, 1)
}

func TestClientService_Update_NotFound(t *testing.T) {
	repo := &fakeClientRepo{}
	svc := NewService(repo, &fakeEmployeeCounter{})

	_, err := svc.Update(context.Background(), "CL-99", ClientRequest{ID: "CL-99", Name: "Baru"})

	assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
}
