package dataentry_test

import (
	"context"
	"testing"

	"halo-swapro/internal/dataentry"
	dataentryerrors "halo-swapro/internal/dataentry/errors"

	"github.com/stretchr/testify/assert"
)

type fakeEntryRepo struct {
	rows []dataentry.DataEntry
}

func (f *fakeEntryRepo) SelectAll(ctx context.Context) ([]dataentry.DataEntry, error) {
	out := make([]dataentry.DataEntry, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeEntryRepo) Insert(ctx context.Context, e dataentry.DataEntry) (dataentry.DataEntry, error) {
	f.rows = append(f.rows, e)
	return e, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, e dataentry.DataEntry) (dataentry.DataEntry, error) {
	for i, row := range f.rows {
		if row.ID == e.ID {
			f.rows[i] = e
			return e, nil
		}
	}
	return dataentry.DataEntry{}, dataentryerrors.ErrEntryNotFound
}

type fakeCounter struct {
	value int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.value++
	return f.value, nil
}

func TestCreateEntry_NumbersSequentially(t *testing.T) {
	svc := dataentry.NewService(&fakeEntryRepo{}, &fakeCounter{})

	first, err := svc.Create(context.Background(), "U1", dataentry.CreateEntryRequest{
		Judul: "Data absensi tidak cocok", Deskripsi: "Selisih 2 hari pada Juli",
	})
	assert.NoError(t, err)
	second, err := svc.Create(context.Background(), "U1", dataentry.CreateEntryRequest{
		Judul: "Slip gaji belum terbit", Deskripsi: "Periode Agustus",
	})
	assert.NoError(t, err)

	assert.Equal(t, "RPT-000001", first.ID)
	assert.Equal(t, "RPT-000002", second.ID)
	assert.Equal(t, dataentry.StatusBaru, first.Status)
}

func TestListEntries_OwnOnlyUnlessSupervisor(t *testing.T) {
	svc := dataentry.NewService(&fakeEntryRepo{}, &fakeCounter{})

	_, err := svc.Create(context.Background(), "U1", dataentry.CreateEntryRequest{Judul: "A", Deskripsi: "a"})
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), "U2", dataentry.CreateEntryRequest{Judul: "B", Deskripsi: "b"})
	assert.NoError(t, err)

	own, err := svc.List(context.Background(), "U1", false)
	assert.NoError(t, err)
	assert.Len(t, own, 1)
	assert.Equal(t, "U1", own[0].UserID)

	all, err := svc.List(context.Background(), "pic-1", true)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatus(t *testing.T) {
	svc := dataentry.NewService(&fakeEntryRepo{}, &fakeCounter{})

	entry, err := svc.Create(context.Background(), "U1", dataentry.CreateEntryRequest{Judul: "A", Deskripsi: "a"})
	assert.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), entry.ID, dataentry.UpdateStatusRequest{Status: dataentry.StatusProses})
	assert.NoError(t, err)
	assert.Equal(t, dataentry.StatusProses, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), "RPT-999999", dataentry.UpdateStatusRequest{Status: dataentry.StatusProses})
	assert.ErrorIs(t, err, dataentryerrors.ErrEntryNotFound)
}

func TestSendEntryMessage_ClosedWhenSelesai(t *testing.T) {
	svc := dataentry.NewService(&fakeEntryRepo{}, &fakeCounter{})

	entry, err := svc.Create(context.Background(), "U1", dataentry.CreateEntryRequest{Judul: "A", Deskripsi: "a"})
	assert.NoError(t, err)

	c, err := svc.SendEntryMessage(context.Background(), entry.ID, "U1", dataentry.SendEntryMessageRequest{Text: "Halo"})
	assert.NoError(t, err)
	assert.Len(t, c.Messages, 1)

	_, err = svc.UpdateStatus(context.Background(), entry.ID, dataentry.UpdateStatusRequest{Status: dataentry.StatusSelesai})
	assert.NoError(t, err)

	_, err = svc.SendEntryMessage(context.Background(), entry.ID, "U1", dataentry.SendEntryMessageRequest{Text: "Masih ada?"})
	assert.ErrorIs(t, err, dataentryerrors.ErrEntryClosed)

	// Pesan lama tetap utuh
	got, err := svc.GetEntryChat(context.Background(), entry.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}
