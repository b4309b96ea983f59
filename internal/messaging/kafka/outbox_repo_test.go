package kafka_test

import (
	"context"
	"testing"
	"time"

	"halo-swapro/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupOutboxTest(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return kafka.NewOutboxRepository(gdb), mock
}

func TestOutboxCreate_InsertsEvent(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("evt-1", "req-1", "payslip", "batch", "payslip_batch_uploaded", "payslip.batch.uploaded", []byte(`{}`), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), kafka.OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-1",
		AggregateType: "payslip",
		AggregateID:   "batch",
		EventType:     "payslip_batch_uploaded",
		Topic:         "payslip.batch.uploaded",
		Payload:       []byte(`{}`),
		Status:        kafka.OutboxStatusPending,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxListPending_ScansRows(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("evt-1", "employee", "bulk", "employee_bulk_imported",
		"employee.bulk.imported", []byte(`{}`), kafka.OutboxStatusPending, 0, now)

	mock.ExpectQuery("SELECT(.|\n)*FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "employee.bulk.imported", events[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkSent(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(kafka.OutboxStatusSent, "evt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkFailed(t *testing.T) {
	repo, mock := setupOutboxTest(t)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(kafka.OutboxStatusFailed, "broker unreachable", "evt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      "evt-1",
		Topic:   "employee.bulk.imported",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingID := valid
	missingID.ID = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingID))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	emptyPayload := valid
	emptyPayload.Payload = nil
	assert.Error(t, kafka.ValidateOutboxEvent(emptyPayload))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
