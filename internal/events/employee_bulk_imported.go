package events

import "time"

const EmployeeBulkImportedTopic = "hr.employee.bulk_imported.v1"

type EmployeeBulkImportedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	EmployeeIDs []string  `json:"employee_ids"`
	RowCount    int       `json:"row_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}
