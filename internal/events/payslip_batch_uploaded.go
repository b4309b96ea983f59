package events

import "time"

const PayslipBatchUploadedTopic = "hr.payslip.batch_uploaded.v1"

type PayslipBatchUploadedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	Period     string    `json:"period"`
	PayslipIDs []string  `json:"payslip_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}
