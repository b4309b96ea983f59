package counter

import "time"

type Counter struct {
	CounterType string    `gorm:"primaryKey;column:counter_type"`
	LastValue   int64     `gorm:"column:last_value"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Counter) TableName() string {
	return "counters"
}
