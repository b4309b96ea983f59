package payslip

import "time"

// Payslip diidentifikasi kunci komposit (employeeId, period) yang
// diturunkan jadi satu id string "employeeId-period". Maksimal satu slip
// per pasangan; unggah ulang menimpa.
type Payslip struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	EmployeeID string    `json:"employeeId" gorm:"index"`
	Period     string    `json:"period"`
	FileURL    string    `json:"fileUrl"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func CompositeID(employeeID, period string) string {
	return employeeID + "-" + period
}
