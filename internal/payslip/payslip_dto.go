package payslip

// BatchRow adalah satu baris hasil parse file XLSX slip gaji.
type BatchRow struct {
	EmployeeID       string
	Period           string
	GajiPokok        float64
	TunjanganJabatan float64
	TunjanganMakan   float64
	Bonus            float64
	PotonganPph21    float64
	PotonganBpjs     float64
	PotonganLainnya  float64
}

func (r BatchRow) TotalPendapatan() float64 {
	return r.GajiPokok + r.TunjanganJabatan + r.TunjanganMakan + r.Bonus
}

func (r BatchRow) TotalPotongan() float64 {
	return r.PotonganPph21 + r.PotonganBpjs + r.PotonganLainnya
}

func (r BatchRow) TakeHomePay() float64 {
	return r.TotalPendapatan() - r.TotalPotongan()
}

type BatchUploadResult struct {
	Uploaded int      `json:"uploaded"`
	Skipped  []string `json:"skipped,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// PayslipView memperkaya record dengan nama karyawan untuk tampilan daftar.
type PayslipView struct {
	Payslip
	EmployeeName string `json:"employeeName"`
}
