package payslip

import (
	"testing"

	"halo-swapro/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "Juli 2024", FormatPeriod("2024-07"))
	assert.Equal(t, "Desember 2023", FormatPeriod("2023-12"))
	assert.Equal(t, "bukan-periode-13", FormatPeriod("bukan-periode-13"))
	assert.Equal(t, "2024", FormatPeriod("2024"))
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", formatRupiah(0))
	assert.Equal(t, "Rp 1.500.000", formatRupiah(1500000))
	assert.Equal(t, "-Rp 250.000", formatRupiah(-250000))
}

func TestBuildPDF(t *testing.T) {
	row := BatchRow{
		EmployeeID:       "E1",
		Period:           "2024-07",
		GajiPokok:        5000000,
		TunjanganJabatan: 500000,
		Bonus:            1000000,
		PotonganPph21:    250000,
	}
	emp := employee.Employee{ID: "E1", FullName: "Budi Santoso", Position: "Operator"}

	data, err := BuildPDF(row, emp, "PT Maju Jaya")

	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}
