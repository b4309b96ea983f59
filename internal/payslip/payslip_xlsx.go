package payslip

import (
	"bytes"
	"strconv"
	"strings"

	paysliperrors "halo-swapro/internal/payslip/errors"

	"github.com/xuri/excelize/v2"
)

// batchHeaders adalah kolom wajib sheet pertama file unggahan, urutannya
// sama dengan template yang diunduh user.
var batchHeaders = []string{
	"employeeId", "period", "gajiPokok", "tunjanganJabatan",
	"tunjanganMakan", "bonus", "potonganPph21", "potonganBpjs", "potonganLainnya",
}

// TemplateCSV mengembalikan template kosong untuk diisi user.
func TemplateCSV() string {
	return strings.Join(batchHeaders, ",") + "\n"
}

// ParseBatchFile membaca sheet pertama file XLSX. Header harus memuat semua
// kolom template (urutan bebas); baris tanpa employeeId atau period dilewati.
func ParseBatchFile(data []byte) ([]BatchRow, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, paysliperrors.ErrInvalidBatchFile
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, paysliperrors.ErrInvalidBatchFile
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, paysliperrors.ErrInvalidBatchFile
	}
	if len(rows) == 0 {
		return nil, paysliperrors.ErrInvalidBatchHeader
	}

	colIndex := make(map[string]int, len(rows[0]))
	for i, cell := range rows[0] {
		colIndex[strings.TrimSpace(cell)] = i
	}
	for _, h := range batchHeaders {
		if _, ok := colIndex[h]; !ok {
			return nil, paysliperrors.ErrInvalidBatchHeader
		}
	}

	cell := func(row []string, header string) string {
		i := colIndex[header]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	amount := func(row []string, header string) float64 {
		v, err := strconv.ParseFloat(cell(row, header), 64)
		if err != nil {
			return 0
		}
		return v
	}

	out := make([]BatchRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		employeeID := cell(row, "employeeId")
		period := cell(row, "period")
		if employeeID == "" || period == "" {
			continue
		}
		out = append(out, BatchRow{
			EmployeeID:       employeeID,
			Period:           period,
			GajiPokok:        amount(row, "gajiPokok"),
			TunjanganJabatan: amount(row, "tunjanganJabatan"),
			TunjanganMakan:   amount(row, "tunjanganMakan"),
			Bonus:            amount(row, "bonus"),
			PotonganPph21:    amount(row, "potonganPph21"),
			PotonganBpjs:     amount(row, "potonganBpjs"),
			PotonganLainnya:  amount(row, "potonganLainnya"),
		})
	}
	return out, nil
}
