package payslip

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"halo-swapro/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

var monthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatPeriod mengubah "2024-07" menjadi "Juli 2024"; periode yang tidak
// bisa diparse dikembalikan apa adanya.
func FormatPeriod(period string) string {
	parts := strings.SplitN(period, "-", 2)
	if len(parts) != 2 {
		return period
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return period
	}
	return monthNames[month-1] + " " + parts[0]
}

// formatRupiah meniru format mata uang id-ID tanpa desimal: Rp 1.500.000
func formatRupiah(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatFloat(amount, 'f', 0, 64)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// BuildPDF menyusun slip gaji satu halaman: judul, blok identitas, tabel
// pendapatan/potongan berdampingan, lalu take home pay.
func BuildPDF(row BatchRow, emp employee.Employee, clientName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "SLIP GAJI KARYAWAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Periode: "+FormatPeriod(row.Period), "", 1, "C", false, 0, "")

	pdf.SetLineWidth(0.5)
	pdf.Line(15, 35, 195, 35)
	pdf.SetY(40)

	identity := [][2]string{
		{"Nama Karyawan", emp.FullName},
		{"NIK", emp.ID},
		{"Jabatan", emp.Position},
		{"Klien", clientName},
	}
	pdf.SetFontSize(11)
	for _, line := range identity {
		pdf.SetX(15)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, line[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(5, 7, ":", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, line[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	colW := 45.0
	writeRow := func(left, leftAmount, right, rightAmount string, bold bool) {
		pdf.SetX(15)
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(colW, 8, left, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(colW, 8, leftAmount, "1", 0, "R", false, 0, "")
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(colW, 8, right, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(colW, 8, rightAmount, "1", 1, "R", false, 0, "")
	}

	pdf.SetX(15)
	pdf.SetFillColor(74, 85, 104)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colW, 8, "Pendapatan", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 8, "Jumlah", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 8, "Potongan", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 8, "Jumlah", "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	writeRow("Gaji Pokok", formatRupiah(row.GajiPokok), "Pph 21", formatRupiah(row.PotonganPph21), true)
	writeRow("Tunjangan Jabatan", formatRupiah(row.TunjanganJabatan), "BPJS", formatRupiah(row.PotonganBpjs), false)
	writeRow("Tunjangan Makan", formatRupiah(row.TunjanganMakan), "Potongan Lainnya", formatRupiah(row.PotonganLainnya), false)
	writeRow("Bonus", formatRupiah(row.Bonus), "", "", false)

	pdf.SetX(15)
	pdf.SetFillColor(237, 242, 247)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colW, 8, "Total Pendapatan", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 8, formatRupiah(row.TotalPendapatan()), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colW, 8, "Total Potongan", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colW, 8, formatRupiah(row.TotalPotongan()), "1", 1, "R", true, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetX(15)
	pdf.CellFormat(90, 8, "Take Home Pay:", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 8, formatRupiah(row.TakeHomePay()), "", 1, "R", false, 0, "")

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := fmt.Sprintf(
		"Dokumen ini dibuat secara otomatis oleh sistem HALO SWAPRO pada %s",
		time.Now().Format("02/01/2006"),
	)
	pdf.CellFormat(0, 8, footer, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
