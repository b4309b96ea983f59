package employee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCSV_HeaderMatchesTemplate(t *testing.T) {
	out := BuildCSV(nil)

	assert.Equal(t, TemplateCSV(), out)
}

func TestBuildCSV_QuotesCellsContainingSeparator(t *testing.T) {
	out := BuildCSV([]Employee{{ID: "E1", DisciplinaryActions: "SP1; SP2"}})

	assert.Contains(t, out, `"SP1; SP2"`)
}

func TestBuildCSV_ZeroContractNumberBlank(t *testing.T) {
	out := BuildCSV([]Employee{{ID: "E1"}})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.NotContains(t, lines[1], "0")
}

// Ekspor lalu impor ulang harus mereproduksi semua field yang dipetakan
// kamus header, termasuk sel yang mengandung ';' dan tanggal opsional.
func TestExportImportRoundTrip(t *testing.T) {
	end := "2025-12-31"
	birth := "1995-04-17"
	original := Employee{
		ID:             "E1",
		SwaproID:       "SW-001",
		FullName:       "Budi Santoso",
		KTPID:          "3171234567890001",
		Whatsapp:       "6281234567890",
		ClientID:       "CL-01",
		Position:       "Operator Produksi",
		Branch:         "Jakarta",
		JoinDate:       "2023-02-01",
		EndDate:        &end,
		BirthDate:      &birth,
		NPWP:           "09.876.543.2-012.000",
		Gender:         "Laki-laki",
		LastEducation:  "SMA",
		ContractNumber: 2,
		DisciplinaryActions: "SP1; terlambat berulang",
		Status:         "Active",
		BankAccount: BankAccount{
			Number:     "1234567890",
			HolderName: "Budi Santoso",
			BankName:   "BCA",
		},
		BPJS: BPJS{
			Ketenagakerjaan: "KT-0001",
			Kesehatan:       "KS-0001",
		},
	}

	patches, err := ParseImportFile(BuildCSV([]Employee{original}))

	assert.NoError(t, err)
	assert.Len(t, patches, 1)

	restored := MergePatch(Employee{}, patches[0])

	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.SwaproID, restored.SwaproID)
	assert.Equal(t, original.FullName, restored.FullName)
	assert.Equal(t, original.KTPID, restored.KTPID)
	assert.Equal(t, original.Whatsapp, restored.Whatsapp)
	assert.Equal(t, original.ClientID, restored.ClientID)
	assert.Equal(t, original.Position, restored.Position)
	assert.Equal(t, original.Branch, restored.Branch)
	assert.Equal(t, original.JoinDate, restored.JoinDate)
	assert.Equal(t, original.EndDate, restored.EndDate)
	assert.Equal(t, original.BirthDate, restored.BirthDate)
	assert.Equal(t, original.ContractNumber, restored.ContractNumber)
	assert.Equal(t, original.DisciplinaryActions, restored.DisciplinaryActions)
	assert.Equal(t, original.Status, restored.Status)
	assert.Equal(t, original.BankAccount, restored.BankAccount)
	assert.Equal(t, original.BPJS, restored.BPJS)

	// ResignDate tidak diisi: sel kosong menjadi null eksplisit dan nilainya
	// tetap nil setelah merge.
	assert.Nil(t, restored.ResignDate)
}
