package employee

import (
	"strconv"
	"strings"
)

// BuildCSV membangun file ekspor: baris header dari kamus yang sama dengan
// impor, lalu satu baris per karyawan dalam urutan tampilan pemanggil.
// Nilai yang mengandung ';' dibungkus tanda kutip.
func BuildCSV(employees []Employee) string {
	labels := make([]string, len(csvHeaderFields))
	for i, f := range csvHeaderFields {
		labels[i] = f.Label
	}

	rows := make([]string, 0, len(employees)+1)
	rows = append(rows, strings.Join(labels, ";"))

	for _, e := range employees {
		cells := make([]string, len(csvHeaderFields))
		for i, f := range csvHeaderFields {
			value := fieldValue(e, f.Path)
			if strings.Contains(value, ";") {
				value = `"` + value + `"`
			}
			cells[i] = value
		}
		rows = append(rows, strings.Join(cells, ";"))
	}

	return strings.Join(rows, "\n")
}

// fieldValue menelusuri dot-path; path yang tidak terisi menghasilkan string
// kosong, tidak pernah gagal.
func fieldValue(e Employee, path string) string {
	switch path {
	case "id":
		return e.ID
	case "swaproId":
		return e.SwaproID
	case "fullName":
		return e.FullName
	case "ktpId":
		return e.KTPID
	case "whatsapp":
		return e.Whatsapp
	case "clientId":
		return e.ClientID
	case "position":
		return e.Position
	case "branch":
		return e.Branch
	case "joinDate":
		return e.JoinDate
	case "endDate":
		return derefDate(e.EndDate)
	case "resignDate":
		return derefDate(e.ResignDate)
	case "birthDate":
		return derefDate(e.BirthDate)
	case "bankAccount.number":
		return e.BankAccount.Number
	case "bankAccount.holderName":
		return e.BankAccount.HolderName
	case "bankAccount.bankName":
		return e.BankAccount.BankName
	case "bpjs.ketenagakerjaan":
		return e.BPJS.Ketenagakerjaan
	case "bpjs.kesehatan":
		return e.BPJS.Kesehatan
	case "npwp":
		return e.NPWP
	case "gender":
		return e.Gender
	case "lastEducation":
		return e.LastEducation
	case "contractNumber":
		if e.ContractNumber == 0 {
			return ""
		}
		return strconv.Itoa(e.ContractNumber)
	case "disciplinaryActions":
		return e.DisciplinaryActions
	case "status":
		return e.Status
	case "profilePhotoUrl":
		return e.ProfilePhotoURL
	case "documents.pkwtNewHire":
		return e.Documents.PKWTNewHire
	case "documents.pkwtExtension":
		return e.Documents.PKWTExtension
	case "documents.spLetter":
		return e.Documents.SPLetter
	default:
		return ""
	}
}

func derefDate(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
