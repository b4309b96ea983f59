package employee

import (
	"encoding/csv"
	"strconv"
	"strings"

	employeeerrors "halo-swapro/internal/employee/errors"
)

// headerField memetakan satu label kolom CSV ke path field internal.
// Daftar ini single-source untuk impor maupun ekspor sehingga mapping-nya
// dijamin simetris.
type headerField struct {
	Label string
	Path  string
}

var csvHeaderFields = []headerField{
	{"NIK KARYAWAN", "id"},
	{"NIK SWAPRO", "swaproId"},
	{"Nama Lengkap", "fullName"},
	{"No KTP", "ktpId"},
	{"No WhatsApp", "whatsapp"},
	{"ID Klien", "clientId"},
	{"Jabatan", "position"},
	{"Cabang", "branch"},
	{"Tanggal Join (YYYY-MM-DD)", "joinDate"},
	{"Tanggal Akhir Kontrak (YYYY-MM-DD)", "endDate"},
	{"Tanggal Resign (YYYY-MM-DD)", "resignDate"},
	{"No Rekening", "bankAccount.number"},
	{"Nama Pemilik Rekening", "bankAccount.holderName"},
	{"Nama Bank", "bankAccount.bankName"},
	{"No BPJS Ketenagakerjaan", "bpjs.ketenagakerjaan"},
	{"No BPJS Kesehatan", "bpjs.kesehatan"},
	{"NPWP", "npwp"},
	{"Jenis Kelamin (Laki-laki/Perempuan)", "gender"},
	{"Tanggal Lahir (YYYY-MM-DD)", "birthDate"},
	{"Pendidikan Terakhir", "lastEducation"},
	{"Kontrak Ke", "contractNumber"},
	{"Catatan SP", "disciplinaryActions"},
	{"Status (Active/Resigned/Terminated)", "status"},
	{"URL Foto Profil", "profilePhotoUrl"},
}

// sel tanggal yang kosong berarti "hapus nilai", bukan "biarkan"
var dateFields = map[string]bool{
	"joinDate":   true,
	"endDate":    true,
	"resignDate": true,
	"birthDate":  true,
}

func headerPathByLabel() map[string]string {
	m := make(map[string]string, len(csvHeaderFields))
	for _, f := range csvHeaderFields {
		m[f.Label] = f.Path
	}
	return m
}

// TemplateCSV mengembalikan baris header template impor
func TemplateCSV() string {
	labels := make([]string, len(csvHeaderFields))
	for i, f := range csvHeaderFields {
		labels[i] = f.Label
	}
	return strings.Join(labels, ";")
}

// Patch adalah partial employee hasil decode satu baris CSV.
// Nilai per key:
//   - string           : field top-level diisi
//   - nil              : field tanggal dihapus secara eksplisit (sel kosong)
//   - int              : contractNumber
//   - map[string]string: sub-field objek bersarang (satu level)
//
// Field yang tidak muncul di Patch tidak boleh menimpa nilai lama.
type Patch map[string]any

// ParseImportFile mem-parse teks CSV berpemisah ';' menjadi urutan Patch.
// Header divalidasi utuh: satu label tak dikenal menggagalkan seluruh impor.
// Baris dengan jumlah kolom tidak cocok dilewati; baris tanpa NIK dibuang.
func ParseImportFile(text string) ([]Patch, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, employeeerrors.ErrInvalidImportFile
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		empty := true
		for _, cell := range rec {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if !empty {
			rows = append(rows, rec)
		}
	}

	if len(rows) <= 1 {
		return nil, nil
	}

	byLabel := headerPathByLabel()
	paths := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		path, ok := byLabel[strings.TrimSpace(label)]
		if !ok {
			return nil, employeeerrors.ErrInvalidImportHeader
		}
		paths[i] = path
	}

	patches := make([]Patch, 0, len(rows)-1)
	for _, values := range rows[1:] {
		if len(values) != len(paths) {
			continue // Skip malformed rows
		}

		patch := Patch{}
		for i, path := range paths {
			raw := values[i]

			if strings.TrimSpace(raw) == "" {
				// Sel kosong: tanggal dicatat sebagai null eksplisit agar
				// bisa dihapus; field lain diabaikan agar tidak menimpa.
				if dateFields[path] {
					patch[path] = nil
				}
				continue
			}

			value := strings.TrimSpace(raw)

			if parent, child, found := strings.Cut(path, "."); found {
				nested, _ := patch[parent].(map[string]string)
				if nested == nil {
					nested = map[string]string{}
					patch[parent] = nested
				}
				nested[child] = value
				continue
			}

			patch[path] = value
		}

		id, _ := patch["id"].(string)
		if id == "" {
			continue // tidak bisa upsert tanpa key
		}

		if rawNumber, ok := patch["contractNumber"].(string); ok {
			n, err := strconv.Atoi(rawNumber)
			if err != nil {
				n = 1
			}
			patch["contractNumber"] = n
		}

		patches = append(patches, patch)
	}

	return patches, nil
}

// MergePatch menggabungkan Patch ke record dasar. Field top-level pada patch
// menimpa base; objek bersarang di-merge key-per-key sehingga sub-field lama
// yang tidak disebut patch tetap utuh. Base berupa zero value aman
// (container bersarang diperlakukan sebagai objek kosong, tidak pernah null).
// Murni dan idempoten: merge patch yang sama dua kali = sekali.
func MergePatch(base Employee, patch Patch) Employee {
	out := base

	for key, raw := range patch {
		switch key {
		case "id":
			out.ID = asString(raw)
		case "swaproId":
			out.SwaproID = asString(raw)
		case "fullName":
			out.FullName = asString(raw)
		case "ktpId":
			out.KTPID = asString(raw)
		case "whatsapp":
			out.Whatsapp = asString(raw)
		case "clientId":
			out.ClientID = asString(raw)
		case "position":
			out.Position = asString(raw)
		case "branch":
			out.Branch = asString(raw)
		case "joinDate":
			out.JoinDate = asString(raw)
		case "endDate":
			out.EndDate = asDatePtr(raw)
		case "resignDate":
			out.ResignDate = asDatePtr(raw)
		case "birthDate":
			out.BirthDate = asDatePtr(raw)
		case "npwp":
			out.NPWP = asString(raw)
		case "gender":
			out.Gender = asString(raw)
		case "lastEducation":
			out.LastEducation = asString(raw)
		case "contractNumber":
			if n, ok := raw.(int); ok {
				out.ContractNumber = n
			}
		case "disciplinaryActions":
			out.DisciplinaryActions = asString(raw)
		case "status":
			out.Status = asString(raw)
		case "profilePhotoUrl":
			out.ProfilePhotoURL = asString(raw)
		case "bankAccount":
			if nested, ok := raw.(map[string]string); ok {
				if v, ok := nested["number"]; ok {
					out.BankAccount.Number = v
				}
				if v, ok := nested["holderName"]; ok {
					out.BankAccount.HolderName = v
				}
				if v, ok := nested["bankName"]; ok {
					out.BankAccount.BankName = v
				}
			}
		case "bpjs":
			if nested, ok := raw.(map[string]string); ok {
				if v, ok := nested["ketenagakerjaan"]; ok {
					out.BPJS.Ketenagakerjaan = v
				}
				if v, ok := nested["kesehatan"]; ok {
					out.BPJS.Kesehatan = v
				}
			}
		case "documents":
			if nested, ok := raw.(map[string]string); ok {
				if v, ok := nested["pkwtNewHire"]; ok {
					out.Documents.PKWTNewHire = v
				}
				if v, ok := nested["pkwtExtension"]; ok {
					out.Documents.PKWTExtension = v
				}
				if v, ok := nested["spLetter"]; ok {
					out.Documents.SPLetter = v
				}
			}
		}
	}

	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asDatePtr(v any) *string {
	if s, ok := v.(string); ok && s != "" {
		return &s
	}
	return nil
}
