package employee

import "time"

const (
	StatusActive     = "Active"
	StatusResigned   = "Resigned"
	StatusTerminated = "Terminated"

	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

// EducationLevels adalah enum tertutup pendidikan terakhir
var EducationLevels = []string{"SMA/SMK", "D3", "S1", "S2", "S3", "Lainnya"}

type BankAccount struct {
	Number     string `json:"number"`
	HolderName string `json:"holderName"`
	BankName   string `json:"bankName"`
}

type BPJS struct {
	Ketenagakerjaan string `json:"ketenagakerjaan"`
	Kesehatan       string `json:"kesehatan"`
}

type Documents struct {
	PKWTNewHire   string `json:"pkwtNewHire,omitempty"`
	PKWTExtension string `json:"pkwtExtension,omitempty"`
	SPLetter      string `json:"spLetter,omitempty"`
}

// Employee adalah record karyawan. ID adalah NIK Karyawan, dipasok user dan
// immutable setelah dibuat. Objek bersarang disimpan sebagai JSONB dan
// di-merge per sub-field, tidak pernah di-null-kan utuh (lihat MergePatch).
type Employee struct {
	ID                  string      `gorm:"primaryKey" json:"id"`
	SwaproID            string      `json:"swaproId"`
	FullName            string      `gorm:"index" json:"fullName"`
	KTPID               string      `json:"ktpId"`
	Whatsapp            string      `json:"whatsapp"`
	ClientID            string      `gorm:"index" json:"clientId"`
	Position            string      `json:"position"`
	Branch              string      `json:"branch"`
	JoinDate            string      `json:"joinDate"`
	EndDate             *string     `json:"endDate"`
	ResignDate          *string     `json:"resignDate"`
	BirthDate           *string     `json:"birthDate"`
	BankAccount         BankAccount `gorm:"serializer:json;type:jsonb" json:"bankAccount"`
	BPJS                BPJS        `gorm:"serializer:json;type:jsonb" json:"bpjs"`
	NPWP                string      `json:"npwp"`
	Gender              string      `json:"gender"`
	LastEducation       string      `json:"lastEducation"`
	ContractNumber      int         `json:"contractNumber"`
	DisciplinaryActions string      `json:"disciplinaryActions"`
	Status              string      `json:"status"`
	ProfilePhotoURL     string      `json:"profilePhotoUrl"`
	Documents           Documents   `gorm:"serializer:json;type:jsonb" json:"documents"`
	CreatedAt           time.Time   `json:"-"`
	UpdatedAt           time.Time   `json:"-"`
}
