package employee

// EmployeeRequest dipakai untuk create dan update; form di portal selalu
// mengirim record penuh.
type EmployeeRequest struct {
	ID                  string      `json:"id" binding:"required"`
	SwaproID            string      `json:"swaproId"`
	FullName            string      `json:"fullName" binding:"required"`
	KTPID               string      `json:"ktpId"`
	Whatsapp            string      `json:"whatsapp"`
	ClientID            string      `json:"clientId" binding:"required"`
	Position            string      `json:"position"`
	Branch              string      `json:"branch"`
	JoinDate            string      `json:"joinDate" binding:"required"`
	EndDate             *string     `json:"endDate"`
	ResignDate          *string     `json:"resignDate"`
	BirthDate           *string     `json:"birthDate"`
	BankAccount         BankAccount `json:"bankAccount"`
	BPJS                BPJS        `json:"bpjs"`
	NPWP                string      `json:"npwp"`
	Gender              string      `json:"gender" binding:"required,oneof=Laki-laki Perempuan"`
	LastEducation       string      `json:"lastEducation" binding:"omitempty,oneof=SMA/SMK D3 S1 S2 S3 Lainnya"`
	ContractNumber      int         `json:"contractNumber"`
	DisciplinaryActions string      `json:"disciplinaryActions"`
	Status              string      `json:"status" binding:"required,oneof=Active Resigned Terminated"`
	ProfilePhotoURL     string      `json:"profilePhotoUrl"`
	Documents           Documents   `json:"documents"`
}

func (r EmployeeRequest) toEntity() Employee {
	contractNumber := r.ContractNumber
	if contractNumber < 1 {
		contractNumber = 1
	}
	return Employee{
		ID:                  r.ID,
		SwaproID:            r.SwaproID,
		FullName:            r.FullName,
		KTPID:               r.KTPID,
		Whatsapp:            r.Whatsapp,
		ClientID:            r.ClientID,
		Position:            r.Position,
		Branch:              r.Branch,
		JoinDate:            r.JoinDate,
		EndDate:             r.EndDate,
		ResignDate:          r.ResignDate,
		BirthDate:           r.BirthDate,
		BankAccount:         r.BankAccount,
		BPJS:                r.BPJS,
		NPWP:                r.NPWP,
		Gender:              r.Gender,
		LastEducation:       r.LastEducation,
		ContractNumber:      contractNumber,
		DisciplinaryActions: r.DisciplinaryActions,
		Status:              r.Status,
		ProfilePhotoURL:     r.ProfilePhotoURL,
		Documents:           r.Documents,
	}
}

// BulkImportResult adalah hasil impor massal; Imported 0 dengan Message terisi
// adalah kondisi informasional "tidak ada yang diimpor", bukan error.
type BulkImportResult struct {
	Imported int    `json:"imported"`
	Message  string `json:"message,omitempty"`
}
