package payslip

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository adalah perantara ke Record Store untuk tabel payslips.
// Konflik batch upsert dipegang kolom id (kunci komposit yang diturunkan).
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	SelectAll(ctx context.Context) ([]Payslip, error)
	BulkUpsert(ctx context.Context, rows []Payslip) ([]Payslip, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) SelectAll(ctx context.Context) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).Find(&payslips).Error
	return payslips, err
}

func (r *repository) BulkUpsert(ctx context.Context, rows []Payslip) ([]Payslip, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			},
			clause.Returning{},
		).
		Create(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Payslip{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
