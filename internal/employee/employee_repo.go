package employee

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository adalah perantara ke Record Store untuk tabel employees.
// Setiap write mengembalikan row hasil dari store, bukan input pemanggil,
// karena store bisa menormalkan/mengisi default.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	SelectAll(ctx context.Context) ([]Employee, error)
	Insert(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	BulkUpsert(ctx context.Context, rows []Employee) ([]Employee, error)
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

func (r *repository) SelectAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).Find(&employees).Error
	return employees, err
}

func (r *repository) Insert(ctx context.Context, e Employee) (Employee, error) {
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&e).Error
	return e, err
}

func (r *repository) Update(ctx context.Context, e Employee) (Employee, error) {
	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return Employee{}, err
	}

	// Baca ulang agar nilai yang dinormalkan store ikut terbawa
	var out Employee
	if err := r.db.WithContext(ctx).First(&out, "id = ?", e.ID).Error; err != nil {
		return Employee{}, err
	}
	return out, nil
}

func (r *repository) BulkUpsert(ctx context.Context, rows []Employee) ([]Employee, error) {
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
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
