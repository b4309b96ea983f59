package dataentry

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	SelectAll(ctx context.Context) ([]DataEntry, error)
	Insert(ctx context.Context, e DataEntry) (DataEntry, error)
	Update(ctx context.Context, e DataEntry) (DataEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SelectAll(ctx context.Context) ([]DataEntry, error) {
	var entries []DataEntry
	err := r.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}

func (r *repository) Insert(ctx context.Context, e DataEntry) (DataEntry, error) {
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&e).Error
	return e, err
}

func (r *repository) Update(ctx context.Context, e DataEntry) (DataEntry, error) {
	if err := r.db.WithContext(ctx).Save(&e).Error; err != nil {
		return DataEntry{}, err
	}

	var out DataEntry
	if err := r.db.WithContext(ctx).First(&out, "id = ?", e.ID).Error; err != nil {
		return DataEntry{}, err
	}
	return out, nil
}
