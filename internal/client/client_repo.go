package client

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	SelectAll(ctx context.Context) ([]Client, error)
	Insert(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, c Client) (Client, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SelectAll(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).Find(&clients).Error
	return clients, err
}

func (r *repository) Insert(ctx context.Context, c Client) (Client, error) {
	err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&c).Error
	return c, err
}

func (r *repository) Update(ctx context.Context, c Client) (Client, error) {
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		return Client{}, err
	}

	var out Client
	if err := r.db.WithContext(ctx).First(&out, "id = ?", c.ID).Error; err != nil {
		return Client{}, err
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
