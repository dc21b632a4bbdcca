package rate

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Rate, error)
	GetAll(ctx context.Context) ([]Rate, error)
	Create(ctx context.Context, r *Rate) error
	Update(ctx context.Context, r *Rate) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Rate, error) {
	var rt Rate
	err := r.db.WithContext(ctx).First(&rt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Rate, error) {
	var rates []Rate
	err := r.db.WithContext(ctx).Order("rate_id ASC").Find(&rates).Error
	return rates, err
}

func (r *repository) Create(ctx context.Context, rt *Rate) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *repository) Update(ctx context.Context, rt *Rate) error {
	return r.db.WithContext(ctx).Save(rt).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Rate{}, id).Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Rate{}).Where("rate_id = ?", id).Count(&count).Error
	return count > 0, err
}
