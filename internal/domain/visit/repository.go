package visit

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Visit, error)
	GetAll(ctx context.Context) ([]Visit, error)
	Create(ctx context.Context, e *Visit) error
	Update(ctx context.Context, e *Visit) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Visit, error) {
	var e Visit
	err := r.db.WithContext(ctx).First(&e, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Visit, error) {
	var rows []Visit
	err := r.db.WithContext(ctx).Order("visit_id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, e *Visit) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Visit) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Visit{}, id).Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Visit{}).Where("visit_id = ?", id).Count(&count).Error
	return count > 0, err
}
