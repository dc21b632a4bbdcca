package gym

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles persistence for gyms. GetByID returns (nil, nil) when
// the row does not exist; the service turns that into a typed failure.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Gym, error)
	GetAll(ctx context.Context) ([]Gym, error)
	Create(ctx context.Context, g *Gym) error
	Update(ctx context.Context, g *Gym) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Gym, error) {
	var g Gym
	err := r.db.WithContext(ctx).First(&g, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Gym, error) {
	var gyms []Gym
	err := r.db.WithContext(ctx).Order("gym_id ASC").Find(&gyms).Error
	return gyms, err
}

func (r *repository) Create(ctx context.Context, g *Gym) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) Update(ctx context.Context, g *Gym) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Gym{}, id).Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Gym{}).Where("gym_id = ?", id).Count(&count).Error
	return count > 0, err
}
