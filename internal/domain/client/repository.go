package client

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Client, error)
	GetAll(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, id *int64, email *string, limit, offset int) ([]Client, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Client, error) {
	var c Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.db.WithContext(ctx).Order("client_id ASC").Find(&clients).Error
	return clients, err
}

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Client{}, id).Error
}

func (r *repository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Client{}).Where("client_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Search AND-combines the optional equality filters; a nil filter matches
// every row. Results are paged with limit/offset.
func (r *repository) Search(ctx context.Context, id *int64, email *string, limit, offset int) ([]Client, error) {
	q := r.db.WithContext(ctx).Model(&Client{})
	if id != nil {
		q = q.Where("client_id = ?", *id)
	}
	if email != nil {
		q = q.Where("client_email = ?", *email)
	}

	var clients []Client
	err := q.Order("client_id ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, err
}
