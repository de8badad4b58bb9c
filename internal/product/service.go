package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/pankajredekar/productapi/internal/store"
)

// Service runs each product operation on a connection borrowed from the
// provider for that call only.
type Service struct {
	provider store.Provider
	repo     Repository
}

// NewService creates a product service
func NewService(provider store.Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) Create(ctx context.Context, params Params) (*Product, error) {
	params, err := params.normalize()
	if err != nil {
		return nil, err
	}
	var res *Product
	err = s.provider.WithConn(ctx, func(db *gorm.DB) (err error) {
		res, err = s.repo.Create(db, params)
		return err
	})
	return res, err
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	var res []Product
	err := s.provider.WithConn(ctx, func(db *gorm.DB) (err error) {
		res, err = s.repo.List(db)
		return err
	})
	return res, err
}

func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	var res *Product
	err := s.provider.WithConn(ctx, func(db *gorm.DB) (err error) {
		res, err = s.repo.Get(db, id)
		return err
	})
	return res, err
}

func (s *Service) Update(ctx context.Context, id int64, params Params) (*Product, error) {
	params, err := params.normalize()
	if err != nil {
		return nil, err
	}
	var res *Product
	err = s.provider.WithConn(ctx, func(db *gorm.DB) (err error) {
		res, err = s.repo.Update(db, id, params)
		return err
	})
	return res, err
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.provider.WithConn(ctx, func(db *gorm.DB) error {
		return s.repo.Delete(db, id)
	})
}
