package product

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository issues the product statements against a borrowed connection.
// Every method is a single round trip.
type Repository struct{}

func (Repository) Create(db *gorm.DB, params Params) (*Product, error) {
	p := Product{Name: params.Name, Price: params.Price}
	if err := db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &p, nil
}

func (Repository) List(db *gorm.DB) ([]Product, error) {
	products := []Product{}
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

func (Repository) Get(db *gorm.DB, id int64) (*Product, error) {
	var p Product
	if err := db.Where("id = ?", id).Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query product %d: %w", id, err)
	}
	return &p, nil
}

// Update overwrites name and price. Drivers report matched rows, so an
// update that changes nothing still counts as found.
func (Repository) Update(db *gorm.DB, id int64, params Params) (*Product, error) {
	res := db.Model(&Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  params.Name,
		"price": params.Price,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &Product{ID: id, Name: params.Name, Price: params.Price}, nil
}

func (Repository) Delete(db *gorm.DB, id int64) error {
	res := db.Where("id = ?", id).Delete(&Product{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
