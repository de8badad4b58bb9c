package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits the products.price column
// keeps.
const PriceScale = 2

// MaxPrice is the largest magnitude a NUMERIC(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

var (
	// ErrNotFound is returned when no product has the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrPriceOutOfRange is returned for prices that do not fit the price
	// column once rounded.
	ErrPriceOutOfRange = errors.New("price out of range")
)

// Product is a row of the products table.
type Product struct {
	ID    int64           `gorm:"primaryKey;column:id"`
	Name  string          `gorm:"column:name;size:255;not null"`
	Price decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}

// Params carries the client-supplied fields of a create or update.
type Params struct {
	Name  string
	Price decimal.Decimal
}

// normalize rounds the price to the column scale and rejects prices the
// column cannot hold, so every dialect stores the same values.
func (p Params) normalize() (Params, error) {
	price := p.Price.Round(PriceScale)
	if price.Abs().GreaterThan(MaxPrice) {
		return Params{}, fmt.Errorf("%w: %s", ErrPriceOutOfRange, p.Price)
	}
	return Params{Name: p.Name, Price: price}, nil
}
