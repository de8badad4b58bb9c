package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ProductsTable is the only table the service owns.
const ProductsTable = "products"

var createProductsTable = map[string]string{
	"postgres": `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL
		)`,
	// AUTOINCREMENT keeps SQLite from reusing ids of deleted rows
	"sqlite": `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10, 2) NOT NULL
		)`,
}

// EnsureSchema creates the products table if it does not exist yet.
func EnsureSchema(ctx context.Context, p Provider) error {
	return p.WithConn(ctx, func(db *gorm.DB) error {
		dialect := db.Dialector.Name()
		ddl, ok := createProductsTable[dialect]
		if !ok {
			return fmt.Errorf("no products table definition for dialect %q", dialect)
		}
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create %s table: %w", ProductsTable, err)
		}
		return nil
	})
}
