package storage

import (
	"context"
	"database/sql"
	"fmt"

	"sabor-autentico/site-svc/internal/domain"

	"github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS menu_categories (
	id       TEXT PRIMARY KEY,
	label    TEXT NOT NULL,
	icon     TEXT NOT NULL DEFAULT '',
	position INT  NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS menu_items (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL REFERENCES menu_categories(id),
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(10,2) NOT NULL,
	image       TEXT NOT NULL DEFAULT '',
	ingredients TEXT[] NOT NULL DEFAULT '{}',
	tags        TEXT[] NOT NULL DEFAULT '{}',
	rating      NUMERIC(3,1) NOT NULL DEFAULT 0,
	position    INT NOT NULL DEFAULT 0
);`

// PostgresCatalog reads the menu from PostgreSQL.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (r *PostgresCatalog) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// Seed inserts the given catalog, leaving existing rows untouched.
func (r *PostgresCatalog) Seed(ctx context.Context, categories []domain.Category, items []domain.MenuItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, c := range categories {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_categories (id, label, icon, position)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.ID, c.Label, c.Icon, i); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}

	for i, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (id, category, name, description, price, image, ingredients, tags, rating, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING`,
			item.ID, item.Category, item.Name, item.Description, item.Price, item.Image,
			pq.Array(item.Ingredients), pq.Array(item.Tags), item.Rating, i); err != nil {
			return fmt.Errorf("failed to seed menu item %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, label, icon
		FROM menu_categories
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Label, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresCatalog) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, category, name, description, price, image, ingredients, tags, rating
		FROM menu_items
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Name, &item.Description, &item.Price,
			&item.Image, pq.Array(&item.Ingredients), pq.Array(&item.Tags), &item.Rating); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
