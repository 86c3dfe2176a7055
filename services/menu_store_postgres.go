package services

import (
	"context"
	"fmt"

	"restaurant-pos/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresStore keeps the catalog in the menu_items table. Save replaces the
// table contents inside one transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) (map[string]models.MenuEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, price::text, tax::text, tip::text, category FROM menu_items
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query menu_items: %w", ErrStorageIO, err)
	}
	defer rows.Close()

	items := make(map[string]models.MenuEntry)
	for rows.Next() {
		var name, price, tax, tip, category string
		if err := rows.Scan(&name, &price, &tax, &tip, &category); err != nil {
			return nil, fmt.Errorf("%w: scan menu_items: %w", ErrStorageIO, err)
		}
		entry, err := parseEntry(price, tax, tip, category)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", name, err)
		}
		items[name] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read menu_items: %w", ErrStorageIO, err)
	}
	return items, nil
}

func (s *PostgresStore) Save(ctx context.Context, items map[string]models.MenuEntry) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrStorageIO, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("%w: clear menu_items: %w", ErrStorageIO, err)
	}
	for name, e := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO menu_items (name, price, tax, tip, category, updated_at)
			VALUES ($1, $2::numeric, $3::numeric, $4::numeric, $5, now())`,
			name, e.Price.String(), e.Tax.String(), e.Tip.String(), e.Category,
		)
		if err != nil {
			return fmt.Errorf("%w: insert %q: %w", ErrStorageIO, name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrStorageIO, err)
	}
	return nil
}

// parseEntry rebuilds an entry from decimal text columns.
func parseEntry(price, tax, tip, category string) (models.MenuEntry, error) {
	var e models.MenuEntry
	var err error
	if e.Price, err = decimal.NewFromString(price); err != nil {
		return e, fmt.Errorf("%w: price %q: %w", ErrStorageParse, price, err)
	}
	if e.Tax, err = decimal.NewFromString(tax); err != nil {
		return e, fmt.Errorf("%w: tax %q: %w", ErrStorageParse, tax, err)
	}
	if e.Tip, err = decimal.NewFromString(tip); err != nil {
		return e, fmt.Errorf("%w: tip %q: %w", ErrStorageParse, tip, err)
	}
	e.Category = category
	return e, nil
}
