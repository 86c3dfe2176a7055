package services

import (
	"context"
	"fmt"
	"sort"

	"restaurant-pos/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogStore persists the whole catalog mapping. Save always rewrites
// everything; there is no incremental persistence.
type CatalogStore interface {
	Load(ctx context.Context) (map[string]models.MenuEntry, error)
	Save(ctx context.Context, items map[string]models.MenuEntry) error
}

// Catalog is the authoritative set of orderable items. It is not safe for
// concurrent use; callers that share it must serialize access.
type Catalog struct {
	store CatalogStore
	items map[string]models.MenuEntry
	log   *zap.SugaredLogger
}

// MenuItemUpdate carries the fields to overwrite; nil fields are left as is.
type MenuItemUpdate struct {
	Price    *decimal.Decimal
	Tax      *decimal.Decimal
	Tip      *decimal.Decimal
	Category *string
}

// OpenCatalog loads the catalog from store. Unreadable or corrupt storage
// yields an empty catalog.
func OpenCatalog(ctx context.Context, store CatalogStore, log *zap.SugaredLogger) *Catalog {
	items, err := store.Load(ctx)
	if err != nil {
		log.Warnw("menu load failed, starting with an empty menu", "error", err)
		items = nil
	}
	if items == nil {
		items = make(map[string]models.MenuEntry)
	}
	return &Catalog{store: store, items: items, log: log}
}

func (c *Catalog) AddItem(ctx context.Context, item models.MenuItem) error {
	if err := ValidateMenuItem(item); err != nil {
		return err
	}
	if _, ok := c.items[item.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateItem, item.Name)
	}
	c.items[item.Name] = item.Entry()
	if err := c.save(ctx); err != nil {
		delete(c.items, item.Name)
		return err
	}
	c.log.Infow("menu item added", "name", item.Name, "category", item.Category)
	return nil
}

func (c *Catalog) UpdateItem(ctx context.Context, name string, upd MenuItemUpdate) error {
	prev, ok := c.items[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	next := prev
	if upd.Price != nil {
		next.Price = *upd.Price
	}
	if upd.Tax != nil {
		next.Tax = *upd.Tax
	}
	if upd.Tip != nil {
		next.Tip = *upd.Tip
	}
	if upd.Category != nil {
		next.Category = *upd.Category
	}
	if err := ValidateMenuItem(next.Item(name)); err != nil {
		return err
	}
	c.items[name] = next
	if err := c.save(ctx); err != nil {
		c.items[name] = prev
		return err
	}
	c.log.Infow("menu item updated", "name", name)
	return nil
}

func (c *Catalog) DeleteItem(ctx context.Context, name string) error {
	prev, ok := c.items[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	delete(c.items, name)
	if err := c.save(ctx); err != nil {
		c.items[name] = prev
		return err
	}
	c.log.Infow("menu item deleted", "name", name)
	return nil
}

func (c *Catalog) GetItem(name string) (models.MenuItem, error) {
	e, ok := c.items[name]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	return e.Item(name), nil
}

// Items returns every menu item ordered by name.
func (c *Catalog) Items() []models.MenuItem {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]models.MenuItem, 0, len(names))
	for _, name := range names {
		items = append(items, c.items[name].Item(name))
	}
	return items
}

func (c *Catalog) Len() int {
	return len(c.items)
}

func (c *Catalog) save(ctx context.Context) error {
	snapshot := make(map[string]models.MenuEntry, len(c.items))
	for k, v := range c.items {
		snapshot[k] = v
	}
	if err := c.store.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}
