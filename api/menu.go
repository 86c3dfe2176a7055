package api

import (
	"errors"
	"net/http"
	"net/url"

	"restaurant-pos/models"
	"restaurant-pos/services"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Tip      decimal.Decimal `json:"tip"`
	Category string          `json:"category"`
}

type UpdateMenuItemRequest struct {
	Price    *decimal.Decimal `json:"price,omitempty"`
	Tax      *decimal.Decimal `json:"tax,omitempty"`
	Tip      *decimal.Decimal `json:"tip,omitempty"`
	Category *string          `json:"category,omitempty"`
}

// itemName returns the decoded {name} segment. chi matches on RawPath when
// the request has one (e.g. an escaped "/"), and the param is still escaped
// then; otherwise it is already decoded.
func itemName(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			return "", errors.New("invalid item name")
		}
	}
	if name == "" {
		return "", errors.New("invalid item name")
	}
	return name, nil
}

func (app *Application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]any{"items": app.MenuItems()})
}

func (app *Application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.mu.Lock()
	item, err := app.catalog.GetItem(name)
	app.mu.Unlock()
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, item)
}

func (app *Application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	item := models.MenuItem{
		Name:     req.Name,
		Price:    req.Price,
		Tax:      req.Tax,
		Tip:      req.Tip,
		Category: req.Category,
	}

	app.mu.Lock()
	err := app.catalog.AddItem(r.Context(), item)
	app.mu.Unlock()
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, item)
}

func (app *Application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	var req UpdateMenuItemRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	err = app.catalog.UpdateItem(r.Context(), name, services.MenuItemUpdate{
		Price:    req.Price,
		Tax:      req.Tax,
		Tip:      req.Tip,
		Category: req.Category,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	item, err := app.catalog.GetItem(name)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, item)
}

func (app *Application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.mu.Lock()
	err = app.catalog.DeleteItem(r.Context(), name)
	app.mu.Unlock()
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
